package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Required-parameter middleware. A body field is missing when it is
// absent or JSON null; an empty string counts as present. A query
// parameter is missing only when its key is absent from the query
// string. On any missing field the request short-circuits with a 400
// before the handler (and therefore the store) is touched.

func RequireBodyParams(log *slog.Logger, params ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body map[string]any
		if err := json.Unmarshal(c.Body(), &body); err != nil {
			return badRequest(c)
		}

		var missing []string
		for _, p := range params {
			if v, ok := body[p]; !ok || v == nil {
				missing = append(missing, p)
			}
		}
		if len(missing) > 0 {
			log.Warn("missing body params", "params", missing)
			return badRequest(c)
		}

		return c.Next()
	}
}

func RequireQueryParams(log *slog.Logger, params ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var missing []string
		for _, p := range params {
			if !c.Request().URI().QueryArgs().Has(p) {
				missing = append(missing, p)
			}
		}
		if len(missing) > 0 {
			log.Warn("missing query params", "params", missing)
			return badRequest(c)
		}

		return c.Next()
	}
}

func badRequest(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{"status": "error"})
}

package fiber

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"event-log-service/internal/summary/core/domain"
	"event-log-service/internal/summary/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetSummaryUseCase interface {
	Execute(ctx context.Context, in usecase.GetSummaryInput) ([]domain.SummaryRow, error)
}

type SummaryHandler struct {
	uc  GetSummaryUseCase
	log *slog.Logger
}

func NewSummaryHandler(uc GetSummaryUseCase, log *slog.Logger) *SummaryHandler {
	return &SummaryHandler{uc: uc, log: log}
}

// GetSummary godoc
// @Summary Per-bucket event counts
// @Description Counts events per type, grouped by minute/hour/day buckets; buckets with no events are omitted
// @Tags Summary
// @Produce json
// @Param from query string true "Range start (RFC 3339)"
// @Param to query string true "Range end (RFC 3339), inclusive"
// @Param by query string true "Bucket granularity: minute | hour | day"
// @Success 200 {object} SummaryResponse
// @Failure 400 {object} StatusResponse
// @Failure 500 {object} StatusResponse
// @Router /events/summary [get]
func (h *SummaryHandler) GetSummary(c *fiber.Ctx) error {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(StatusResponse{Status: "error"})
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(StatusResponse{Status: "error"})
	}

	in := usecase.GetSummaryInput{
		From: from,
		To:   to,
		By:   c.Query("by"),
	}

	rows, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		// An unrecognized granularity is a domain-constraint failure and
		// keeps the same 500 contract as a store failure.
		if errors.Is(err, usecase.ErrInvalidGranularity) {
			h.log.Warn("summary: bad granularity", "by", in.By)
		} else {
			h.log.Warn("summary failed", "error", err)
		}
		return c.Status(http.StatusInternalServerError).JSON(StatusResponse{Status: "error"})
	}

	resp := SummaryResponse{Events: make([]SummaryRowResponse, 0, len(rows))}
	for _, row := range rows {
		resp.Events = append(resp.Events, SummaryRowResponse{
			Date:      row.Bucket.UTC().Format(time.RFC3339),
			Enters:    row.Enters,
			Leaves:    row.Leaves,
			Comments:  row.Comments,
			Highfives: row.Highfives,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

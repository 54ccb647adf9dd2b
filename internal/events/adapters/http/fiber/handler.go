package fiber

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"event-log-service/internal/events/core/domain"
	"event-log-service/internal/events/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type StoreEventUseCase interface {
	Execute(ctx context.Context, in usecase.StoreEventInput) error
}

type ListEventsUseCase interface {
	Execute(ctx context.Context, from, to time.Time) ([]domain.Event, error)
}

type ClearEventsUseCase interface {
	Execute(ctx context.Context) error
}

type EventHandler struct {
	storeUC StoreEventUseCase
	listUC  ListEventsUseCase
	clearUC ClearEventsUseCase
	log     *slog.Logger
}

func NewEventHandler(storeUC StoreEventUseCase, listUC ListEventsUseCase, clearUC ClearEventsUseCase, log *slog.Logger) *EventHandler {
	return &EventHandler{
		storeUC: storeUC,
		listUC:  listUC,
		clearUC: clearUC,
		log:     log,
	}
}

// CreateEvent godoc
// @Summary Record an event
// @Description Stores one enter/leave/comment/highfive event for a user
// @Tags Events
// @Accept json
// @Produce json
// @Param request body CreateEventRequest true "Event payload"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} StatusResponse
// @Failure 500 {object} StatusResponse
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req CreateEventRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(StatusResponse{Status: "error"})
	}

	// Presence of date/user/type is guaranteed by the route middleware.
	date, err := time.Parse(time.RFC3339, *req.Date)
	if err != nil {
		h.log.Warn("create event: bad date", "date", *req.Date, "error", err)
		return c.Status(http.StatusBadRequest).JSON(StatusResponse{Status: "error"})
	}

	input := usecase.StoreEventInput{
		User:      *req.User,
		Type:      *req.Type,
		Date:      date,
		Message:   req.Message,
		OtherUser: req.OtherUser,
	}

	if err := h.storeUC.Execute(c.UserContext(), input); err != nil {
		h.log.Warn("create event failed", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(StatusResponse{Status: "error"})
	}

	return c.Status(http.StatusOK).JSON(StatusResponse{Status: "ok"})
}

// ClearEvents godoc
// @Summary Delete all events
// @Description Removes every stored event unconditionally
// @Tags Events
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 500 {object} StatusResponse
// @Router /events/clear [post]
func (h *EventHandler) ClearEvents(c *fiber.Ctx) error {
	if err := h.clearUC.Execute(c.UserContext()); err != nil {
		h.log.Warn("clear events failed", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(StatusResponse{Status: "error"})
	}

	return c.Status(http.StatusOK).JSON(StatusResponse{Status: "ok"})
}

// ListEvents godoc
// @Summary List events in a time range
// @Description Returns events with date in [from, to], ascending by date
// @Tags Events
// @Produce json
// @Param from query string true "Range start (RFC 3339)"
// @Param to query string true "Range end (RFC 3339), inclusive"
// @Success 200 {object} EventsResponse
// @Failure 400 {object} StatusResponse
// @Failure 500 {object} StatusResponse
// @Router /events [get]
func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(StatusResponse{Status: "error"})
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(StatusResponse{Status: "error"})
	}

	events, err := h.listUC.Execute(c.UserContext(), from, to)
	if err != nil {
		h.log.Warn("list events failed", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(StatusResponse{Status: "error"})
	}

	resp := EventsResponse{Events: make([]any, 0, len(events))}
	for _, e := range events {
		resp.Events = append(resp.Events, serializeEvent(e))
	}

	return c.Status(http.StatusOK).JSON(resp)
}

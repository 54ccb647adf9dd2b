package ports

import (
	"context"
	"time"

	"event-log-service/internal/events/core/domain"
)

type EventRepositoryPort interface {
	// InsertEvent persists a new event. The events table enum rejects
	// unknown type values; that rejection surfaces as the returned error.
	InsertEvent(ctx context.Context, e *domain.Event) error

	// ListEvents returns events with date in [from, to], both bounds
	// inclusive, ordered ascending by date.
	ListEvents(ctx context.Context, from, to time.Time) ([]domain.Event, error)

	// DeleteAllEvents removes every event unconditionally.
	DeleteAllEvents(ctx context.Context) error
}

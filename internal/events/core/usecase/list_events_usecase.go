package usecase

import (
	"context"
	"time"

	"event-log-service/internal/events/core/domain"
	"event-log-service/internal/events/core/ports"
)

type ListEventsUseCase struct {
	repo ports.EventRepositoryPort
}

func NewListEventsUseCase(repo ports.EventRepositoryPort) *ListEventsUseCase {
	return &ListEventsUseCase{repo: repo}
}

// Execute returns events dated within [from, to], ascending by date.
// A from later than to is not an error; the range simply matches nothing.
func (uc *ListEventsUseCase) Execute(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	return uc.repo.ListEvents(ctx, from, to)
}

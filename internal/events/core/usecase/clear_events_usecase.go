package usecase

import (
	"context"

	"event-log-service/internal/events/core/ports"
)

type ClearEventsUseCase struct {
	repo ports.EventRepositoryPort
}

func NewClearEventsUseCase(repo ports.EventRepositoryPort) *ClearEventsUseCase {
	return &ClearEventsUseCase{repo: repo}
}

// Execute deletes every stored event. Running it against an already
// empty table is not an error.
func (uc *ClearEventsUseCase) Execute(ctx context.Context) error {
	return uc.repo.DeleteAllEvents(ctx)
}

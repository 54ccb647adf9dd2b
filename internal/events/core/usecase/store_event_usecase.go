package usecase

import (
	"context"
	"time"

	"event-log-service/internal/events/core/domain"
	"event-log-service/internal/events/core/ports"
)

type StoreEventUseCase struct {
	repo ports.EventRepositoryPort
}

func NewStoreEventUseCase(repo ports.EventRepositoryPort) *StoreEventUseCase {
	return &StoreEventUseCase{repo: repo}
}

type StoreEventInput struct {
	User      string
	Type      string
	Date      time.Time
	Message   *string
	OtherUser *string
}

// Execute normalizes the type to upper case and inserts the event.
// Presence of user/type/date is checked before the handler runs, and an
// empty string counts as present. The type is deliberately not checked
// against the known set here: the storage enum rejects unknown values,
// which callers surface as a server error rather than a validation error.
func (uc *StoreEventUseCase) Execute(ctx context.Context, in StoreEventInput) error {
	e := &domain.Event{
		User:      in.User,
		Type:      domain.NormalizeType(in.Type),
		Date:      in.Date,
		Message:   in.Message,
		OtherUser: in.OtherUser,
	}

	return uc.repo.InsertEvent(ctx, e)
}

package usecase

import (
	"context"
	"errors"
	"time"

	"event-log-service/internal/summary/core/domain"
	"event-log-service/internal/summary/core/ports"
)

var ErrInvalidGranularity = errors.New("invalid granularity")

type GetSummaryInput struct {
	From time.Time
	To   time.Time
	By   string // "minute" / "hour" / "day"
}

type GetSummaryUseCase struct {
	reader ports.SummaryReaderPort
}

func NewGetSummaryUseCase(reader ports.SummaryReaderPort) *GetSummaryUseCase {
	return &GetSummaryUseCase{reader: reader}
}

// Execute validates the granularity and delegates to the reader. An
// unrecognized granularity is a caller error, never a silent default.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, in GetSummaryInput) ([]domain.SummaryRow, error) {
	var granularity domain.Granularity

	switch domain.Granularity(in.By) {
	case domain.GranularityMinute, domain.GranularityHour, domain.GranularityDay:
		granularity = domain.Granularity(in.By)
	default:
		return nil, ErrInvalidGranularity
	}

	filter := ports.SummaryFilter{
		From:        in.From,
		To:          in.To,
		Granularity: granularity,
	}

	return uc.reader.QuerySummary(ctx, filter)
}

package ports

import (
	"context"
	"time"

	"event-log-service/internal/summary/core/domain"
)

type SummaryFilter struct {
	From        time.Time
	To          time.Time // inclusive
	Granularity domain.Granularity
}

type SummaryReaderPort interface {
	// QuerySummary groups events in [From, To] by their truncated bucket
	// and counts each type per bucket. Only occupied buckets come back,
	// ordered ascending by bucket start.
	QuerySummary(ctx context.Context, f SummaryFilter) ([]domain.SummaryRow, error)
}

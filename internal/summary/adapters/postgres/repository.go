package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"event-log-service/internal/summary/core/domain"
	"event-log-service/internal/summary/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type SummaryRepository struct {
	db DB
}

func NewSummaryRepository(db DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

var _ ports.SummaryReaderPort = (*SummaryRepository)(nil)

// The granularity is interpolated into date_trunc because it cannot be
// bound as a parameter; the usecase has already restricted it to
// minute/hour/day. GROUP BY only over occupied buckets means empty
// buckets are suppressed by construction.
const summarySQLTemplate = `
SELECT
    date_trunc('%s', date) AS bucket,
    COUNT(*) FILTER (WHERE type = 'ENTER') AS enters,
    COUNT(*) FILTER (WHERE type = 'LEAVE') AS leaves,
    COUNT(*) FILTER (WHERE type = 'COMMENT') AS comments,
    COUNT(*) FILTER (WHERE type = 'HIGHFIVE') AS highfives
FROM events
WHERE date BETWEEN $1 AND $2
GROUP BY bucket
ORDER BY bucket;
`

func (r *SummaryRepository) QuerySummary(ctx context.Context, f ports.SummaryFilter) ([]domain.SummaryRow, error) {
	switch f.Granularity {
	case domain.GranularityMinute, domain.GranularityHour, domain.GranularityDay:
	default:
		// The usecase validates this; guard anyway before interpolating.
		return nil, fmt.Errorf("unsupported granularity: %s", f.Granularity)
	}

	query := fmt.Sprintf(summarySQLTemplate, f.Granularity)

	rows, err := r.db.QueryContext(ctx, query, f.From, f.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SummaryRow
	for rows.Next() {
		var bucket time.Time
		var enters, leaves, comments, highfives string
		if err := rows.Scan(&bucket, &enters, &leaves, &comments, &highfives); err != nil {
			return nil, err
		}

		row := domain.SummaryRow{Bucket: bucket.UTC()}
		if row.Enters, err = parseCount("enters", enters); err != nil {
			return nil, err
		}
		if row.Leaves, err = parseCount("leaves", leaves); err != nil {
			return nil, err
		}
		if row.Comments, err = parseCount("comments", comments); err != nil {
			return nil, err
		}
		if row.Highfives, err = parseCount("highfives", highfives); err != nil {
			return nil, err
		}

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// parseCount coerces an aggregate value to an integer. Counts are
// scanned as strings so the string-to-number boundary is an explicit
// step rather than a driver conversion.
func parseCount(name, value string) (int64, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s count %q: %w", name, value, err)
	}
	return n, nil
}

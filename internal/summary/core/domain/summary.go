package domain

import "time"

// Granularity is the bucket width for summary queries.
type Granularity string

const (
	GranularityMinute Granularity = "minute"
	GranularityHour   Granularity = "hour"
	GranularityDay    Granularity = "day"
)

// SummaryRow holds per-type counts for one occupied time bucket. Rows
// are computed per query and never persisted; buckets with no events
// produce no row.
type SummaryRow struct {
	Bucket    time.Time
	Enters    int64
	Leaves    int64
	Comments  int64
	Highfives int64
}

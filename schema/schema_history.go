package schema

import "time"

// RunRecord represents a row from the scoreagg_runs table.
type RunRecord struct {
	RunID           int64
	StartTime       time.Time
	EndTime         *time.Time
	RunDurationMs   *int32
	ScopesProcessed int32
	ConfigParams    *string
}

// MetricStatsRecord represents a row from the scoreagg_metric_stats table.
// Scope is the aggregation scope the stats were computed for: the input
// filename in single-file mode, a trajectory directory name, or "overall".
type MetricStatsRecord struct {
	RunID  int64
	Scope  string
	Metric string
	Count  int32
	Mean   float64
	Std    float64
}

// HistoryStatus summarizes the state of the run-history store.
type HistoryStatus struct {
	Backend       string
	Connected     bool
	TotalRuns     int64
	LastRunID     int64
	LastRunTime   time.Time
	OldestRunTime time.Time
	TableSizes    map[string]int64
}

// Package schema has models and constants shared by all parts of scoreagg.
package schema

// Record is one evaluation result decoded from a single JSONL line.
// It maps field names to raw values; fields beyond the answer and the
// fixed metric set are carried but never interpreted.
type Record map[string]any

// MetricStats holds the summary statistics computed for one metric series.
type MetricStats struct {
	Count int     `json:"count"` // Number of observed values in the series
	Mean  float64 `json:"mean"`  // Arithmetic mean of the series
	Std   float64 `json:"std"`   // Sample standard deviation; 0 when Count < 2
}

// AggregateStats summarizes all records in one aggregation scope
// (one scores file, or one trajectory directory).
type AggregateStats struct {
	TotalRecords int                    `json:"total_records"`
	EmptyAnswers int                    `json:"empty_answers"`
	Metrics      map[Metric]MetricStats `json:"metrics"` // Only metrics with at least one observation
}

// HasMetric reports whether the scope observed at least one value for m.
func (s *AggregateStats) HasMetric(m Metric) bool {
	_, ok := s.Metrics[m]
	return ok
}

// MetricMean returns the mean for a metric, or 0 when the scope never
// observed a value for it.
func (s *AggregateStats) MetricMean(m Metric) float64 {
	return s.Metrics[m].Mean
}

// TrajectoryStats pairs a trajectory directory name with the aggregate
// statistics of its scores file.
type TrajectoryStats struct {
	Name  string         `json:"name"`
	Stats AggregateStats `json:"stats"`
}

// OverallStats is the cross-trajectory aggregate. Record and empty-answer
// counts are true sums across contributing trajectories; per-metric stats
// are the unweighted mean and standard deviation of the per-trajectory
// means. That mean-of-means is the intended output, not a pooled statistic
// over raw per-record values.
type OverallStats struct {
	RepoName     string                 `json:"repo_name"` // Stem of the target filename
	BasePath     string                 `json:"base_path"`
	Trajectories []TrajectoryStats      `json:"trajectories"` // Contributing trajectories in ascending name order
	TotalRecords int                    `json:"total_records"`
	EmptyAnswers int                    `json:"empty_answers"`
	Metrics      map[Metric]MetricStats `json:"metrics"` // Mean/std of trajectory means; Count is the trajectory count
}

// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/sweqa/scoreagg/schema"
)

// RunStore defines the interface for tracking aggregation runs and storing
// per-scope metric statistics. This allows the history layer to be mocked
// for testing.
type RunStore interface {
	// BeginRun creates a new aggregation run and returns its unique ID
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the aggregation run with completion data
	EndRun(runID int64, endTime time.Time, scopes int) error

	// RecordScopeStats stores the summary statistics computed for one scope
	RecordScopeStats(runID int64, scope string, stats schema.AggregateStats) error

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// GetAllRuns returns every recorded aggregation run
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllMetricStats returns every recorded per-scope metric row
	GetAllMetricStats() ([]schema.MetricStatsRecord, error)

	// Close closes the underlying connection
	Close() error
}

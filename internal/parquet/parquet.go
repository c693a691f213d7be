// Package parquet provides data structures and functions for exporting run
// history data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/sweqa/scoreagg/schema"
)

// Run represents a single aggregation run with metadata.
// This struct maps to the scoreagg_runs database table.
type Run struct {
	// RunID is the unique identifier for this aggregation run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// ScopesProcessed is the number of scopes (files, trajectories) processed
	ScopesProcessed int32 `parquet:"scopes_processed,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// MetricStats represents the summary statistics for one metric in one scope.
// This struct maps to the scoreagg_metric_stats database table.
type MetricStats struct {
	// RunID references the parent aggregation run
	RunID int64 `parquet:"run_id,snappy"`

	// Scope is the file stem, trajectory name or the overall pseudo-scope
	Scope string `parquet:"scope,snappy"`

	// Metric is the scoring dimension name
	Metric string `parquet:"metric,snappy"`

	// Count is the number of values aggregated for this metric
	Count int32 `parquet:"record_count,snappy"`

	// Mean is the arithmetic mean of the metric values
	Mean float64 `parquet:"mean_value,snappy"`

	// Std is the sample standard deviation of the metric values
	Std float64 `parquet:"std_value,snappy"`
}

// WriteRunsParquet writes a slice of Run structs to a Parquet file.
func WriteRunsParquet(data []Run, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the Run struct tags
	writer := parquet.NewGenericWriter[Run](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteMetricStatsParquet writes a slice of MetricStats structs to a Parquet file.
func WriteMetricStatsParquet(data []MetricStats, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the MetricStats struct tags
	writer := parquet.NewGenericWriter[MetricStats](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertRunRecords converts schema.RunRecord to Run for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []Run {
	result := make([]Run, len(records))
	for i, record := range records {
		result[i] = Run{
			RunID:           record.RunID,
			StartTime:       record.StartTime,
			EndTime:         record.EndTime,
			RunDurationMs:   record.RunDurationMs,
			ScopesProcessed: record.ScopesProcessed,
			ConfigParams:    record.ConfigParams,
		}
	}
	return result
}

// ConvertMetricStatsRecords converts schema.MetricStatsRecord to MetricStats for Parquet export.
func ConvertMetricStatsRecords(records []schema.MetricStatsRecord) []MetricStats {
	result := make([]MetricStats, len(records))
	for i, record := range records {
		result[i] = MetricStats{
			RunID:  record.RunID,
			Scope:  record.Scope,
			Metric: record.Metric,
			Count:  record.Count,
			Mean:   record.Mean,
			Std:    record.Std,
		}
	}
	return result
}

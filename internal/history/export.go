package history

import (
	"errors"
	"fmt"

	"github.com/sweqa/scoreagg/internal/parquet"
)

// ExecuteHistoryExport performs the actual export of run history to Parquet files.
func ExecuteHistoryExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	s := Store()
	if s == nil {
		return errors.New("history store is not initialized")
	}

	// Check if there's any data to export
	status, err := s.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)
	fmt.Printf("Total metric rows: %d\n", status.TableSizes[metricStatsTable])

	// Retrieve all runs
	runs, err := s.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}

	// Retrieve all metric stats
	metricStats, err := s.GetAllMetricStats()
	if err != nil {
		return fmt.Errorf("failed to retrieve metric stats: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertRunRecords(runs)
	parquetMetricStats := parquet.ConvertMetricStatsRecords(metricStats)

	// Write runs to Parquet
	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(parquetRuns), runsFile)

	// Write metric stats to Parquet
	metricStatsFile := outputFile + ".metric_stats.parquet"
	if err := parquet.WriteMetricStatsParquet(parquetMetricStats, metricStatsFile); err != nil {
		return fmt.Errorf("failed to write metric stats: %w", err)
	}
	fmt.Printf("Exported %d metric rows to: %s\n", len(parquetMetricStats), metricStatsFile)

	return nil
}

package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweqa/scoreagg/schema"
)

func sampleRuns() []Run {
	now := time.Now()
	start := now.Add(-2 * time.Minute)
	end := now.Add(-1 * time.Minute)
	durationMs := int32(end.Sub(start).Milliseconds())
	configParams := `{"mode":"trajectories","base_path":"/data/repo"}`

	return []Run{
		{
			RunID:           1,
			StartTime:       start,
			EndTime:         &end,
			RunDurationMs:   &durationMs,
			ScopesProcessed: 4,
			ConfigParams:    &configParams,
		},
		{
			RunID:           2,
			StartTime:       now,
			EndTime:         nil, // still running - nullable field
			RunDurationMs:   nil,
			ScopesProcessed: 0,
			ConfigParams:    nil,
		},
	}
}

func sampleMetricStats() []MetricStats {
	return []MetricStats{
		{RunID: 1, Scope: "traj_01", Metric: "total_score", Count: 3, Mean: 56.67, Std: 49.33},
		{RunID: 1, Scope: "overall", Metric: "total_score", Count: 2, Mean: 85.0, Std: 7.07},
	}
}

func TestRunStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	pqSchema := parquet.SchemaOf(new(Run))
	require.NotNil(t, pqSchema)

	expectedColumns := []string{
		"run_id",
		"start_time",
		"end_time",
		"run_duration_ms",
		"scopes_processed",
		"config_params",
	}

	for _, colName := range expectedColumns {
		col, ok := pqSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestMetricStatsStructTags(t *testing.T) {
	pqSchema := parquet.SchemaOf(new(MetricStats))
	require.NotNil(t, pqSchema)

	expectedColumns := []string{
		"run_id",
		"scope",
		"metric",
		"record_count",
		"mean_value",
		"std_value",
	}

	for _, colName := range expectedColumns {
		col, ok := pqSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestWriteRunsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "runs.parquet")

	data := sampleRuns()
	require.NoError(t, WriteRunsParquet(data, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[Run](file)
	defer func() { _ = reader.Close() }()

	readData := make([]Run, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, len(data), n, "Should read all records")

	assert.Equal(t, int64(1), readData[0].RunID)
	assert.Equal(t, int32(4), readData[0].ScopesProcessed)
	assert.NotNil(t, readData[0].EndTime)
	assert.Nil(t, readData[1].EndTime)
	assert.Nil(t, readData[1].ConfigParams)
}

func TestWriteMetricStatsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "metric_stats.parquet")

	data := sampleMetricStats()
	require.NoError(t, WriteMetricStatsParquet(data, outputPath))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[MetricStats](file)
	defer func() { _ = reader.Close() }()

	readData := make([]MetricStats, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, len(data), n)

	assert.Equal(t, "traj_01", readData[0].Scope)
	assert.Equal(t, "total_score", readData[0].Metric)
	assert.InDelta(t, 56.67, readData[0].Mean, 0.001)
}

func TestConvertRunRecords(t *testing.T) {
	end := time.Now()
	durationMs := int32(1500)
	configParams := `{"mode":"single"}`

	records := []schema.RunRecord{
		{
			RunID:           7,
			StartTime:       end.Add(-2 * time.Second),
			EndTime:         &end,
			RunDurationMs:   &durationMs,
			ScopesProcessed: 1,
			ConfigParams:    &configParams,
		},
	}

	converted := ConvertRunRecords(records)
	require.Len(t, converted, 1)
	assert.Equal(t, int64(7), converted[0].RunID)
	assert.Equal(t, int32(1), converted[0].ScopesProcessed)
	assert.Equal(t, &durationMs, converted[0].RunDurationMs)
}

func TestConvertMetricStatsRecords(t *testing.T) {
	records := []schema.MetricStatsRecord{
		{RunID: 7, Scope: "overall", Metric: "correctness", Count: 2, Mean: 85, Std: 7.07},
	}

	converted := ConvertMetricStatsRecords(records)
	require.Len(t, converted, 1)
	assert.Equal(t, "overall", converted[0].Scope)
	assert.Equal(t, int32(2), converted[0].Count)
}

//go:build basic

// Package integration contains integration tests for scoreagg.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const answeredLine = `{"candidate_answer":"42","correctness":80,"total_score":85}`

func writeFixtureFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func runScoreagg(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(getScoreaggBinary(), args...)
	cmd.Dir = dir
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	return buf.String(), err
}

// TestSingleFileRun runs the CLI against one scores file and checks the
// printed and persisted report.
func TestSingleFileRun(t *testing.T) {
	dir := t.TempDir()
	scoresPath := filepath.Join(dir, "final_scores.jsonl")
	writeFixtureFile(t, scoresPath, answeredLine+"\n"+`{"candidate_answer":""}`+"\n")

	output, err := runScoreagg(t, dir, scoresPath)
	require.NoError(t, err, "output: %s", output)

	assert.Contains(t, output, "Scores from "+dir)
	assert.Contains(t, output, "Total records: 2")
	assert.Contains(t, output, "Empty answers (scored as 0): 1")

	// Persisted report matches the printed one, minus console notices
	data, err := os.ReadFile(filepath.Join(dir, "final_scores_score_stats.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Total records: 2")
	assert.NotContains(t, string(data), "Saved to")
}

// TestTrajectoriesRun runs the CLI against a base path with traj_* dirs and
// checks per-trajectory and overall reports.
func TestTrajectoriesRun(t *testing.T) {
	base := t.TempDir()
	writeFixtureFile(t, filepath.Join(base, "traj_01", "final_scores.jsonl"), answeredLine+"\n")
	writeFixtureFile(t, filepath.Join(base, "traj_02", "final_scores.jsonl"), answeredLine+"\n")
	require.NoError(t, os.MkdirAll(filepath.Join(base, "traj_03"), 0o755)) // no scores file

	output, err := runScoreagg(t, base, base, "final_scores.jsonl")
	require.NoError(t, err, "output: %s", output)

	assert.Contains(t, output, "Overall scores for final_scores")
	assert.Contains(t, output, "Trajectories: 2")

	for _, dir := range []string{"traj_01", "traj_02"} {
		data, err := os.ReadFile(filepath.Join(base, dir, "final_scores_score_stats.txt"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "Scores for "+dir)
	}

	data, err := os.ReadFile(filepath.Join(base, "overall_final_scores_results.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Overall scores for final_scores")
}

// TestNoArgumentsShowsUsage checks that a bare invocation prints usage and
// exits non-zero.
func TestNoArgumentsShowsUsage(t *testing.T) {
	output, err := runScoreagg(t, t.TempDir())
	require.Error(t, err)

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, output, "Usage:")
}

// TestNoTrajectoriesFails checks the diagnostic for a base path without
// traj_* subdirectories.
func TestNoTrajectoriesFails(t *testing.T) {
	base := t.TempDir()

	output, err := runScoreagg(t, base, base, "final_scores.jsonl")
	require.Error(t, err)

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, output, "no trajectory directories")
}

// TestMalformedRecordFails checks that a bad JSON line aborts the run.
func TestMalformedRecordFails(t *testing.T) {
	dir := t.TempDir()
	scoresPath := filepath.Join(dir, "final_scores.jsonl")
	writeFixtureFile(t, scoresPath, answeredLine+"\n{broken\n")

	output, err := runScoreagg(t, dir, scoresPath)
	require.Error(t, err)
	assert.Contains(t, output, "line 2")

	// No report is persisted for a failed run
	_, statErr := os.Stat(filepath.Join(dir, "final_scores_score_stats.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

// TestJSONExport checks the structured per-trajectory export.
func TestJSONExport(t *testing.T) {
	base := t.TempDir()
	writeFixtureFile(t, filepath.Join(base, "traj_01", "final_scores.jsonl"), answeredLine+"\n")

	exportPath := filepath.Join(base, "rows.json")
	output, err := runScoreagg(t, base, base, "final_scores.jsonl", "--output", "json", "--output-file", exportPath)
	require.NoError(t, err, "output: %s", output)

	data, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"trajectory": "traj_01"`)
	assert.Contains(t, string(data), `"total_score": 85`)
}

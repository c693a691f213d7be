package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcp_internal "github.com/sweqa/scoreagg/internal/mcp"
)

const scoredLine = `{"candidate_answer":"42","correctness":80,"total_score":85}`

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) (*mcp.CallToolResult, error) {
	t.Helper()
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
	return tool.Handler(context.Background(), req)
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	s := mcp_internal.NewMCPServer()

	t.Run("aggregate_scores missing scores_file", func(t *testing.T) {
		res, err := callTool(t, s, "aggregate_scores", map[string]any{
			"scores_file": "",
		})
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "scores_file is required")
	})

	t.Run("aggregate_trajectories missing base_path", func(t *testing.T) {
		res, err := callTool(t, s, "aggregate_trajectories", map[string]any{
			"base_path":       "",
			"target_filename": "final_scores.jsonl",
		})
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "base_path and target_filename are required")
	})

	t.Run("aggregate_trajectories rejects path separators", func(t *testing.T) {
		res, err := callTool(t, s, "aggregate_trajectories", map[string]any{
			"base_path":       t.TempDir(),
			"target_filename": "nested/final_scores.jsonl",
		})
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "bare filename")
	})
}

func TestMCPServerHandlers_AggregateScores(t *testing.T) {
	s := mcp_internal.NewMCPServer()

	dir := t.TempDir()
	scoresPath := filepath.Join(dir, "final_scores.jsonl")
	require.NoError(t, os.WriteFile(scoresPath, []byte(scoredLine+"\n"), 0o644))

	res, err := callTool(t, s, "aggregate_scores", map[string]any{
		"scores_file": scoresPath,
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var payload struct {
		TotalRecords int `json:"total_records"`
		EmptyAnswers int `json:"empty_answers"`
		Metrics      map[string]struct {
			Count int     `json:"count"`
			Mean  float64 `json:"mean"`
		} `json:"metrics"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &payload))
	assert.Equal(t, 1, payload.TotalRecords)
	assert.Equal(t, 0, payload.EmptyAnswers)
	assert.InDelta(t, 85.0, payload.Metrics["total_score"].Mean, 0.001)
}

func TestMCPServerHandlers_AggregateTrajectories(t *testing.T) {
	s := mcp_internal.NewMCPServer()

	base := t.TempDir()
	for _, dir := range []string{"traj_01", "traj_02"} {
		require.NoError(t, os.Mkdir(filepath.Join(base, dir), 0o755))
		require.NoError(t, os.WriteFile(
			filepath.Join(base, dir, "final_scores.jsonl"),
			[]byte(scoredLine+"\n"), 0o644))
	}
	// traj_03 has no scores file and should show up as skipped
	require.NoError(t, os.Mkdir(filepath.Join(base, "traj_03"), 0o755))

	res, err := callTool(t, s, "aggregate_trajectories", map[string]any{
		"base_path":       base,
		"target_filename": "final_scores.jsonl",
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var payload struct {
		Overall struct {
			RepoName     string `json:"repo_name"`
			TotalRecords int    `json:"total_records"`
			Trajectories []struct {
				Name string `json:"name"`
			} `json:"trajectories"`
		} `json:"overall"`
		Skipped []string `json:"skipped"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &payload))
	assert.Equal(t, "final_scores", payload.Overall.RepoName)
	assert.Equal(t, 2, payload.Overall.TotalRecords)
	assert.Len(t, payload.Overall.Trajectories, 2)
	assert.Equal(t, []string{"traj_03"}, payload.Skipped)
}

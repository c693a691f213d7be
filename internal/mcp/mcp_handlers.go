package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sweqa/scoreagg/core"
	"github.com/sweqa/scoreagg/internal/contract"
	"github.com/sweqa/scoreagg/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct{}

// trajectoryResponse is the aggregate_trajectories payload: per-trajectory
// stats plus the overall mean-of-means aggregate. Skipped trajectories are
// listed by name so callers can tell partial coverage apart from full.
type trajectoryResponse struct {
	Overall schema.OverallStats `json:"overall"`
	Skipped []string            `json:"skipped,omitempty"`
}

func (h *toolHandler) handleAggregateScores(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scoresFile := request.GetString("scores_file", "")
	if scoresFile == "" {
		return mcp.NewToolResultError("scores_file is required"), nil
	}

	stats, err := core.AggregateFile(scoresFile)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("aggregation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(stats, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleAggregateTrajectories(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	basePath := request.GetString("base_path", "")
	targetFile := request.GetString("target_filename", "")
	if basePath == "" || targetFile == "" {
		return mcp.NewToolResultError("base_path and target_filename are required"), nil
	}
	if filepath.Base(targetFile) != targetFile {
		return mcp.NewToolResultError("target_filename must be a bare filename without path separators"), nil
	}

	trajs, skipped, err := core.CollectTrajectories(basePath, targetFile)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("aggregation failed: %v", err)), nil
	}

	overall := core.BuildOverallStats(contract.FileStem(targetFile), basePath, trajs)
	resp := trajectoryResponse{Overall: overall, Skipped: skipped}

	jsonData, _ := json.MarshalIndent(resp, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

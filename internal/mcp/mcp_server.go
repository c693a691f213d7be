// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Scoreagg MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer() *server.MCPServer {
	s := server.NewMCPServer(
		"Scoreagg Aggregation Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{}

	// --- 1. Tool: aggregate_scores ---
	s.AddTool(mcp.NewTool("aggregate_scores",
		mcp.WithDescription("Compute per-metric mean and standard deviation for one line-delimited JSON scores file."),
		mcp.WithString("scores_file", mcp.Description("Path to the scores file (one JSON record per line)."), mcp.Required()),
	), h.handleAggregateScores)

	// --- 2. Tool: aggregate_trajectories ---
	s.AddTool(mcp.NewTool("aggregate_trajectories",
		mcp.WithDescription("Aggregate scores across traj_* subdirectories and compute the overall mean of trajectory means."),
		mcp.WithString("base_path", mcp.Description("Directory containing traj_* subdirectories."), mcp.Required()),
		mcp.WithString("target_filename", mcp.Description("Scores filename to look for inside each trajectory directory."), mcp.Required()),
	), h.handleAggregateTrajectories)

	return s
}

// StartMCPServer starts the Scoreagg MCP server.
func StartMCPServer(_ context.Context) error {
	s := NewMCPServer()
	return server.ServeStdio(s)
}

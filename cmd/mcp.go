package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sweqa/scoreagg/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Scoreagg MCP server",
	Long: `Launch an MCP server that allows AI agents to aggregate evaluation
scores via standard tools. The server speaks the protocol over stdio, so
no report files are written and nothing else may print to stdout.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx)
	},
}

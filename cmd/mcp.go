package cmd

import (
	"github.com/hotdata/tagtrend/internal/contract"
	"github.com/hotdata/tagtrend/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd starts the MCP server for agent integrations.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Model Context Protocol server on stdio",
	Long: `Expose the ranking and series pipeline as MCP tools (rank_tags,
list_tags, get_tag_series) so agent clients can query the dataset
without shelling out to the CLI.`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := mcp.StartMCPServer(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run MCP server", err)
		}
	},
}

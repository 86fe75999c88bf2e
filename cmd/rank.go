package cmd

import (
	"github.com/hotdata/tagtrend/core"
	"github.com/hotdata/tagtrend/internal/contract"
	"github.com/spf13/cobra"
)

// rankCmd answers the descriptive ranking questions over the dataset.
var rankCmd = &cobra.Command{
	Use:   "rank [input-path]",
	Short: "Rank tags by total posts and by months of recorded data",
	Long: `Aggregate the long table per tag and print two rankings:
total posts per tag, and number of months with an entry per tag.

Both rankings are sorted descending with ties broken by tag name, so
re-running on the same input always yields the same order.

Examples:
  # Rank tags in the default QueryResults.csv
  tagtrend rank

  # Top 5 tags from a specific export as JSON
  tagtrend rank data/QueryResults.csv --limit 5 --output json

  # Rank from a previously imported SQLite store
  tagtrend rank --source sqlite`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRank(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot rank tags", err)
		}
	},
}

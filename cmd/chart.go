package cmd

import (
	"github.com/hotdata/tagtrend/core"
	"github.com/hotdata/tagtrend/internal/contract"
	"github.com/spf13/cobra"
)

// chartCmd renders the multi-line trend chart.
var chartCmd = &cobra.Command{
	Use:   "chart [input-path]",
	Short: "Render a multi-line chart of posts per tag over time",
	Long: `Pivot the long table into a gap-filled wide table and draw one
line per tag on shared axes with a legend.

With --smooth the trailing-mean series is drawn instead of the raw
counts; each line starts after its warm-up window rather than at zero.

Examples:
  # Raw counts with the default y-range
  tagtrend chart QueryResults.csv

  # Smoothed with a 12-month window, rendered as SVG
  tagtrend chart QueryResults.csv --smooth --window 12 --chart-file trend.svg

  # Let the y-axis scale to the data
  tagtrend chart QueryResults.csv --ymax 0`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteChart(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot render chart", err)
		}
	},
}

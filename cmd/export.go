package cmd

import (
	"github.com/hotdata/tagtrend/core"
	"github.com/hotdata/tagtrend/internal/contract"
	"github.com/spf13/cobra"
)

// exportCmd writes the derived tables for downstream tooling.
var exportCmd = &cobra.Command{
	Use:   "export [input-path]",
	Short: "Export the gap-filled wide table or the rolling series",
	Long: `Pivot the long table and write the result in a machine-readable
format. Every tag has a value for every period; months without a
record are explicit zeros in the wide table and nulls inside the
rolling warm-up region.

Examples:
  # Wide table as CSV on stdout
  tagtrend export QueryResults.csv --output csv

  # Rolling series as parquet
  tagtrend export QueryResults.csv --kind rolling --output parquet --output-file roll.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot export table", err)
		}
	},
}

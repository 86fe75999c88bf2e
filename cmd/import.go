package cmd

import (
	"github.com/hotdata/tagtrend/core"
	"github.com/hotdata/tagtrend/internal/contract"
	"github.com/spf13/cobra"
)

// importCmd copies a CSV export into a SQL backend.
var importCmd = &cobra.Command{
	Use:   "import [input-path]",
	Short: "Import a CSV export into a SQL backend",
	Long: `Load a CSV export, create the tag_posts schema if needed and
upsert every record, so later runs can use --source sqlite/mysql/postgresql
instead of re-reading the file.

Examples:
  # Into the default local SQLite store
  tagtrend import QueryResults.csv --source sqlite

  # Into PostgreSQL
  tagtrend import QueryResults.csv --source postgresql \
    --db-connect "host=localhost port=5432 user=postgres dbname=tagtrend"`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteImport(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot import records", err)
		}
	},
}

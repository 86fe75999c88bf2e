package cmd

import (
	"github.com/hotdata/tagtrend/internal/contract"
	"github.com/hotdata/tagtrend/internal/loader"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// migrateCmd manages the tag_posts store schema.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run schema migrations for the tag_posts store",
	Long: `Apply (or roll back) the tag_posts schema on the configured SQL
backend. The import command runs the latest migrations implicitly;
this command exists for explicit version control.

Examples:
  # Migrate the local SQLite store to the latest version
  tagtrend migrate --source sqlite

  # Roll everything back
  tagtrend migrate --source sqlite --target-version 0`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := loader.Migrate(cfg.Source, cfg.DBConnect, targetVersion); err != nil {
			contract.LogFatal("Cannot run migrations", err)
		}
	},
}

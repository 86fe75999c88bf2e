// Package cmd defines the command-line interface for tagtrend.
package cmd

import (
	"github.com/hotdata/tagtrend/internal/contract"
	"github.com/hotdata/tagtrend/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("source", string(schema.CSVSource), "Record source: csv or sqlite or mysql or postgresql")
	rootCmd.PersistentFlags().String("db-connect", "", "Database connection string for sqlite/mysql/postgresql sources")
	rootCmd.PersistentFlags().IntP("window", "w", contract.DefaultWindow, "Trailing-mean window size in periods")
	rootCmd.PersistentFlags().Float64("ymax", contract.DefaultYMax, "Upper y-axis bound for charts (0 = auto-scale)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of tags to display in rankings")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of chartCmd to Viper
	chartCmd.Flags().Bool("smooth", false, "Plot the trailing-mean series instead of the raw counts")
	chartCmd.Flags().String("chart-file", "tagtrend.png", "Path for the rendered chart (.png or .svg)")
	chartCmd.Flags().Int("chart-width", contract.DefaultChartWidth, "Chart width in pixels")
	chartCmd.Flags().Int("chart-height", contract.DefaultChartHeight, "Chart height in pixels")
	if err := viper.BindPFlags(chartCmd.Flags()); err != nil {
		contract.LogFatal("Error binding chart flags", err)
	}

	// Bind all flags of exportCmd to Viper
	exportCmd.Flags().String("kind", string(schema.WideKind), "Which table to export: wide or rolling")
	if err := viper.BindPFlags(exportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding export flags", err)
	}

	// Bind all flags of rankCmd to Viper
	rankCmd.Flags().String("metric", string(schema.PostsMetric), "Primary rank metric: posts or months")
	if err := viper.BindPFlags(rankCmd.Flags()); err != nil {
		contract.LogFatal("Error binding rank flags", err)
	}

	// Bind all flags of migrateCmd to Viper
	migrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(migrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding migrate flags", err)
	}
}

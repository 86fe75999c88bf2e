// Package contract holds configuration, shared interfaces and typed
// errors used across the tagtrend pipeline.
package contract

import (
	"fmt"
	"strings"

	"github.com/hotdata/tagtrend/schema"
)

// Default values for configuration.
const (
	DefaultInputPath   = "QueryResults.csv"
	DefaultWindow      = 6
	DefaultYMax        = 35000.0
	DefaultChartWidth  = 1600
	DefaultChartHeight = 1000
	DefaultResultLimit = 20
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
)

// Config holds the validated runtime configuration for a run.
// Simple fields are copied straight from the raw input; fields that
// need parsing or cross-validation are set by ProcessAndValidate.
type Config struct {
	InputPath   string               // Path to the CSV export (positional arg)
	Source      schema.SourceBackend // Where records come from: csv, sqlite, mysql, postgresql
	DBConnect   string               // Connection string for SQL sources
	Window      int                  // Trailing-mean window size in periods
	Smooth      bool                 // Whether chart/export use the rolling series
	YMax        float64              // Upper y-axis bound for charts (0 = auto-scale)
	ChartWidth  int                  // Chart width in pixels
	ChartHeight int                  // Chart height in pixels
	ChartFile   string               // Output path for the rendered chart
	Output      schema.OutputMode    // Output format: text, csv, json, parquet
	OutputFile  string               // Optional path to write output to (stdout if empty)
	Kind        schema.SeriesKind    // Which table export targets: wide or rolling
	Metric      schema.RankMetric    // Primary rank metric: posts or months
	ResultLimit int                  // Maximum number of tags to show in rankings
	Precision   int                  // Decimal precision for numeric columns
	Width       int                  // Terminal width override (0 = auto-detect)
	Color       bool                 // Whether to colorize table output
}

// Clone returns a shallow copy of the configuration so request-scoped
// overrides (e.g. from MCP tool calls) never mutate the base config.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ConfigRawInput holds the raw values resolved by Viper from defaults,
// config file, environment and flags, before validation.
type ConfigRawInput struct {
	InputPathStr string  `mapstructure:"input"`
	Source       string  `mapstructure:"source"`
	DBConnect    string  `mapstructure:"db-connect"`
	Window       int     `mapstructure:"window"`
	Smooth       bool    `mapstructure:"smooth"`
	YMax         float64 `mapstructure:"ymax"`
	ChartWidth   int     `mapstructure:"chart-width"`
	ChartHeight  int     `mapstructure:"chart-height"`
	ChartFile    string  `mapstructure:"chart-file"`
	Output       string  `mapstructure:"output"`
	OutputFile   string  `mapstructure:"output-file"`
	Kind         string  `mapstructure:"kind"`
	Metric       string  `mapstructure:"metric"`
	ResultLimit  int     `mapstructure:"limit"`
	Precision    int     `mapstructure:"precision"`
	Width        int     `mapstructure:"width"`
	Color        string  `mapstructure:"color"`
}

// ProcessAndValidate performs all parsing and validation on the raw
// inputs and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. ResultLimit Validation ---
	if input.ResultLimit <= 0 || input.ResultLimit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.ResultLimit)
	}
	cfg.ResultLimit = input.ResultLimit

	// --- 2. Window Validation ---
	// Only the lower bound is checked here; the upper bound depends on
	// the loaded data and is enforced by the smoother.
	if input.Window <= 0 {
		return fmt.Errorf("window must be greater than 0 (received %d)", input.Window)
	}
	cfg.Window = input.Window
	cfg.Smooth = input.Smooth

	// --- 3. Source Validation ---
	cfg.Source = schema.SourceBackend(strings.ToLower(input.Source))
	if _, ok := schema.ValidSourceBackends[cfg.Source]; !ok {
		return fmt.Errorf("invalid source '%s'. must be csv, sqlite, mysql, postgresql", input.Source)
	}
	cfg.DBConnect = input.DBConnect
	if cfg.Source == schema.MySQLSource || cfg.Source == schema.PostgreSQLSource {
		if cfg.DBConnect == "" {
			return fmt.Errorf("source '%s' requires --db-connect", cfg.Source)
		}
	}

	// --- 4. Precision and Output Validation ---
	if input.Precision < 0 || input.Precision > 2 {
		return fmt.Errorf("precision must be between 0 and 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	// --- 5. Kind and Metric Validation ---
	cfg.Kind = schema.SeriesKind(strings.ToLower(input.Kind))
	if _, ok := schema.ValidSeriesKinds[cfg.Kind]; !ok {
		return fmt.Errorf("invalid kind '%s'. must be wide or rolling", input.Kind)
	}
	cfg.Metric = schema.RankMetric(strings.ToLower(input.Metric))
	if _, ok := schema.ValidRankMetrics[cfg.Metric]; !ok {
		return fmt.Errorf("invalid metric '%s'. must be posts or months", input.Metric)
	}

	// --- 6. Chart Geometry Validation ---
	if input.YMax < 0 {
		return fmt.Errorf("ymax cannot be negative (received %v)", input.YMax)
	}
	cfg.YMax = input.YMax
	if input.ChartWidth <= 0 || input.ChartHeight <= 0 {
		return fmt.Errorf("chart dimensions must be positive (received %dx%d)", input.ChartWidth, input.ChartHeight)
	}
	cfg.ChartWidth = input.ChartWidth
	cfg.ChartHeight = input.ChartHeight
	cfg.ChartFile = input.ChartFile

	// --- 7. Remaining Fields ---
	cfg.InputPath = input.InputPathStr
	if cfg.InputPath == "" {
		cfg.InputPath = DefaultInputPath
	}
	cfg.Width = input.Width
	cfg.Color = parseBoolish(input.Color)

	return nil
}

// parseBoolish accepts the yes/no/true/false/1/0 spellings used by the
// color flag.
func parseBoolish(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on", "":
		return true
	default:
		return false
	}
}

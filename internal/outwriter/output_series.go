package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/hotdata/tagtrend/internal/contract"
	"github.com/hotdata/tagtrend/internal/parquet"
	"github.com/hotdata/tagtrend/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteWideTable outputs the gap-filled wide table, dispatching based
// on the output format configured.
func WriteWideTable(wide *schema.WideTable, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONSeries(w, wide)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVWideTable(csvWriter, wide)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteWideTableParquet(wide, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Fprintf(tableStatusWriter(), "💾 Wrote parquet to %s\n", cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWideTableText(wide, cfg, duration, w)
		}, "Wrote table")
	}
	return nil
}

// WriteRollingSeries outputs the trailing-mean series, dispatching
// based on the output format configured. Warm-up cells render as empty
// values, never as zero.
func WriteRollingSeries(roll *schema.RollingSeries, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONSeries(w, roll)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVRollingSeries(csvWriter, roll, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteRollingSeriesParquet(roll, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Fprintf(tableStatusWriter(), "💾 Wrote parquet to %s\n", cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRollingSeriesText(roll, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeWideTableText prints the wide table with one column per tag,
// truncated to the terminal width.
func writeWideTableText(wide *schema.WideTable, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	shown := visibleTags(wide.Tags, cfg)

	table := tablewriter.NewWriter(writer)
	table.Header(append([]string{"Period"}, shown...))
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for pi, p := range wide.Periods {
		row := []string{p.Format(schema.PeriodFormat)}
		for ti := range shown {
			row = append(row, strconv.FormatInt(wide.Cells[pi][ti], 10))
		}
		data = append(data, row)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if hidden := len(wide.Tags) - len(shown); hidden > 0 {
		fmt.Fprintf(writer, "(%d more tags hidden; use csv/json/parquet output for the full table)\n", hidden)
	}
	fmt.Fprintf(writer, "Reshaped %d periods x %d tags in %v.\n", len(wide.Periods), len(wide.Tags), duration)
	return nil
}

// writeRollingSeriesText prints the rolling series; warm-up cells show
// as blanks.
func writeRollingSeriesText(roll *schema.RollingSeries, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	shown := visibleTags(roll.Tags, cfg)

	table := tablewriter.NewWriter(writer)
	table.Header(append([]string{"Period"}, shown...))
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for pi, p := range roll.Periods {
		row := []string{p.Format(schema.PeriodFormat)}
		for ti := range shown {
			if v := roll.Cells[pi][ti]; v != nil {
				row = append(row, fmtFloat(*v))
			} else {
				row = append(row, "")
			}
		}
		data = append(data, row)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if hidden := len(roll.Tags) - len(shown); hidden > 0 {
		fmt.Fprintf(writer, "(%d more tags hidden; use csv/json/parquet output for the full table)\n", hidden)
	}
	fmt.Fprintf(writer, "Smoothed with window %d in %v.\n", roll.Window, duration)
	return nil
}

// visibleTags limits tag columns for terminal output.
func visibleTags(tags []string, cfg *contract.Config) []string {
	limit := maxTableTagColumns(cfg)
	if len(tags) > limit {
		return tags[:limit]
	}
	return tags
}

package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/hotdata/tagtrend/internal/contract"
	"github.com/hotdata/tagtrend/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteRankResults outputs both ranking views, dispatching based on
// the output format configured.
func WriteRankResults(result schema.RankResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONRankResults(w, result)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVRankResults(csvWriter, result)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for rankings. Use csv or json")
	default:
		// Default to human-readable tables
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankTables(result, cfg, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeRankTables prints the totals and coverage rankings as two
// tables.
func writeRankTables(result schema.RankResult, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	fmt.Fprintln(writer, "Total posts per tag:")
	if err := renderRankTable(writer, cfg, "Posts", len(result.Totals), func(i int) (string, string) {
		return result.Totals[i].Tag, strconv.FormatInt(result.Totals[i].Posts, 10)
	}); err != nil {
		return err
	}

	fmt.Fprintln(writer, "\nMonths of data per tag:")
	if err := renderRankTable(writer, cfg, "Months", len(result.Coverage), func(i int) (string, string) {
		return result.Coverage[i].Tag, strconv.Itoa(result.Coverage[i].Months)
	}); err != nil {
		return err
	}

	fmt.Fprintf(writer, "\nRanking completed in %v.\n", duration)
	return nil
}

// renderRankTable renders one three-column ranking table. With colors
// enabled the leader is green and the rest of the top three yellow.
func renderRankTable(writer io.Writer, cfg *contract.Config, valueHeader string, n int, row func(int) (string, string)) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Tag", valueHeader})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var green, yellow func(...any) string
	if cfg.Color {
		green = color.New(color.FgGreen).SprintFunc()
		yellow = color.New(color.FgYellow).SprintFunc()
	} else {
		green = fmt.Sprint
		yellow = fmt.Sprint
	}

	var data [][]string
	for i := 0; i < n; i++ {
		tag, value := row(i)
		switch {
		case i == 0:
			tag = green(tag)
		case i < 3:
			tag = yellow(tag)
		}
		data = append(data, []string{strconv.Itoa(i + 1), tag, value})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

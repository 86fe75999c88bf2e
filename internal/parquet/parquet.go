// Package parquet provides data structures and functions for exporting
// tag time-series data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/hotdata/tagtrend/schema"
	"github.com/parquet-go/parquet-go"
)

// WideCell is one gap-filled observation in long form: every (period,
// tag) pair in the table's universe appears exactly once.
type WideCell struct {
	// Period is the calendar month of the observation (TIMESTAMP with nanosecond precision)
	Period time.Time `parquet:"period,snappy"`

	// Tag is the programming-language tag being tracked
	Tag string `parquet:"tag,snappy"`

	// Posts is the gap-filled post count (0 where no record existed)
	Posts int64 `parquet:"posts,snappy"`
}

// RollingCell is one trailing-mean observation in long form. Mean is
// nil inside the warm-up region of the window.
type RollingCell struct {
	// Period is the calendar month of the observation
	Period time.Time `parquet:"period,snappy"`

	// Tag is the programming-language tag being tracked
	Tag string `parquet:"tag,snappy"`

	// Window is the trailing-mean window size in periods
	Window int32 `parquet:"window,snappy"`

	// Mean is the trailing mean, nullable during the warm-up region
	Mean *float64 `parquet:"mean,optional,snappy"`
}

// WriteWideTableParquet writes the wide table to a Parquet file in
// long form.
func WriteWideTableParquet(wide *schema.WideTable, outputPath string) error {
	rows := make([]WideCell, 0, len(wide.Periods)*len(wide.Tags))
	for pi, p := range wide.Periods {
		for ti, t := range wide.Tags {
			rows = append(rows, WideCell{Period: p, Tag: t, Posts: wide.Cells[pi][ti]})
		}
	}
	return writeParquet(rows, outputPath)
}

// WriteRollingSeriesParquet writes the rolling series to a Parquet
// file in long form.
func WriteRollingSeriesParquet(roll *schema.RollingSeries, outputPath string) error {
	rows := make([]RollingCell, 0, len(roll.Periods)*len(roll.Tags))
	for pi, p := range roll.Periods {
		for ti, t := range roll.Tags {
			rows = append(rows, RollingCell{
				Period: p,
				Tag:    t,
				Window: int32(roll.Window),
				Mean:   roll.Cells[pi][ti],
			})
		}
	}
	return writeParquet(rows, outputPath)
}

// writeParquet writes rows to a Parquet file using struct schema
// inference from the row type's tags.
func writeParquet[T any](rows []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

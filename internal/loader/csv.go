// Package loader reads (period, tag, count) records from tabular
// sources: CSV exports and SQL backends.
package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hotdata/tagtrend/internal/contract"
	"github.com/hotdata/tagtrend/schema"
)

// Accepted textual representations for the period column. Only the
// date portion is significant; time-of-day is discarded.
var periodLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// CSVFileSource loads records from a headered CSV export, e.g. the
// StackExchange data explorer query results.
type CSVFileSource struct {
	Path string
}

var _ contract.RecordSource = (*CSVFileSource)(nil) // Compile-time check

// NewCSVFileSource creates a record source backed by a CSV file.
func NewCSVFileSource(path string) *CSVFileSource {
	return &CSVFileSource{Path: path}
}

// Load reads and parses the whole file.
func (s *CSVFileSource) Load(_ context.Context) ([]schema.Record, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input %q: %w", s.Path, err)
	}
	defer func() { _ = f.Close() }()

	return ReadRecords(f)
}

// ReadRecords parses CSV content into the long table. The header row
// is skipped; the first three columns are assigned the semantic names
// (period, tag, count) regardless of how the source names them.
func ReadRecords(r io.Reader) ([]schema.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // short rows are reported as MalformedInput, not csv errors
	cr.TrimLeadingSpace = true

	var records []schema.Record
	line := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &contract.MalformedInputError{Line: line, Reason: "unreadable row", Err: err}
		}
		if line == 1 {
			continue // header row
		}
		rec, err := parseRow(row, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, contract.ErrEmptyInput
	}
	return records, nil
}

// parseRow converts one CSV row into a Record.
func parseRow(row []string, line int) (schema.Record, error) {
	if len(row) < 3 {
		return schema.Record{}, &contract.MalformedInputError{
			Line:   line,
			Reason: fmt.Sprintf("expected 3 fields, got %d", len(row)),
		}
	}

	period, err := ParsePeriod(row[0])
	if err != nil {
		return schema.Record{}, &contract.MalformedInputError{Line: line, Reason: "unparseable period", Err: err}
	}

	tag := strings.TrimSpace(row[1])
	if tag == "" {
		return schema.Record{}, &contract.MalformedInputError{Line: line, Reason: "empty tag"}
	}

	count, err := strconv.ParseInt(strings.TrimSpace(row[2]), 10, 64)
	if err != nil {
		return schema.Record{}, &contract.MalformedInputError{Line: line, Reason: "unparseable count", Err: err}
	}
	if count < 0 {
		return schema.Record{}, &contract.MalformedInputError{
			Line:   line,
			Reason: fmt.Sprintf("negative count %d", count),
		}
	}

	return schema.Record{Period: period, Tag: tag, Count: count}, nil
}

// ParsePeriod parses the textual period representation and normalizes
// it to midnight UTC.
func ParsePeriod(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range periodLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return schema.NormalizePeriod(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format %q", s)
}

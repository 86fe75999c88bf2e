package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/hotdata/tagtrend/schema"
)

// writeJSONSeries marshals a wide table or rolling series to JSON and
// writes it. Rolling warm-up cells serialize as null.
func writeJSONSeries(w io.Writer, series any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(series)
}

// writeCSVWideTable writes the wide table with one column per tag.
func writeCSVWideTable(w *csv.Writer, wide *schema.WideTable) error {
	header := append([]string{"period"}, wide.Tags...)
	if err := w.Write(header); err != nil {
		return err
	}

	for pi, p := range wide.Periods {
		row := make([]string, 0, len(wide.Tags)+1)
		row = append(row, p.Format(schema.PeriodFormat))
		for ti := range wide.Tags {
			row = append(row, strconv.FormatInt(wide.Cells[pi][ti], 10))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// writeCSVRollingSeries writes the rolling series with one column per
// tag; warm-up cells are written as empty fields.
func writeCSVRollingSeries(w *csv.Writer, roll *schema.RollingSeries, fmtFloat func(float64) string) error {
	header := append([]string{"period"}, roll.Tags...)
	if err := w.Write(header); err != nil {
		return err
	}

	for pi, p := range roll.Periods {
		row := make([]string, 0, len(roll.Tags)+1)
		row = append(row, p.Format(schema.PeriodFormat))
		for ti := range roll.Tags {
			if v := roll.Cells[pi][ti]; v != nil {
				row = append(row, fmtFloat(*v))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

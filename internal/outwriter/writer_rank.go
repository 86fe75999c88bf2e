package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/hotdata/tagtrend/schema"
)

// writeJSONRankResults marshals the schema.RankResult to JSON and
// writes it.
func writeJSONRankResults(w io.Writer, result schema.RankResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeCSVRankResults writes both rankings to a CSV writer in long
// form: one row per (metric, rank, tag, value).
func writeCSVRankResults(w *csv.Writer, result schema.RankResult) error {
	header := []string{"metric", "rank", "tag", "value"}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, t := range result.Totals {
		row := []string{string(schema.PostsMetric), strconv.Itoa(i + 1), t.Tag, strconv.FormatInt(t.Posts, 10)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	for i, c := range result.Coverage {
		row := []string{string(schema.MonthsMetric), strconv.Itoa(i + 1), c.Tag, strconv.Itoa(c.Months)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

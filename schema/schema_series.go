package schema

import "time"

// WideTable is the pivoted, fully gap-filled form of the long table:
// one row per distinct period (sorted ascending), one column per
// distinct tag (sorted ascending). Every cell is defined; a (period,
// tag) pair with no source record holds an explicit zero.
type WideTable struct {
	Periods []time.Time `json:"periods"`
	Tags    []string    `json:"tags"`
	Cells   [][]int64   `json:"cells"` // Cells[periodIdx][tagIdx]
}

// TagIndex returns the column index for tag, or -1 if absent.
func (w *WideTable) TagIndex(tag string) int {
	for i, t := range w.Tags {
		if t == tag {
			return i
		}
	}
	return -1
}

// Value returns the count for (period, tag). The boolean reports
// whether the pair is part of the table's universe at all.
func (w *WideTable) Value(period time.Time, tag string) (int64, bool) {
	ti := w.TagIndex(tag)
	if ti < 0 {
		return 0, false
	}
	for pi, p := range w.Periods {
		if p.Equal(period) {
			return w.Cells[pi][ti], true
		}
	}
	return 0, false
}

// Series returns a copy of one tag's column, ordered by period.
func (w *WideTable) Series(tag string) []int64 {
	ti := w.TagIndex(tag)
	if ti < 0 {
		return nil
	}
	out := make([]int64, len(w.Periods))
	for pi := range w.Periods {
		out[pi] = w.Cells[pi][ti]
	}
	return out
}

// RollingSeries is the trailing-mean view of a WideTable, keyed by the
// same period and tag universe. A nil cell means "no value": the
// warm-up region covering the first Window-1 periods, where a zero
// would be indistinguishable from a real low count.
type RollingSeries struct {
	Window  int          `json:"window"`
	Periods []time.Time  `json:"periods"`
	Tags    []string     `json:"tags"`
	Cells   [][]*float64 `json:"cells"` // Cells[periodIdx][tagIdx], nil = no value
}

// Series returns one tag's column, ordered by period. Leading nil
// entries mark the warm-up region and must be skipped by renderers.
func (r *RollingSeries) Series(tag string) []*float64 {
	ti := -1
	for i, t := range r.Tags {
		if t == tag {
			ti = i
			break
		}
	}
	if ti < 0 {
		return nil
	}
	out := make([]*float64, len(r.Periods))
	for pi := range r.Periods {
		out[pi] = r.Cells[pi][ti]
	}
	return out
}

// Package smooth derives trailing-mean series from the wide table.
package smooth

import (
	"github.com/hotdata/tagtrend/internal/contract"
	"github.com/hotdata/tagtrend/schema"
)

// Rolling computes the trailing mean over the last window values of
// each tag's series, producing a rolling series over the same period
// and tag universe as the wide table. The first window-1 cells of each
// series are nil — an explicit "no value", never zero, so the warm-up
// region cannot be mistaken for a real low count.
//
// A window that is not positive, or larger than the number of periods
// (which would make the result all-placeholder), fails with
// InvalidWindowError.
func Rolling(w *schema.WideTable, window int) (*schema.RollingSeries, error) {
	if window <= 0 || window > len(w.Periods) {
		return nil, &contract.InvalidWindowError{Window: window, Periods: len(w.Periods)}
	}

	cells := make([][]*float64, len(w.Periods))
	for pi := range w.Periods {
		cells[pi] = make([]*float64, len(w.Tags))
	}

	for ti := range w.Tags {
		var sum int64
		for pi := range w.Periods {
			sum += w.Cells[pi][ti]
			if pi >= window {
				sum -= w.Cells[pi-window][ti]
			}
			if pi >= window-1 {
				mean := float64(sum) / float64(window)
				cells[pi][ti] = &mean
			}
		}
	}

	return &schema.RollingSeries{
		Window:  window,
		Periods: w.Periods,
		Tags:    w.Tags,
		Cells:   cells,
	}, nil
}

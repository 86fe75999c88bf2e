// Package reshape pivots the long record table into the gap-filled
// wide table that the chart and export paths consume.
package reshape

import (
	"sort"
	"time"

	"github.com/hotdata/tagtrend/internal/contract"
	"github.com/hotdata/tagtrend/schema"
)

// Pivot turns the long table into a wide table: one row per distinct
// period (ascending), one column per distinct tag (ascending). Every
// (period, tag) cell in the cartesian grid is defined; pairs with no
// source record are materialized as zero. This is what makes every
// per-tag series the same length, which the shared-axis chart relies on.
//
// A duplicate (period, tag) pair with a conflicting count fails with
// DuplicateKeyError. An identical duplicate is accepted as idempotent.
func Pivot(records []schema.Record) (*schema.WideTable, error) {
	if len(records) == 0 {
		return nil, contract.ErrEmptyInput
	}

	// (a) universe of periods and tags, (c) lookup of recorded cells.
	// Absence from the lookup is the "missing" state until gap-fill.
	lookup := make(map[time.Time]map[string]int64)
	tagSet := make(map[string]struct{})
	for _, r := range records {
		tagSet[r.Tag] = struct{}{}
		byTag := lookup[r.Period]
		if byTag == nil {
			byTag = make(map[string]int64)
			lookup[r.Period] = byTag
		}
		if prev, ok := byTag[r.Tag]; ok {
			if prev != r.Count {
				return nil, &contract.DuplicateKeyError{
					Period:      r.Period,
					Tag:         r.Tag,
					Existing:    prev,
					Conflicting: r.Count,
				}
			}
			continue
		}
		byTag[r.Tag] = r.Count
	}

	periods := make([]time.Time, 0, len(lookup))
	for p := range lookup {
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].Before(periods[j]) })

	tags := make([]string, 0, len(tagSet))
	for t := range tagSet {
		tags = append(tags, t)
	}
	sort.Strings(tags)

	// (b) full cartesian grid, (d) missing cells become explicit zeros.
	cells := make([][]int64, len(periods))
	for pi, p := range periods {
		row := make([]int64, len(tags))
		for ti, t := range tags {
			if count, ok := lookup[p][t]; ok {
				row[ti] = count
			}
		}
		cells[pi] = row
	}

	return &schema.WideTable{Periods: periods, Tags: tags, Cells: cells}, nil
}

// Package agg has aggregation logic for tag activity data.
package agg

import (
	"sort"
	"time"

	"github.com/hotdata/tagtrend/schema"
)

// Totals sums all counts per tag. The result is ordered descending by
// total, with ties broken by tag name ascending so that re-running the
// aggregation on the same input always yields the same order.
func Totals(records []schema.Record) []schema.TagTotal {
	sums := make(map[string]int64)
	for _, r := range records {
		sums[r.Tag] += r.Count
	}

	out := make([]schema.TagTotal, 0, len(sums))
	for tag, posts := range sums {
		out = append(out, schema.TagTotal{Tag: tag, Posts: posts})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Posts != out[j].Posts {
			return out[i].Posts > out[j].Posts
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}

// Coverage counts the distinct periods with a recorded observation per
// tag. Ordering follows the same rule as Totals: descending by count,
// ties broken by tag name ascending.
func Coverage(records []schema.Record) []schema.TagCoverage {
	periods := make(map[string]map[time.Time]struct{})
	for _, r := range records {
		if periods[r.Tag] == nil {
			periods[r.Tag] = make(map[time.Time]struct{})
		}
		periods[r.Tag][r.Period] = struct{}{}
	}

	out := make([]schema.TagCoverage, 0, len(periods))
	for tag, seen := range periods {
		out = append(out, schema.TagCoverage{Tag: tag, Months: len(seen)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Months != out[j].Months {
			return out[i].Months > out[j].Months
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}

// Limit truncates a ranking to the top n entries. If n is greater than
// the number of entries, the full ranking is returned.
func Limit[T any](ranked []T, n int) []T {
	if len(ranked) > n {
		return ranked[:n]
	}
	return ranked
}

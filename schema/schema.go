// Package schema holds the data model shared by all pipeline stages.
package schema

import "time"

// PeriodFormat is how calendar-month periods are rendered in output.
const PeriodFormat = "2006-01-02"

// Record is one observation: posts tagged with Tag during the calendar
// month identified by Period. Records are immutable once loaded.
type Record struct {
	Period time.Time `json:"period"` // normalized to midnight UTC
	Tag    string    `json:"tag"`
	Count  int64     `json:"count"`
}

// TagTotal is the all-time post count for a single tag.
type TagTotal struct {
	Tag   string `json:"tag"`
	Posts int64  `json:"posts"`
}

// TagCoverage is the number of distinct periods with a recorded
// observation for a single tag.
type TagCoverage struct {
	Tag    string `json:"tag"`
	Months int    `json:"months"`
}

// RankResult bundles both ranking views of the long table.
type RankResult struct {
	Totals   []TagTotal    `json:"totals"`
	Coverage []TagCoverage `json:"coverage"`
}

// NormalizePeriod discards the time-of-day component so that two
// timestamps on the same calendar day compare equal for grouping.
func NormalizePeriod(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

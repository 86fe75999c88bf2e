package contract

import (
	"errors"
	"fmt"
	"time"
)

// ErrEmptyInput indicates that zero records were loaded. Every
// downstream stage fails fast on it instead of producing empty output.
var ErrEmptyInput = errors.New("no records loaded")

// MalformedInputError indicates a source row that is missing required
// fields or carries an unparseable value. It aborts the whole run.
type MalformedInputError struct {
	Line   int    // 1-based row number in the source, including the header
	Reason string // which field failed and why
	Err    error  // underlying parse error, if any
}

func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed input at row %d: %s: %v", e.Line, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed input at row %d: %s", e.Line, e.Reason)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// DuplicateKeyError indicates that the long table contains two records
// for the same (period, tag) pair with conflicting counts. Duplicates
// are never summed or overwritten; that would mask a data-quality
// problem upstream.
type DuplicateKeyError struct {
	Period      time.Time
	Tag         string
	Existing    int64
	Conflicting int64
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key (%s, %q): conflicting counts %d and %d",
		e.Period.Format("2006-01-02"), e.Tag, e.Existing, e.Conflicting)
}

// InvalidWindowError indicates a smoothing window that is not positive
// or exceeds the number of periods in the table. It aborts smoothing
// only; the unsmoothed wide table remains usable.
type InvalidWindowError struct {
	Window  int
	Periods int
}

func (e *InvalidWindowError) Error() string {
	return fmt.Sprintf("invalid window %d for %d periods: must be between 1 and the period count",
		e.Window, e.Periods)
}

package reshape

import (
	"errors"
	"testing"
	"time"

	"github.com/hotdata/tagtrend/internal/contract"
	"github.com/hotdata/tagtrend/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
}

// TestPivot covers the gap-fill invariant with the canonical two-month
// example: java has both months, python only the first.
func TestPivot(t *testing.T) {
	records := []schema.Record{
		{Period: month(2020, time.January), Tag: "java", Count: 100},
		{Period: month(2020, time.February), Tag: "java", Count: 150},
		{Period: month(2020, time.January), Tag: "python", Count: 80},
	}

	wide, err := Pivot(records)
	require.NoError(t, err)

	t.Run("universe", func(t *testing.T) {
		assert.Equal(t, []time.Time{month(2020, time.January), month(2020, time.February)}, wide.Periods)
		assert.Equal(t, []string{"java", "python"}, wide.Tags)
	})

	t.Run("recorded cells", func(t *testing.T) {
		v, ok := wide.Value(month(2020, time.January), "java")
		assert.True(t, ok)
		assert.Equal(t, int64(100), v)

		v, ok = wide.Value(month(2020, time.February), "java")
		assert.True(t, ok)
		assert.Equal(t, int64(150), v)
	})

	t.Run("gap-fill materializes zero", func(t *testing.T) {
		v, ok := wide.Value(month(2020, time.February), "python")
		assert.True(t, ok, "the missing pair must exist in the grid")
		assert.Equal(t, int64(0), v)
	})

	t.Run("every cell defined", func(t *testing.T) {
		assert.Len(t, wide.Cells, len(wide.Periods))
		for _, row := range wide.Cells {
			assert.Len(t, row, len(wide.Tags))
		}
	})
}

// TestPivotOrdering verifies that output periods are sorted ascending
// regardless of input order, and tags alphabetically.
func TestPivotOrdering(t *testing.T) {
	records := []schema.Record{
		{Period: month(2021, time.March), Tag: "ruby", Count: 3},
		{Period: month(2020, time.December), Tag: "c", Count: 1},
		{Period: month(2021, time.January), Tag: "python", Count: 2},
	}

	wide, err := Pivot(records)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		month(2020, time.December),
		month(2021, time.January),
		month(2021, time.March),
	}, wide.Periods)
	assert.Equal(t, []string{"c", "python", "ruby"}, wide.Tags)
}

// TestPivotIdempotence checks that reshaping the same long table twice
// yields identical wide tables.
func TestPivotIdempotence(t *testing.T) {
	records := []schema.Record{
		{Period: month(2020, time.January), Tag: "go", Count: 42},
		{Period: month(2020, time.March), Tag: "java", Count: 7},
	}

	first, err := Pivot(records)
	require.NoError(t, err)
	second, err := Pivot(records)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestPivotDuplicates covers both duplicate flavors: conflicting
// counts are rejected, identical ones are accepted as idempotent.
func TestPivotDuplicates(t *testing.T) {
	t.Run("conflicting counts rejected", func(t *testing.T) {
		records := []schema.Record{
			{Period: month(2020, time.January), Tag: "java", Count: 100},
			{Period: month(2020, time.January), Tag: "java", Count: 200},
		}

		_, err := Pivot(records)
		var dupErr *contract.DuplicateKeyError
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, month(2020, time.January), dupErr.Period)
		assert.Equal(t, "java", dupErr.Tag)
		assert.Equal(t, int64(100), dupErr.Existing)
		assert.Equal(t, int64(200), dupErr.Conflicting)
	})

	t.Run("identical duplicate accepted", func(t *testing.T) {
		records := []schema.Record{
			{Period: month(2020, time.January), Tag: "java", Count: 100},
			{Period: month(2020, time.January), Tag: "java", Count: 100},
		}

		wide, err := Pivot(records)
		require.NoError(t, err)
		v, ok := wide.Value(month(2020, time.January), "java")
		assert.True(t, ok)
		assert.Equal(t, int64(100), v)
	})
}

// TestPivotEmptyInput verifies fail-fast behavior on zero records.
func TestPivotEmptyInput(t *testing.T) {
	_, err := Pivot(nil)
	assert.True(t, errors.Is(err, contract.ErrEmptyInput))
}

package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/hotdata/tagtrend/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seriesFixtures() (*schema.WideTable, *schema.RollingSeries) {
	periods := []time.Time{
		time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, time.February, 1, 0, 0, 0, 0, time.UTC),
	}
	wide := &schema.WideTable{
		Periods: periods,
		Tags:    []string{"java", "python"},
		Cells: [][]int64{
			{10, 100},
			{30, 0},
		},
	}
	mean1, mean2 := 20.0, 50.0
	roll := &schema.RollingSeries{
		Window:  2,
		Periods: periods,
		Tags:    wide.Tags,
		Cells: [][]*float64{
			{nil, nil},
			{&mean1, &mean2},
		},
	}
	return wide, roll
}

// TestWriteCSVWideTable checks the one-column-per-tag layout with
// gap-filled zeros intact.
func TestWriteCSVWideTable(t *testing.T) {
	wide, _ := seriesFixtures()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	require.NoError(t, writeCSVWideTable(w, wide))
	w.Flush()
	require.NoError(t, w.Error())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"period", "java", "python"}, rows[0])
	assert.Equal(t, []string{"2020-01-01", "10", "100"}, rows[1])
	assert.Equal(t, []string{"2020-02-01", "30", "0"}, rows[2])
}

// TestWriteCSVRollingSeries checks that warm-up cells come out as
// empty fields, not zeros.
func TestWriteCSVRollingSeries(t *testing.T) {
	_, roll := seriesFixtures()
	fmtFloat, _ := createFormatters(1)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	require.NoError(t, writeCSVRollingSeries(w, roll, fmtFloat))
	w.Flush()
	require.NoError(t, w.Error())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"period", "java", "python"}, rows[0])
	assert.Equal(t, []string{"2020-01-01", "", ""}, rows[1])
	assert.Equal(t, []string{"2020-02-01", "20.0", "50.0"}, rows[2])
}

// TestWriteJSONSeries verifies warm-up cells serialize as JSON null.
func TestWriteJSONSeries(t *testing.T) {
	_, roll := seriesFixtures()

	var buf bytes.Buffer
	require.NoError(t, writeJSONSeries(&buf, roll))

	var decoded struct {
		Window int          `json:"window"`
		Cells  [][]*float64 `json:"cells"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 2, decoded.Window)
	require.Len(t, decoded.Cells, 2)
	assert.Nil(t, decoded.Cells[0][0])
	require.NotNil(t, decoded.Cells[1][0])
	assert.Equal(t, 20.0, *decoded.Cells[1][0])
}

// Package render draws the multi-line time-series charts.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hotdata/tagtrend/internal/contract"
	"github.com/hotdata/tagtrend/schema"
	chart "github.com/wcharczuk/go-chart/v2"
)

// lineStrokeWidth is emphasized for presentation readability.
const lineStrokeWidth = 3.0

// WriteWideChart renders one line per tag from the gap-filled wide
// table onto a shared-axis chart with a legend.
func WriteWideChart(wide *schema.WideTable, cfg *contract.Config) error {
	series := make([]chart.Series, 0, len(wide.Tags))
	for ti, tag := range wide.Tags {
		ys := make([]float64, len(wide.Periods))
		for pi := range wide.Periods {
			ys[pi] = float64(wide.Cells[pi][ti])
		}
		series = append(series, chart.TimeSeries{
			Name:    tag,
			XValues: wide.Periods,
			YValues: ys,
			Style:   chart.Style{StrokeWidth: lineStrokeWidth},
		})
	}
	return writeChart(series, cfg)
}

// WriteRollingChart renders the trailing-mean series. Each tag's line
// starts at its first defined value; the warm-up region is skipped
// entirely rather than drawn at zero.
func WriteRollingChart(roll *schema.RollingSeries, cfg *contract.Config) error {
	series := make([]chart.Series, 0, len(roll.Tags))
	for ti, tag := range roll.Tags {
		var xs []time.Time
		var ys []float64
		for pi := range roll.Periods {
			if v := roll.Cells[pi][ti]; v != nil {
				xs = append(xs, roll.Periods[pi])
				ys = append(ys, *v)
			}
		}
		if len(xs) == 0 {
			continue
		}
		series = append(series, chart.TimeSeries{
			Name:    tag,
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeWidth: lineStrokeWidth},
		})
	}
	return writeChart(series, cfg)
}

// writeChart assembles the shared chart and renders it to the
// configured file. The renderer is picked from the file extension:
// .svg renders SVG, anything else PNG.
func writeChart(series []chart.Series, cfg *contract.Config) error {
	if len(series) == 0 {
		return contract.ErrEmptyInput
	}

	yAxis := chart.YAxis{Name: "Posts"}
	if cfg.YMax > 0 {
		yAxis.Range = &chart.ContinuousRange{Min: 0, Max: cfg.YMax}
	}

	graph := chart.Chart{
		Width:  cfg.ChartWidth,
		Height: cfg.ChartHeight,
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis:  yAxis,
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	file, err := os.Create(cfg.ChartFile)
	if err != nil {
		return fmt.Errorf("failed to create chart file %q: %w", cfg.ChartFile, err)
	}
	defer func() { _ = file.Close() }()

	provider := chart.PNG
	if strings.ToLower(filepath.Ext(cfg.ChartFile)) == ".svg" {
		provider = chart.SVG
	}
	if err := graph.Render(provider, file); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	fmt.Fprintf(os.Stderr, "📈 Wrote chart to %s\n", cfg.ChartFile)
	return nil
}

// Package core has the pipeline orchestration: load, aggregate,
// reshape, smooth, present.
package core

import (
	"context"
	"time"

	"github.com/hotdata/tagtrend/core/agg"
	"github.com/hotdata/tagtrend/core/reshape"
	"github.com/hotdata/tagtrend/core/smooth"
	"github.com/hotdata/tagtrend/internal/contract"
	"github.com/hotdata/tagtrend/internal/loader"
	"github.com/hotdata/tagtrend/internal/outwriter"
	"github.com/hotdata/tagtrend/internal/render"
	"github.com/hotdata/tagtrend/schema"
)

// loadRecords builds the configured record source and loads the long
// table from it.
func loadRecords(ctx context.Context, cfg *contract.Config) ([]schema.Record, error) {
	if cfg.Source == schema.CSVSource {
		return loader.NewCSVFileSource(cfg.InputPath).Load(ctx)
	}

	src, err := loader.NewSQLRecordSource(cfg.Source, cfg.DBConnect)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()
	return src.Load(ctx)
}

// GetRankResults loads the long table and produces both ranking views,
// truncated to the configured result limit.
func GetRankResults(ctx context.Context, cfg *contract.Config) (schema.RankResult, error) {
	records, err := loadRecords(ctx, cfg)
	if err != nil {
		return schema.RankResult{}, err
	}
	return schema.RankResult{
		Totals:   agg.Limit(agg.Totals(records), cfg.ResultLimit),
		Coverage: agg.Limit(agg.Coverage(records), cfg.ResultLimit),
	}, nil
}

// GetWideTable loads the long table and pivots it into the gap-filled
// wide table.
func GetWideTable(ctx context.Context, cfg *contract.Config) (*schema.WideTable, error) {
	records, err := loadRecords(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return reshape.Pivot(records)
}

// GetRollingSeries loads, pivots and smooths with the configured
// window.
func GetRollingSeries(ctx context.Context, cfg *contract.Config) (*schema.RollingSeries, error) {
	wide, err := GetWideTable(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return smooth.Rolling(wide, cfg.Window)
}

// ExecuteRank runs the ranking report and prints it using the
// configured output format. It serves as the entry point for the
// 'rank' command.
func ExecuteRank(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	result, err := GetRankResults(ctx, cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteRankResults(result, cfg, time.Since(start))
}

// ExecuteChart runs the full pipeline and renders the multi-line
// chart. With smoothing enabled the rolling series is drawn instead of
// the raw wide table; its warm-up cells are skipped, not drawn as zero.
func ExecuteChart(ctx context.Context, cfg *contract.Config) error {
	wide, err := GetWideTable(ctx, cfg)
	if err != nil {
		return err
	}

	if cfg.Smooth {
		roll, err := smooth.Rolling(wide, cfg.Window)
		if err != nil {
			return err
		}
		return render.WriteRollingChart(roll, cfg)
	}
	return render.WriteWideChart(wide, cfg)
}

// ExecuteExport writes the wide table (or the rolling series, when
// kind is rolling) in the configured output format. It serves as the
// entry point for the 'export' command.
func ExecuteExport(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	wide, err := GetWideTable(ctx, cfg)
	if err != nil {
		return err
	}

	if cfg.Kind == schema.RollingKind {
		roll, err := smooth.Rolling(wide, cfg.Window)
		if err != nil {
			return err
		}
		return outwriter.WriteRollingSeries(roll, cfg, time.Since(start))
	}
	return outwriter.WriteWideTable(wide, cfg, time.Since(start))
}

// ExecuteImport copies the CSV input into the configured SQL backend,
// creating the schema first.
func ExecuteImport(ctx context.Context, cfg *contract.Config) error {
	records, err := loader.NewCSVFileSource(cfg.InputPath).Load(ctx)
	if err != nil {
		return err
	}
	if err := loader.Migrate(cfg.Source, cfg.DBConnect, -1); err != nil {
		return err
	}
	return loader.ImportRecords(ctx, cfg.Source, cfg.DBConnect, records)
}

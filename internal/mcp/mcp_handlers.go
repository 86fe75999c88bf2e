package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hotdata/tagtrend/core"
	"github.com/hotdata/tagtrend/internal/contract"
	"github.com/hotdata/tagtrend/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleRankTags(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("input", ""); p != "" {
		cfg.InputPath = p
	}
	if m := request.GetString("metric", ""); m != "" {
		cfg.Metric = schema.RankMetric(m)
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	result, err := core.GetRankResults(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ranking failed: %v", err)), nil
	}

	// The requested metric leads; the other view rides along.
	payload := map[string]any{
		"metric":   cfg.Metric,
		"totals":   result.Totals,
		"coverage": result.Coverage,
	}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListTags(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("input", ""); p != "" {
		cfg.InputPath = p
	}

	wide, err := core.GetWideTable(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("reshape failed: %v", err)), nil
	}

	payload := map[string]any{
		"tags":    wide.Tags,
		"periods": len(wide.Periods),
		"first":   wide.Periods[0].Format(schema.PeriodFormat),
		"last":    wide.Periods[len(wide.Periods)-1].Format(schema.PeriodFormat),
	}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetTagSeries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	tag := request.GetString("tag", "")
	if p := request.GetString("input", ""); p != "" {
		cfg.InputPath = p
	}
	if w := request.GetInt("window", 0); w > 0 {
		cfg.Window = w
	}

	if request.GetBool("smooth", false) {
		roll, err := core.GetRollingSeries(ctx, cfg)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("smoothing failed: %v", err)), nil
		}
		series := roll.Series(tag)
		if series == nil {
			return mcp.NewToolResultError(fmt.Sprintf("unknown tag %q", tag)), nil
		}
		payload := map[string]any{
			"tag":     tag,
			"window":  roll.Window,
			"periods": roll.Periods,
			"values":  series, // nil entries mark the warm-up region
		}
		jsonData, _ := json.MarshalIndent(payload, "", "  ")
		return mcp.NewToolResultText(string(jsonData)), nil
	}

	wide, err := core.GetWideTable(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("reshape failed: %v", err)), nil
	}
	series := wide.Series(tag)
	if series == nil {
		return mcp.NewToolResultError(fmt.Sprintf("unknown tag %q", tag)), nil
	}
	payload := map[string]any{
		"tag":     tag,
		"periods": wide.Periods,
		"values":  series,
	}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

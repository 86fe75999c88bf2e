// Package mcp provides the Model Context Protocol (MCP) server
// implementation.
package mcp

import (
	"context"

	"github.com/hotdata/tagtrend/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the tagtrend MCP server
// without starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Tagtrend Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: rank_tags ---
	s.AddTool(mcp.NewTool("rank_tags",
		mcp.WithDescription("Rank tags by total posts and by months of recorded data."),
		mcp.WithString("input", mcp.Description("Path to the CSV export (defaults to the configured input).")),
		mcp.WithString("metric", mcp.Description("Primary metric (posts or months). Defaults to 'posts'."), mcp.Enum("posts", "months")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of tags returned.")),
	), h.handleRankTags)

	// --- 2. Tool: list_tags ---
	s.AddTool(mcp.NewTool("list_tags",
		mcp.WithDescription("List every tag present in the dataset together with the period range."),
		mcp.WithString("input", mcp.Description("Path to the CSV export.")),
	), h.handleListTags)

	// --- 3. Tool: get_tag_series ---
	s.AddTool(mcp.NewTool("get_tag_series",
		mcp.WithDescription("Return one tag's gap-filled monthly series, optionally smoothed with a trailing mean."),
		mcp.WithString("tag", mcp.Description("The tag to fetch."), mcp.Required()),
		mcp.WithString("input", mcp.Description("Path to the CSV export.")),
		mcp.WithBoolean("smooth", mcp.Description("Apply the trailing-mean smoother.")),
		mcp.WithNumber("window", mcp.Description("Smoothing window size in periods (default 6).")),
	), h.handleGetTagSeries)

	return s
}

// StartMCPServer starts the tagtrend MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}

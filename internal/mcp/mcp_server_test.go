package mcp_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hotdata/tagtrend/internal/contract"
	mcp_internal "github.com/hotdata/tagtrend/internal/mcp"
	"github.com/hotdata/tagtrend/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFixtureCSV writes a small export with a deliberate gap: python
// has no 2008-08 row.
func writeFixtureCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "QueryResults.csv")
	content := "m,TagName,Count\n" +
		"2008-07-01 00:00:00,java,10\n" +
		"2008-07-01 00:00:00,python,5\n" +
		"2008-08-01 00:00:00,java,20\n" +
		"2008-09-01 00:00:00,java,30\n" +
		"2008-09-01 00:00:00,python,15\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func baseConfig(input string) *contract.Config {
	return &contract.Config{
		InputPath:   input,
		Source:      schema.CSVSource,
		Window:      contract.DefaultWindow,
		Metric:      schema.PostsMetric,
		ResultLimit: contract.DefaultResultLimit,
	}
}

func TestMCPServerHandlers(t *testing.T) {
	input := writeFixtureCSV(t)
	s := mcp_internal.NewMCPServer(baseConfig(input))

	ctx := context.Background()

	t.Run("rank_tags", func(t *testing.T) {
		tool := s.GetTool("rank_tags")
		require.NotNil(t, tool, "Tool rank_tags should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "rank_tags",
				Arguments: map[string]any{
					"limit": 1.0,
				},
			},
		}
		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, `"java"`)
		assert.NotContains(t, text, `"python"`, "limit 1 should drop the runner-up")
	})

	t.Run("list_tags", func(t *testing.T) {
		tool := s.GetTool("list_tags")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{Name: "list_tags"},
		}
		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, `"java"`)
		assert.Contains(t, text, `"python"`)
		assert.Contains(t, text, `"first": "2008-07-01"`)
		assert.Contains(t, text, `"last": "2008-09-01"`)
	})

	t.Run("get_tag_series fills gaps with zero", func(t *testing.T) {
		tool := s.GetTool("get_tag_series")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_tag_series",
				Arguments: map[string]any{
					"tag": "python",
				},
			},
		}
		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		text := res.Content[0].(mcp.TextContent).Text
		// python: 5, gap-filled 0, 15
		assert.Contains(t, text, "5,")
		assert.Contains(t, text, "0,")
		assert.Contains(t, text, "15")
	})

	t.Run("get_tag_series smoothed", func(t *testing.T) {
		tool := s.GetTool("get_tag_series")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_tag_series",
				Arguments: map[string]any{
					"tag":    "java",
					"smooth": true,
					"window": 2.0,
				},
			},
		}
		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, `"window": 2`)
		// Warm-up cell serializes as null, trailing means follow
		assert.Contains(t, text, "null")
		assert.Contains(t, text, "15")
		assert.Contains(t, text, "25")
	})

	t.Run("get_tag_series unknown tag", func(t *testing.T) {
		tool := s.GetTool("get_tag_series")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_tag_series",
				Arguments: map[string]any{
					"tag": "cobol",
				},
			},
		}
		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, `unknown tag "cobol"`)
	})

	t.Run("rank_tags missing input file", func(t *testing.T) {
		tool := s.GetTool("rank_tags")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "rank_tags",
				Arguments: map[string]any{
					"input": filepath.Join(t.TempDir(), "absent.csv"),
				},
			},
		}
		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "ranking failed")
	})
}

package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"chunkmill/splitter"
)

// parseConfigsArg decodes the optional "configs" tool argument: a JSON array
// of [chunk_size, overlap] pairs. An empty string means the defaults.
func parseConfigsArg(raw string) ([]splitter.SplitConfig, error) {
	if raw == "" {
		return nil, nil
	}

	var pairs [][]int
	if err := json.Unmarshal([]byte(raw), &pairs); err != nil {
		return nil, fmt.Errorf("configs must be a JSON array of [chunk_size, overlap] pairs: %w", err)
	}

	configs := make([]splitter.SplitConfig, 0, len(pairs))
	for _, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("configs must be [chunk_size, overlap] pairs, got %v", pair)
		}
		configs = append(configs, splitter.SplitConfig{ChunkSize: pair[0], Overlap: pair[1]})
	}
	return configs, nil
}

// RegisterMultiSplitTools registers the split_multi and split_by_size tools
func RegisterMultiSplitTools(mcpServer *server.MCPServer) {
	configsDescription := fmt.Sprintf(
		"Optional JSON array of [chunk_size, overlap] pairs, e.g. [[1000,500],[500,250]]. Defaults to %v when omitted.",
		[][]int{{1000, 500}, {500, 250}},
	)

	splitMultiTool := mcp.NewTool("split_multi",
		mcp.WithDescription("Split a document under several chunk size / overlap configurations at once and return all chunks as one flat list, in configuration order."),
		mcp.WithString("document",
			mcp.Required(),
			mcp.Description("The document content to split"),
		),
		mcp.WithString("configs",
			mcp.Description(configsDescription),
		),
	)
	mcpServer.AddTool(splitMultiTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		document, ok := args["document"].(string)
		if !ok || document == "" {
			return mcp.NewToolResultError("document parameter is required"), nil
		}

		rawConfigs, _ := args["configs"].(string)
		configs, err := parseConfigsArg(rawConfigs)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		m, err := splitter.NewMultiSplitter(configs)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		chunks := m.Split(document)

		// Success response
		result := map[string]interface{}{
			"success":     true,
			"id":          fmt.Sprintf("chunkset:%s", uuid.New().String()),
			"configs":     m.Configs(),
			"chunks":      chunks,
			"chunk_count": len(chunks),
			"created_at":  time.Now().Format(time.RFC3339),
		}

		resultJSON, _ := json.Marshal(result)
		return mcp.NewToolResultText(string(resultJSON)), nil
	})

	splitBySizeTool := mcp.NewTool("split_by_size",
		mcp.WithDescription("Split a document under several configurations and return the chunks grouped per configuration, keyed by '{chunk_size}_{overlap}'."),
		mcp.WithString("document",
			mcp.Required(),
			mcp.Description("The document content to split"),
		),
		mcp.WithString("configs",
			mcp.Description(configsDescription),
		),
	)
	mcpServer.AddTool(splitBySizeTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		document, ok := args["document"].(string)
		if !ok || document == "" {
			return mcp.NewToolResultError("document parameter is required"), nil
		}

		rawConfigs, _ := args["configs"].(string)
		configs, err := parseConfigsArg(rawConfigs)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		m, err := splitter.NewMultiSplitter(configs)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		// Success response; "sizes" carries the configuration-list order of the keys
		result := map[string]interface{}{
			"success":        true,
			"id":             fmt.Sprintf("chunkset:%s", uuid.New().String()),
			"sizes":          m.SizeKeys(),
			"chunks_by_size": m.SplitBySize(document),
			"created_at":     time.Now().Format(time.RFC3339),
		}

		resultJSON, _ := json.Marshal(result)
		return mcp.NewToolResultText(string(resultJSON)), nil
	})
}

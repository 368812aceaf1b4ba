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

// RegisterSplitTool registers the split_text tool
func RegisterSplitTool(mcpServer *server.MCPServer) {
	splitTextTool := mcp.NewTool("split_text",
		mcp.WithDescription("Split a document into fixed-size overlapping chunks. Consecutive chunks share 'overlap' characters; the final chunk may be shorter."),
		mcp.WithString("document",
			mcp.Required(),
			mcp.Description("The document content to split"),
		),
		mcp.WithNumber("chunk_size",
			mcp.Required(),
			mcp.Description("Size of each chunk in characters"),
		),
		mcp.WithNumber("overlap",
			mcp.Required(),
			mcp.Description("Number of characters shared between consecutive chunks (must be < chunk_size)"),
		),
	)
	mcpServer.AddTool(splitTextTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		document, ok := args["document"].(string)
		if !ok || document == "" {
			return mcp.NewToolResultError("document parameter is required"), nil
		}

		chunkSize, ok := args["chunk_size"].(float64)
		if !ok || chunkSize <= 0 {
			return mcp.NewToolResultError("chunk_size must be a positive number"), nil
		}

		overlap, ok := args["overlap"].(float64)
		if !ok || overlap < 0 {
			return mcp.NewToolResultError("overlap must be a non-negative number"), nil
		}

		s, err := splitter.NewCharacterSplitter(int(chunkSize), int(overlap))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		chunks := s.Split(document)

		// Success response
		result := map[string]interface{}{
			"success":     true,
			"id":          fmt.Sprintf("chunkset:%s", uuid.New().String()),
			"chunks":      chunks,
			"chunk_count": len(chunks),
			"created_at":  time.Now().Format(time.RFC3339),
		}

		resultJSON, _ := json.Marshal(result)
		return mcp.NewToolResultText(string(resultJSON)), nil
	})
}

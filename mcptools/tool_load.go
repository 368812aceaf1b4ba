package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"chunkmill/loader"
	"chunkmill/splitter"
)

// RegisterLoadTool registers the load_and_split tool
func RegisterLoadTool(mcpServer *server.MCPServer, documentLoader *loader.TextFileLoader, defaultChunkSize, defaultOverlap int) {
	loadAndSplitTool := mcp.NewTool("load_and_split",
		mcp.WithDescription("Load text documents from a filesystem path (a single file or a directory tree) and split every loaded document into fixed-size overlapping chunks."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to a text file or a directory of text files"),
		),
		mcp.WithNumber("chunk_size",
			mcp.Description(fmt.Sprintf("Size of each chunk in characters (default: %d)", defaultChunkSize)),
		),
		mcp.WithNumber("overlap",
			mcp.Description(fmt.Sprintf("Number of characters shared between consecutive chunks (default: %d)", defaultOverlap)),
		),
	)
	mcpServer.AddTool(loadAndSplitTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		path, ok := args["path"].(string)
		if !ok || path == "" {
			return mcp.NewToolResultError("path parameter is required"), nil
		}

		// Omitted sizes fall back to the configured server defaults; an
		// explicit overlap without a chunk size is rejected rather than
		// silently replaced
		chunkSize := defaultChunkSize
		overlap := defaultOverlap
		if cs, ok := args["chunk_size"].(float64); ok {
			chunkSize = int(cs)
			overlap = 0
			if ov, ok := args["overlap"].(float64); ok {
				overlap = int(ov)
			}
		} else if _, ok := args["overlap"].(float64); ok {
			return mcp.NewToolResultError("overlap requires chunk_size"), nil
		}

		s, err := splitter.NewCharacterSplitter(chunkSize, overlap)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		documents, err := documentLoader.LoadDocuments(path)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to load documents: %v", err)), nil
		}

		chunks := s.SplitTexts(documents)

		// Success response
		result := map[string]interface{}{
			"success":        true,
			"id":             fmt.Sprintf("loadset:%s", uuid.New().String()),
			"document_count": len(documents),
			"chunks":         chunks,
			"chunk_count":    len(chunks),
			"created_at":     time.Now().Format(time.RFC3339),
		}

		resultJSON, _ := json.Marshal(result)
		return mcp.NewToolResultText(string(resultJSON)), nil
	})
}

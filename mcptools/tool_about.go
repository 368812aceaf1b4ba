package mcptools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterAboutTool registers the about_chunkmill tool
func RegisterAboutTool(mcpServer *server.MCPServer) {
	aboutTool := mcp.NewTool("about_chunkmill",
		mcp.WithDescription("This tool provides information about the ChunkMill MCP server."),
	)
	mcpServer.AddTool(aboutTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText("This MCP Server splits plain-text documents into fixed-size overlapping chunks for retrieval pipelines"), nil
	})
}

package mcptools

import (
	"github.com/mark3labs/mcp-go/server"

	"chunkmill/loader"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(mcpServer *server.MCPServer, documentLoader *loader.TextFileLoader, defaultChunkSize, defaultOverlap int) {
	// Register all tools organized by category
	RegisterAboutTool(mcpServer)
	RegisterSplitTool(mcpServer)
	RegisterMultiSplitTools(mcpServer)
	RegisterLoadTool(mcpServer, documentLoader, defaultChunkSize, defaultOverlap)
}

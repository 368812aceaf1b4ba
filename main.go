package main

import (
	"log"
	"net/http"

	"github.com/mark3labs/mcp-go/server"

	"chunkmill/api"
	"chunkmill/config"
	"chunkmill/loader"
	"chunkmill/mcptools"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	api.SetDefaultChunkSize(cfg.ChunkSize)
	api.SetDefaultOverlap(cfg.ChunkOverlap)

	documentLoader := loader.NewTextFileLoader(cfg.DocumentExt)

	// Create MCP server
	mcpServer := server.NewMCPServer(
		"mcp-chunkmill",
		"0.0.0",
	)

	// Register all MCP tools
	mcptools.RegisterTools(mcpServer, documentLoader, cfg.ChunkSize, cfg.ChunkOverlap)

	// Create REST API mux
	apiMux := http.NewServeMux()

	// Add healthcheck endpoint
	apiMux.HandleFunc("/health", api.HealthCheckHandler)

	// Add splitter defaults endpoint
	apiMux.HandleFunc("/defaults", api.GetSplitterDefaultsHandler)

	// Add split endpoints
	apiMux.HandleFunc("/split", api.SplitHandler)
	apiMux.HandleFunc("/split/multi", api.MultiSplitHandler)
	apiMux.HandleFunc("/split/by-size", api.SplitBySizeHandler)
	apiMux.HandleFunc("/split/delimiter", api.DelimiterSplitHandler)

	// Add load-and-split endpoint
	apiMux.HandleFunc("/load", func(w http.ResponseWriter, r *http.Request) {
		api.LoadAndSplitHandler(w, r, documentLoader)
	})

	// Create MCP mux
	mcpMux := http.NewServeMux()

	// Add MCP endpoint
	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithEndpointPath("/mcp"),
	)
	mcpMux.Handle("/mcp", httpServer)

	// Start REST API server in a goroutine
	go func() {
		log.Println("REST API Server is running on port", cfg.APIRestPort)
		if err := http.ListenAndServe(":"+cfg.APIRestPort, apiMux); err != nil {
			log.Fatal("REST API Server error:", err)
		}
	}()

	// Start MCP server on main thread
	log.Println("MCP Server is running on port", cfg.MCPHttpPort)
	log.Fatal(http.ListenAndServe(":"+cfg.MCPHttpPort, mcpMux))
}

package api

import (
	"encoding/json"
	"net/http"
)

var defaultChunkSize int
var defaultOverlap int

func SetDefaultChunkSize(size int) {
	defaultChunkSize = size
}

func GetDefaultChunkSize() int {
	return defaultChunkSize
}

func SetDefaultOverlap(overlap int) {
	defaultOverlap = overlap
}

func GetDefaultOverlap() int {
	return defaultOverlap
}

// GetSplitterDefaultsHandler handles requests for the default splitter configuration
func GetSplitterDefaultsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// Only accept GET requests
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Method not allowed. Use GET",
		})
		return
	}

	response := map[string]interface{}{
		"success":    true,
		"chunk_size": defaultChunkSize,
		"overlap":    defaultOverlap,
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// HealthCheckHandler handles health check requests
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	response := map[string]interface{}{
		"status": "healthy",
		"server": "mcp-chunkmill-server",
	}
	json.NewEncoder(w).Encode(response)
}

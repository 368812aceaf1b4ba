package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"chunkmill/models"
	"chunkmill/splitter"

	"github.com/google/uuid"
)

// SplitBySizeHandler handles requests for the per-configuration view of the
// chunks, keyed by "{chunk_size}_{overlap}"
func SplitBySizeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// Only accept POST requests
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(models.SplitBySizeResponse{
			Success: false,
			Error:   "Method not allowed. Use POST",
		})
		return
	}

	// Parse request body
	var req models.MultiSplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.SplitBySizeResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid request body: %v", err),
		})
		return
	}

	// Validate required fields
	if req.Document == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.SplitBySizeResponse{
			Success: false,
			Error:   "Document is required",
		})
		return
	}

	m, err := splitter.NewMultiSplitter(req.Configs)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.SplitBySizeResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	// Generate unique chunk set ID
	chunkSetID := fmt.Sprintf("chunkset:%s", uuid.New().String())

	// Success response; Sizes carries the configuration-list order of the keys
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.SplitBySizeResponse{
		ID:           chunkSetID,
		Sizes:        m.SizeKeys(),
		ChunksBySize: m.SplitBySize(req.Document),
		CreatedAt:    time.Now(),
		Success:      true,
	})
}

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

// MultiSplitHandler handles requests to split one document under several
// configurations at once and return the flattened chunks
func MultiSplitHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// Only accept POST requests
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(models.MultiSplitResponse{
			Success: false,
			Error:   "Method not allowed. Use POST",
		})
		return
	}

	// Parse request body
	var req models.MultiSplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.MultiSplitResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid request body: %v", err),
		})
		return
	}

	// Validate required fields
	if req.Document == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.MultiSplitResponse{
			Success: false,
			Error:   "Document is required",
		})
		return
	}

	// An empty config list means the default configurations; a single
	// invalid pair fails the whole construction
	m, err := splitter.NewMultiSplitter(req.Configs)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.MultiSplitResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	chunks := m.Split(req.Document)

	// Generate unique chunk set ID
	chunkSetID := fmt.Sprintf("chunkset:%s", uuid.New().String())

	// Success response
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.MultiSplitResponse{
		ID:         chunkSetID,
		Configs:    m.Configs(),
		Chunks:     chunks,
		ChunkCount: len(chunks),
		CreatedAt:  time.Now(),
		Success:    true,
	})
}

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

// SplitHandler handles requests to split one document with a single
// chunk size / overlap configuration
func SplitHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// Only accept POST requests
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(models.SplitResponse{
			Success: false,
			Error:   "Method not allowed. Use POST",
		})
		return
	}

	// Parse request body
	var req models.SplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.SplitResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid request body: %v", err),
		})
		return
	}

	// Validate required fields
	if req.Document == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.SplitResponse{
			Success: false,
			Error:   "Document is required",
		})
		return
	}

	// The construction contract rejects chunk_size <= overlap, a
	// non-positive chunk_size and a negative overlap
	s, err := splitter.NewCharacterSplitter(req.ChunkSize, req.Overlap)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.SplitResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	chunks := s.Split(req.Document)

	// Generate unique chunk set ID
	chunkSetID := fmt.Sprintf("chunkset:%s", uuid.New().String())

	// Success response
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.SplitResponse{
		ID:         chunkSetID,
		Chunks:     chunks,
		ChunkCount: len(chunks),
		CreatedAt:  time.Now(),
		Success:    true,
	})
}

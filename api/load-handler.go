package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"chunkmill/loader"
	"chunkmill/models"
	"chunkmill/splitter"

	"github.com/google/uuid"
)

// Number of non-empty lines included in a document preview
const previewLines = 3

// LoadAndSplitHandler handles requests to load documents from a filesystem
// path and split every loaded document
func LoadAndSplitHandler(w http.ResponseWriter, r *http.Request, documentLoader *loader.TextFileLoader) {
	w.Header().Set("Content-Type", "application/json")

	// Only accept POST requests
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(models.LoadAndSplitResponse{
			Success: false,
			Error:   "Method not allowed. Use POST",
		})
		return
	}

	// Parse request body
	var req models.LoadAndSplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.LoadAndSplitResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid request body: %v", err),
		})
		return
	}

	// Validate required fields
	if req.Path == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.LoadAndSplitResponse{
			Success: false,
			Error:   "Path is required",
		})
		return
	}

	// Omitted sizes fall back to the configured server defaults; an
	// explicit overlap without a chunk size is rejected rather than
	// silently replaced
	chunkSize := req.ChunkSize
	overlap := req.Overlap
	if chunkSize == 0 {
		if overlap != 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.LoadAndSplitResponse{
				Success: false,
				Error:   "Overlap requires ChunkSize",
			})
			return
		}
		chunkSize = GetDefaultChunkSize()
		overlap = GetDefaultOverlap()
	}

	s, err := splitter.NewCharacterSplitter(chunkSize, overlap)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.LoadAndSplitResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	documents, err := documentLoader.LoadDocuments(req.Path)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, loader.ErrInvalidPath) {
			status = http.StatusBadRequest
		}
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(models.LoadAndSplitResponse{
			Success: false,
			Error:   fmt.Sprintf("Failed to load documents: %v", err),
		})
		return
	}

	// Split every loaded document
	loaded := make([]models.LoadedDocument, 0, len(documents))
	totalChunks := 0
	for i, document := range documents {
		chunks := s.Split(document)
		loaded = append(loaded, models.LoadedDocument{
			Index:      i,
			Preview:    splitter.ExtractFirstNonEmptyLines(document, previewLines),
			Chunks:     chunks,
			ChunkCount: len(chunks),
		})
		totalChunks += len(chunks)
	}

	// Generate unique load set ID
	loadSetID := fmt.Sprintf("loadset:%s", uuid.New().String())

	// Success response
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.LoadAndSplitResponse{
		ID:            loadSetID,
		DocumentCount: len(documents),
		Documents:     loaded,
		ChunkCount:    totalChunks,
		CreatedAt:     time.Now(),
		Success:       true,
	})
}

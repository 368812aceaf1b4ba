package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"chunkmill/models"
	"chunkmill/splitter"

	"github.com/google/uuid"
)

// Number of non-empty lines prepended to sub-chunks of an oversized part
const delimiterHeaderLines = 2

// DelimiterSplitHandler handles requests to split text on a literal
// delimiter. When a chunk_size is given, parts larger than it are subdivided
// with the sliding window, and each later sub-chunk is prefixed with the
// part's leading lines so it keeps its context.
func DelimiterSplitHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// Only accept POST requests
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(models.DelimiterSplitResponse{
			Success: false,
			Error:   "Method not allowed. Use POST",
		})
		return
	}

	// Parse request body
	var req models.DelimiterSplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.DelimiterSplitResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid request body: %v", err),
		})
		return
	}

	// Validate required fields
	if req.Document == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.DelimiterSplitResponse{
			Success: false,
			Error:   "Document is required",
		})
		return
	}

	if req.Delimiter == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.DelimiterSplitResponse{
			Success: false,
			Error:   "Delimiter is required",
		})
		return
	}

	// An omitted chunk_size means no subdivision of oversized parts
	var s *splitter.CharacterSplitter
	if req.ChunkSize != 0 || req.Overlap != 0 {
		var err error
		s, err = splitter.NewCharacterSplitter(req.ChunkSize, req.Overlap)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.DelimiterSplitResponse{
				Success: false,
				Error:   err.Error(),
			})
			return
		}
	}

	// Split text by delimiter
	parts := splitter.SplitTextWithDelimiter(req.Document, req.Delimiter)

	chunks := make([]string, 0, len(parts))
	for _, part := range parts {
		if s == nil || utf8.RuneCountInString(part) <= s.ChunkSize {
			chunks = append(chunks, part)
			continue
		}

		// Subdivide the oversized part and prepend its leading lines to
		// every sub-chunk after the first, which already contains them
		header := splitter.ExtractFirstNonEmptyLines(part, delimiterHeaderLines)
		subChunks := s.Split(part)
		for i, subChunk := range subChunks {
			if i > 0 && header != "" {
				subChunk = header + "\n\n" + subChunk
			}
			chunks = append(chunks, subChunk)
		}
	}

	// Generate unique chunk set ID
	chunkSetID := fmt.Sprintf("chunkset:%s", uuid.New().String())

	// Success response
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.DelimiterSplitResponse{
		ID:         chunkSetID,
		Chunks:     chunks,
		ChunkCount: len(chunks),
		CreatedAt:  time.Now(),
		Success:    true,
	})
}

package models

import (
	"time"

	"chunkmill/splitter"
)

// SplitRequest represents a request to split one document with a single configuration
type SplitRequest struct {
	Document  string `json:"document"`
	ChunkSize int    `json:"chunk_size"`
	Overlap   int    `json:"overlap"`
}

// SplitResponse represents the chunks produced for a single configuration
type SplitResponse struct {
	ID         string    `json:"id"`
	Chunks     []string  `json:"chunks"`
	ChunkCount int       `json:"chunk_count"`
	CreatedAt  time.Time `json:"created_at"`
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
}

// MultiSplitRequest represents a request to split one document under several
// configurations at once; an empty config list means the defaults
type MultiSplitRequest struct {
	Document string                 `json:"document"`
	Configs  []splitter.SplitConfig `json:"configs,omitempty"`
}

// MultiSplitResponse represents the flattened chunks across all configurations
type MultiSplitResponse struct {
	ID         string                 `json:"id"`
	Configs    []splitter.SplitConfig `json:"configs"`
	Chunks     []string               `json:"chunks"`
	ChunkCount int                    `json:"chunk_count"`
	CreatedAt  time.Time              `json:"created_at"`
	Success    bool                   `json:"success"`
	Error      string                 `json:"error,omitempty"`
}

// SplitBySizeResponse represents the per-configuration view of the chunks.
// Sizes carries the key order, since the JSON object itself does not.
type SplitBySizeResponse struct {
	ID           string              `json:"id"`
	Sizes        []string            `json:"sizes"`
	ChunksBySize map[string][]string `json:"chunks_by_size"`
	CreatedAt    time.Time           `json:"created_at"`
	Success      bool                `json:"success"`
	Error        string              `json:"error,omitempty"`
}

// DelimiterSplitRequest represents a request to split one document on a
// literal delimiter; a non-zero chunk_size additionally subdivides parts
// larger than the window
type DelimiterSplitRequest struct {
	Document  string `json:"document"`
	Delimiter string `json:"delimiter"`
	ChunkSize int    `json:"chunk_size,omitempty"`
	Overlap   int    `json:"overlap,omitempty"`
}

// DelimiterSplitResponse represents the parts produced by a delimiter split
type DelimiterSplitResponse struct {
	ID         string    `json:"id"`
	Chunks     []string  `json:"chunks"`
	ChunkCount int       `json:"chunk_count"`
	CreatedAt  time.Time `json:"created_at"`
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
}

// LoadAndSplitRequest represents a request to load documents from a path and
// split them; chunk_size and overlap fall back to the server defaults
type LoadAndSplitRequest struct {
	Path      string `json:"path"`
	ChunkSize int    `json:"chunk_size,omitempty"`
	Overlap   int    `json:"overlap,omitempty"`
}

// LoadedDocument represents one loaded document and its chunks
type LoadedDocument struct {
	Index      int      `json:"index"`
	Preview    string   `json:"preview"`
	Chunks     []string `json:"chunks"`
	ChunkCount int      `json:"chunk_count"`
}

// LoadAndSplitResponse represents the result of loading and splitting a path
type LoadAndSplitResponse struct {
	ID            string           `json:"id"`
	DocumentCount int              `json:"document_count"`
	Documents     []LoadedDocument `json:"documents"`
	ChunkCount    int              `json:"chunk_count"`
	CreatedAt     time.Time        `json:"created_at"`
	Success       bool             `json:"success"`
	Error         string           `json:"error,omitempty"`
}

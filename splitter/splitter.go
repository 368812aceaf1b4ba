package splitter

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a splitter is constructed with a
// chunk size / overlap pair that would never advance the window.
var ErrInvalidConfig = errors.New("invalid splitter configuration")

// Default configuration used when the caller does not supply one.
const (
	DefaultChunkSize = 1000
	DefaultOverlap   = 500
)

// ChunkText takes a text string and divides it into chunks of a specified size with a given overlap.
// It returns a slice of strings, where each string represents a chunk of the original text.
// Sizes are measured in runes, so multi-byte characters are never split across chunks.
// An empty input yields a single empty chunk.
//
// Parameters:
//   - text: The input text to be chunked.
//   - chunkSize: The size of each chunk.
//   - overlap: The amount of overlap between consecutive chunks.
//
// Returns:
//   - []string: A slice of strings representing the chunks of the original text.
func ChunkText(text string, chunkSize, overlap int) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return []string{""}
	}
	chunks := []string{}
	for start := 0; start < len(runes); start += chunkSize - overlap {
		end := min(start+chunkSize, len(runes))
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

// SplitConfig is a chunk size / overlap pair governing one splitter.
type SplitConfig struct {
	ChunkSize int `json:"chunk_size"`
	Overlap   int `json:"overlap"`
}

// DefaultSplitConfigs returns the configurations a MultiSplitter uses
// when none are supplied.
func DefaultSplitConfigs() []SplitConfig {
	return []SplitConfig{
		{ChunkSize: 1000, Overlap: 500},
		{ChunkSize: 500, Overlap: 250},
	}
}

// CharacterSplitter splits documents into fixed-size overlapping chunks.
// It holds no mutable state and can be reused across documents.
type CharacterSplitter struct {
	ChunkSize int
	Overlap   int
}

// NewCharacterSplitter validates the configuration and returns a splitter.
// The chunk size must be positive and strictly greater than the overlap,
// otherwise the stride would be zero or negative and the window would
// never move forward.
func NewCharacterSplitter(chunkSize, overlap int) (*CharacterSplitter, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be greater than 0, got %d", ErrInvalidConfig, chunkSize)
	}
	if overlap < 0 {
		return nil, fmt.Errorf("%w: overlap cannot be negative, got %d", ErrInvalidConfig, overlap)
	}
	if overlap >= chunkSize {
		return nil, fmt.Errorf("%w: overlap (%d) must be less than chunk size (%d)", ErrInvalidConfig, overlap, chunkSize)
	}
	return &CharacterSplitter{ChunkSize: chunkSize, Overlap: overlap}, nil
}

// NewSmallCharacterSplitter returns a splitter preset for smaller chunks
// (500 characters with 250 overlap).
func NewSmallCharacterSplitter() *CharacterSplitter {
	return &CharacterSplitter{ChunkSize: 500, Overlap: 250}
}

// Split divides one document into chunks at offsets 0, stride, 2*stride, ...
// where stride = ChunkSize - Overlap. The final chunk may be shorter.
func (s *CharacterSplitter) Split(text string) []string {
	return ChunkText(text, s.ChunkSize, s.Overlap)
}

// SplitTexts splits every document in order and concatenates the results.
func (s *CharacterSplitter) SplitTexts(texts []string) []string {
	chunks := []string{}
	for _, text := range texts {
		chunks = append(chunks, s.Split(text)...)
	}
	return chunks
}

package splitter

import "fmt"

// MultiSplitter applies several chunk size / overlap configurations to the
// same text, so a document can be chunked at multiple granularities at once.
type MultiSplitter struct {
	splitters []*CharacterSplitter
}

// NewMultiSplitter builds one CharacterSplitter per configuration, in list
// order. A nil or empty list falls back to DefaultSplitConfigs. A single
// invalid pair fails the whole construction.
func NewMultiSplitter(configs []SplitConfig) (*MultiSplitter, error) {
	if len(configs) == 0 {
		configs = DefaultSplitConfigs()
	}
	splitters := make([]*CharacterSplitter, 0, len(configs))
	for _, config := range configs {
		s, err := NewCharacterSplitter(config.ChunkSize, config.Overlap)
		if err != nil {
			return nil, err
		}
		splitters = append(splitters, s)
	}
	return &MultiSplitter{splitters: splitters}, nil
}

// Split returns all chunks from all configurations, concatenated in
// configuration-list order.
func (m *MultiSplitter) Split(text string) []string {
	chunks := []string{}
	for _, s := range m.splitters {
		chunks = append(chunks, s.Split(text)...)
	}
	return chunks
}

// SplitTexts applies Split to every document in order: for each document,
// every configuration's chunks appear before the next document's.
func (m *MultiSplitter) SplitTexts(texts []string) []string {
	chunks := []string{}
	for _, text := range texts {
		chunks = append(chunks, m.Split(text)...)
	}
	return chunks
}

// SplitBySize returns the chunks grouped per configuration, keyed by
// SizeKey. Go maps carry no order; use SizeKeys for the configuration-list
// order of the keys.
func (m *MultiSplitter) SplitBySize(text string) map[string][]string {
	chunksBySize := make(map[string][]string, len(m.splitters))
	for _, s := range m.splitters {
		chunksBySize[SizeKey(s.ChunkSize, s.Overlap)] = s.Split(text)
	}
	return chunksBySize
}

// SizeKeys returns the SplitBySize keys in configuration-list order.
func (m *MultiSplitter) SizeKeys() []string {
	keys := make([]string, 0, len(m.splitters))
	for _, s := range m.splitters {
		keys = append(keys, SizeKey(s.ChunkSize, s.Overlap))
	}
	return keys
}

// Configs returns the configurations in list order.
func (m *MultiSplitter) Configs() []SplitConfig {
	configs := make([]SplitConfig, 0, len(m.splitters))
	for _, s := range m.splitters {
		configs = append(configs, SplitConfig{ChunkSize: s.ChunkSize, Overlap: s.Overlap})
	}
	return configs
}

// SizeKey builds the "{chunk_size}_{overlap}" identifier for one configuration.
func SizeKey(chunkSize, overlap int) string {
	return fmt.Sprintf("%d_%d", chunkSize, overlap)
}

package splitter

import (
	"errors"
	"strings"
	"testing"
)

// expectedChunkCount applies the offset rule: offsets 0, stride, 2*stride, ...
// while offset < length, which is ceil(length/stride) for non-empty documents.
func expectedChunkCount(length, chunkSize, overlap int) int {
	if length == 0 {
		return 1
	}
	stride := chunkSize - overlap
	return (length + stride - 1) / stride
}

func TestNewMultiSplitter(t *testing.T) {
	tests := []struct {
		name            string
		configs         []SplitConfig
		wantErr         bool
		expectedConfigs []SplitConfig
	}{
		{
			name:            "Nil configs fall back to defaults",
			configs:         nil,
			wantErr:         false,
			expectedConfigs: DefaultSplitConfigs(),
		},
		{
			name:            "Empty configs fall back to defaults",
			configs:         []SplitConfig{},
			wantErr:         false,
			expectedConfigs: DefaultSplitConfigs(),
		},
		{
			name: "Custom configs preserved in order",
			configs: []SplitConfig{
				{ChunkSize: 2000, Overlap: 1000},
				{ChunkSize: 100, Overlap: 10},
			},
			wantErr: false,
			expectedConfigs: []SplitConfig{
				{ChunkSize: 2000, Overlap: 1000},
				{ChunkSize: 100, Overlap: 10},
			},
		},
		{
			name: "One invalid pair fails the whole construction",
			configs: []SplitConfig{
				{ChunkSize: 1000, Overlap: 500},
				{ChunkSize: 500, Overlap: 500},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMultiSplitter(tt.configs)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected an error, got nil")
				}
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("Expected ErrInvalidConfig, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			configs := m.Configs()
			if len(configs) != len(tt.expectedConfigs) {
				t.Fatalf("Expected %d configs, got %d", len(tt.expectedConfigs), len(configs))
			}
			for i := range configs {
				if configs[i] != tt.expectedConfigs[i] {
					t.Errorf("Config %d: expected %+v, got %+v", i, tt.expectedConfigs[i], configs[i])
				}
			}
		})
	}
}

func TestMultiSplitterSplit(t *testing.T) {
	document := strings.Repeat("a", 1200)

	m, err := NewMultiSplitter(nil)
	if err != nil {
		t.Fatalf("Failed to create multi splitter: %v", err)
	}

	chunks := m.Split(document)

	// Per default config, counts follow the offset rule: stride 500 -> 3
	// chunks, stride 250 -> 5 chunks, concatenated in config order
	firstCount := expectedChunkCount(1200, 1000, 500)
	secondCount := expectedChunkCount(1200, 500, 250)
	if len(chunks) != firstCount+secondCount {
		t.Fatalf("Expected %d chunks, got %d", firstCount+secondCount, len(chunks))
	}

	if len(chunks[0]) != 1000 {
		t.Errorf("Expected first chunk from the (1000,500) config, got length %d", len(chunks[0]))
	}
	if len(chunks[firstCount]) != 500 {
		t.Errorf("Expected chunk %d to start the (500,250) config, got length %d", firstCount, len(chunks[firstCount]))
	}
}

func TestMultiSplitterSplitTexts(t *testing.T) {
	d1 := strings.Repeat("x", 800)
	d2 := strings.Repeat("y", 300)

	m, err := NewMultiSplitter(nil)
	if err != nil {
		t.Fatalf("Failed to create multi splitter: %v", err)
	}

	// Document-major order: every configuration's chunks for d1 come before
	// any chunk of d2
	combined := m.SplitTexts([]string{d1, d2})
	expected := append(m.Split(d1), m.Split(d2)...)

	if len(combined) != len(expected) {
		t.Fatalf("Expected %d chunks, got %d", len(expected), len(combined))
	}
	for i := range combined {
		if combined[i] != expected[i] {
			t.Errorf("Chunk %d differs from Split(d1) + Split(d2)", i)
		}
	}
}

func TestSplitBySize(t *testing.T) {
	document := strings.Repeat("a", 1200)

	m, err := NewMultiSplitter(nil)
	if err != nil {
		t.Fatalf("Failed to create multi splitter: %v", err)
	}

	chunksBySize := m.SplitBySize(document)
	if len(chunksBySize) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(chunksBySize))
	}

	keys := m.SizeKeys()
	expectedKeys := []string{"1000_500", "500_250"}
	for i, key := range expectedKeys {
		if keys[i] != key {
			t.Errorf("Expected key %d to be %q, got %q", i, key, keys[i])
		}
		if _, ok := chunksBySize[key]; !ok {
			t.Errorf("Expected entry for key %q", key)
		}
	}

	if count := expectedChunkCount(1200, 1000, 500); len(chunksBySize["1000_500"]) != count {
		t.Errorf("Expected %d chunks under 1000_500, got %d", count, len(chunksBySize["1000_500"]))
	}
	if count := expectedChunkCount(1200, 500, 250); len(chunksBySize["500_250"]) != count {
		t.Errorf("Expected %d chunks under 500_250, got %d", count, len(chunksBySize["500_250"]))
	}

	// Each entry must match the corresponding single splitter exactly
	single, err := NewCharacterSplitter(500, 250)
	if err != nil {
		t.Fatalf("Failed to create splitter: %v", err)
	}
	expected := single.Split(document)
	got := chunksBySize["500_250"]
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Chunk %d under 500_250 differs from the single splitter", i)
		}
	}
}

func TestMultiSplitterEmptyDocument(t *testing.T) {
	m, err := NewMultiSplitter(nil)
	if err != nil {
		t.Fatalf("Failed to create multi splitter: %v", err)
	}

	// One empty chunk per configuration
	chunks := m.Split("")
	if len(chunks) != 2 {
		t.Fatalf("Expected 2 chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if chunk != "" {
			t.Errorf("Chunk %d: expected empty chunk, got %q", i, chunk)
		}
	}

	for key, group := range m.SplitBySize("") {
		if len(group) != 1 || group[0] != "" {
			t.Errorf("Entry %q: expected one empty chunk, got %q", key, group)
		}
	}
}

func TestSizeKey(t *testing.T) {
	if key := SizeKey(1000, 500); key != "1000_500" {
		t.Errorf("Expected key 1000_500, got %s", key)
	}
	if key := SizeKey(500, 250); key != "500_250" {
		t.Errorf("Expected key 500_250, got %s", key)
	}
}

// Package loader reads plain-text documents from disk for the splitter.
// It is the only package that touches the filesystem; everything downstream
// consumes already-decoded document strings.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidPath is returned when the input path is neither an existing
// directory nor a file with the expected extension.
var ErrInvalidPath = errors.New("invalid document path")

// DefaultExtension is the file extension loaded when none is configured.
const DefaultExtension = ".txt"

// TextFileLoader loads whole text files as document strings.
type TextFileLoader struct {
	Extension string
}

// NewTextFileLoader returns a loader for files with the given extension.
// An empty extension falls back to DefaultExtension.
func NewTextFileLoader(extension string) *TextFileLoader {
	if extension == "" {
		extension = DefaultExtension
	}
	return &TextFileLoader{Extension: extension}
}

// LoadDocuments loads all documents under path. A directory is walked
// recursively, collecting every file with the configured extension in walk
// order; a single file with the extension yields one document. Any other
// path fails with ErrInvalidPath.
func (l *TextFileLoader) LoadDocuments(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}

	if info.IsDir() {
		return l.loadDirectory(path)
	}
	if strings.HasSuffix(path, l.Extension) {
		return l.loadFile(path)
	}
	return nil, fmt.Errorf("%w: %s is neither a directory nor a %s file", ErrInvalidPath, path, l.Extension)
}

func (l *TextFileLoader) loadFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return []string{string(content)}, nil
}

func (l *TextFileLoader) loadDirectory(root string) ([]string, error) {
	documents := []string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), l.Extension) {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		documents = append(documents, string(content))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return documents, nil
}

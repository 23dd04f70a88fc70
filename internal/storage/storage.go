package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tmadsen/fuelrate/internal/rate"
)

// Storage handles persistence of the summary document at a fixed path
type Storage struct {
	path string
}

// New creates a new Storage instance for the given output path
func New(path string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	// Create the parent directory if it doesn't exist
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	return &Storage{
		path: path,
	}, nil
}

// Path returns the resolved output file path
func (s *Storage) Path() string {
	return s.path
}

// ReadDocument loads the previously written document.
// Returns (nil, nil) if no document has been written yet.
func (s *Storage) ReadDocument() (*rate.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading document: %w", err)
	}

	var doc rate.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	return &doc, nil
}

// WriteDocument overwrites the output file with the given document.
// The previous content is fully replaced, never merged.
func (s *Storage) WriteDocument(doc *rate.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}

	return nil
}

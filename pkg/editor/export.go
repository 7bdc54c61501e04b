package editor

import (
	"fmt"
	"os"
	"path/filepath"

	"splitfour/internal/models"
)

// SaveResults writes each slice payload into outputDir under its download
// filename (split_image_1.png and so on), creating the directory if needed.
// It returns the written paths in slice order.
func (e *Editor) SaveResults(outputDir string) ([]string, error) {
	if e.err != nil {
		return nil, fmt.Errorf("unable to process image: %w", e.err)
	}
	if len(e.results) == 0 {
		return nil, fmt.Errorf("no slices to save")
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make([]string, 0, len(e.results))
	for _, res := range e.results {
		path := filepath.Join(outputDir, models.Filename(res.Index))
		if err := os.WriteFile(path, res.Data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write slice %d: %w", res.Index, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

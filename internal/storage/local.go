package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// LocalClient archives export artifacts on the local file system
type LocalClient struct {
	baseDir string
}

// NewLocalClient creates a local archive rooted at baseDir
func NewLocalClient(baseDir string) (*LocalClient, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory %s: %w", baseDir, err)
	}
	return &LocalClient{baseDir: baseDir}, nil
}

// Close is a no-op for local storage (implements the same interface as
// the GCS client)
func (l *LocalClient) Close() error {
	return nil
}

// Store writes the artifact under the dated archive folder and returns
// its archive path
func (l *LocalClient) Store(ctx context.Context, data []byte, filename string, timestamp time.Time) (string, error) {
	archivePath := ExportFolderPath(timestamp) + "/" + filename
	fullPath := filepath.Join(l.baseDir, filepath.FromSlash(archivePath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write artifact %s: %w", fullPath, err)
	}
	return archivePath, nil
}

// Get retrieves an archived artifact by its archive path
func (l *LocalClient) Get(ctx context.Context, path string) ([]byte, error) {
	fullPath := filepath.Join(l.baseDir, filepath.FromSlash(path))
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}
	return data, nil
}

// List returns recent artifact paths, newest first
func (l *LocalClient) List(ctx context.Context, limit int) ([]string, error) {
	exportsRoot := filepath.Join(l.baseDir, "exports")

	var paths []string
	walkErr := filepath.Walk(exportsRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip unreadable entries and continue
		}
		if info.IsDir() {
			return nil
		}
		relPath, relErr := filepath.Rel(l.baseDir, path)
		if relErr != nil {
			return nil
		}
		paths = append(paths, filepath.ToSlash(relPath))
		return nil
	})
	if walkErr != nil && !os.IsNotExist(walkErr) {
		return nil, fmt.Errorf("failed to walk exports directory: %w", walkErr)
	}

	// Dated folders plus epoch-ms filenames sort chronologically, so a
	// reversed lexical sort is newest first.
	sort.Sort(sort.Reverse(sort.StringSlice(paths)))

	if limit > 0 && limit < len(paths) {
		paths = paths[:limit]
	}
	return paths, nil
}

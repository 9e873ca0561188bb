package storage

import (
	"context"
	"fmt"

	"chartbuilder/internal/config"
)

// Mode selects the export archive backend
type Mode string

const (
	ModeLocal Mode = "local"
	ModeGCS   Mode = "gcs"
)

// NewClient creates the archive client selected by configuration
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	switch Mode(cfg.StorageMode) {
	case ModeLocal:
		exportsDir := cfg.LocalExportsDir
		if exportsDir == "" {
			exportsDir = "exports" // Default fallback
		}
		localClient, err := NewLocalClient(exportsDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage client: %w", err)
		}
		return localClient, nil

	case ModeGCS:
		gcsClient, err := NewGCSClient(ctx, cfg.GCSBucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize GCS client: %w", err)
		}
		return gcsClient, nil

	default:
		return nil, fmt.Errorf("unsupported storage mode: %s", cfg.StorageMode)
	}
}

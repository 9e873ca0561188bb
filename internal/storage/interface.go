package storage

import (
	"context"
	"time"
)

// Client is the backend for the export archive: every successful chart
// export (PNG or PDF) is stored so recent exports can be listed and
// re-downloaded.
type Client interface {
	// Close closes the storage client
	Close() error

	// Store archives an export artifact and returns its storage path
	Store(ctx context.Context, data []byte, filename string, timestamp time.Time) (string, error)

	// Get retrieves an archived artifact by its storage path
	Get(ctx context.Context, path string) ([]byte, error)

	// List returns recent artifact paths, newest first, capped at limit
	List(ctx context.Context, limit int) ([]string, error)
}

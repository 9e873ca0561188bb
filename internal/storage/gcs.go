package storage

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"chartbuilder/internal/logger"
)

// GCSClient archives export artifacts in a Google Cloud Storage bucket
type GCSClient struct {
	client *storage.Client
	bucket string
}

// NewGCSClient creates a new GCS-backed archive client
func NewGCSClient(ctx context.Context, bucketName string) (*GCSClient, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}
	return &GCSClient{
		client: client,
		bucket: bucketName,
	}, nil
}

// Close closes the GCS client
func (g *GCSClient) Close() error {
	return g.client.Close()
}

// Store uploads the artifact under the dated archive folder and returns
// its object path
func (g *GCSClient) Store(ctx context.Context, data []byte, filename string, timestamp time.Time) (string, error) {
	objectPath := ExportFolderPath(timestamp) + "/" + filename

	logger.Debugf("Storing artifact to GCS: gs://%s/%s", g.bucket, objectPath)

	obj := g.client.Bucket(g.bucket).Object(objectPath)
	writer := obj.NewWriter(ctx)
	writer.ContentType = GetContentType(filename)
	writer.Metadata = map[string]string{
		"exported-at": timestamp.Format(time.RFC3339),
		"filename":    filename,
	}

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return "", fmt.Errorf("failed to write artifact to GCS: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize GCS upload: %w", err)
	}

	return objectPath, nil
}

// Get retrieves an archived artifact from GCS
func (g *GCSClient) Get(ctx context.Context, path string) ([]byte, error) {
	obj := g.client.Bucket(g.bucket).Object(path)

	reader, err := obj.NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for artifact %s: %w", path, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}
	return data, nil
}

// List returns recent artifact paths from GCS, newest first
func (g *GCSClient) List(ctx context.Context, limit int) ([]string, error) {
	query := &storage.Query{Prefix: "exports/"}
	it := g.client.Bucket(g.bucket).Objects(ctx, query)

	var paths []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}
		if strings.HasSuffix(attrs.Name, "/") {
			continue
		}
		paths = append(paths, attrs.Name)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(paths)))

	if limit > 0 && limit < len(paths) {
		paths = paths[:limit]
	}
	return paths, nil
}

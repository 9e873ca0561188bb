package storage

import (
	"fmt"
	"strings"
	"time"
)

// ExportFolderPath generates the archive folder for an export artifact.
// Format: exports/YYYY/MM/DD
func ExportFolderPath(timestamp time.Time) string {
	return fmt.Sprintf("exports/%04d/%02d/%02d",
		timestamp.Year(), timestamp.Month(), timestamp.Day())
}

// GetContentType determines the MIME content type based on file extension
func GetContentType(filename string) string {
	switch {
	case strings.HasSuffix(filename, ".png"):
		return "image/png"
	case strings.HasSuffix(filename, ".pdf"):
		return "application/pdf"
	case strings.HasSuffix(filename, ".csv"):
		return "text/csv"
	case strings.HasSuffix(filename, ".json"):
		return "application/json"
	case strings.HasSuffix(filename, ".html"):
		return "text/html"
	case strings.HasSuffix(filename, ".txt"):
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}

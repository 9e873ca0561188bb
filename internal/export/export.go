package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"chartbuilder/internal/charts"
	"chartbuilder/internal/logger"
	"chartbuilder/internal/storage"
)

// Artifact is a finished export: a named, typed blob ready to be sent
// as a download.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Exporter turns chart descriptions into downloadable files. The
// archive client is optional: when present every export is also stored
// for later retrieval, but archive failures never fail the download.
type Exporter struct {
	archive storage.Client
}

// New creates an exporter. Pass a nil archive to disable archiving.
func New(archive storage.Client) *Exporter {
	return &Exporter{archive: archive}
}

// Image captures the chart as a PNG artifact named chart-<epoch-ms>.png
func (e *Exporter) Image(ctx context.Context, spec charts.Spec) (Artifact, error) {
	capture, err := charts.RenderPNG(spec)
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to capture chart image: %w", err)
	}

	now := time.Now()
	artifact := Artifact{
		Filename:    exportFilename(now, "png"),
		ContentType: "image/png",
		Data:        capture.PNG,
	}
	e.store(ctx, artifact, now)
	return artifact, nil
}

// Document captures the chart and wraps it in a single-page landscape
// PDF whose page dimensions match the capture's pixel dimensions. The
// artifact is named chart-<epoch-ms>.pdf.
func (e *Exporter) Document(ctx context.Context, spec charts.Spec) (Artifact, error) {
	capture, err := charts.RenderPNG(spec)
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to capture chart image: %w", err)
	}

	data, err := wrapInPDF(capture)
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to build PDF document: %w", err)
	}

	now := time.Now()
	artifact := Artifact{
		Filename:    exportFilename(now, "pdf"),
		ContentType: "application/pdf",
		Data:        data,
	}
	e.store(ctx, artifact, now)
	return artifact, nil
}

// wrapInPDF places the capture full-bleed on one landscape page sized
// in points to the capture's pixel dimensions.
func wrapInPDF(capture charts.Capture) ([]byte, error) {
	pageW := float64(capture.Width)
	pageH := float64(capture.Height)

	// Landscape orientation swaps the custom size's Wd and Ht, so they
	// are passed pre-swapped to end up at (pageW, pageH).
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "L",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pageH, Ht: pageW},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader("chart", opts, bytes.NewReader(capture.PNG))
	pdf.ImageOptions("chart", 0, 0, pageW, pageH, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// exportFilename names an export chart-<epoch-ms>.<ext>
func exportFilename(ts time.Time, ext string) string {
	return fmt.Sprintf("chart-%d.%s", ts.UnixMilli(), ext)
}

// store archives the artifact when an archive client is configured.
// Failures are logged and swallowed: the user still gets the download.
func (e *Exporter) store(ctx context.Context, artifact Artifact, ts time.Time) {
	if e.archive == nil {
		return
	}
	path, err := e.archive.Store(ctx, artifact.Data, artifact.Filename, ts)
	if err != nil {
		logger.Error("Failed to archive export", err, map[string]interface{}{
			"filename": artifact.Filename,
		})
		return
	}
	logger.Debug("Archived export", map[string]interface{}{
		"path": path,
		"size": len(artifact.Data),
	})
}

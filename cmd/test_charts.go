package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"chartbuilder/internal/charts"
	"chartbuilder/internal/export"
	"chartbuilder/internal/ingest"
	"chartbuilder/internal/models"
)

// Renders every chart kind from a built-in template and writes the
// PNG and PDF artifacts to disk for eyeballing.
func main() {
	tpl, err := ingest.TemplateBySlug("monthly-sales")
	if err != nil {
		log.Fatalf("Failed to load template: %v", err)
	}

	outDir := "test_charts_output"
	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	log.Printf("Rendering charts from template %q into %s", tpl.Slug, outDir)

	exporter := export.New(nil)
	ctx := context.Background()

	for _, kind := range models.ChartKinds() {
		spec, err := charts.Build(kind, tpl.Example)
		if err != nil {
			log.Fatalf("Failed to build %s chart: %v", kind, err)
		}

		image, err := exporter.Image(ctx, spec)
		if err != nil {
			log.Fatalf("Failed to export %s PNG: %v", kind, err)
		}
		pngPath := filepath.Join(outDir, string(kind)+".png")
		if err := os.WriteFile(pngPath, image.Data, 0644); err != nil {
			log.Fatalf("Failed to write %s: %v", pngPath, err)
		}
		log.Printf("Wrote %s (%d bytes)", pngPath, len(image.Data))

		doc, err := exporter.Document(ctx, spec)
		if err != nil {
			log.Fatalf("Failed to export %s PDF: %v", kind, err)
		}
		pdfPath := filepath.Join(outDir, string(kind)+".pdf")
		if err := os.WriteFile(pdfPath, doc.Data, 0644); err != nil {
			log.Fatalf("Failed to write %s: %v", pdfPath, err)
		}
		log.Printf("Wrote %s (%d bytes)", pdfPath, len(doc.Data))
	}

	log.Printf("Done")
}

package main

import (
	"bytes"
	"flag"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
)

// Smoke-tests a running chart builder instance end to end: health
// check, template load, manual points, CSV import and both exports.
func main() {
	baseURL := flag.String("url", "http://localhost:8980", "base URL of the running service")
	outDir := flag.String("out", "smoke_output", "directory for downloaded exports")
	flag.Parse()

	client := resty.New().
		SetBaseURL(*baseURL).
		SetTimeout(30 * time.Second)

	log.Printf("Smoke-testing %s", *baseURL)

	// Health
	resp, err := client.R().Get("/health")
	if err != nil || resp.StatusCode() != 200 {
		log.Fatalf("Health check failed: status=%d err=%v", resp.StatusCode(), err)
	}
	log.Printf("Health: %s", resp.String())

	// Load a template
	resp, err = client.R().
		SetFormData(map[string]string{"slug": "monthly-sales"}).
		Post("/templates/load")
	if err != nil {
		log.Fatalf("Template load failed: %v", err)
	}
	log.Printf("Loaded template: status=%d", resp.StatusCode())

	// Append a couple of manual points
	for _, point := range []map[string]string{
		{"label": "May", "value": "2400"},
		{"label": "Jun", "value": "2250"},
	} {
		resp, err = client.R().SetFormData(point).Post("/points")
		if err != nil {
			log.Fatalf("Append failed: %v", err)
		}
		log.Printf("Appended %s=%s: status=%d", point["label"], point["value"], resp.StatusCode())
	}

	// Import a CSV, replacing the dataset
	csvBody := "label,value\nQ1,8200\nQ2,7600\nQ3,9100\n"
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "data.csv")
	if err != nil {
		log.Fatalf("Failed to build multipart body: %v", err)
	}
	fw.Write([]byte(csvBody))
	mw.Close()

	resp, err = client.R().
		SetHeader("Content-Type", mw.FormDataContentType()).
		SetBody(buf.Bytes()).
		Post("/import")
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}
	log.Printf("Imported CSV: status=%d", resp.StatusCode())

	// Switch to a bar chart
	resp, err = client.R().
		SetFormData(map[string]string{"kind": "bar"}).
		Post("/kind")
	if err != nil {
		log.Fatalf("Kind switch failed: %v", err)
	}
	log.Printf("Switched kind: status=%d", resp.StatusCode())

	// Download both exports
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	for path, name := range map[string]string{
		"/export/image": "smoke.png",
		"/export/pdf":   "smoke.pdf",
	} {
		resp, err = client.R().Get(path)
		if err != nil || resp.StatusCode() != 200 {
			log.Fatalf("Export %s failed: status=%d err=%v", path, resp.StatusCode(), err)
		}
		target := filepath.Join(*outDir, name)
		if err := os.WriteFile(target, resp.Body(), 0644); err != nil {
			log.Fatalf("Failed to write %s: %v", target, err)
		}
		log.Printf("Saved %s (%d bytes, %s)", target, len(resp.Body()), resp.Header().Get("Content-Disposition"))
	}

	log.Printf("Smoke test passed")
}

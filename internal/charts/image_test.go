package charts

import (
	"bytes"
	"image/png"
	"testing"

	"chartbuilder/internal/models"
)

func TestRenderPNGAllKinds(t *testing.T) {
	for _, kind := range models.ChartKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			spec, err := Build(kind, sampleData)
			if err != nil {
				t.Fatalf("Build error: %v", err)
			}

			capture, err := RenderPNG(spec)
			if err != nil {
				t.Fatalf("RenderPNG error: %v", err)
			}
			if capture.Width != 900 || capture.Height != 500 {
				t.Errorf("capture dims = %dx%d, want 900x500", capture.Width, capture.Height)
			}

			img, err := png.Decode(bytes.NewReader(capture.PNG))
			if err != nil {
				t.Fatalf("output is not a decodable PNG: %v", err)
			}
			bounds := img.Bounds()
			if bounds.Dx() != capture.Width || bounds.Dy() != capture.Height {
				t.Errorf("decoded dims = %dx%d, want %dx%d",
					bounds.Dx(), bounds.Dy(), capture.Width, capture.Height)
			}
		})
	}
}

func TestRenderPNGSinglePoint(t *testing.T) {
	single := models.Dataset{{Label: "only", Value: 42}}
	for _, kind := range []models.ChartKind{models.ChartLine, models.ChartArea} {
		spec, err := Build(kind, single)
		if err != nil {
			t.Fatalf("Build error: %v", err)
		}
		if _, err := RenderPNG(spec); err != nil {
			t.Errorf("RenderPNG(%s, single point) error: %v", kind, err)
		}
	}
}

func TestRenderPNGAllEqualValues(t *testing.T) {
	flat := models.Dataset{
		{Label: "a", Value: 5},
		{Label: "b", Value: 5},
		{Label: "c", Value: 5},
	}
	spec, err := Build(models.ChartLine, flat)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if _, err := RenderPNG(spec); err != nil {
		t.Errorf("RenderPNG with flat series error: %v", err)
	}
}

func TestRenderPNGUnknownKind(t *testing.T) {
	if _, err := RenderPNG(Spec{Kind: "scatter"}); err == nil {
		t.Error("RenderPNG with unknown kind expected error, got nil")
	}
}

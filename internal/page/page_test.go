package page

import (
	"bytes"
	"strings"
	"testing"

	"chartbuilder/internal/ingest"
	"chartbuilder/internal/models"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New("https://example.com/echarts.min.js", "1.2.3")
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return r
}

func TestRenderEmptyState(t *testing.T) {
	r := newRenderer(t)

	var buf bytes.Buffer
	data := Data{
		Kinds:     KindViews(models.ChartLine),
		Templates: TemplateViews(ingest.Templates(), ""),
	}
	if err := r.Render(&buf, data); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, "https://example.com/echarts.min.js") {
		t.Error("page missing configured script URL")
	}
	if !strings.Contains(html, "v1.2.3") {
		t.Error("page missing version")
	}
	if strings.Contains(html, "/export/image") {
		t.Error("empty state page exposes export controls")
	}
	if !strings.Contains(html, "No data yet") {
		t.Error("empty state hint missing")
	}
	// Templates are listed with rendered markdown
	if !strings.Contains(html, "Monthly Sales") {
		t.Error("template list missing")
	}
	if !strings.Contains(html, "<strong>line</strong>") {
		t.Error("template description markdown not rendered")
	}
}

func TestRenderWithDataset(t *testing.T) {
	r := newRenderer(t)

	ds := models.Dataset{
		{Label: "Jan", Value: 1200},
		{Label: "Feb", Value: 1900},
	}
	var buf bytes.Buffer
	data := Data{
		Dataset:   ds,
		Kinds:     KindViews(models.ChartBar),
		Templates: TemplateViews(ingest.Templates(), ""),
		Snippet:   `<div id="chart_preview"></div>`,
	}
	if err := r.Render(&buf, data); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	html := buf.String()
	for _, want := range []string{"Jan", "Feb", "chart_preview", "/export/image", "/export/pdf", "/points/delete"} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestRenderNotice(t *testing.T) {
	r := newRenderer(t)

	var buf bytes.Buffer
	data := Data{
		Notice:    "Import failed: the file could not be read.",
		Kinds:     KindViews(models.ChartLine),
		Templates: TemplateViews(ingest.Templates(), ""),
	}
	if err := r.Render(&buf, data); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(buf.String(), "Import failed") {
		t.Error("notice not rendered")
	}
}

func TestHasChart(t *testing.T) {
	ds := models.Dataset{{Label: "a", Value: 1}}
	tests := []struct {
		name string
		data Data
		want bool
	}{
		{"dataset and snippet", Data{Dataset: ds, Snippet: "<div></div>"}, true},
		{"dataset without snippet", Data{Dataset: ds}, false},
		{"snippet without dataset", Data{Snippet: "<div></div>"}, false},
		{"neither", Data{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.data.HasChart(); got != tt.want {
				t.Errorf("HasChart() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTemplateViewsMarksActive(t *testing.T) {
	views := TemplateViews(ingest.Templates(), "market-share")
	var activeCount int
	for _, v := range views {
		if v.Active {
			activeCount++
			if v.Slug != "market-share" {
				t.Errorf("wrong template marked active: %q", v.Slug)
			}
		}
	}
	if activeCount != 1 {
		t.Errorf("active count = %d, want 1", activeCount)
	}
}

func TestKindViewsMarksSelection(t *testing.T) {
	views := KindViews(models.ChartPie)
	if len(views) != 4 {
		t.Fatalf("KindViews length = %d, want 4", len(views))
	}
	for _, v := range views {
		if v.Selected != (v.Kind == models.ChartPie) {
			t.Errorf("selection wrong for %q", v.Kind)
		}
	}
}

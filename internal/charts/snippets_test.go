package charts

import (
	"strings"
	"testing"

	"chartbuilder/internal/models"
)

func TestHTMLSnippetAllKinds(t *testing.T) {
	for _, kind := range models.ChartKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			spec, err := Build(kind, sampleData)
			if err != nil {
				t.Fatalf("Build error: %v", err)
			}

			snippet, err := HTMLSnippet(spec)
			if err != nil {
				t.Fatalf("HTMLSnippet error: %v", err)
			}
			if snippet.ID != "chart_preview" {
				t.Errorf("snippet ID = %q, want chart_preview", snippet.ID)
			}

			html := string(snippet.HTML)
			if !strings.Contains(html, `id="chart_preview"`) {
				t.Errorf("snippet missing preview div: %s", html)
			}
			if !strings.Contains(html, "echarts.init") {
				t.Errorf("snippet missing init script: %s", html)
			}
			if strings.Contains(html, "<html") || strings.Contains(html, "<head") {
				t.Errorf("snippet is a full document, want fragment: %s", html)
			}
			for _, label := range sampleData.Labels() {
				if !strings.Contains(html, label) {
					t.Errorf("snippet missing label %q", label)
				}
			}
		})
	}
}

func TestHTMLSnippetDonutGeometry(t *testing.T) {
	spec, err := Build(models.ChartPie, sampleData)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	snippet, err := HTMLSnippet(spec)
	if err != nil {
		t.Fatalf("HTMLSnippet error: %v", err)
	}

	html := string(snippet.HTML)
	for _, want := range []string{"45%", "70%", "padAngle", "#0088FE", "#00C49F", "#FFBB28"} {
		if !strings.Contains(html, want) {
			t.Errorf("donut snippet missing %q", want)
		}
	}
	// Four slices, three palette colors: the fourth wraps around
	if got := strings.Count(html, "#0088FE"); got != 2 {
		t.Errorf("palette wraparound: %d uses of first color, want 2", got)
	}
}

func TestHTMLSnippetUnknownKind(t *testing.T) {
	if _, err := HTMLSnippet(Spec{Kind: "scatter"}); err == nil {
		t.Error("HTMLSnippet with unknown kind expected error, got nil")
	}
}

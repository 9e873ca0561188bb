package page

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"

	"chartbuilder/internal/models"
)

// TemplateView is a preset dataset prepared for display: the markdown
// descriptions are pre-rendered to HTML once at startup.
type TemplateView struct {
	Slug        string
	Name        string
	Description template.HTML
	Format      template.HTML
	Active      bool
}

// KindView is one chart kind option in the selector
type KindView struct {
	Kind     models.ChartKind
	Selected bool
}

// Data is everything the builder page needs for one render
type Data struct {
	Title     string
	Version   string
	ScriptURL string

	Notice    string
	Dataset   models.Dataset
	Kinds     []KindView
	Templates []TemplateView

	// Snippet is empty when the dataset is empty: the page then hides
	// the chart surface and the export controls entirely.
	Snippet template.HTML
}

// HasChart reports whether the page should show the preview and the
// export controls
func (d Data) HasChart() bool {
	return len(d.Dataset) > 0 && d.Snippet != ""
}

// Renderer assembles the builder page
type Renderer struct {
	tpl       *template.Template
	scriptURL string
	version   string
}

// New creates a page renderer. scriptURL is the ECharts library the
// page loads for the interactive preview.
func New(scriptURL, version string) (*Renderer, error) {
	tpl, err := template.New("builder").Parse(builderTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse builder page template: %w", err)
	}
	return &Renderer{tpl: tpl, scriptURL: scriptURL, version: version}, nil
}

// Render writes the full builder page
func (r *Renderer) Render(w io.Writer, data Data) error {
	data.Title = "Chart Builder"
	data.Version = r.version
	data.ScriptURL = r.scriptURL
	if err := r.tpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render builder page: %w", err)
	}
	return nil
}

// TemplateViews renders the template descriptions from markdown and
// marks the active one
func TemplateViews(templates []models.Template, activeSlug string) []TemplateView {
	views := make([]TemplateView, len(templates))
	for i, t := range templates {
		views[i] = TemplateView{
			Slug:        t.Slug,
			Name:        t.Name,
			Description: renderMarkdown(t.Description),
			Format:      renderMarkdown(t.FormatDescription),
			Active:      t.Slug == activeSlug,
		}
	}
	return views
}

// KindViews lists all chart kinds with the current selection marked
func KindViews(selected models.ChartKind) []KindView {
	kinds := models.ChartKinds()
	views := make([]KindView, len(kinds))
	for i, k := range kinds {
		views[i] = KindView{Kind: k, Selected: k == selected}
	}
	return views
}

func renderMarkdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(source), &buf); err != nil {
		// Markdown here is authored, not user input; fall back to the
		// raw text escaped rather than failing the page.
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(buf.String())
}

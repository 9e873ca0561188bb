package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"chartbuilder/internal/charts"
	"chartbuilder/internal/config"
	"chartbuilder/internal/export"
	"chartbuilder/internal/ingest"
	"chartbuilder/internal/models"
	"chartbuilder/internal/page"
	"chartbuilder/internal/storage"
)

// maxImportSize caps uploaded CSV files at 1 MB
const maxImportSize = 1 << 20

// HandleBuilderPage serves the builder page with the current session
// state. Every mutation redirects back here.
func (s *Server) HandleBuilderPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	ds := s.Session.Dataset()
	kind := s.Session.Kind()

	data := page.Data{
		Notice:    r.URL.Query().Get("notice"),
		Dataset:   ds,
		Kinds:     page.KindViews(kind),
		Templates: page.TemplateViews(ingest.Templates(), s.Session.ActiveTemplate()),
	}

	// An empty dataset has no chart: the page hides the preview and the
	// export controls.
	if len(ds) > 0 {
		spec, err := charts.Build(kind, ds)
		if err == nil {
			snippet, err := charts.HTMLSnippet(spec)
			if err != nil {
				s.log.Error("Failed to render chart snippet", err)
			} else {
				data.Snippet = snippet.HTML
			}
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.Page.Render(w, data); err != nil {
		s.log.Error("Failed to render builder page", err)
	}
}

// HandleAppendPoint appends one manually entered point. Empty or
// unparseable fields are a silent no-op.
func (s *Server) HandleAppendPoint(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	outcome := s.Session.Append(r.FormValue("label"), r.FormValue("value"))
	s.log.Debug("Append point", map[string]interface{}{"outcome": outcome})
	s.redirectHome(w, r, "")
}

// HandleRemovePoint removes the point at the posted index. A stale or
// malformed index is a silent no-op.
func (s *Server) HandleRemovePoint(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	index, err := strconv.Atoi(r.FormValue("index"))
	if err == nil {
		s.Session.Remove(index)
	}
	s.redirectHome(w, r, "")
}

// HandleClearDataset empties the dataset
func (s *Server) HandleClearDataset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.Session.Clear()
	s.redirectHome(w, r, "")
}

// HandleLoadTemplate replaces the dataset with a built-in template's
// example data, discarding the prior dataset without confirmation.
func (s *Server) HandleLoadTemplate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	tpl, err := ingest.TemplateBySlug(r.FormValue("slug"))
	if err != nil {
		s.redirectHome(w, r, "Unknown template.")
		return
	}
	s.Session.LoadTemplate(tpl)
	s.redirectHome(w, r, "")
}

// HandleTemplateExample serves the active template's example dataset as
// a downloadable CSV.
func (s *Server) HandleTemplateExample(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	tpl, err := ingest.TemplateBySlug(r.URL.Query().Get("slug"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", ingest.TemplateFilename(tpl)))
	w.Write(ingest.TemplateCSV(tpl))
}

// HandleImportCSV replaces the dataset with the parsed contents of an
// uploaded CSV. Unusable rows are dropped silently and the replacement
// happens even when zero rows survive; only a failure to read the
// upload itself leaves the dataset unchanged and flashes a notice.
func (s *Server) HandleImportCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		s.redirectHome(w, r, "Import failed: no file was uploaded.")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxImportSize))
	if err != nil {
		s.log.Error("Failed to read uploaded CSV", err)
		s.redirectHome(w, r, "Import failed: the file could not be read.")
		return
	}

	s.Session.Replace(ingest.ImportCSV(raw))
	s.redirectHome(w, r, "")
}

// HandleSelectKind switches the chart kind; the dataset is untouched
func (s *Server) HandleSelectKind(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	kind, err := models.ParseChartKind(r.FormValue("kind"))
	if err == nil {
		s.Session.SetKind(kind)
	}
	s.redirectHome(w, r, "")
}

// HandleExportImage serves the current chart as a PNG download
func (s *Server) HandleExportImage(w http.ResponseWriter, r *http.Request) {
	s.handleExport(w, r, s.Exporter.Image)
}

// HandleExportPDF serves the current chart as a one-page PDF download
func (s *Server) HandleExportPDF(w http.ResponseWriter, r *http.Request) {
	s.handleExport(w, r, s.Exporter.Document)
}

// handleExport runs the shared export flow: build the chart
// description from session state, produce the artifact, send it as an
// attachment. A capture failure is logged and answered with an empty
// 500 body; the page itself never surfaces it.
func (s *Server) handleExport(
	w http.ResponseWriter,
	r *http.Request,
	produce func(ctx context.Context, spec charts.Spec) (export.Artifact, error),
) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ds := s.Session.Dataset()
	if len(ds) == 0 {
		// Export controls are hidden for an empty dataset; a direct hit
		// just goes back to the page.
		s.redirectHome(w, r, "")
		return
	}

	spec, err := charts.Build(s.Session.Kind(), ds)
	if err != nil {
		s.log.Error("Failed to build chart for export", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	art, err := produce(r.Context(), spec)
	if err != nil {
		s.log.Error("Export failed", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", art.ContentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", art.Filename))
	w.Write(art.Data)
}

// HandleListExports lists recently archived exports as JSON
func (s *Server) HandleListExports(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
		if limit > 100 {
			limit = 100
		}
	}

	exports, err := s.Archive.List(r.Context(), limit)
	if err != nil {
		s.log.Error("Failed to list exports", err)
		http.Error(w, "Failed to list exports", http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"exports":   exports,
		"count":     len(exports),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// HandleFileProxy serves archived export files
func (s *Server) HandleFileProxy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filePath := strings.TrimPrefix(r.URL.Path, "/files/")
	if filePath == "" {
		http.Error(w, "File path required", http.StatusBadRequest)
		return
	}
	if strings.Contains(filePath, "..") {
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	}

	data, err := s.Archive.Get(r.Context(), filePath)
	if err != nil {
		s.log.Debug("Archived file not found", map[string]interface{}{"path": filePath})
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", storage.GetContentType(filePath))
	w.Write(data)
}

// HandleHealth provides the health check endpoint
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   config.GetVersion(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}

// redirectHome sends the browser back to the builder page, optionally
// with a flash notice in the query string.
func (s *Server) redirectHome(w http.ResponseWriter, r *http.Request, notice string) {
	target := "/"
	if notice != "" {
		target = "/?notice=" + url.QueryEscape(notice)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

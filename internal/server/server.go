package server

import (
	"context"
	"fmt"
	"net/http"

	"chartbuilder/internal/config"
	"chartbuilder/internal/dataset"
	"chartbuilder/internal/export"
	"chartbuilder/internal/logger"
	"chartbuilder/internal/page"
	"chartbuilder/internal/storage"
)

// Server wires the builder page, the session state and the export
// pipeline together behind an HTTP mux.
type Server struct {
	Config   *config.Config
	Session  *dataset.Store
	Page     *page.Renderer
	Exporter *export.Exporter
	Archive  storage.Client

	log *logger.Logger
}

// NewServer creates a server instance with its dependencies initialized
// from configuration.
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	archive, err := storage.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize export archive: %w", err)
	}

	renderer, err := page.New(cfg.EChartsScriptURL, config.GetVersion())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize page renderer: %w", err)
	}

	return &Server{
		Config:   cfg,
		Session:  dataset.NewStore(),
		Page:     renderer,
		Exporter: export.New(archive),
		Archive:  archive,
		log:      logger.GetGlobalLogger().WithComponent("server"),
	}, nil
}

// SetupRoutes configures the HTTP routes
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/points", s.HandleAppendPoint)
	mux.HandleFunc("/points/delete", s.HandleRemovePoint)
	mux.HandleFunc("/dataset/clear", s.HandleClearDataset)
	mux.HandleFunc("/templates/load", s.HandleLoadTemplate)
	mux.HandleFunc("/templates/example", s.HandleTemplateExample)
	mux.HandleFunc("/import", s.HandleImportCSV)
	mux.HandleFunc("/kind", s.HandleSelectKind)
	mux.HandleFunc("/export/image", s.HandleExportImage)
	mux.HandleFunc("/export/pdf", s.HandleExportPDF)
	mux.HandleFunc("/exports", s.HandleListExports)
	mux.HandleFunc("/files/", s.HandleFileProxy)
	mux.HandleFunc("/health", s.HandleHealth)

	// Root last: catch-all for the builder page
	mux.HandleFunc("/", s.HandleBuilderPage)

	return mux
}

// Close releases server resources
func (s *Server) Close() error {
	if s.Archive != nil {
		return s.Archive.Close()
	}
	return nil
}

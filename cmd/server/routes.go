package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"

	"helpcenter/internal/config"
	"helpcenter/internal/faq"
	mcpserver "helpcenter/internal/mcp"
	"helpcenter/internal/metrics"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
)

// newRouter registers every endpoint and returns the root handler
func newRouter(cfg *config.Config, faqSvc *faq.Service, logger *slog.Logger) (http.Handler, error) {
	faqHandler := faq.NewHandler(faqSvc, faq.DefaultSite(), logger)

	// HTTP router
	mux := http.NewServeMux()

	// Static files
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to get static fs: %w", err)
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(sub))))

	// REST API endpoints
	mux.HandleFunc("GET /api/faqs", faqHandler.ListFaqs)
	mux.HandleFunc("GET /api/categories", faqHandler.ListCategories)

	// HTMX Web UI
	mux.HandleFunc("GET /", faqHandler.HelpPage)
	mux.HandleFunc("GET /fragments/faqs", faqHandler.FaqsFragment)

	// MCP endpoint (HTTP transport)
	// MCP uses POST for requests and GET for SSE streams
	if cfg.EnableMCP {
		mcpHTTP := server.NewStreamableHTTPServer(mcpserver.NewServer(faqSvc))
		mux.Handle("POST /mcp", mcpHTTP)
		mux.Handle("GET /mcp", mcpHTTP)
		mux.Handle("DELETE /mcp", mcpHTTP)
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	if !cfg.EnableMetrics {
		return mux, nil
	}

	httpMetrics, err := metrics.NewHTTPMetrics(prometheus.NewRegistry())
	if err != nil {
		return nil, err
	}
	mux.Handle("GET /metrics", httpMetrics.Handler())
	return httpMetrics.Wrap(mux), nil
}

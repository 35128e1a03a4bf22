package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"helpcenter/internal/config"
	"helpcenter/internal/faq"

	"github.com/spf13/cobra"
)

//go:embed static
var staticFS embed.FS

func main() {
	var configFile, port string

	root := &cobra.Command{
		Use:   "helpcenter",
		Short: "Serve the FAQ help center",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			return run(cfg)
		},
		SilenceUsage: true,
	}
	root.Flags().StringVar(&configFile, "config", "", "path to config file (default ./config.yaml)")
	root.Flags().StringVar(&port, "port", "", "listen port (overrides config)")

	if err := root.Execute(); err != nil {
		log.Fatalf("helpcenter: %v", err)
	}
}

func run(cfg *config.Config) error {
	logger, err := newLogger(cfg, os.Stdout)
	if err != nil {
		return err
	}

	// Wire dependencies
	faqSvc, err := faq.NewDefaultService()
	if err != nil {
		return fmt.Errorf("build faq service: %w", err)
	}
	logger.Info("faq catalog loaded", "records", faqSvc.Count(), "categories", len(faqSvc.Categories()))

	handler, err := newRouter(cfg, faqSvc, logger)
	if err != nil {
		return err
	}

	// Start server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	done := make(chan struct{})
	go func() {
		defer close(done)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		logger.Info("shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeout)*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", "error", err)
		}
	}()

	logger.Info("server starting", "port", cfg.Port)
	logger.Info("endpoints available",
		"web", "http://localhost:"+cfg.Port,
		"api", "http://localhost:"+cfg.Port+"/api",
		"mcp_enabled", cfg.EnableMCP,
		"metrics_enabled", cfg.EnableMetrics,
	)

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	<-done

	logger.Info("server stopped")
	return nil
}

func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})), nil
}

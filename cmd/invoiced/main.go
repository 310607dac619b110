package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/nicoyogi/netlify-invoice-parser/internal/common"
	"github.com/nicoyogi/netlify-invoice-parser/internal/export"
	"github.com/nicoyogi/netlify-invoice-parser/internal/extract"
	"github.com/nicoyogi/netlify-invoice-parser/internal/pdftext"
	"github.com/nicoyogi/netlify-invoice-parser/internal/pipeline"
	"github.com/nicoyogi/netlify-invoice-parser/internal/server"
)

func main() {
	// .env is optional; real deployments configure via the environment.
	_ = godotenv.Load()

	cfg := common.LoadConfig()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Logging.Level,
	}))
	slog.SetDefault(logger)

	catalog := extract.DefaultCatalog()
	if cfg.Extract.CatalogPath != "" {
		var err error
		catalog, err = extract.LoadCatalog(cfg.Extract.CatalogPath)
		if err != nil {
			logger.Error("loading extraction catalog", "path", cfg.Extract.CatalogPath, "error", err)
			os.Exit(1)
		}
		logger.Info("extraction catalog loaded", "path", cfg.Extract.CatalogPath)
	}

	p := pipeline.New(pdftext.NewExtractor(), catalog, logger)
	exporter := export.NewService(logger)
	srv := server.New(p, exporter, cfg.Server, logger)

	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		logger.Info("http serving", "addr", cfg.Server.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
	logger.Info("stopped")
}

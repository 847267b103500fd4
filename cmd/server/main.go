// Copyright Resume Extraction Gateway Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpAdapter "github.com/crewhire/resumegw/pkg/adapters/http"
	"github.com/crewhire/resumegw/pkg/artifact"
	_ "github.com/crewhire/resumegw/pkg/artifact/filesystem"
	_ "github.com/crewhire/resumegw/pkg/artifact/memory"
	_ "github.com/crewhire/resumegw/pkg/artifact/postgres"
	_ "github.com/crewhire/resumegw/pkg/artifact/s3"
	_ "github.com/crewhire/resumegw/pkg/artifact/sqlite"
	"github.com/crewhire/resumegw/pkg/core/api"
	"github.com/crewhire/resumegw/pkg/core/config"
	"github.com/crewhire/resumegw/pkg/core/pipeline"
	"github.com/crewhire/resumegw/pkg/extract"
	"github.com/crewhire/resumegw/pkg/observability/logging"
)

var (
	// Version is set via ldflags during build
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	port := flag.Int("port", 0, "HTTP port to listen on (overrides config)")
	version := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *version {
		fmt.Printf("Resume Extraction Gateway\nVersion: %s\nBuild Time: %s\n", Version, BuildTime)
		os.Exit(0)
	}

	// Load .env if present; real env vars take precedence in config.Load.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		cfg = config.Default()
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	logger.Info("Starting Resume Extraction Gateway",
		"version", Version,
		"build_time", BuildTime)

	initCtx := context.Background()

	// Artifact store
	store, err := artifact.Providers.New(initCtx, cfg.Artifact.Type, map[string]string{
		"base_dir": cfg.Artifact.BaseDir,
		"dsn":      cfg.Artifact.DSN,
		"bucket":   cfg.Artifact.S3Bucket,
		"region":   cfg.Artifact.S3Region,
		"prefix":   cfg.Artifact.S3Prefix,
		"endpoint": cfg.Artifact.S3Endpoint,
	})
	if err != nil {
		logger.Error("Failed to initialize artifact store", "error", err)
		os.Exit(1)
	}
	defer store.Close(context.Background())
	logger.Info("Initialized artifact store", "type", cfg.Artifact.Type)

	// Text extractor. OCR engine and rasterizer are deployment-specific and
	// injected here when available; without them, extraction is limited to
	// the native text layer.
	extractor := extract.New(extract.Options{
		DPI:    cfg.Extract.DPI,
		Logger: logger,
	})
	logger.Info("Initialized text extractor", "dpi", cfg.Extract.DPI)

	// Extraction backend client
	backend := api.NewOpenAIClient(cfg.Backend.Endpoint, cfg.Backend.APIKey)
	sampling := api.SamplingConfig{
		Model:       cfg.Backend.Model,
		Temperature: cfg.Backend.Temperature,
		MaxTokens:   cfg.Backend.MaxTokens,
	}
	logger.Info("Initialized extraction backend client", "model", cfg.Backend.Model)

	pipe, err := pipeline.New(extractor, backend, sampling, logger)
	if err != nil {
		logger.Error("Failed to initialize pipeline", "error", err)
		os.Exit(1)
	}

	handler := httpAdapter.New(pipe, store, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}

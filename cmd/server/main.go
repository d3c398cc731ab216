// Package main is the entry point for the supplier intake API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"supplierintake/internal/config"
	"supplierintake/internal/domain/delivery"
	"supplierintake/internal/domain/intake"
	v1 "supplierintake/internal/infrastructure/http/v1"
	"supplierintake/internal/infrastructure/metrics"
	"supplierintake/pkg/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Infow("starting supplierintake server",
		"version", version,
		"env", cfg.AppEnv,
		"local_currency", cfg.LocalCurrency,
		"foreign_currency", cfg.ForeignCurrency,
	)

	// --- Metrics ---
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(cfg.MetricsNamespace, reg)

	// --- Services ---
	deliveries := delivery.NewService(delivery.NewCalculator(cfg.Delivery()), m.Delivery)
	intakeService := intake.NewService(deliveries, m.Manifest)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Logger:         log,
		Deliveries:     deliveries,
		Intake:         intakeService,
		Metrics:        m.HTTP,
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		UploadMaxBytes: cfg.UploadMaxBytes,
		Version:        version,
		Env:            cfg.AppEnv,
		Development:    cfg.IsDevelopment(),
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.HTTPAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infow("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

// Command api serves the summarization HTTP API.
//
// Endpoints:
//
//	POST /summarize  extractive summary of a JSON text payload
//	GET  /healthz    liveness check
//	GET  /metrics    Prometheus metrics
package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"textrank/internal/config"
	hhttp "textrank/internal/handler/http"
	"textrank/internal/observability/logging"
	"textrank/internal/observability/tracing"
	"textrank/internal/usecase/summary"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	sumCfg, err := config.LoadSummarizerConfig()
	if err != nil {
		logger.Error("invalid summarizer configuration", slog.Any("error", err))
		os.Exit(1)
	}

	srvCfg, err := config.LoadServerConfig()
	if err != nil {
		logger.Error("invalid server configuration", slog.Any("error", err))
		os.Exit(1)
	}

	service := summary.NewService(sumCfg, summary.WithLogger(logger))

	handler := hhttp.NewRouter(service, logger, srvCfg.MaxBodySize, getVersion())
	if srvCfg.EnableTracing {
		otel.SetTracerProvider(sdktrace.NewTracerProvider())
		handler = tracing.Middleware(handler)
		logger.Info("tracing enabled")
	}

	runServer(logger, handler, srvCfg)
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, cfg config.ServerConfig) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", getVersion()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}

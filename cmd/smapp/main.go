// Command smapp runs the interactive social media client.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"smapp/internal/config"
	"smapp/internal/observability"
	"smapp/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	reset := flag.Bool("reset", false, "Drop and recreate all tables before starting")
	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Logs go to stderr so they do not interleave with the menus.
	observability.SetupLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	shutdownTracing, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:    "smapp",
		ServiceVersion: "0.1.0",
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExporter,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SamplerRatio:   cfg.TracingSamplerRatio,
	})
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, cfg, server.Options{ResetSchema: *reset})
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	runErr := srv.Run(ctx, os.Stdin, os.Stdout)

	if err := srv.Close(context.Background()); err != nil {
		observability.Logger.Error("shutdown error", slog.String("error", err.Error()))
	}
	if err := shutdownTracing(context.Background()); err != nil {
		observability.Logger.Error("tracing shutdown error", slog.String("error", err.Error()))
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Fatalf("Session ended with error: %v", runErr)
	}
}

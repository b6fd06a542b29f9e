package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"subtrack/internal/cli"
	apphttp "subtrack/internal/http"
	"subtrack/internal/notify"
	"subtrack/internal/preset"
	"subtrack/internal/services"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	cfg := cli.LoadAndValidateConfig(logger)

	backend := cli.OpenBackend(logger, cfg)
	defer backend.Close()

	planner := notify.NewPlanner(backend, cfg.NotificationsEnabled)

	store, err := services.NewStore(context.Background(), backend, planner)
	if err != nil {
		// The store is still usable with an empty list; serve and report.
		logger.Error("Failed to load persisted subscriptions", "error", err)
	}

	presets, err := preset.Catalog()
	if err != nil {
		logger.Error("Failed to load preset catalog", "error", err)
		os.Exit(1)
	}

	srv := apphttp.NewServer(":"+cfg.Port, store, presets)

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting subtrack server",
		"port", cfg.Port,
		"backend", cfg.DataBackend,
		"notifications", cfg.NotificationsEnabled)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}

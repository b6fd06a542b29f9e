package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"subtrack/internal/amqp"
	"subtrack/internal/cli"
	"subtrack/internal/services"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	logger.Info("Starting reminder-worker")

	cfg := cli.LoadAndValidateConfig(logger)

	backend := cli.OpenBackend(logger, cfg)
	defer backend.Close()

	// The AMQP client is optional: without it due reminders stay queued
	// in storage until a publisher comes back.
	var publisher services.ReminderPublisher
	if cfg.AMQPURL != "" {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, reminders will stay queued", "error", err)
		} else {
			defer amqpClient.Close()
			publisher = amqpClient
			logger.Info("AMQP client initialized", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		}
	} else {
		logger.Info("AMQP disabled, reminders will stay queued")
	}

	processor := services.NewReminderProcessor(backend, publisher, cfg.ReminderBatchSize)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Run initial processing on startup
	logger.Info("Running initial reminder processing...")
	if count, err := processor.ProcessDue(ctx, time.Now()); err != nil {
		logger.Error("Initial processing failed", "error", err)
	} else {
		logger.Info("Initial processing complete", "reminders_published", count)
	}

	scheduler := cron.New()
	_, err := scheduler.AddFunc(cfg.ReminderCron, func() {
		now := time.Now()
		count, err := processor.ProcessDue(ctx, now)
		if err != nil {
			logger.Error("Periodic processing failed", "error", err)
			return
		}
		logger.Info("Periodic processing complete",
			"reminders_published", count,
			"at", now.Format("15:04:05"))
	})
	if err != nil {
		logger.Error("Invalid reminder cron expression", "cron", cfg.ReminderCron, "error", err)
		os.Exit(1)
	}
	scheduler.Start()
	logger.Info("Reminder processor scheduled", "cron", cfg.ReminderCron, "batch_size", cfg.ReminderBatchSize)

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Shutdown signal received", "signal", sig.String())
	case <-ctx.Done():
		logger.Info("Context cancelled")
	}

	logger.Info("Shutting down reminder-worker...")
	cancel()

	// Let an in-flight run finish before exiting.
	stopCtx := scheduler.Stop()
	select {
	case <-stopCtx.Done():
		logger.Info("Reminder-worker shutdown complete")
	case <-time.After(30 * time.Second):
		logger.Warn("Shutdown timeout reached")
	}
}

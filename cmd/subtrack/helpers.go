package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"subtrack/internal/cli"
	"subtrack/internal/config"
	"subtrack/internal/core"
	"subtrack/internal/notify"
	"subtrack/internal/services"
)

// openStore loads the configured backend and the subscription list.
// The CLI logs at warn level only, so informational store logging does
// not clutter command output.
func openStore(ctx context.Context) (*services.Store, func(), error) {
	cli.LoadEnvFile()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	backend := cli.OpenBackend(slog.Default(), cfg)
	planner := notify.NewPlanner(backend, cfg.NotificationsEnabled)

	store, err := services.NewStore(ctx, backend, planner)
	if err != nil {
		backend.Close()
		return nil, nil, fmt.Errorf("load subscriptions: %w", err)
	}
	return store, func() { _ = backend.Close() }, nil
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	return t
}

// paymentCell renders the charge date for one row, marking overdue
// stored dates and showing the projected occurrence instead.
func paymentCell(s core.Subscription, now time.Time) string {
	effective, rolled := core.EffectiveUpcomingDate(s, now)
	if rolled {
		return text.FgRed.Sprintf("%s (was %s)",
			effective.Format("2006-01-02"),
			s.NextPaymentDate.Format("2006-01-02"))
	}
	return effective.Format("2006-01-02")
}

func formatCost(s core.Subscription) string {
	return core.FormatAmount(s.Cost.Major(), string(s.Currency))
}

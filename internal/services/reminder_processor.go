package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// ReminderProcessor drains due reminder rows and hands them to the
// message bus for delivery by the push gateway. Failures are isolated
// per reminder: a row that cannot be published stays queued for the next
// run.
type ReminderProcessor struct {
	reminders ReminderRepository
	publisher ReminderPublisher
	batchSize int
}

func NewReminderProcessor(reminders ReminderRepository, publisher ReminderPublisher, batchSize int) *ReminderProcessor {
	return &ReminderProcessor{
		reminders: reminders,
		publisher: publisher,
		batchSize: batchSize,
	}
}

// ProcessDue publishes every reminder whose fire time has passed and
// removes the delivered rows. Returns the number delivered.
func (p *ReminderProcessor) ProcessDue(ctx context.Context, now time.Time) (int, error) {
	if p.reminders == nil {
		return 0, fmt.Errorf("processor not properly initialized")
	}

	due, err := p.reminders.DueReminders(ctx, now, p.batchSize)
	if err != nil {
		return 0, fmt.Errorf("fetch due reminders: %w", err)
	}

	slog.InfoContext(ctx, "Processing due reminders",
		"due", len(due),
		"as_of", now.Format("2006-01-02 15:04"))

	sent := 0
	for _, r := range due {
		if p.publisher == nil {
			slog.WarnContext(ctx, "No reminder publisher configured, leaving reminder queued",
				"subscription_id", r.SubscriptionID)
			continue
		}

		if err := p.publisher.PublishReminder(ctx, r); err != nil {
			slog.ErrorContext(ctx, "Failed to publish reminder",
				"subscription_id", r.SubscriptionID,
				"fire_at", r.FireAt.Format("2006-01-02 15:04"),
				"error", err)
			continue
		}

		// One-shot delivery: the next charge gets a fresh row when the
		// store reschedules.
		if err := p.reminders.DeleteReminder(ctx, r.SubscriptionID); err != nil {
			slog.ErrorContext(ctx, "Failed to clear delivered reminder",
				"subscription_id", r.SubscriptionID,
				"error", err)
		}
		sent++
	}

	slog.InfoContext(ctx, "Reminder processing complete", "sent", sent, "due", len(due))
	return sent, nil
}

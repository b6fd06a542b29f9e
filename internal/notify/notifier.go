// Package notify plans pre-charge payment reminders. The planner only
// records when a reminder should fire; actual delivery happens in the
// reminder worker, which drains due rows onto the message bus.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"subtrack/internal/core"
	"subtrack/internal/services"
)

// ReminderLeadDays is how many days before the charge a reminder fires.
const ReminderLeadDays = 2

// Planner implements services.Notifier by persisting one reminder row
// per subscription.
type Planner struct {
	repo    services.ReminderRepository
	enabled bool
	now     func() time.Time
}

func NewPlanner(repo services.ReminderRepository, enabled bool) *Planner {
	return &Planner{repo: repo, enabled: enabled, now: time.Now}
}

// Enabled reports whether the user has granted reminder delivery.
// A disabled planner schedules nothing but still cancels.
func (p *Planner) Enabled() bool {
	return p.enabled
}

// Schedule plans the reminder for the subscription's next charge,
// replacing any pending one. A fire time already in the past means the
// occurrence gets no reminder.
func (p *Planner) Schedule(ctx context.Context, s core.Subscription) error {
	if !p.enabled {
		return nil
	}

	fireAt := s.NextPaymentDate.AddDate(0, 0, -ReminderLeadDays)
	if !fireAt.After(p.now()) {
		slog.DebugContext(ctx, "Reminder fire time already passed, not scheduling",
			"id", s.ID,
			"fire_at", fireAt.Format("2006-01-02"))
		return nil
	}

	r := core.Reminder{
		SubscriptionID: s.ID,
		FireAt:         fireAt,
		Body: fmt.Sprintf("%s charges %s in %d days",
			s.Name,
			core.FormatCents(float64(s.Cost.Cents), string(s.Currency)),
			ReminderLeadDays),
	}
	if err := p.repo.UpsertReminder(ctx, r); err != nil {
		return fmt.Errorf("upsert reminder: %w", err)
	}

	slog.InfoContext(ctx, "Reminder scheduled",
		"id", s.ID,
		"name", s.Name,
		"fire_at", fireAt.Format("2006-01-02"))
	return nil
}

// Cancel drops the pending reminder for the subscription, if any.
func (p *Planner) Cancel(ctx context.Context, subscriptionID string) error {
	if err := p.repo.DeleteReminder(ctx, subscriptionID); err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	return nil
}

// CancelAll drops every pending reminder.
func (p *Planner) CancelAll(ctx context.Context) error {
	if err := p.repo.DeleteAllReminders(ctx); err != nil {
		return fmt.Errorf("delete all reminders: %w", err)
	}
	return nil
}

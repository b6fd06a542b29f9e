package services

import (
	"context"
	"time"

	"subtrack/internal/core"
)

// Ports for outbound adapters.
type (
	// Repository persists the subscription list and app settings.
	// ListSubscriptions must preserve insertion order.
	Repository interface {
		ListSubscriptions(ctx context.Context) ([]core.Subscription, error)
		InsertSubscription(ctx context.Context, s core.Subscription) error
		UpdateSubscription(ctx context.Context, s core.Subscription) error
		DeleteSubscription(ctx context.Context, id string) error
		GetSetting(ctx context.Context, key string) (string, error)
		PutSetting(ctx context.Context, key, value string) error
	}

	// ReminderRepository persists planned payment reminders, keyed by
	// subscription id (one pending reminder per subscription).
	ReminderRepository interface {
		UpsertReminder(ctx context.Context, r core.Reminder) error
		DeleteReminder(ctx context.Context, subscriptionID string) error
		DeleteAllReminders(ctx context.Context) error
		DueReminders(ctx context.Context, now time.Time, limit int) ([]core.Reminder, error)
	}

	// Notifier schedules payment reminders as a side effect of store
	// mutations.
	Notifier interface {
		Schedule(ctx context.Context, s core.Subscription) error
		Cancel(ctx context.Context, subscriptionID string) error
		CancelAll(ctx context.Context) error
		Enabled() bool
	}

	// ReminderPublisher hands a due reminder to the outbound message bus.
	ReminderPublisher interface {
		PublishReminder(ctx context.Context, r core.Reminder) error
	}
)

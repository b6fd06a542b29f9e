package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"subtrack/internal/core"

	_ "modernc.org/sqlite"
)

// Dates are persisted as RFC 3339 text so they survive the round trip
// through the driver with their location intact.
const dateFormat = time.RFC3339

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ListSubscriptions implements services.Repository. Rows come back in
// insertion order, which the store relies on for stable UI ordering.
func (r *SQLiteRepository) ListSubscriptions(ctx context.Context) ([]core.Subscription, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, cost_cents, currency, billing_cycle, next_payment_date, category, description, is_active
		FROM subscriptions
		ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []core.Subscription
	for rows.Next() {
		var (
			s        core.Subscription
			cycle    string
			currency string
			category string
			nextDate string
		)
		err := rows.Scan(&s.ID, &s.Name, &s.Cost.Cents, &currency, &cycle, &nextDate, &category, &s.Description, &s.IsActive)
		if err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		s.Currency = core.Currency(currency)
		s.BillingCycle = core.BillingCycle(cycle)
		s.Category = core.Category(category)
		s.NextPaymentDate, err = time.Parse(dateFormat, nextDate)
		if err != nil {
			return nil, fmt.Errorf("parse next payment date for %s: %w", s.ID, err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subscriptions: %w", err)
	}
	return subs, nil
}

func (r *SQLiteRepository) InsertSubscription(ctx context.Context, s core.Subscription) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO subscriptions (id, name, cost_cents, currency, billing_cycle, next_payment_date, category, description, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Cost.Cents, string(s.Currency), string(s.BillingCycle),
		s.NextPaymentDate.Format(dateFormat), string(s.Category), s.Description, s.IsActive)
	if err != nil {
		return fmt.Errorf("insert subscription: %w", err)
	}

	slog.InfoContext(ctx, "Subscription saved to SQLite",
		"id", s.ID,
		"name", s.Name,
		"cost_cents", s.Cost.Cents)
	return nil
}

func (r *SQLiteRepository) UpdateSubscription(ctx context.Context, s core.Subscription) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE subscriptions
		SET name = ?, cost_cents = ?, currency = ?, billing_cycle = ?, next_payment_date = ?,
		    category = ?, description = ?, is_active = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		s.Name, s.Cost.Cents, string(s.Currency), string(s.BillingCycle),
		s.NextPaymentDate.Format(dateFormat), string(s.Category), s.Description, s.IsActive, s.ID)
	if err != nil {
		return fmt.Errorf("update subscription: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteSubscription(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM subscriptions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}
	return nil
}

// GetSetting returns the empty string for an unset key.
func (r *SQLiteRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting %s: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) PutSetting(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("put setting %s: %w", key, err)
	}
	return nil
}

// UpsertReminder implements services.ReminderRepository: one pending
// reminder per subscription, replaced on reschedule.
func (r *SQLiteRepository) UpsertReminder(ctx context.Context, rem core.Reminder) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reminders (subscription_id, fire_at, body) VALUES (?, ?, ?)
		ON CONFLICT(subscription_id) DO UPDATE SET fire_at = excluded.fire_at, body = excluded.body`,
		rem.SubscriptionID, rem.FireAt.Format(dateFormat), rem.Body)
	if err != nil {
		return fmt.Errorf("upsert reminder: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteReminder(ctx context.Context, subscriptionID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE subscription_id = ?`, subscriptionID)
	if err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteAllReminders(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reminders`)
	if err != nil {
		return fmt.Errorf("delete all reminders: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DueReminders(ctx context.Context, now time.Time, limit int) ([]core.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT subscription_id, fire_at, body
		FROM reminders
		WHERE fire_at <= ?
		ORDER BY fire_at
		LIMIT ?`,
		now.Format(dateFormat), limit)
	if err != nil {
		return nil, fmt.Errorf("query due reminders: %w", err)
	}
	defer rows.Close()

	var due []core.Reminder
	for rows.Next() {
		var (
			rem    core.Reminder
			fireAt string
		)
		if err := rows.Scan(&rem.SubscriptionID, &fireAt, &rem.Body); err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		rem.FireAt, err = time.Parse(dateFormat, fireAt)
		if err != nil {
			return nil, fmt.Errorf("parse fire time for %s: %w", rem.SubscriptionID, err)
		}
		due = append(due, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reminders: %w", err)
	}
	return due, nil
}

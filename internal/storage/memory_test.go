package storage

import (
	"context"
	"testing"
	"time"

	"subtrack/internal/core"
)

func testSub(id, name string) core.Subscription {
	return core.Subscription{
		ID:              id,
		Name:            name,
		Cost:            core.Money{Cents: 999},
		Currency:        core.USD,
		BillingCycle:    core.Monthly,
		NextPaymentDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Category:        core.Entertainment,
		IsActive:        true,
	}
}

func TestMemoryRepositoryPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	names := []string{"Netflix", "Spotify", "iCloud"}
	for i, name := range names {
		if err := repo.InsertSubscription(ctx, testSub(string(rune('a'+i)), name)); err != nil {
			t.Fatalf("insert %s: %v", name, err)
		}
	}

	subs, err := repo.ListSubscriptions(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(subs) != len(names) {
		t.Fatalf("got %d subscriptions, want %d", len(subs), len(names))
	}
	for i, name := range names {
		if subs[i].Name != name {
			t.Errorf("position %d: got %s, want %s", i, subs[i].Name, name)
		}
	}
}

func TestMemoryRepositoryUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	sub := testSub("a", "Netflix")
	if err := repo.InsertSubscription(ctx, sub); err != nil {
		t.Fatalf("insert: %v", err)
	}

	sub.Cost.Cents = 1299
	if err := repo.UpdateSubscription(ctx, sub); err != nil {
		t.Fatalf("update: %v", err)
	}
	subs, _ := repo.ListSubscriptions(ctx)
	if subs[0].Cost.Cents != 1299 {
		t.Errorf("got cost %d after update, want 1299", subs[0].Cost.Cents)
	}

	if err := repo.DeleteSubscription(ctx, "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	subs, _ = repo.ListSubscriptions(ctx)
	if len(subs) != 0 {
		t.Errorf("got %d subscriptions after delete, want 0", len(subs))
	}
}

func TestMemoryRepositoryDueReminders(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	now := time.Date(2026, 9, 13, 12, 0, 0, 0, time.UTC)

	reminders := []core.Reminder{
		{SubscriptionID: "late", FireAt: now.Add(-48 * time.Hour), Body: "late"},
		{SubscriptionID: "due", FireAt: now, Body: "due"},
		{SubscriptionID: "future", FireAt: now.Add(time.Hour), Body: "future"},
	}
	for _, rem := range reminders {
		if err := repo.UpsertReminder(ctx, rem); err != nil {
			t.Fatalf("upsert %s: %v", rem.SubscriptionID, err)
		}
	}

	due, err := repo.DueReminders(ctx, now, 10)
	if err != nil {
		t.Fatalf("due reminders: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("got %d due reminders, want 2", len(due))
	}
	if due[0].SubscriptionID != "late" || due[1].SubscriptionID != "due" {
		t.Errorf("got order %s, %s; want late, due", due[0].SubscriptionID, due[1].SubscriptionID)
	}

	limited, err := repo.DueReminders(ctx, now, 1)
	if err != nil {
		t.Fatalf("due reminders with limit: %v", err)
	}
	if len(limited) != 1 || limited[0].SubscriptionID != "late" {
		t.Errorf("limit 1: got %v, want just the oldest", limited)
	}
}

func TestMemoryRepositoryUpsertReplacesReminder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	now := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)

	first := core.Reminder{SubscriptionID: "a", FireAt: now.AddDate(0, 0, -1), Body: "old"}
	second := core.Reminder{SubscriptionID: "a", FireAt: now.AddDate(0, 0, -1), Body: "new"}
	repo.UpsertReminder(ctx, first)
	repo.UpsertReminder(ctx, second)

	due, _ := repo.DueReminders(ctx, now, 10)
	if len(due) != 1 {
		t.Fatalf("got %d reminders, want 1", len(due))
	}
	if due[0].Body != "new" {
		t.Errorf("got body %q, want %q", due[0].Body, "new")
	}
}

func TestMemoryRepositorySettings(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	value, err := repo.GetSetting(ctx, "preferred_currency")
	if err != nil {
		t.Fatalf("get unset: %v", err)
	}
	if value != "" {
		t.Errorf("unset key: got %q, want empty", value)
	}

	if err := repo.PutSetting(ctx, "preferred_currency", "EUR"); err != nil {
		t.Fatalf("put: %v", err)
	}
	value, _ = repo.GetSetting(ctx, "preferred_currency")
	if value != "EUR" {
		t.Errorf("got %q, want EUR", value)
	}
}

package notify

import (
	"context"
	"strings"
	"testing"
	"time"

	"subtrack/internal/core"
	"subtrack/internal/storage"
)

func netflix(date time.Time) core.Subscription {
	return core.Subscription{
		ID:              "sub-1",
		Name:            "Netflix",
		Cost:            core.Money{Cents: 999},
		Currency:        core.USD,
		BillingCycle:    core.Monthly,
		NextPaymentDate: date,
		Category:        core.Streaming,
		IsActive:        true,
	}
}

func fixedPlanner(repo *storage.MemoryRepository, enabled bool, now time.Time) *Planner {
	p := NewPlanner(repo, enabled)
	p.now = func() time.Time { return now }
	return p
}

func TestScheduleTwoDayLead(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRepository()
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	p := fixedPlanner(repo, true, now)

	payment := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	if err := p.Schedule(ctx, netflix(payment)); err != nil {
		t.Fatalf("schedule: %v", err)
	}

	due, err := repo.DueReminders(ctx, payment, 10)
	if err != nil {
		t.Fatalf("due reminders: %v", err)
	}
	if len(due) != 1 {
		t.Fatalf("got %d reminders, want 1", len(due))
	}
	want := payment.AddDate(0, 0, -2)
	if !due[0].FireAt.Equal(want) {
		t.Errorf("fire at: got %s, want %s", due[0].FireAt, want)
	}
	if !strings.Contains(due[0].Body, "Netflix") || !strings.Contains(due[0].Body, "2 days") {
		t.Errorf("body: %q", due[0].Body)
	}
}

func TestSchedulePastFireTimeSkipped(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRepository()
	now := time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)
	p := fixedPlanner(repo, true, now)

	// Payment tomorrow: the two-day lead already passed.
	payment := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	if err := p.Schedule(ctx, netflix(payment)); err != nil {
		t.Fatalf("schedule: %v", err)
	}

	due, _ := repo.DueReminders(ctx, payment, 10)
	if len(due) != 0 {
		t.Errorf("got %d reminders, want none for a past fire time", len(due))
	}
}

func TestScheduleDisabledPlanner(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRepository()
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	p := fixedPlanner(repo, false, now)

	if p.Enabled() {
		t.Error("planner should report disabled")
	}

	payment := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	if err := p.Schedule(ctx, netflix(payment)); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	due, _ := repo.DueReminders(ctx, payment, 10)
	if len(due) != 0 {
		t.Errorf("disabled planner scheduled %d reminders", len(due))
	}
}

func TestCancelRemovesReminder(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRepository()
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	p := fixedPlanner(repo, true, now)

	payment := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	p.Schedule(ctx, netflix(payment))

	if err := p.Cancel(ctx, "sub-1"); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	due, _ := repo.DueReminders(ctx, payment, 10)
	if len(due) != 0 {
		t.Errorf("reminder still present after cancel")
	}
}

func TestCancelAll(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRepository()
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	p := fixedPlanner(repo, true, now)

	payment := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	first := netflix(payment)
	second := netflix(payment)
	second.ID = "sub-2"
	p.Schedule(ctx, first)
	p.Schedule(ctx, second)

	if err := p.CancelAll(ctx); err != nil {
		t.Fatalf("cancel all: %v", err)
	}
	due, _ := repo.DueReminders(ctx, payment, 10)
	if len(due) != 0 {
		t.Errorf("%d reminders left after cancel all", len(due))
	}
}

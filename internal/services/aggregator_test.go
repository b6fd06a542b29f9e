package services

import (
	"math"
	"testing"
	"time"

	"subtrack/internal/core"
)

func sub(id, name string, cents int64, cycle core.BillingCycle, cat core.Category, date time.Time, active bool) core.Subscription {
	return core.Subscription{
		ID:              id,
		Name:            name,
		Cost:            core.Money{Cents: cents},
		Currency:        core.USD,
		BillingCycle:    cycle,
		NextPaymentDate: date,
		Category:        cat,
		IsActive:        active,
	}
}

func TestTotalsExcludeInactive(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	subs := []core.Subscription{
		sub("a", "Netflix", 999, core.Monthly, core.Streaming, date, true),
		sub("b", "Old Gym", 9999, core.Annually, core.Health, date, false),
	}

	if got := TotalMonthlyCents(subs); got != 999 {
		t.Errorf("monthly: got %v, want 999", got)
	}
	if got := TotalYearlyCents(subs); got != 999*12 {
		t.Errorf("yearly: got %v, want %v", got, 999*12)
	}
}

func TestYearlyIsTwelveTimesMonthly(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	subs := []core.Subscription{
		sub("a", "A", 999, core.Weekly, core.Other, date, true),
		sub("b", "B", 1234, core.Quarterly, core.Other, date, true),
		sub("c", "C", 777, core.SemiAnnually, core.Other, date, true),
		sub("d", "D", 8999, core.Annually, core.Other, date, true),
	}

	monthly := TotalMonthlyCents(subs)
	yearly := TotalYearlyCents(subs)
	if math.Abs(yearly-monthly*12) > 1e-9 {
		t.Errorf("yearly %v is not exactly monthly %v times 12", yearly, monthly)
	}
}

func TestCategoryCostsSortedAndFiltered(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	subs := []core.Subscription{
		sub("a", "Netflix", 999, core.Monthly, core.Streaming, date, true),
		sub("b", "Disney+", 1399, core.Monthly, core.Streaming, date, true),
		sub("c", "Spotify", 1099, core.Monthly, core.Music, date, true),
		sub("d", "Headspace", 1299, core.Monthly, core.Health, date, false),
	}

	costs := CategoryCosts(subs)
	if len(costs) != 2 {
		t.Fatalf("got %d categories, want 2 (inactive health omitted)", len(costs))
	}
	if costs[0].Category != core.Streaming || costs[0].MonthlyCents != 999+1399 {
		t.Errorf("first entry: %+v", costs[0])
	}
	if costs[1].Category != core.Music || costs[1].MonthlyCents != 1099 {
		t.Errorf("second entry: %+v", costs[1])
	}
}

func TestCategoryCostsTieBreaksByCategory(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	subs := []core.Subscription{
		sub("a", "A", 1000, core.Monthly, core.Streaming, date, true),
		sub("b", "B", 1000, core.Monthly, core.Music, date, true),
	}

	costs := CategoryCosts(subs)
	if costs[0].Category != core.Music || costs[1].Category != core.Streaming {
		t.Errorf("equal costs must order by category tag: %v", costs)
	}
}

func TestSummarize(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	subs := []core.Subscription{
		sub("a", "Netflix", 999, core.Monthly, core.Streaming, date, true),
		sub("b", "Old Gym", 9999, core.Annually, core.Health, date, false),
	}

	s := Summarize(subs)
	if s.ActiveCount != 1 {
		t.Errorf("active count: got %d, want 1", s.ActiveCount)
	}
	if s.MonthlyCents != 999 || s.YearlyCents != 999*12 {
		t.Errorf("totals: %+v", s)
	}
	if len(s.ByCategory) != 1 || s.ByCategory[0].Category != core.Streaming {
		t.Errorf("by category: %v", s.ByCategory)
	}
}

func TestNextUpcomingPayment(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	at := func(day int) time.Time { return time.Date(2026, 9, day, 0, 0, 0, 0, time.UTC) }

	subs := []core.Subscription{
		sub("c", "Later", 999, core.Monthly, core.Other, at(20), true),
		sub("b", "Soon", 999, core.Monthly, core.Other, at(5), true),
		sub("a", "Overdue", 999, core.Monthly, core.Other, at(1).AddDate(0, -1, 0), true),
		sub("d", "Inactive", 999, core.Monthly, core.Other, at(2), false),
	}

	next, ok := NextUpcomingPayment(subs, now)
	if !ok || next.Name != "Soon" {
		t.Errorf("got %v/%v, want Soon (raw overdue date excluded)", next.Name, ok)
	}

	// Same date: the smaller id wins.
	tied := []core.Subscription{
		sub("z", "Z", 999, core.Monthly, core.Other, at(5), true),
		sub("a", "A", 999, core.Monthly, core.Other, at(5), true),
	}
	next, ok = NextUpcomingPayment(tied, now)
	if !ok || next.ID != "a" {
		t.Errorf("tie break: got %s, want a", next.ID)
	}

	if _, ok := NextUpcomingPayment(nil, now); ok {
		t.Error("empty list must report no upcoming payment")
	}
}

func TestUpcomingPaymentsWindow(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	at := func(y, m, d int) time.Time { return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC) }

	subs := []core.Subscription{
		sub("a", "Today", 999, core.Monthly, core.Other, at(2026, 9, 1), true),
		sub("b", "LastDay", 999, core.Monthly, core.Other, at(2026, 10, 1), true),
		sub("c", "TooFar", 999, core.Monthly, core.Other, at(2026, 10, 2), true),
		sub("d", "Past", 999, core.Monthly, core.Other, at(2026, 8, 31), true),
		sub("e", "Inactive", 999, core.Monthly, core.Other, at(2026, 9, 10), false),
	}

	got := UpcomingPayments(subs, now, 30)
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2 (window ends inclusive)", len(got))
	}
	if got[0].Name != "Today" || got[1].Name != "LastDay" {
		t.Errorf("order: %s, %s", got[0].Name, got[1].Name)
	}

	if got := UpcomingPayments(subs, now, 0); len(got) != 1 || got[0].Name != "Today" {
		t.Errorf("zero-day window: %v", got)
	}
}

package services

import (
	"sort"
	"time"

	"subtrack/internal/core"
)

// Aggregates are derived views over a read-only snapshot of the
// subscription list. Inactive records are excluded from every aggregate.
// Nothing is cached; lists are user-scale and recomputing per read keeps
// the views trivially consistent.

// DefaultUpcomingWindowDays is the dashboard's upcoming-payments window.
const DefaultUpcomingWindowDays = 30

// TotalMonthlyCents sums the monthly-equivalent cost of the active
// subscriptions, in cents.
func TotalMonthlyCents(subs []core.Subscription) float64 {
	var total float64
	for _, s := range subs {
		if s.IsActive {
			total += s.MonthlyCost()
		}
	}
	return total
}

// TotalYearlyCents is the monthly total times twelve, by construction,
// so the two dashboard figures can never drift apart.
func TotalYearlyCents(subs []core.Subscription) float64 {
	return TotalMonthlyCents(subs) * 12
}

// CategoryCosts sums monthly-equivalent costs per category, descending
// by cost with the category tag breaking ties. Categories without active
// subscriptions are omitted, not zero-filled.
func CategoryCosts(subs []core.Subscription) []core.CategoryCost {
	byCategory := make(map[core.Category]float64)
	for _, s := range subs {
		if s.IsActive {
			byCategory[s.Category] += s.MonthlyCost()
		}
	}

	out := make([]core.CategoryCost, 0, len(byCategory))
	for cat, cents := range byCategory {
		if cents <= 0 {
			continue
		}
		out = append(out, core.CategoryCost{Category: cat, MonthlyCents: cents})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MonthlyCents != out[j].MonthlyCents {
			return out[i].MonthlyCents > out[j].MonthlyCents
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// Summarize bundles the dashboard aggregates for one snapshot.
func Summarize(subs []core.Subscription) core.Summary {
	monthly := TotalMonthlyCents(subs)
	active := 0
	for _, s := range subs {
		if s.IsActive {
			active++
		}
	}
	return core.Summary{
		MonthlyCents: monthly,
		YearlyCents:  monthly * 12,
		ActiveCount:  active,
		ByCategory:   CategoryCosts(subs),
	}
}

// NextUpcomingPayment returns the active subscription with the earliest
// stored payment date at or after now, ties broken by id. Raw stored
// dates throughout: an overdue subscription never surfaces here, it
// shows up through the per-row projection instead.
func NextUpcomingPayment(subs []core.Subscription, now time.Time) (core.Subscription, bool) {
	var best core.Subscription
	found := false
	for _, s := range subs {
		if !s.IsActive || s.NextPaymentDate.Before(now) {
			continue
		}
		switch {
		case !found,
			s.NextPaymentDate.Before(best.NextPaymentDate),
			s.NextPaymentDate.Equal(best.NextPaymentDate) && s.ID < best.ID:
			best = s
			found = true
		}
	}
	return best, found
}

// UpcomingPayments returns the active subscriptions whose raw stored
// date falls within [now, now+windowDays], both ends inclusive, sorted
// ascending by date with id breaking ties.
func UpcomingPayments(subs []core.Subscription, now time.Time, windowDays int) []core.Subscription {
	end := now.AddDate(0, 0, windowDays)
	var out []core.Subscription
	for _, s := range subs {
		if !s.IsActive {
			continue
		}
		if s.NextPaymentDate.Before(now) || s.NextPaymentDate.After(end) {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].NextPaymentDate.Equal(out[j].NextPaymentDate) {
			return out[i].NextPaymentDate.Before(out[j].NextPaymentDate)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

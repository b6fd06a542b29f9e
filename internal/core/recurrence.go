package core

import (
	"fmt"
	"time"
)

// weeksPerMonth is the average number of weeks in a month, used to
// normalize weekly charges to a monthly-equivalent figure.
const weeksPerMonth = 4.33

// maxRollForward bounds the overdue projection loop. Even a weekly
// subscription untouched for a decade rolls forward in ~520 steps.
const maxRollForward = 1024

func init() {
	// A billing cycle added to the enum without a factor or a period must
	// fail at process start, never default silently at runtime.
	for _, c := range AllBillingCycles {
		c.MonthlyFactor()
		c.Months()
		Subscription{BillingCycle: c}.NextPaymentAfter(time.Now())
	}
}

// MonthlyFactor is the multiplier that normalizes one charge on this
// cycle to an average monthly figure.
func (c BillingCycle) MonthlyFactor() float64 {
	switch c {
	case Weekly:
		return weeksPerMonth
	case Monthly:
		return 1
	case Quarterly:
		return 1.0 / 3
	case SemiAnnually:
		return 1.0 / 6
	case Annually:
		return 1.0 / 12
	}
	panic(fmt.Sprintf("no monthly factor registered for billing cycle %q", string(c)))
}

// Months returns the cycle length expressed in months.
func (c BillingCycle) Months() float64 {
	switch c {
	case Weekly:
		return 1 / weeksPerMonth
	case Monthly:
		return 1
	case Quarterly:
		return 3
	case SemiAnnually:
		return 6
	case Annually:
		return 12
	}
	panic(fmt.Sprintf("no period registered for billing cycle %q", string(c)))
}

// MonthlyCost returns the subscription's cost normalized to an average
// monthly figure, in cents. The value stays unrounded; rounding is a
// formatting concern.
func (s Subscription) MonthlyCost() float64 {
	return float64(s.Cost.Cents) * s.BillingCycle.MonthlyFactor()
}

// NextPaymentAfter advances the given date by exactly one billing cycle
// using calendar-aware addition: weeks are 7 days, month-based cycles
// clamp the day to the target month's last valid day, so a Jan 31
// billing date lands on Feb 28 (or 29), not Mar 2.
func (s Subscription) NextPaymentAfter(date time.Time) time.Time {
	switch s.BillingCycle {
	case Weekly:
		return date.AddDate(0, 0, 7)
	case Monthly:
		return addMonthsClamped(date, 1)
	case Quarterly:
		return addMonthsClamped(date, 3)
	case SemiAnnually:
		return addMonthsClamped(date, 6)
	case Annually:
		return addMonthsClamped(date, 12)
	}
	panic(fmt.Sprintf("no period registered for billing cycle %q", string(s.BillingCycle)))
}

func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	// Day zero of the following month is the last day of the target month.
	lastDay := time.Date(first.Year(), first.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
	if day > lastDay {
		day = lastDay
	}
	hour, min, sec := t.Clock()
	return time.Date(first.Year(), first.Month(), day, hour, min, sec, t.Nanosecond(), t.Location())
}

// EffectiveUpcomingDate resolves the subscription's next charge relative
// to asOf. A stored date at or after asOf is returned unchanged; a past
// date is rolled forward one cycle at a time until it catches up, and the
// second return reports that the stored date was overdue. This is the
// only place overdue dates are projected, and it never mutates state.
func EffectiveUpcomingDate(s Subscription, asOf time.Time) (time.Time, bool) {
	next := s.NextPaymentDate
	if !next.Before(asOf) {
		return next, false
	}
	for i := 0; i < maxRollForward; i++ {
		advanced := s.NextPaymentAfter(next)
		if !advanced.After(next) {
			panic(fmt.Sprintf("billing cycle %q did not advance past %s", string(s.BillingCycle), next.Format("2006-01-02")))
		}
		next = advanced
		if !next.Before(asOf) {
			return next, true
		}
	}
	panic(fmt.Sprintf("projection for %q did not reach %s within %d cycles", s.ID, asOf.Format("2006-01-02"), maxRollForward))
}

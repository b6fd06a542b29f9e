package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Weekly       BillingCycle = "weekly"
	Monthly      BillingCycle = "monthly"
	Quarterly    BillingCycle = "quarterly"
	SemiAnnually BillingCycle = "semiAnnually"
	Annually     BillingCycle = "annually"
)

const (
	Entertainment Category = "entertainment"
	Productivity  Category = "productivity"
	Finance       Category = "finance"
	Health        Category = "health"
	Education     Category = "education"
	News          Category = "news"
	Music         Category = "music"
	Streaming     Category = "streaming"
	Gaming        Category = "gaming"
	Business      Category = "business"
	Utilities     Category = "utilities"
	Other         Category = "other"
)

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	TWD Currency = "TWD"
)

type (
	BillingCycle string
	Category     string
	Currency     string

	// Subscription is a recurring financial obligation. Costs are tagged
	// with a currency but never converted between currencies.
	Subscription struct {
		ID              string
		Name            string
		Cost            Money
		Currency        Currency
		BillingCycle    BillingCycle
		NextPaymentDate time.Time
		Category        Category
		Description     string
		IsActive        bool
	}

	// Reminder is the planned pre-charge notification for a subscription.
	// At most one exists per subscription; rescheduling replaces it.
	Reminder struct {
		SubscriptionID string
		FireAt         time.Time
		Body           string
	}
)

var (
	ErrEmptyName       = errors.New("empty name")
	ErrInvalidCost     = errors.New("invalid cost")
	ErrInvalidCycle    = errors.New("invalid billing cycle")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidCurrency = errors.New("invalid currency")
	ErrZeroDate        = errors.New("next payment date cannot be zero")
)

// Closed enumerations. New tags must be added here and in every accessor
// switch; the init check in recurrence.go fails the process otherwise.
var (
	AllBillingCycles = []BillingCycle{Weekly, Monthly, Quarterly, SemiAnnually, Annually}

	AllCategories = []Category{
		Entertainment, Productivity, Finance, Health, Education, News,
		Music, Streaming, Gaming, Business, Utilities, Other,
	}

	AllCurrencies = []Currency{USD, EUR, GBP, JPY, TWD}
)

func (c BillingCycle) Valid() bool {
	switch c {
	case Weekly, Monthly, Quarterly, SemiAnnually, Annually:
		return true
	}
	return false
}

// DisplayName returns the English label for the cycle tag. Localized
// labels live in the display layer; the core only compares tags.
func (c BillingCycle) DisplayName() string {
	switch c {
	case Weekly:
		return "Weekly"
	case Monthly:
		return "Monthly"
	case Quarterly:
		return "Quarterly"
	case SemiAnnually:
		return "Semi-annually"
	case Annually:
		return "Annually"
	}
	return string(c)
}

// ShortName is the per-period suffix used next to amounts ("$4.00 / month").
func (c BillingCycle) ShortName() string {
	switch c {
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	case Quarterly:
		return "3 months"
	case SemiAnnually:
		return "6 months"
	case Annually:
		return "year"
	}
	return string(c)
}

func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) DisplayName() string {
	switch c {
	case Entertainment:
		return "Entertainment"
	case Productivity:
		return "Productivity"
	case Finance:
		return "Finance"
	case Health:
		return "Health & Fitness"
	case Education:
		return "Education"
	case News:
		return "News & Magazines"
	case Music:
		return "Music"
	case Streaming:
		return "Video Streaming"
	case Gaming:
		return "Gaming"
	case Business:
		return "Business"
	case Utilities:
		return "Utilities"
	case Other:
		return "Other"
	}
	return string(c)
}

// IconName is the fixed icon association for the category.
func (c Category) IconName() string {
	switch c {
	case Entertainment:
		return "tv"
	case Productivity:
		return "hammer"
	case Finance:
		return "dollarsign.circle"
	case Health:
		return "heart"
	case Education:
		return "book"
	case News:
		return "newspaper"
	case Music:
		return "music.note"
	case Streaming:
		return "play.rectangle"
	case Gaming:
		return "gamecontroller"
	case Business:
		return "briefcase"
	case Utilities:
		return "wrench.and.screwdriver"
	case Other:
		return "folder"
	}
	return "folder"
}

func (c Currency) Valid() bool {
	switch c {
	case USD, EUR, GBP, JPY, TWD:
		return true
	}
	return false
}

func (c Currency) Symbol() string {
	switch c {
	case USD:
		return "$"
	case EUR:
		return "€"
	case GBP:
		return "£"
	case JPY:
		return "¥"
	case TWD:
		return "NT$"
	}
	return "$"
}

func (c Currency) DisplayName() string {
	switch c {
	case USD:
		return "US Dollar"
	case EUR:
		return "Euro"
	case GBP:
		return "British Pound"
	case JPY:
		return "Japanese Yen"
	case TWD:
		return "Taiwan Dollar"
	}
	return string(c)
}

func (s Subscription) Validate() error {
	if len(strings.TrimSpace(s.Name)) == 0 {
		return ErrEmptyName
	}
	if err := s.Cost.Validate(); err != nil {
		return err
	}
	if !s.Currency.Valid() {
		return ErrInvalidCurrency
	}
	if !s.BillingCycle.Valid() {
		return ErrInvalidCycle
	}
	if !s.Category.Valid() {
		return ErrInvalidCategory
	}
	if s.NextPaymentDate.IsZero() {
		return ErrZeroDate
	}
	return nil
}

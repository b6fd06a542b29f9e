package core

import (
	"errors"
	"testing"
	"time"
)

func validSubscription() Subscription {
	return Subscription{
		ID:              "sub-1",
		Name:            "Spotify Premium",
		Cost:            Money{Cents: 999},
		Currency:        USD,
		BillingCycle:    Monthly,
		NextPaymentDate: time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC),
		Category:        Music,
		IsActive:        true,
	}
}

func TestSubscriptionValidate(t *testing.T) {
	if err := validSubscription().Validate(); err != nil {
		t.Fatalf("expected valid subscription, got %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*Subscription)
		wantErr error
	}{
		{"empty name", func(s *Subscription) { s.Name = "   " }, ErrEmptyName},
		{"zero cost", func(s *Subscription) { s.Cost.Cents = 0 }, ErrInvalidCost},
		{"negative cost", func(s *Subscription) { s.Cost.Cents = -100 }, ErrInvalidCost},
		{"unknown currency", func(s *Subscription) { s.Currency = "AUD" }, ErrInvalidCurrency},
		{"free-form cycle", func(s *Subscription) { s.BillingCycle = "fortnightly" }, ErrInvalidCycle},
		{"free-form category", func(s *Subscription) { s.Category = "pets" }, ErrInvalidCategory},
		{"zero date", func(s *Subscription) { s.NextPaymentDate = time.Time{} }, ErrZeroDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubscription()
			tt.mutate(&sub)
			if err := sub.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnumerationsAreClosed(t *testing.T) {
	for _, c := range AllBillingCycles {
		if !c.Valid() {
			t.Errorf("billing cycle %q not valid", c)
		}
		if c.DisplayName() == "" || c.ShortName() == "" {
			t.Errorf("billing cycle %q missing display names", c)
		}
	}
	if BillingCycle("biweekly").Valid() {
		t.Error("unknown cycle reported valid")
	}

	if len(AllCategories) != 12 {
		t.Fatalf("expected 12 categories, got %d", len(AllCategories))
	}
	for _, c := range AllCategories {
		if !c.Valid() {
			t.Errorf("category %q not valid", c)
		}
		if c.IconName() == "" {
			t.Errorf("category %q missing icon", c)
		}
	}

	for _, c := range AllCurrencies {
		if !c.Valid() {
			t.Errorf("currency %q not valid", c)
		}
		if c.Symbol() == "" {
			t.Errorf("currency %q missing symbol", c)
		}
	}
	if Currency("BTC").Valid() {
		t.Error("unknown currency reported valid")
	}
}

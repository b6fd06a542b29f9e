// Package services holds the subscription store, the aggregation
// functions and the reminder processing built on top of the core model.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"subtrack/internal/core"
)

var (
	// ErrNotFound signals an update referencing an unknown id. Delete is
	// deliberately a silent no-op instead; removing an absent record is
	// idempotent.
	ErrNotFound = errors.New("subscription not found")

	// ErrPersistFailed marks a mutation that was applied in memory but
	// could not be written through to durable storage. The in-memory
	// list stays authoritative for the session; callers surface the
	// degradation instead of rolling back.
	ErrPersistFailed = errors.New("persist failed")
)

const preferredCurrencyKey = "preferred_currency"

// Store owns the authoritative subscription list. Mutations go through
// Add/Update/Delete only; reads get copies. Every mutation is written
// through to the repository and mirrored to the notifier.
type Store struct {
	mu        sync.Mutex
	repo      Repository
	notifier  Notifier
	subs      []core.Subscription
	preferred core.Currency
}

// NewStore loads the persisted list. On load failure the store starts
// with an empty list and the error is returned alongside the usable
// store so the caller can report it without crashing.
func NewStore(ctx context.Context, repo Repository, notifier Notifier) (*Store, error) {
	s := &Store{repo: repo, notifier: notifier, preferred: core.TWD}

	if v, err := repo.GetSetting(ctx, preferredCurrencyKey); err == nil {
		if c := core.Currency(v); c.Valid() {
			s.preferred = c
		}
	}

	subs, err := repo.ListSubscriptions(ctx)
	if err != nil {
		return s, fmt.Errorf("load subscriptions: %w", err)
	}
	s.subs = subs
	return s, nil
}

// Add validates the draft, assigns a fresh id and appends it to the
// list. A returned ErrPersistFailed means the record is live in memory
// but the durable write failed.
func (s *Store) Add(ctx context.Context, draft core.Subscription) (core.Subscription, error) {
	draft.ID = uuid.NewString()
	if err := draft.Validate(); err != nil {
		return core.Subscription{}, err
	}

	s.mu.Lock()
	s.subs = append(s.subs, draft)
	s.mu.Unlock()

	slog.InfoContext(ctx, "Subscription added",
		"id", draft.ID,
		"name", draft.Name,
		"cost_cents", draft.Cost.Cents,
		"currency", string(draft.Currency),
		"cycle", string(draft.BillingCycle))

	if draft.IsActive {
		if err := s.notifier.Schedule(ctx, draft); err != nil {
			slog.WarnContext(ctx, "Failed to schedule reminder", "id", draft.ID, "error", err)
		}
	}

	if err := s.repo.InsertSubscription(ctx, draft); err != nil {
		slog.ErrorContext(ctx, "Failed to persist subscription", "id", draft.ID, "error", err)
		return draft, fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	return draft, nil
}

// Update replaces the record with matching id. The stale reminder is
// cancelled first and rescheduled only when the updated record is still
// active.
func (s *Store) Update(ctx context.Context, sub core.Subscription) error {
	if err := sub.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	idx := s.indexOfLocked(sub.ID)
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.subs[idx] = sub
	s.mu.Unlock()

	if err := s.notifier.Cancel(ctx, sub.ID); err != nil {
		slog.WarnContext(ctx, "Failed to cancel stale reminder", "id", sub.ID, "error", err)
	}
	if sub.IsActive {
		if err := s.notifier.Schedule(ctx, sub); err != nil {
			slog.WarnContext(ctx, "Failed to reschedule reminder", "id", sub.ID, "error", err)
		}
	}

	if err := s.repo.UpdateSubscription(ctx, sub); err != nil {
		slog.ErrorContext(ctx, "Failed to persist subscription update", "id", sub.ID, "error", err)
		return fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	return nil
}

// Delete removes the record and its reminder. Deleting an unknown id is
// a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := s.indexOfLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	s.subs = append(s.subs[:idx], s.subs[idx+1:]...)
	s.mu.Unlock()

	if err := s.notifier.Cancel(ctx, id); err != nil {
		slog.WarnContext(ctx, "Failed to cancel reminder", "id", id, "error", err)
	}

	if err := s.repo.DeleteSubscription(ctx, id); err != nil {
		slog.ErrorContext(ctx, "Failed to persist subscription delete", "id", id, "error", err)
		return fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	slog.InfoContext(ctx, "Subscription deleted", "id", id)
	return nil
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (core.Subscription, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOfLocked(id)
	if idx < 0 {
		return core.Subscription{}, false
	}
	return s.subs[idx], true
}

// List returns the full list in insertion order. The slice is a copy;
// mutation happens only through Add/Update/Delete.
func (s *Store) List() []core.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Subscription(nil), s.subs...)
}

// Active returns the active records, in insertion order.
func (s *Store) Active() []core.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Subscription, 0, len(s.subs))
	for _, sub := range s.subs {
		if sub.IsActive {
			out = append(out, sub)
		}
	}
	return out
}

// RescheduleAll drops every pending reminder and replans one for each
// active subscription, e.g. after notifications get (re-)enabled.
// Planning fans out per subscription; the first scheduling error is
// returned after the remaining plans finish.
func (s *Store) RescheduleAll(ctx context.Context) error {
	if err := s.notifier.CancelAll(ctx); err != nil {
		return fmt.Errorf("cancel reminders: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, sub := range s.Active() {
		sub := sub
		g.Go(func() error {
			if err := s.notifier.Schedule(ctx, sub); err != nil {
				return fmt.Errorf("reschedule reminder for %s: %w", sub.ID, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// PreferredCurrency is the app-wide default display currency.
func (s *Store) PreferredCurrency() core.Currency {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preferred
}

func (s *Store) SetPreferredCurrency(ctx context.Context, c core.Currency) error {
	if !c.Valid() {
		return core.ErrInvalidCurrency
	}
	s.mu.Lock()
	s.preferred = c
	s.mu.Unlock()

	if err := s.repo.PutSetting(ctx, preferredCurrencyKey, string(c)); err != nil {
		slog.ErrorContext(ctx, "Failed to persist preferred currency", "currency", string(c), "error", err)
		return fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	return nil
}

func (s *Store) indexOfLocked(id string) int {
	for i := range s.subs {
		if s.subs[i].ID == id {
			return i
		}
	}
	return -1
}

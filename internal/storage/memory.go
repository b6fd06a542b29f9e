package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"subtrack/internal/core"
)

// MemoryRepository keeps everything in process memory. It backs tests
// and the memory data backend, where losing state on exit is fine.
type MemoryRepository struct {
	mu        sync.Mutex
	subs      []core.Subscription
	reminders map[string]core.Reminder
	settings  map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		reminders: make(map[string]core.Reminder),
		settings:  make(map[string]string),
	}
}

func (r *MemoryRepository) Close() error { return nil }

func (r *MemoryRepository) ListSubscriptions(_ context.Context) ([]core.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.Subscription, len(r.subs))
	copy(out, r.subs)
	return out, nil
}

func (r *MemoryRepository) InsertSubscription(_ context.Context, s core.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = append(r.subs, s)
	return nil
}

func (r *MemoryRepository) UpdateSubscription(_ context.Context, s core.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.subs {
		if r.subs[i].ID == s.ID {
			r.subs[i] = s
			return nil
		}
	}
	return nil
}

func (r *MemoryRepository) DeleteSubscription(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.subs {
		if r.subs[i].ID == id {
			r.subs = append(r.subs[:i], r.subs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *MemoryRepository) GetSetting(_ context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.settings[key], nil
}

func (r *MemoryRepository) PutSetting(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings[key] = value
	return nil
}

func (r *MemoryRepository) UpsertReminder(_ context.Context, rem core.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reminders[rem.SubscriptionID] = rem
	return nil
}

func (r *MemoryRepository) DeleteReminder(_ context.Context, subscriptionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.reminders, subscriptionID)
	return nil
}

func (r *MemoryRepository) DeleteAllReminders(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reminders = make(map[string]core.Reminder)
	return nil
}

func (r *MemoryRepository) DueReminders(_ context.Context, now time.Time, limit int) ([]core.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var due []core.Reminder
	for _, rem := range r.reminders {
		if !rem.FireAt.After(now) {
			due = append(due, rem)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].FireAt.Before(due[j].FireAt) })
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

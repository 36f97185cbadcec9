package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"zentro/internal/models"
)

// MemoryHandoff is the default single-process HandoffStore.
type MemoryHandoff struct {
	mu    sync.Mutex
	slots map[string]models.TransactionSummary
}

// NewMemoryHandoff creates an empty in-memory handoff store.
func NewMemoryHandoff() *MemoryHandoff {
	return &MemoryHandoff{slots: make(map[string]models.TransactionSummary)}
}

// Put stores the summary for key, replacing any unread one.
func (s *MemoryHandoff) Put(_ context.Context, key string, summary models.TransactionSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = summary
	return nil
}

// Take returns the summary for key and deletes it in the same step.
func (s *MemoryHandoff) Take(_ context.Context, key string) (*models.TransactionSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	summary, ok := s.slots[key]
	if !ok {
		return nil, ErrNoSummary
	}
	delete(s.slots, key)
	return &summary, nil
}

// UserStore is the in-memory mock user database.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]models.User // keyed by lowercase email
}

// NewUserStore creates an empty user store.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]models.User)}
}

// FindByEmail looks a user up by email, case-insensitively.
func (s *UserStore) FindByEmail(email string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[strings.ToLower(email)]
	if !ok {
		return nil, false
	}
	return &u, true
}

// Save inserts or replaces a user record.
func (s *UserStore) Save(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[strings.ToLower(u.Email)] = u
}

// List returns all users sorted by creation time.
func (s *UserStore) List() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// OrderLog records completed checkouts for the admin views.
type OrderLog struct {
	mu     sync.RWMutex
	orders []models.Order
}

// NewOrderLog creates an empty order log.
func NewOrderLog() *OrderLog {
	return &OrderLog{}
}

// Append records an order, stamping CreatedAt if unset.
func (l *OrderLog) Append(o models.Order) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	l.orders = append(l.orders, o)
}

// List returns all recorded orders, newest first.
func (l *OrderLog) List() []models.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Order, len(l.orders))
	copy(out, l.orders)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

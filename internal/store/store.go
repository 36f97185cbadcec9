// Package store holds the session-scoped stores backing the storefront.
// Everything is constructed explicitly and passed to the services that need
// it; there are no package-level singletons, so tests can build isolated
// instances per scenario.
package store

import (
	"context"
	"errors"

	"zentro/internal/models"
)

// ErrNoSummary is returned when the handoff slot for a session is empty.
var ErrNoSummary = errors.New("no transaction summary")

// HandoffStore carries a TransactionSummary across the checkout-to-confirmation
// boundary. At most one unread summary exists per key; Take removes it, so a
// second Take for the same key reports ErrNoSummary.
type HandoffStore interface {
	Put(ctx context.Context, key string, summary models.TransactionSummary) error
	Take(ctx context.Context, key string) (*models.TransactionSummary, error)
}

// Package store defines the saved-properties datastore abstraction.
// Handlers depend on the Store interface, never on concrete
// implementations, so tests run against the in-memory store and
// production can run against PostgreSQL.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/akbarovs/uybaho/pkg/types"
)

// ErrNotFound is returned when no saved property has the requested id.
var ErrNotFound = errors.New("saved property not found")

// ErrLimitReached is returned when saving would exceed the configured
// maximum number of saved properties.
var ErrLimitReached = errors.New("saved properties limit reached")

// Store defines all saved-property data access operations.
type Store interface {
	// SaveProperty persists a saved property, assigning CreatedAt.
	// Returns ErrLimitReached when the list is full.
	SaveProperty(ctx context.Context, sp *domain.SavedProperty) error
	GetSaved(ctx context.Context, id string) (*domain.SavedProperty, error)
	ListSaved(ctx context.Context) ([]domain.SavedProperty, error)
	// DeleteSaved removes a saved property. Returns ErrNotFound when the
	// id does not exist.
	DeleteSaved(ctx context.Context, id string) error
	CountSaved(ctx context.Context) (int, error)
	// DeleteOlderThan removes saved properties created before the cutoff
	// and reports how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)

	Ping(ctx context.Context) error
	Close()
}

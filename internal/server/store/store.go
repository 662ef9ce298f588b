// Package store defines the generic persistence contract implemented once
// per resource type. All repositories expose the same five operations and
// the same two-kind error taxonomy: common.ErrorNotFound when no record
// exists at the identifying key, and a wrapped driver error for any backend
// failure. No other error kind crosses into the handler layer.
package store

import "context"

// Store is the persistence capability for one resource type T keyed by K.
type Store[T any, K comparable] interface {
	// Create persists a record without an identity and returns it with the
	// store-assigned identity filled in.
	Create(ctx context.Context, rec T) (T, error)

	// Get returns the record stored at key, or common.ErrorNotFound.
	Get(ctx context.Context, key K) (T, error)

	// List returns up to limit records ordered by identity ascending.
	List(ctx context.Context, limit int64) ([]T, error)

	// Update overwrites the full record stored at the record's identity and
	// returns the new stored value, or common.ErrorNotFound.
	Update(ctx context.Context, rec T) (T, error)

	// Delete removes the record at key, or returns common.ErrorNotFound if
	// nothing was removed.
	Delete(ctx context.Context, key K) error
}

// List limits applied server-side regardless of what the caller asks for.
const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

// LimitFromPageSize clamps a caller-supplied page size: non-positive values
// fall back to DefaultListLimit, anything above MaxListLimit is capped.
func LimitFromPageSize(pageSize int32) int64 {
	if pageSize <= 0 {
		return DefaultListLimit
	}
	if pageSize > MaxListLimit {
		return MaxListLimit
	}
	return int64(pageSize)
}

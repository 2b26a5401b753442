package storage

import (
	"context"

	"github.com/lawdex/lawdex/core"
)

// ResourceRepository provides operations for managing persisted catalog
// entries. Implementations must be thread-safe and support concurrent access.
type ResourceRepository interface {
	// AddResources adds one or more resource entries to storage.
	// For entries with ID=0, derives the content ID from the normalized name.
	// Sets InsertedAt timestamp if not already set.
	// Returns the entries with IDs and timestamps populated.
	AddResources(ctx context.Context, entries ...*core.ResourceEntry) ([]*core.ResourceEntry, error)

	// GetResource retrieves a single entry by ID.
	// Returns ErrNotFound if the entry doesn't exist.
	GetResource(ctx context.Context, id core.ID) (*core.ResourceEntry, error)

	// GetResourceByName retrieves an entry by its normalized name.
	// Returns ErrNotFound if no entry matches.
	GetResourceByName(ctx context.Context, name string) (*core.ResourceEntry, error)

	// ListResources retrieves every stored entry, in unspecified order.
	ListResources(ctx context.Context) ([]*core.ResourceEntry, error)

	// ListResourcesByType retrieves every stored entry carrying the given tag.
	ListResourcesByType(ctx context.Context, tag core.TypeTag) ([]*core.ResourceEntry, error)

	// DeleteResources removes entries by their IDs.
	// Returns ErrNotFound if any entry doesn't exist.
	DeleteResources(ctx context.Context, ids ...core.ID) error

	// Close closes the repository and releases resources.
	Close() error
}

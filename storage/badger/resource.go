package badger

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/lawdex/lawdex/core"
	"github.com/lawdex/lawdex/storage"
)

// ResourceRepository implements storage.ResourceRepository for BadgerDB.
type ResourceRepository struct {
	backend *Backend
}

var _ storage.ResourceRepository = (*ResourceRepository)(nil)

// NewResourceRepository creates a new ResourceRepository.
func NewResourceRepository(backend *Backend) (*ResourceRepository, error) {
	return &ResourceRepository{
		backend: backend,
	}, nil
}

// Close releases resources. ResourceRepository has no resources to release.
func (r *ResourceRepository) Close() error {
	return nil
}

// AddResources adds one or more resource entries to storage.
func (r *ResourceRepository) AddResources(ctx context.Context, entries ...*core.ResourceEntry) ([]*core.ResourceEntry, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, entry := range entries {
			// Use content-based ID if not set
			if entry.Id == 0 {
				entry.Id = core.IDFromName(entry.Name)
			}

			now := time.Now().UTC()
			if entry.InsertedAt.IsZero() {
				entry.InsertedAt = now
			}
			entry.UpdatedAt = now

			// Store primary record
			key := makeResourceKey(entry.Id)
			if err := tx.Set(key, storage.MarshalResource(entry)); err != nil {
				return err
			}

			// Store normalized-name index
			nameKey := makeResourceNameKey(entry.Name)
			if err := tx.Set(nameKey, storage.MarshalID(entry.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return entries, err
}

// GetResource retrieves a single entry by ID.
func (r *ResourceRepository) GetResource(ctx context.Context, id core.ID) (*core.ResourceEntry, error) {
	var entry *core.ResourceEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		entry, err = readResource(tx, makeResourceKey(id))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// GetResourceByName retrieves an entry by its normalized name.
func (r *ResourceRepository) GetResourceByName(ctx context.Context, name string) (*core.ResourceEntry, error) {
	var entry *core.ResourceEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeResourceNameKey(name))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}

		var id core.ID
		if err := item.Value(func(val []byte) error {
			var err error
			id, err = storage.UnmarshalID(val)
			return err
		}); err != nil {
			return err
		}

		entry, err = readResource(tx, makeResourceKey(id))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ListResources retrieves every stored entry.
func (r *ResourceRepository) ListResources(ctx context.Context) ([]*core.ResourceEntry, error) {
	return r.list(func(*core.ResourceEntry) bool { return true })
}

// ListResourcesByType retrieves every stored entry carrying the given tag.
func (r *ResourceRepository) ListResourcesByType(ctx context.Context, tag core.TypeTag) ([]*core.ResourceEntry, error) {
	return r.list(func(entry *core.ResourceEntry) bool { return entry.Type == tag })
}

func (r *ResourceRepository) list(keep func(*core.ResourceEntry) bool) ([]*core.ResourceEntry, error) {
	var entries []*core.ResourceEntry

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(resourcePrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()

			// Skip the name index keys
			if bytes.HasPrefix(item.Key(), []byte(resourceNamePrefix)) {
				continue
			}

			var entry *core.ResourceEntry
			err := item.Value(func(val []byte) error {
				var err error
				entry, err = storage.UnmarshalResource(val)
				return err
			})
			if err != nil {
				return err
			}
			if entry != nil && keep(entry) {
				entries = append(entries, entry)
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteResources removes entries by their IDs.
func (r *ResourceRepository) DeleteResources(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeResourceKey(id)
			entry, err := readResource(tx, key)
			if err != nil {
				return err
			}
			if err := tx.Delete(makeResourceNameKey(entry.Name)); err != nil {
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// readResource reads and deserializes a resource record at key.
// Returns storage.ErrNotFound if the key is absent.
func readResource(tx *badger.Txn, key []byte) (*core.ResourceEntry, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	var entry *core.ResourceEntry
	if err := item.Value(func(val []byte) error {
		var err error
		entry, err = storage.UnmarshalResource(val)
		return err
	}); err != nil {
		return nil, err
	}
	return entry, nil
}

package repository

import (
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"edumarket/internal/storage"
)

// Collection is an ordered list of records stored as one JSON array under a
// fixed key. Every mutation rewrites the whole array.
type Collection[T any] struct {
	backend storage.Backend
	key     string
	id      func(T) string
	mu      sync.Mutex
}

// NewCollection binds a collection to key. id extracts the upsert identity of a record.
func NewCollection[T any](backend storage.Backend, key string, id func(T) string) *Collection[T] {
	return &Collection[T]{backend: backend, key: key, id: id}
}

// Key returns the storage key of the collection
func (c *Collection[T]) Key() string {
	return c.key
}

// List returns every record in stored order. An absent key yields an empty slice.
func (c *Collection[T]) List() ([]T, error) {
	data, found, err := c.backend.Get(c.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.key, err)
	}
	if !found {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", c.key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// FindBy returns the records matching pred, preserving stored order
func (c *Collection[T]) FindBy(pred func(T) bool) ([]T, error) {
	items, err := c.List()
	if err != nil {
		return nil, err
	}
	matched := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// Find returns the record whose id matches, or nil when there is none
func (c *Collection[T]) Find(id string) (*T, error) {
	items, err := c.List()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if c.id(items[i]) == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// Upsert replaces the record with the same id in place, or appends it
func (c *Collection[T]) Upsert(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.List()
	if err != nil {
		return err
	}

	id := c.id(item)
	if idx := slices.IndexFunc(items, func(existing T) bool { return c.id(existing) == id }); idx >= 0 {
		items[idx] = item
	} else {
		items = append(items, item)
	}
	return c.write(items)
}

// Exists reports whether the key has ever been written
func (c *Collection[T]) Exists() (bool, error) {
	_, found, err := c.backend.Get(c.key)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", c.key, err)
	}
	return found, nil
}

// ReplaceAll overwrites the collection with items
func (c *Collection[T]) ReplaceAll(items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if items == nil {
		items = []T{}
	}
	return c.write(items)
}

func (c *Collection[T]) write(items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.key, err)
	}
	if err := c.backend.Set(c.key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.key, err)
	}
	return nil
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dynatable

import (
	"reflect"
	"sync"

	"github.com/suparena/dynatable/errors"
	"github.com/suparena/dynatable/table"
)

// TypedTables provides type-safe handle management for a specific item type T
type TypedTables[T any] struct {
	mu     sync.RWMutex
	tables map[string]*table.Table[T]
}

// NewTypedTables creates a new TypedTables for type T
func NewTypedTables[T any]() *TypedTables[T] {
	return &TypedTables[T]{
		tables: make(map[string]*table.Table[T]),
	}
}

// Register adds a table handle with the given key
func (tt *TypedTables[T]) Register(key string, t *table.Table[T]) error {
	tt.mu.Lock()
	defer tt.mu.Unlock()

	if _, exists := tt.tables[key]; exists {
		return errors.NewAlreadyRegisteredError("table", key)
	}

	tt.tables[key] = t
	return nil
}

// Get retrieves a table handle by key
func (tt *TypedTables[T]) Get(key string) (*table.Table[T], error) {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	t, exists := tt.tables[key]
	if !exists {
		return nil, errors.NewNotFoundError("table", key)
	}

	return t, nil
}

// Remove deletes a table handle by key
func (tt *TypedTables[T]) Remove(key string) error {
	tt.mu.Lock()
	defer tt.mu.Unlock()

	if _, exists := tt.tables[key]; !exists {
		return errors.NewNotFoundError("table", key)
	}

	delete(tt.tables, key)
	return nil
}

// List returns all registered handle keys
func (tt *TypedTables[T]) List() []string {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	keys := make([]string, 0, len(tt.tables))
	for k := range tt.tables {
		keys = append(keys, k)
	}
	return keys
}

// MultiTypeTables manages TypedTables instances for different item types
type MultiTypeTables struct {
	mu     sync.RWMutex
	groups map[reflect.Type]interface{}
}

// NewMultiTypeTables creates a new MultiTypeTables
func NewMultiTypeTables() *MultiTypeTables {
	return &MultiTypeTables{
		groups: make(map[reflect.Type]interface{}),
	}
}

// GetTypedTables returns the TypedTables for the specified type, creating it if necessary
func GetTypedTables[T any](mtt *MultiTypeTables) *TypedTables[T] {
	mtt.mu.Lock()
	defer mtt.mu.Unlock()

	var zero T
	typ := reflect.TypeOf(zero)

	if group, exists := mtt.groups[typ]; exists {
		return group.(*TypedTables[T])
	}

	newGroup := NewTypedTables[T]()
	mtt.groups[typ] = newGroup
	return newGroup
}

// Register is a convenience function to register a table handle for type T
func Register[T any](mtt *MultiTypeTables, key string, t *table.Table[T]) error {
	group := GetTypedTables[T](mtt)
	return group.Register(key, t)
}

// For is a convenience function to get a table handle for type T
func For[T any](mtt *MultiTypeTables, key string) (*table.Table[T], error) {
	group := GetTypedTables[T](mtt)
	return group.Get(key)
}

// Remove is a convenience function to remove a table handle for type T
func Remove[T any](mtt *MultiTypeTables, key string) error {
	group := GetTypedTables[T](mtt)
	return group.Remove(key)
}

// List is a convenience function to list all table handles for type T
func List[T any](mtt *MultiTypeTables) []string {
	group := GetTypedTables[T](mtt)
	return group.List()
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dynatable

import (
	"sync"

	"github.com/suparena/dynatable/errors"
)

// Tables is a higher-level interface that manages a collection of table handles.
// Note that its methods are not generic; they use the empty interface (any) to store and
// retrieve handles. Use the package-level Register/For helpers for type-safe access.
type Tables interface {
	// Register registers a table handle under a given key (for example, "users" or "orders").
	Register(key string, t any) error
	// Get retrieves the registered handle for a given key.
	// The caller must type-assert the returned value to the appropriate *table.Table[T].
	Get(key string) (any, error)
}

// tableSet is a thread-safe implementation of the Tables interface.
type tableSet struct {
	mu     sync.RWMutex
	tables map[string]any
}

// NewTableSet creates and returns a new Tables implementation.
func NewTableSet() Tables {
	return &tableSet{
		tables: make(map[string]any),
	}
}

// Register stores the provided table handle under the given key.
func (ts *tableSet) Register(key string, t any) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.tables[key]; exists {
		return errors.NewAlreadyRegisteredError("table", key)
	}
	ts.tables[key] = t
	return nil
}

// Get retrieves the table handle associated with the given key.
func (ts *tableSet) Get(key string) (any, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	t, exists := ts.tables[key]
	if !exists {
		return nil, errors.NewNotFoundError("table", key)
	}
	return t, nil
}

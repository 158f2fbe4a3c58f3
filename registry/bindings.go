/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"os"
	"reflect"
	"sync"

	"gopkg.in/yaml.v3"
)

// Binding names the table and region an item type is stored in.
type Binding struct {
	TableName string `yaml:"table"`
	Region    string `yaml:"region"`
}

var (
	typeBindings  = make(map[reflect.Type]Binding)
	namedBindings = make(map[string]Binding)
	mu            sync.RWMutex
)

// RegisterBinding associates a Go type T with a table binding.
func RegisterBinding[T any](b Binding) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.Lock()
	defer mu.Unlock()
	typeBindings[t] = b
}

// GetBinding retrieves the binding for type T, if any.
func GetBinding[T any]() (Binding, bool) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.RLock()
	defer mu.RUnlock()
	b, ok := typeBindings[t]
	return b, ok
}

// RegisterNamedBinding associates a logical name with a table binding.
// Registering the same name twice panics to prevent accidental overrides.
func RegisterNamedBinding(name string, b Binding) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := namedBindings[name]; exists {
		panic(fmt.Sprintf("binding registry: binding with name %q already registered", name))
	}
	namedBindings[name] = b
}

// GetNamedBinding returns the binding registered under the given name.
func GetNamedBinding(name string) (Binding, error) {
	mu.RLock()
	defer mu.RUnlock()

	b, ok := namedBindings[name]
	if !ok {
		return Binding{}, fmt.Errorf("binding registry: no binding registered for name %q", name)
	}
	return b, nil
}

// LoadBindings reads a YAML file of name-to-binding entries and registers each
// under its name. It returns the parsed bindings so callers can inspect them.
func LoadBindings(path string) (map[string]Binding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bindings file: %w", err)
	}

	bindings := make(map[string]Binding)
	if err := yaml.Unmarshal(data, &bindings); err != nil {
		return nil, fmt.Errorf("failed to parse bindings file: %w", err)
	}

	for name, b := range bindings {
		if b.TableName == "" {
			return nil, fmt.Errorf("binding %q is missing a table name", name)
		}
		RegisterNamedBinding(name, b)
	}
	return bindings, nil
}

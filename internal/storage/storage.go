// Package storage defines the string-keyed local storage port that task
// persistence writes through. Backends live under internal/backend.
package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Storage is a durable string-keyed store.
// Persistence code never touches files or databases directly.
type Storage interface {
	// Get returns the value stored under key.
	// found is false, with a nil error, if the key has never been set.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set overwrites the value stored under key.
	Set(ctx context.Context, key, value string) error
}

// ErrInvalidKey is returned for keys that are empty or contain characters
// outside [A-Za-z0-9._-].
var ErrInvalidKey = errors.New("invalid storage key")

// ValidateKey checks that key is usable by every backend, including ones
// that map keys to file names.
func ValidateKey(key string) error {
	if key == "" || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.', r == '_', r == '-':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	return nil
}

// Memory is an in-process Storage. Values are lost when the process exits.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an empty Memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get implements Storage.
func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ValidateKey(key); err != nil {
		return "", false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	return value, ok, nil
}

// Set implements Storage.
func (m *Memory) Set(ctx context.Context, key, value string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"sync"

	"tasklite/internal/storage"
)

// ErrStorageFull is a stand-in for a quota or disk-full write failure.
var ErrStorageFull = errors.New("storage quota exceeded")

var _ storage.Storage = (*FakeStorage)(nil)

// FakeStorage is an in-memory storage.Storage that counts calls and can
// be told to fail.
type FakeStorage struct {
	mu     sync.Mutex
	values map[string]string
	gets   int
	sets   int

	// Error injection for testing
	GetErr error
	SetErr error
}

// NewFakeStorage creates an empty FakeStorage.
func NewFakeStorage() *FakeStorage {
	return &FakeStorage{values: make(map[string]string)}
}

// Seed stores a value without counting it as a write.
func (f *FakeStorage) Seed(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
}

// Value returns the raw stored value for key.
func (f *FakeStorage) Value(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok
}

// Sets returns the number of successful Set calls.
func (f *FakeStorage) Sets() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sets
}

// Gets returns the number of Get calls.
func (f *FakeStorage) Gets() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gets
}

// Get implements storage.Storage.
func (f *FakeStorage) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	if f.GetErr != nil {
		return "", false, f.GetErr
	}
	v, ok := f.values[key]
	return v, ok, nil
}

// Set implements storage.Storage.
func (f *FakeStorage) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SetErr != nil {
		return f.SetErr
	}
	f.sets++
	f.values[key] = value
	return nil
}

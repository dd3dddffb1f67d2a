package storage_test

import (
	"context"
	"errors"
	"testing"

	"tasklite/internal/storage"
)

func TestValidateKey(t *testing.T) {
	valid := []string{"tasks", "tasks.v2", "my_list-1"}
	for _, key := range valid {
		if err := storage.ValidateKey(key); err != nil {
			t.Errorf("expected %q to be valid, got %v", key, err)
		}
	}

	invalid := []string{"", ".", "..", "a/b", "tasks json", "../etc"}
	for _, key := range invalid {
		err := storage.ValidateKey(key)
		if !errors.Is(err, storage.ErrInvalidKey) {
			t.Errorf("expected ErrInvalidKey for %q, got %v", key, err)
		}
	}
}

func TestMemory_GetMissing(t *testing.T) {
	m := storage.NewMemory()

	value, found, err := m.Get(context.Background(), "tasks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("expected key to be missing")
	}
	if value != "" {
		t.Errorf("expected empty value, got %q", value)
	}
}

func TestMemory_SetOverwrites(t *testing.T) {
	m := storage.NewMemory()
	ctx := context.Background()

	if err := m.Set(ctx, "tasks", "[]"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Set(ctx, "tasks", `[{"id":"a"}]`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	value, found, err := m.Get(ctx, "tasks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatal("expected key to be present")
	}
	if value != `[{"id":"a"}]` {
		t.Errorf("expected overwritten value, got %q", value)
	}
}

func TestMemory_InvalidKey(t *testing.T) {
	m := storage.NewMemory()

	if err := m.Set(context.Background(), "a/b", "x"); !errors.Is(err, storage.ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

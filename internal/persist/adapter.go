// Package persist serializes the task sequence to a storage.Storage.
package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tidwall/jsonc"

	"tasklite/internal/storage"
	"tasklite/internal/task"
)

// Key is the fixed storage key holding the task sequence.
const Key = "tasks"

// Adapter implements task.Persister on top of a storage.Storage.
//
// The stored value is a JSON array of {"id","title","completed"} objects
// with no schema version. Values are run through jsonc before decoding,
// so a hand-edited file with comments or trailing commas still loads.
type Adapter struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates an Adapter writing under Key.
func New(st storage.Storage, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{storage: st, logger: logger}
}

// Save overwrites the stored sequence. An empty sequence is stored as "[]".
func (a *Adapter) Save(ctx context.Context, tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encoding tasks: %w", err)
	}
	if err := a.storage.Set(ctx, Key, string(data)); err != nil {
		return fmt.Errorf("writing %s: %w", Key, err)
	}
	return nil
}

// Load reads the stored sequence. A missing key yields an empty sequence.
// A value that does not decode to an array of tasks yields an error
// wrapping task.ErrMalformed.
func (a *Adapter) Load(ctx context.Context) ([]task.Task, error) {
	value, found, err := a.storage.Get(ctx, Key)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", Key, err)
	}
	if !found {
		return []task.Task{}, nil
	}

	var records []task.Task
	if err := json.Unmarshal(jsonc.ToJSON([]byte(value)), &records); err != nil {
		return nil, fmt.Errorf("%w: %v", task.ErrMalformed, err)
	}
	return a.sanitize(records), nil
}

// sanitize drops records without an ID and repeated IDs (first wins),
// so the loaded sequence keeps the ID uniqueness invariant.
func (a *Adapter) sanitize(records []task.Task) []task.Task {
	out := make([]task.Task, 0, len(records))
	seen := make(map[string]bool, len(records))
	for i, r := range records {
		if r.ID == "" {
			a.logger.Warn("dropping stored task without id", "index", i)
			continue
		}
		if seen[r.ID] {
			a.logger.Warn("dropping stored task with duplicate id", "index", i, "id", r.ID)
			continue
		}
		seen[r.ID] = true
		out = append(out, r)
	}
	return out
}

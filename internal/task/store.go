package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrEmptyTitle is returned by Add for empty or whitespace-only titles.
	ErrEmptyTitle = errors.New("title required")

	// ErrMalformed marks persisted task data that could not be decoded.
	// Persisters wrap it; Store.Load treats it as an empty sequence.
	ErrMalformed = errors.New("malformed task data")
)

// Persister reads and writes the full task sequence.
type Persister interface {
	// Load returns the persisted sequence, or an empty one if nothing
	// has been saved yet. Undecodable data is reported as ErrMalformed.
	Load(ctx context.Context) ([]Task, error)

	// Save overwrites the persisted sequence.
	Save(ctx context.Context, tasks []Task) error
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides the ID source used by Add.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// Store is the single source of truth for the task sequence.
//
// The sequence is ordered newest first. Mutations never modify a Task
// in place: each one builds a new slice, writes it through the
// Persister, and only then replaces the current snapshot. A failed
// write leaves the snapshot untouched.
type Store struct {
	persister Persister
	logger    *slog.Logger
	newID     func() string

	tasks []Task
}

// NewStore creates an empty store backed by p. Call Load to hydrate it.
func NewStore(p Persister, logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Store{
		persister: p,
		logger:    logger,
		newID:     uuid.NewString,
		tasks:     []Task{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the current sequence with the persisted one.
// Missing data yields an empty sequence. Malformed data is discarded
// with a warning and also yields an empty sequence; the next mutation
// overwrites it.
func (s *Store) Load(ctx context.Context) error {
	tasks, err := s.persister.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrMalformed) {
			return fmt.Errorf("loading tasks: %w", err)
		}
		s.logger.Warn("discarding malformed task data", "error", err)
		tasks = nil
	}
	if tasks == nil {
		tasks = []Task{}
	}
	s.tasks = tasks
	s.logger.Debug("tasks loaded", "count", len(tasks))
	return nil
}

// Tasks returns the current snapshot. Callers must not modify it.
func (s *Store) Tasks() []Task {
	return s.tasks
}

// Find returns the task with the given ID.
func (s *Store) Find(id string) (Task, bool) {
	if i := s.index(id); i >= 0 {
		return s.tasks[i], true
	}
	return Task{}, false
}

// ActiveCount returns the number of tasks not yet completed.
func (s *Store) ActiveCount() int {
	return len(s.tasks) - s.CompletedCount()
}

// CompletedCount returns the number of completed tasks.
func (s *Store) CompletedCount() int {
	n := 0
	for _, t := range s.tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// Add creates a task with a fresh ID and prepends it.
// The title is stored as given; it only has to contain a non-space character.
func (s *Store) Add(ctx context.Context, title string) (Task, error) {
	if strings.TrimSpace(title) == "" {
		return Task{}, ErrEmptyTitle
	}

	id := s.newID()
	for id == "" || s.index(id) >= 0 {
		id = s.newID()
	}
	t := Task{ID: id, Title: title}

	next := make([]Task, 0, len(s.tasks)+1)
	next = append(next, t)
	next = append(next, s.tasks...)

	if err := s.commit(ctx, next); err != nil {
		return Task{}, err
	}
	s.logger.Debug("task added", "id", t.ID)
	return t, nil
}

// Toggle flips the completion flag of the task with the given ID.
// Reports false, without writing, if no task has that ID.
func (s *Store) Toggle(ctx context.Context, id string) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, nil
	}

	next := make([]Task, len(s.tasks))
	copy(next, s.tasks)
	updated := s.tasks[i]
	updated.Completed = !updated.Completed
	next[i] = updated

	if err := s.commit(ctx, next); err != nil {
		return false, err
	}
	s.logger.Debug("task toggled", "id", id, "completed", updated.Completed)
	return true, nil
}

// Remove deletes the task with the given ID.
// Reports false, without writing, if no task has that ID.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, nil
	}

	next := make([]Task, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:i]...)
	next = append(next, s.tasks[i+1:]...)

	if err := s.commit(ctx, next); err != nil {
		return false, err
	}
	s.logger.Debug("task removed", "id", id)
	return true, nil
}

// ClearCompleted removes every completed task and returns how many were
// removed. With nothing completed it returns 0 and skips the write.
func (s *Store) ClearCompleted(ctx context.Context) (int, error) {
	completed := s.CompletedCount()
	if completed == 0 {
		return 0, nil
	}

	next := make([]Task, 0, len(s.tasks)-completed)
	for _, t := range s.tasks {
		if !t.Completed {
			next = append(next, t)
		}
	}

	if err := s.commit(ctx, next); err != nil {
		return 0, err
	}
	s.logger.Debug("completed tasks cleared", "removed", completed)
	return completed, nil
}

func (s *Store) commit(ctx context.Context, next []Task) error {
	if err := s.persister.Save(ctx, next); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}
	s.tasks = next
	return nil
}

func (s *Store) index(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"tasklite/internal/task"
)

// MinPrefixLen is the shortest id prefix accepted as a task reference.
const MinPrefixLen = 4

var (
	// ErrTaskRefRequired indicates no task reference was provided.
	ErrTaskRefRequired = errors.New("task reference required")

	// ErrOutOfRange indicates a position outside the listing.
	ErrOutOfRange = errors.New("task number out of range")

	// ErrTaskNotFound indicates no task id matches the reference.
	ErrTaskNotFound = errors.New("task not found")

	// ErrAmbiguousRef indicates an id prefix matching more than one task.
	ErrAmbiguousRef = errors.New("ambiguous task reference")
)

// ResolveRef finds the task a reference points at.
//
// A reference made only of digits is a 1-based position in tasks.
// Anything else is a task id, or an id prefix of at least MinPrefixLen
// characters that matches exactly one task.
func ResolveRef(tasks []task.Task, ref string) (task.Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return task.Task{}, ErrTaskRefRequired
	}

	if isAllDigits(ref) {
		n, err := strconv.Atoi(ref)
		if err != nil || n < 1 || n > len(tasks) {
			return task.Task{}, fmt.Errorf("%w: %s", ErrOutOfRange, ref)
		}
		return tasks[n-1], nil
	}

	for _, t := range tasks {
		if t.ID == ref {
			return t, nil
		}
	}

	if len(ref) < MinPrefixLen {
		return task.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, ref)
	}

	var match task.Task
	matches := 0
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, ref) {
			match = t
			matches++
		}
	}
	switch matches {
	case 0:
		return task.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, ref)
	case 1:
		return match, nil
	default:
		return task.Task{}, fmt.Errorf("%w: %s", ErrAmbiguousRef, ref)
	}
}

// ResolveRefs resolves every reference before anything is changed, so a
// bad reference leaves the list untouched. Duplicate targets are dropped.
func ResolveRefs(tasks []task.Task, refs []string) ([]task.Task, error) {
	if len(refs) == 0 {
		return nil, ErrTaskRefRequired
	}

	seen := make(map[string]bool, len(refs))
	var resolved []task.Task
	for _, ref := range refs {
		t, err := ResolveRef(tasks, ref)
		if err != nil {
			return nil, err
		}
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		resolved = append(resolved, t)
	}
	return resolved, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Package task owns the in-memory task sequence and its mutations.
package task

// Task represents a single to-do entry.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Equal reports whether t and other have identical fields.
func (t Task) Equal(other Task) bool {
	return t.ID == other.ID && t.Title == other.Title && t.Completed == other.Completed
}

// EqualSlices reports whether a and b hold equal tasks in the same order.
// A nil slice equals an empty one.
func EqualSlices(a, b []Task) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tasklite/internal/task"
)

// Separator divides the task listing from the status line.
const Separator = "------------"

// Marker returns the completion checkbox for a task.
func Marker(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// FormatTask formats a task line.
// Format: "{N:>4}  [x] {TITLE}\n"
func FormatTask(w io.Writer, num int, t task.Task) {
	fmt.Fprintf(w, "%4d  %s %s\n", num, Marker(t.Completed), NormalizeTitle(t.Title))
}

// FormatTaskVerbose formats a task line followed by its id.
func FormatTaskVerbose(w io.Writer, num int, t task.Task) {
	fmt.Fprintf(w, "%4d  %s %s  (%s)\n", num, Marker(t.Completed), NormalizeTitle(t.Title), t.ID)
}

// StatusLine returns "N active / M completed".
func StatusLine(active, completed int) string {
	return fmt.Sprintf("%d active / %d completed", active, completed)
}

// FormatStatus writes the separator and status line.
func FormatStatus(w io.Writer, active, completed int) {
	fmt.Fprintln(w, Separator)
	fmt.Fprintln(w, StatusLine(active, completed))
}

// NormalizeTitle normalizes a task title for display.
// Newlines become spaces, surrounding whitespace is trimmed and an empty
// result becomes "(untitled)".
func NormalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")
	title = strings.TrimSpace(title)
	if title == "" {
		return "(untitled)"
	}
	return title
}

// Package ui is the interactive terminal front end: a title input over
// the task list, with a status bar showing counts and storage errors.
package ui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tasklite/internal/output"
	"tasklite/internal/task"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// Model is the bubbletea model. Store calls run inside Update, so the
// store is only touched from bubbletea's event loop.
type Model struct {
	ctx    context.Context
	store  *task.Store
	logger *slog.Logger

	keys   KeyMap
	styles styles
	input  textinput.Model

	focus  focusArea
	cursor int
	err    error
}

// New creates a model over a loaded store.
func New(ctx context.Context, store *task.Store, theme Theme) Model {
	input := textinput.New()
	input.Placeholder = "What needs to be done?"
	input.Prompt = "> "
	input.CharLimit = 500
	input.Focus()

	m := Model{
		ctx:    ctx,
		store:  store,
		logger: slog.New(slog.DiscardHandler),
		keys:   DefaultKeyMap,
		styles: newStyles(theme),
		input:  input,
		focus:  focusInput,
	}
	m.syncKeys()
	return m
}

// Run shows the TUI on out until the user quits or ctx is cancelled.
func Run(ctx context.Context, store *task.Store, out io.Writer, logger *slog.Logger) error {
	m := New(ctx, store, DefaultTheme)
	if logger != nil {
		m.logger = logger
	}

	program := tea.NewProgram(m, tea.WithContext(ctx), tea.WithOutput(out), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 10)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Interrupt) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.FocusToggle) {
			return m.toggleFocus(), nil
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) toggleFocus() Model {
	if m.focus == focusInput {
		m.focus = focusList
		m.input.Blur()
	} else {
		m.focus = focusInput
		m.input.Focus()
	}
	return m
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			return m, nil
		}
		if _, err := m.store.Add(m.ctx, title); err != nil {
			return m.failed("add", err), nil
		}
		m.err = nil
		m.input.Reset()
		m.cursor = 0
		m.syncKeys()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.input.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.store.Tasks()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(tasks)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if len(tasks) == 0 {
			return m, nil
		}
		if _, err := m.store.Toggle(m.ctx, tasks[m.cursor].ID); err != nil {
			return m.failed("toggle", err), nil
		}
		m.err = nil

	case key.Matches(msg, m.keys.Remove):
		if len(tasks) == 0 {
			return m, nil
		}
		if _, err := m.store.Remove(m.ctx, tasks[m.cursor].ID); err != nil {
			return m.failed("remove", err), nil
		}
		m.err = nil

	case key.Matches(msg, m.keys.ClearCompleted):
		if _, err := m.store.ClearCompleted(m.ctx); err != nil {
			return m.failed("clear completed", err), nil
		}
		m.err = nil
	}

	m.clampCursor()
	m.syncKeys()
	return m, nil
}

func (m Model) failed(op string, err error) Model {
	m.logger.Error("task update failed", "op", op, "err", err)
	m.err = err
	return m
}

func (m *Model) clampCursor() {
	n := len(m.store.Tasks())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// syncKeys disables bindings that have nothing to act on. key.Matches
// ignores disabled bindings.
func (m *Model) syncKeys() {
	hasTasks := len(m.store.Tasks()) > 0
	m.keys.Toggle.SetEnabled(hasTasks)
	m.keys.Remove.SetEnabled(hasTasks)
	m.keys.ClearCompleted.SetEnabled(m.store.CompletedCount() > 0)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("TaskLite"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	tasks := m.store.Tasks()
	if len(tasks) == 0 {
		b.WriteString(m.styles.empty.Render("No tasks yet"))
		b.WriteString("\n")
	}
	for i, t := range tasks {
		b.WriteString(m.renderRow(i, t))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(m.styles.err.Render("error: " + m.err.Error()))
	} else {
		b.WriteString(m.styles.status.Render(output.StatusLine(m.store.ActiveCount(), m.store.CompletedCount())))
	}
	b.WriteString("\n")
	b.WriteString(m.helpLine())
	return b.String()
}

func (m Model) renderRow(i int, t task.Task) string {
	pointer := "  "
	selected := m.focus == focusList && i == m.cursor
	if selected {
		pointer = "> "
	}
	line := output.Marker(t.Completed) + " " + output.NormalizeTitle(t.Title)

	switch {
	case selected:
		return pointer + m.styles.selected.Render(line)
	case t.Completed:
		return pointer + m.styles.completed.Render(line)
	default:
		return pointer + m.styles.row.Render(line)
	}
}

func (m Model) helpLine() string {
	var bindings []key.Binding
	if m.focus == focusInput {
		bindings = []key.Binding{m.keys.Submit, m.keys.Cancel, m.keys.FocusToggle}
	} else {
		bindings = []key.Binding{m.keys.Up, m.keys.Down, m.keys.Toggle, m.keys.Remove, m.keys.ClearCompleted, m.keys.FocusToggle, m.keys.Quit}
	}

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if !binding.Enabled() {
			parts = append(parts, m.styles.disabled.Render(help.Key+" "+help.Desc))
			continue
		}
		parts = append(parts, m.styles.helpKey.Render(help.Key)+" "+m.styles.helpDesc.Render(help.Desc))
	}
	return strings.Join(parts, "  ")
}

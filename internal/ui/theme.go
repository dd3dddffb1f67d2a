package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the TUI. Colors are ANSI
// 256-color codes.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row while the list has focus.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	Accent        lipgloss.Color // Title and input prompt.
	CompletedText lipgloss.Color
	ErrorText     lipgloss.Color
	HelpText      lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText:         lipgloss.Color("252"),
	FaintText:          lipgloss.Color("242"),
	SelectedBackground: lipgloss.Color("99"),
	SelectedForeground: lipgloss.Color("231"),
	Accent:             lipgloss.Color("99"),
	CompletedText:      lipgloss.Color("244"),
	ErrorText:          lipgloss.Color("203"),
	HelpText:           lipgloss.Color("245"),
}

// styles are the lipgloss styles derived from a Theme.
type styles struct {
	title     lipgloss.Style
	row       lipgloss.Style
	selected  lipgloss.Style
	completed lipgloss.Style
	status    lipgloss.Style
	err       lipgloss.Style
	helpKey   lipgloss.Style
	helpDesc  lipgloss.Style
	disabled  lipgloss.Style
	empty     lipgloss.Style
}

func newStyles(theme Theme) styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).MarginBottom(1),
		row:       lipgloss.NewStyle().Foreground(theme.NormalText),
		selected:  lipgloss.NewStyle().Foreground(theme.SelectedForeground).Background(theme.SelectedBackground),
		completed: lipgloss.NewStyle().Foreground(theme.CompletedText).Strikethrough(true),
		status:    lipgloss.NewStyle().Foreground(theme.NormalText).MarginTop(1),
		err:       lipgloss.NewStyle().Foreground(theme.ErrorText).MarginTop(1),
		helpKey:   lipgloss.NewStyle().Foreground(theme.HelpText).Bold(true),
		helpDesc:  lipgloss.NewStyle().Foreground(theme.HelpText),
		disabled:  lipgloss.NewStyle().Foreground(theme.FaintText).Faint(true),
		empty:     lipgloss.NewStyle().Foreground(theme.FaintText).Italic(true),
	}
}

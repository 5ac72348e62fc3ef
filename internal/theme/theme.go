package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Panel     *lipgloss.Style
	PanelDark *lipgloss.Style
	Title     *lipgloss.Style
	Status    *lipgloss.Style
	Hint      *lipgloss.Style
	Cursor    *lipgloss.Style
	CaretText *lipgloss.Style
}

var defaultStyles = Styles{
	Panel: ptr(
		lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("34")).
			Foreground(lipgloss.Color("232")).
			Background(lipgloss.Color("148")),
	),
	PanelDark: ptr(
		lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Foreground(lipgloss.Color("238")).
			Background(lipgloss.Color("22")),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Hint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("148")).Background(lipgloss.Color("232")),
	),
	CaretText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("148")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}

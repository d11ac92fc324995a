package theme

import (
	"github.com/atomicstack/ams/internal/tmux"
	"github.com/charmbracelet/lipgloss"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title                 *lipgloss.Style
	Border                *lipgloss.Style
	Header                *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItem          *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	StatusActive          *lipgloss.Style
	StatusIdle            *lipgloss.Style
	StatusDead            *lipgloss.Style
	Info                  *lipgloss.Style
	Footer                *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Border: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	StatusActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	),
	StatusIdle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	),
	StatusDead: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Italic(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Status returns the style for a session status.
func (s *Styles) Status(status tmux.SessionStatus) *lipgloss.Style {
	switch status {
	case tmux.StatusActive:
		return s.StatusActive
	case tmux.StatusIdle:
		return s.StatusIdle
	case tmux.StatusDead:
		return s.StatusDead
	default:
		return s.Item
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}

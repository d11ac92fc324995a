package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type action int

const (
	actionNone action = iota
	actionQuit
	actionNext
	actionPrevious
	actionConfirm
	actionRefresh
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("j/↓", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "attach"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Down, k.Up, k.Confirm, k.Refresh}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func (k keyMap) classify(msg tea.KeyMsg) action {
	switch {
	case key.Matches(msg, k.Quit):
		return actionQuit
	case key.Matches(msg, k.Down):
		return actionNext
	case key.Matches(msg, k.Up):
		return actionPrevious
	case key.Matches(msg, k.Confirm):
		return actionConfirm
	case key.Matches(msg, k.Refresh):
		return actionRefresh
	default:
		return actionNone
	}
}

package ui

import (
	"fmt"
	"reflect"
	"time"

	"github.com/atomicstack/ams/internal/logging"
	"github.com/atomicstack/ams/internal/logging/events"
	"github.com/atomicstack/ams/internal/theme"
	"github.com/atomicstack/ams/internal/tmux"
	uistate "github.com/atomicstack/ams/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// pollInterval bounds how long the loop waits for input before re-rendering.
const pollInterval = 100 * time.Millisecond

const defaultTitle = "AMS - Agents Manager Service"

var styles = theme.Default()

// SessionLister is the part of the session repository the selector needs.
type SessionLister interface {
	ListSessions() ([]tmux.Session, error)
}

type tickMsg time.Time

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the session selector.
type Model struct {
	lister      SessionLister
	selector    *uistate.Selector
	viewport    uistate.Viewport
	keys        keyMap
	help        help.Model
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	title       string

	handlers map[reflect.Type]msgHandler
}

// NewModel builds a selector over lister. Positive width/height pin the
// viewport instead of following the terminal size.
func NewModel(lister SessionLister, width, height int, showFooter bool) *Model {
	m := &Model{
		lister:     lister,
		selector:   uistate.NewSelector(),
		keys:       defaultKeyMap(),
		help:       help.New(),
		showFooter: showFooter,
		title:      defaultTitle,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
		m.help.Width = width
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	if styles.Footer != nil {
		m.help.Styles.ShortKey = *styles.Footer
		m.help.Styles.ShortDesc = *styles.Footer
		m.help.Styles.ShortSeparator = *styles.Footer
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if handler := m.handlerFor(msg); handler != nil {
		cmd = handler(msg)
	}
	if m.selector.ShouldQuit() {
		return m, tea.Quit
	}
	return m, cmd
}

// Refresh reloads the session list. A failed listing is logged and shown as
// an empty list.
func (m *Model) Refresh() {
	var (
		sessions []tmux.Session
		err      error
	)
	if m.lister != nil {
		sessions, err = m.lister.ListSessions()
	}
	if err != nil {
		logging.Error(fmt.Errorf("refresh sessions: %w", err))
		sessions = nil
	}
	events.UI.Refresh(len(sessions), err)
	m.selector.Refresh(sessions)
}

// Selected returns the session confirmed by the user, if any.
func (m *Model) Selected() (string, bool) {
	return m.selector.SelectedName()
}

// Selector exposes the underlying state machine.
func (m *Model) Selector() *uistate.Selector {
	return m.selector
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch m.keys.classify(keyMsg) {
	case actionQuit:
		events.UI.Quit(keyMsg.String())
		m.selector.Quit()
	case actionNext:
		m.selector.Next()
		m.traceCursor()
	case actionPrevious:
		m.selector.Previous()
		m.traceCursor()
	case actionConfirm:
		m.selector.Confirm()
		if name, ok := m.selector.SelectedName(); ok {
			events.UI.Confirm(name)
		}
	case actionRefresh:
		m.Refresh()
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
		m.help.Width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	events.UI.Resize(m.width, m.height)
	return nil
}

func (m *Model) handleTickMsg(tea.Msg) tea.Cmd {
	return tick()
}

func (m *Model) traceCursor() {
	if idx, ok := m.selector.Selected(); ok {
		events.UI.Cursor(idx)
	}
}

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

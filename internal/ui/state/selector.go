// Package state holds the selector's state machine and the scroll position
// the renderer keeps in step with it.
package state

import "github.com/atomicstack/ams/internal/tmux"

// Selector tracks the listed sessions, the highlighted row and the exit
// outcome of the interactive selector. It has a single owner and is not safe
// for concurrent use.
type Selector struct {
	sessions     []tmux.Session
	selected     int
	hasSelected  bool
	shouldQuit   bool
	selectedName string
	hasName      bool
}

// NewSelector returns an empty selector with no selection.
func NewSelector() *Selector {
	return &Selector{}
}

// Refresh replaces the sessions wholesale. The first row is selected when
// nothing was selected yet; an empty list clears the selection. An existing
// selection keeps its index, clamped to the new list.
func (s *Selector) Refresh(sessions []tmux.Session) {
	s.sessions = append([]tmux.Session(nil), sessions...)
	switch {
	case len(s.sessions) == 0:
		s.selected, s.hasSelected = 0, false
	case !s.hasSelected:
		s.selected, s.hasSelected = 0, true
	case s.selected >= len(s.sessions):
		s.selected = len(s.sessions) - 1
	}
}

// Next moves the selection down, wrapping to the first row.
func (s *Selector) Next() {
	n := len(s.sessions)
	if n == 0 {
		return
	}
	if !s.hasSelected || s.selected >= n-1 {
		s.selected = 0
	} else {
		s.selected++
	}
	s.hasSelected = true
}

// Previous moves the selection up, wrapping to the last row.
func (s *Selector) Previous() {
	n := len(s.sessions)
	if n == 0 {
		return
	}
	switch {
	case !s.hasSelected:
		s.selected = 0
	case s.selected == 0:
		s.selected = n - 1
	default:
		s.selected--
	}
	s.hasSelected = true
}

// Confirm records the highlighted session's name and latches quit. It does
// nothing without a valid selection.
func (s *Selector) Confirm() {
	if !s.hasSelected || s.selected < 0 || s.selected >= len(s.sessions) {
		return
	}
	if !s.hasName {
		s.selectedName = s.sessions[s.selected].Name
		s.hasName = true
	}
	s.shouldQuit = true
}

// Quit latches quit without recording a session.
func (s *Selector) Quit() {
	s.shouldQuit = true
}

// Sessions returns the current listing in query order.
func (s *Selector) Sessions() []tmux.Session {
	return s.sessions
}

// Selected reports the highlighted index, if any.
func (s *Selector) Selected() (int, bool) {
	if !s.hasSelected {
		return 0, false
	}
	return s.selected, true
}

// ShouldQuit reports whether the selector has finished.
func (s *Selector) ShouldQuit() bool {
	return s.shouldQuit
}

// SelectedName reports the confirmed session name, if any.
func (s *Selector) SelectedName() (string, bool) {
	return s.selectedName, s.hasName
}

package tmux

import (
	"fmt"
	"time"
)

// SessionStatus classifies a session by its attached clients.
type SessionStatus int

const (
	// StatusActive means at least one client is attached.
	StatusActive SessionStatus = iota
	// StatusIdle means the session is running with no attached clients.
	StatusIdle
	// StatusDead means the session no longer exists. Listing never produces it.
	StatusDead
)

func (s SessionStatus) String() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusIdle:
		return "Idle"
	case StatusDead:
		return "Dead"
	default:
		return fmt.Sprintf("SessionStatus(%d)", int(s))
	}
}

// statusForClients derives the status from the attached-client count.
func statusForClients(attached uint32) SessionStatus {
	if attached > 0 {
		return StatusActive
	}
	return StatusIdle
}

// Session is a snapshot of one tmux session taken at query time.
type Session struct {
	Name             string
	Status           SessionStatus
	WorkingDirectory string
	LastActivity     time.Time
	CreatedAt        time.Time
	WindowCount      uint32
}

package tmux

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/atomicstack/ams/internal/logging/events"
)

// Stderr fragments tmux prints for conditions with a dedicated meaning.
var (
	noServerMarkers = []string{"no server running", "no sessions", "error connecting to"}
	duplicateMarker = "duplicate session"
	notFoundMarkers = []string{"session not found", "can't find session"}
)

// Repository runs tmux session queries and actions against one server.
type Repository struct {
	socketPath string
}

// NewRepository returns a repository bound to socketPath. An empty path uses
// tmux's default server.
func NewRepository(socketPath string) *Repository {
	return &Repository{socketPath: strings.TrimSpace(socketPath)}
}

// ListSessions returns every session on the server in tmux order. A missing
// server or an empty server is reported as an empty list.
func (r *Repository) ListSessions() ([]Session, error) {
	stdout, stderr, err := r.query("list-sessions", "-F", statusFormat)
	if err != nil {
		events.Session.ListError(err)
		return nil, err
	}
	if stderr != "" {
		if containsAny(stderr, noServerMarkers) {
			events.Session.List(0)
			return []Session{}, nil
		}
		err := parseError("%s", stderr)
		events.Session.ListError(err)
		return nil, err
	}
	sessions, err := ParseSessions(stdout)
	if err != nil {
		events.Session.ListError(err)
		return nil, err
	}
	events.Session.List(len(sessions))
	return sessions, nil
}

// GetSession looks up a single session by exact name.
func (r *Repository) GetSession(name string) (Session, error) {
	filter := fmt.Sprintf("#{==:#{session_name},%s}", name)
	stdout, stderr, err := r.query("list-sessions", "-F", statusFormat, "-f", filter)
	if err != nil {
		return Session{}, err
	}
	if stderr != "" {
		if containsAny(stderr, noServerMarkers) {
			return Session{}, sessionNotFound(name)
		}
		return Session{}, parseError("%s", stderr)
	}
	sessions, err := ParseSessions(stdout)
	if err != nil {
		return Session{}, err
	}
	// tmux evaluates the filter as a format, so a name holding format syntax
	// can match other sessions. Only an exact name counts.
	for _, s := range sessions {
		if s.Name == name {
			events.Session.Get(name, s.Status.String())
			return s, nil
		}
	}
	return Session{}, sessionNotFound(name)
}

// CreateSession starts a detached session, optionally rooted at directory.
func (r *Repository) CreateSession(name, directory string) error {
	args := []string{"new-session", "-d", "-s", name}
	if strings.TrimSpace(directory) != "" {
		args = append(args, "-c", directory)
	}
	events.Session.Create(name, directory)
	_, stderr, err := r.query(args...)
	if err != nil {
		return err
	}
	if stderr != "" {
		if strings.Contains(stderr, duplicateMarker) {
			return sessionExists(name)
		}
		return parseError("%s", stderr)
	}
	return nil
}

// KillSession terminates the named session.
func (r *Repository) KillSession(name string) error {
	events.Session.Kill(name)
	_, stderr, err := r.query("kill-session", "-t", exactTarget(name))
	if err != nil {
		return err
	}
	if stderr != "" {
		if containsAny(stderr, notFoundMarkers) {
			return sessionNotFound(name)
		}
		return parseError("%s", stderr)
	}
	return nil
}

// AttachSession hands the terminal to the named session. Inside tmux the
// current client is switched instead of nesting a second client.
func (r *Repository) AttachSession(name string) error {
	verb := "attach-session"
	if insideTmux() {
		verb = "switch-client"
	}
	events.Session.Attach(name, verb)
	args := append(baseArgs(r.socketPath), verb, "-t", exactTarget(name))
	if err := runInteractiveCommand(tmuxBinary, args...).Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return sessionNotFound(name)
		}
		return commandFailed(err)
	}
	return nil
}

// query runs tmux and splits the outcome into stdout on success or stderr on
// a non-zero exit. err is only set when tmux could not be run at all.
func (r *Repository) query(extra ...string) (stdout, stderr string, err error) {
	args := append(baseArgs(r.socketPath), extra...)
	out, runErr := runExecCommand(tmuxBinary, args...).Output()
	if runErr == nil {
		return string(out), "", nil
	}
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		text := strings.TrimSpace(strings.ToValidUTF8(string(exitErr.Stderr), "�"))
		if text == "" {
			text = exitErr.Error()
		}
		return "", text, nil
	}
	return "", "", commandFailed(runErr)
}

func containsAny(text string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

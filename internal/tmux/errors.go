package tmux

import "fmt"

// ErrorKind enumerates the failure classes surfaced by this package.
type ErrorKind int

const (
	// KindCommandFailed means tmux could not be executed at all.
	KindCommandFailed ErrorKind = iota
	// KindParse covers malformed output and unrecognised tmux failures.
	KindParse
	// KindServerNotRunning is reserved; listing reports an absent server as
	// an empty result instead.
	KindServerNotRunning
	// KindSessionNotFound means the named session does not exist.
	KindSessionNotFound
	// KindSessionExists means a session with the name is already present.
	KindSessionExists
)

func (k ErrorKind) String() string {
	switch k {
	case KindCommandFailed:
		return "command failed"
	case KindParse:
		return "parse error"
	case KindServerNotRunning:
		return "server not running"
	case KindSessionNotFound:
		return "session not found"
	case KindSessionExists:
		return "session exists"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is returned by every tmux operation and the status feed parser.
type Error struct {
	Kind    ErrorKind
	Session string
	Detail  string
	Err     error
}

// Sentinels for errors.Is; they match any *Error of the same kind.
var (
	ErrCommandFailed    = &Error{Kind: KindCommandFailed}
	ErrParse            = &Error{Kind: KindParse}
	ErrServerNotRunning = &Error{Kind: KindServerNotRunning}
	ErrSessionNotFound  = &Error{Kind: KindSessionNotFound}
	ErrSessionExists    = &Error{Kind: KindSessionExists}
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindCommandFailed:
		return fmt.Sprintf("failed to execute tmux command: %v", e.Err)
	case KindParse:
		return fmt.Sprintf("failed to parse tmux output: %s", e.Detail)
	case KindServerNotRunning:
		return "tmux server not running"
	case KindSessionNotFound:
		return fmt.Sprintf("session not found: %s", e.Session)
	case KindSessionExists:
		return fmt.Sprintf("session already exists: %s", e.Session)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func commandFailed(err error) error {
	return &Error{Kind: KindCommandFailed, Err: err}
}

func parseError(format string, args ...interface{}) error {
	return &Error{Kind: KindParse, Detail: fmt.Sprintf(format, args...)}
}

func sessionNotFound(name string) error {
	return &Error{Kind: KindSessionNotFound, Session: name}
}

func sessionExists(name string) error {
	return &Error{Kind: KindSessionExists, Session: name}
}

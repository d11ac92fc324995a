package app

import (
	"os"

	"github.com/atomicstack/ams/internal/logging"
	"golang.org/x/term"
)

// terminalGuard restores the tty mode captured before the selector started,
// whatever state the program left it in.
type terminalGuard struct {
	fd    int
	state *term.State
}

func acquireTerminal(f *os.File) *terminalGuard {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return &terminalGuard{fd: -1}
	}
	state, err := term.GetState(fd)
	if err != nil {
		logging.Error(err)
		return &terminalGuard{fd: -1}
	}
	return &terminalGuard{fd: fd, state: state}
}

func (g *terminalGuard) restore() {
	if g == nil || g.state == nil {
		return
	}
	if err := term.Restore(g.fd, g.state); err != nil {
		logging.Error(err)
	}
}

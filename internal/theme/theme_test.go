package theme

import (
	"testing"

	"github.com/atomicstack/ams/internal/tmux"
	"github.com/charmbracelet/lipgloss"
)

func TestStatusStylesAreDistinct(t *testing.T) {
	styles := Default()
	seen := map[lipgloss.TerminalColor]tmux.SessionStatus{}
	for _, status := range []tmux.SessionStatus{tmux.StatusActive, tmux.StatusIdle, tmux.StatusDead} {
		style := styles.Status(status)
		if style == nil {
			t.Fatalf("expected style for %s", status)
		}
		fg := style.GetForeground()
		if prev, ok := seen[fg]; ok {
			t.Fatalf("%s shares foreground %v with %s", status, fg, prev)
		}
		seen[fg] = status
	}
}

func TestUnknownStatusFallsBackToItem(t *testing.T) {
	styles := Default()
	if got := styles.Status(tmux.SessionStatus(42)); got != styles.Item {
		t.Fatalf("expected item style for unknown status")
	}
}

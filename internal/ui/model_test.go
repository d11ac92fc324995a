package ui

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/ams/internal/logging"
	"github.com/atomicstack/ams/internal/tmux"
	tea "github.com/charmbracelet/bubbletea"
)

type stubLister struct {
	sessions []tmux.Session
	err      error
	calls    int
}

func (s *stubLister) ListSessions() ([]tmux.Session, error) {
	s.calls++
	return s.sessions, s.err
}

func sessionsNamed(names ...string) []tmux.Session {
	out := make([]tmux.Session, 0, len(names))
	for _, name := range names {
		out = append(out, tmux.Session{
			Name:             name,
			Status:           tmux.StatusIdle,
			WorkingDirectory: "/home/user/" + name,
			WindowCount:      1,
			LastActivity:     time.Unix(1704067200, 0).UTC(),
			CreatedAt:        time.Unix(1704067200, 0).UTC(),
		})
	}
	return out
}

func newTestHarness(t *testing.T, lister *stubLister) *Harness {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "ams.log"))
	m := NewModel(lister, 120, 0, true)
	m.Refresh()
	return NewHarness(m)
}

func selectedIndex(t *testing.T, h *Harness) int {
	t.Helper()
	idx, ok := h.Model().Selector().Selected()
	if !ok {
		t.Fatalf("expected a selection")
	}
	return idx
}

func TestInitialRefreshSelectsFirstRow(t *testing.T) {
	lister := &stubLister{sessions: sessionsNamed("a", "b")}
	h := newTestHarness(t, lister)
	if lister.calls != 1 {
		t.Fatalf("expected one listing, got %d", lister.calls)
	}
	if got := selectedIndex(t, h); got != 0 {
		t.Fatalf("expected first row, got %d", got)
	}
}

func TestNavigationKeysWrap(t *testing.T) {
	h := newTestHarness(t, &stubLister{sessions: sessionsNamed("a", "b", "c")})
	steps := []struct {
		key  string
		want int
	}{
		{"j", 1},
		{"down", 2},
		{"j", 0},
		{"k", 2},
		{"up", 1},
	}
	for _, step := range steps {
		h.Key(step.key)
		if got := selectedIndex(t, h); got != step.want {
			t.Fatalf("after %q expected %d, got %d", step.key, step.want, got)
		}
	}
	if h.Quit() {
		t.Fatalf("navigation must not quit")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		h := newTestHarness(t, &stubLister{sessions: sessionsNamed("a")})
		h.Key(key)
		if !h.Quit() {
			t.Fatalf("%q: expected quit", key)
		}
		if _, ok := h.Model().Selected(); ok {
			t.Fatalf("%q: quit must not select a session", key)
		}
	}
}

func TestConfirmSelectsAndQuits(t *testing.T) {
	h := newTestHarness(t, &stubLister{sessions: sessionsNamed("a", "b")})
	h.Key("j")
	h.Key("enter")
	if !h.Quit() {
		t.Fatalf("expected quit after confirm")
	}
	name, ok := h.Model().Selected()
	if !ok || name != "b" {
		t.Fatalf("expected b to be selected, got %q %v", name, ok)
	}
}

func TestConfirmOnEmptyListDoesNothing(t *testing.T) {
	h := newTestHarness(t, &stubLister{})
	h.Key("enter")
	if h.Quit() {
		t.Fatalf("confirm without sessions must not quit")
	}
}

func TestRefreshKeyReloadsAndClamps(t *testing.T) {
	lister := &stubLister{sessions: sessionsNamed("a", "b", "c")}
	h := newTestHarness(t, lister)
	h.Key("k")
	lister.sessions = sessionsNamed("a")
	h.Key("r")
	if lister.calls != 2 {
		t.Fatalf("expected a second listing, got %d", lister.calls)
	}
	if got := selectedIndex(t, h); got != 0 {
		t.Fatalf("expected clamped selection, got %d", got)
	}
}

func TestRefreshErrorShowsEmptyList(t *testing.T) {
	lister := &stubLister{sessions: sessionsNamed("a"), err: errors.New("boom")}
	h := newTestHarness(t, lister)
	if got := len(h.Model().Selector().Sessions()); got != 0 {
		t.Fatalf("expected empty list on error, got %d sessions", got)
	}
	if _, ok := h.Model().Selector().Selected(); ok {
		t.Fatalf("expected no selection")
	}
}

func TestUnknownKeysIgnored(t *testing.T) {
	lister := &stubLister{sessions: sessionsNamed("a", "b")}
	h := newTestHarness(t, lister)
	for _, key := range []string{"x", "Q", "J"} {
		h.Key(key)
	}
	if h.Quit() || lister.calls != 1 || selectedIndex(t, h) != 0 {
		t.Fatalf("expected unknown keys to be ignored")
	}
}

func TestTickReschedulesWithoutRefreshing(t *testing.T) {
	lister := &stubLister{sessions: sessionsNamed("a")}
	h := newTestHarness(t, lister)
	_, cmd := h.Model().Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatalf("expected the next tick to be scheduled")
	}
	if lister.calls != 1 {
		t.Fatalf("ticks must not refresh, got %d listings", lister.calls)
	}
	if h.Model().Init() == nil {
		t.Fatalf("expected Init to schedule a tick")
	}
}

func TestWindowSizeFollowsTerminalUnlessFixed(t *testing.T) {
	m := NewModel(&stubLister{}, 0, 0, false)
	m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	if m.width != 90 || m.height != 30 {
		t.Fatalf("expected 90x30, got %dx%d", m.width, m.height)
	}

	fixed := NewModel(&stubLister{}, 50, 10, false)
	fixed.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	if fixed.width != 50 || fixed.height != 10 {
		t.Fatalf("expected fixed 50x10, got %dx%d", fixed.width, fixed.height)
	}
}

func TestKeyClassification(t *testing.T) {
	keys := defaultKeyMap()
	cases := map[string]action{
		"q":      actionQuit,
		"esc":    actionQuit,
		"ctrl+c": actionQuit,
		"j":      actionNext,
		"down":   actionNext,
		"k":      actionPrevious,
		"up":     actionPrevious,
		"enter":  actionConfirm,
		"r":      actionRefresh,
		"x":      actionNone,
	}
	for name, want := range cases {
		if got := keys.classify(keyMsg(name)); got != want {
			t.Fatalf("%q: expected %d, got %d", name, want, got)
		}
	}
}

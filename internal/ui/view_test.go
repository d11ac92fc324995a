package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/ams/internal/tmux"
	"github.com/charmbracelet/x/ansi"
)

func plainView(h *Harness) []string {
	return strings.Split(ansi.Strip(h.View()), "\n")
}

func lineContaining(lines []string, needle string) string {
	for _, line := range lines {
		if strings.Contains(line, needle) {
			return line
		}
	}
	return ""
}

func TestViewShowsTitleHeaderAndRows(t *testing.T) {
	lister := &stubLister{sessions: sessionsNamed("alpha", "beta")}
	lister.sessions[1].Status = tmux.StatusActive
	lister.sessions[1].WindowCount = 3
	h := newTestHarness(t, lister)

	lines := plainView(h)
	if !strings.Contains(lines[0], defaultTitle) {
		t.Fatalf("expected title, got %q", lines[0])
	}
	header := lineContaining(lines, "Working Directory")
	for _, column := range []string{"Name", "Status", "Windows"} {
		if !strings.Contains(header, column) {
			t.Fatalf("expected %q in header %q", column, header)
		}
	}
	if row := lineContaining(lines, "alpha"); !strings.HasPrefix(row, selectedMarker) {
		t.Fatalf("expected alpha to be highlighted, got %q", row)
	}
	row := lineContaining(lines, "beta")
	if strings.HasPrefix(row, selectedMarker) {
		t.Fatalf("expected beta to be unselected, got %q", row)
	}
	for _, want := range []string{"Active", "3", "/home/user/beta"} {
		if !strings.Contains(row, want) {
			t.Fatalf("expected %q in row %q", want, row)
		}
	}
}

func TestViewMovesHighlight(t *testing.T) {
	h := newTestHarness(t, &stubLister{sessions: sessionsNamed("alpha", "beta")})
	h.Key("j")
	lines := plainView(h)
	if row := lineContaining(lines, "beta"); !strings.HasPrefix(row, selectedMarker) {
		t.Fatalf("expected beta to be highlighted, got %q", row)
	}
	if row := lineContaining(lines, "alpha"); strings.HasPrefix(row, selectedMarker) {
		t.Fatalf("expected alpha to lose the highlight, got %q", row)
	}
}

func TestViewEmptyList(t *testing.T) {
	h := newTestHarness(t, &stubLister{})
	if line := lineContaining(plainView(h), emptyMessage); line == "" {
		t.Fatalf("expected empty message in view:\n%s", h.View())
	}
}

func TestViewTruncatesLongFields(t *testing.T) {
	lister := &stubLister{sessions: sessionsNamed("a-very-long-session-name-indeed")}
	lister.sessions[0].WorkingDirectory = "/srv/" + strings.Repeat("x", 60) + "/project-end"
	h := newTestHarness(t, lister)

	row := lineContaining(plainView(h), "a-very-long")
	if !strings.Contains(row, "a-very-long-sessi...") {
		t.Fatalf("expected head-truncated name, got %q", row)
	}
	if strings.Contains(row, "a-very-long-session-name-indeed") {
		t.Fatalf("expected the full name to be cut, got %q", row)
	}
	if !strings.HasSuffix(row, "/project-end") {
		t.Fatalf("expected the path tail to be kept, got %q", row)
	}
	if strings.Contains(row, "/srv/") {
		t.Fatalf("expected the path head to be cut, got %q", row)
	}
}

func TestViewClipsToWidth(t *testing.T) {
	h := NewHarness(NewModel(&stubLister{sessions: sessionsNamed("alpha")}, 30, 0, false))
	h.Model().Refresh()
	for _, line := range plainView(h) {
		if w := ansi.StringWidth(line); w > 30 {
			t.Fatalf("line exceeds width (%d): %q", w, line)
		}
	}
}

func TestViewScrollsToKeepSelectionVisible(t *testing.T) {
	names := []string{"s0", "s1", "s2", "s3", "s4", "s5"}
	m := NewModel(&stubLister{sessions: sessionsNamed(names...)}, 80, 7, false)
	m.Refresh()
	h := NewHarness(m)
	for i := 0; i < 4; i++ {
		h.Key("j")
	}
	lines := plainView(h)
	if row := lineContaining(lines, "s4"); !strings.HasPrefix(row, selectedMarker) {
		t.Fatalf("expected s4 to be visible and highlighted:\n%s", strings.Join(lines, "\n"))
	}
	if lineContaining(lines, "s0") != "" {
		t.Fatalf("expected s0 to scroll out of view:\n%s", strings.Join(lines, "\n"))
	}
}

func TestViewFooterShowsKeyHelp(t *testing.T) {
	h := newTestHarness(t, &stubLister{sessions: sessionsNamed("alpha")})
	view := ansi.Strip(h.View())
	for _, want := range []string{"quit", "attach", "refresh"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in footer:\n%s", want, view)
		}
	}
}

func TestViewSanitisesInvalidPaths(t *testing.T) {
	lister := &stubLister{sessions: sessionsNamed("odd")}
	lister.sessions[0].WorkingDirectory = "/tmp/\xff"
	h := newTestHarness(t, lister)
	if row := lineContaining(plainView(h), "odd"); !strings.Contains(row, "/tmp/�") {
		t.Fatalf("expected replacement character, got %q", row)
	}
}

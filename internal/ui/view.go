package ui

import (
	"strconv"
	"strings"

	"github.com/atomicstack/ams/internal/format"
	"github.com/atomicstack/ams/internal/tmux"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const (
	nameWidth    = 20
	statusWidth  = 10
	windowsWidth = 8
	cwdWidth     = 40

	selectedMarker   = "▶ "
	unselectedMarker = "  "

	emptyMessage = "No tmux sessions found. Press r to refresh."
)

type span struct {
	text  string
	style *lipgloss.Style
	raw   bool // already styled
}

type styledLine []span

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{{text: " " + m.title + " ", style: styles.Title}}, nil)
	lines = append(lines, headerLine(), ruleLine(m.width))

	sessions := m.selector.Sessions()
	if len(sessions) == 0 {
		lines = append(lines, styledLine{{text: emptyMessage, style: styles.Info}})
	} else {
		cursor, hasCursor := m.selector.Selected()
		maxRows := m.maxVisibleRows()
		m.viewport.Follow(cursor, len(sessions), maxRows)
		start, end := m.viewport.Window(len(sessions), maxRows)
		for idx := start; idx < end; idx++ {
			lines = append(lines, sessionLine(sessions[idx], hasCursor && idx == cursor))
		}
	}

	if m.showFooter {
		lines = append(lines, nil, styledLine{{text: m.help.View(m.keys), raw: true}})
	}
	return renderLines(lines, m.width)
}

// maxVisibleRows is the number of session rows that fit below the header.
// Zero means the height is unknown and every row is shown.
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return 0
	}
	chrome := 4
	if m.showFooter {
		chrome += 2
	}
	rows := m.height - chrome
	if rows < 1 {
		rows = 1
	}
	return rows
}

func headerLine() styledLine {
	text := unselectedMarker +
		cell("Name", nameWidth) +
		cell("Status", statusWidth) +
		cell("Windows", windowsWidth) +
		"Working Directory"
	return styledLine{{text: text, style: styles.Header}}
}

func ruleLine(width int) styledLine {
	w := width
	if w <= 0 || w > rowWidth() {
		w = rowWidth()
	}
	return styledLine{{text: strings.Repeat("─", w), style: styles.Border}}
}

func rowWidth() int {
	return runewidth.StringWidth(unselectedMarker) + nameWidth + statusWidth + windowsWidth + 3 + cwdWidth
}

func sessionLine(s tmux.Session, selected bool) styledLine {
	name := cell(format.Head(s.Name, nameWidth), nameWidth)
	status := cell(s.Status.String(), statusWidth)
	windows := cell(strconv.FormatUint(uint64(s.WindowCount), 10), windowsWidth)
	cwd := format.Tail(s.WorkingDirectory, cwdWidth)

	if !selected {
		return styledLine{
			{text: unselectedMarker, style: styles.ItemIndicator},
			{text: name, style: styles.Item},
			{text: status, style: styles.Status(s.Status)},
			{text: windows, style: styles.Item},
			{text: cwd, style: styles.Item},
		}
	}
	highlighted := styles.Status(s.Status).Inherit(*styles.SelectedItem)
	return styledLine{
		{text: selectedMarker, style: styles.SelectedItemIndicator},
		{text: name, style: styles.SelectedItem},
		{text: status, style: &highlighted},
		{text: windows, style: styles.SelectedItem},
		{text: cwd, style: styles.SelectedItem},
	}
}

// cell pads text to width plus the single column gap.
func cell(text string, width int) string {
	return format.Pad(text, width) + " "
}

func renderLines(lines []styledLine, width int) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		var b strings.Builder
		for _, sp := range clip(line, width) {
			if sp.raw || sp.style == nil {
				b.WriteString(sp.text)
				continue
			}
			b.WriteString(sp.style.Render(sp.text))
		}
		out[i] = b.String()
	}
	return strings.Join(out, "\n")
}

// clip cuts a line to width display cells. A non-positive width disables it.
func clip(line styledLine, width int) styledLine {
	if width <= 0 {
		return line
	}
	clipped := make(styledLine, 0, len(line))
	used := 0
	for _, sp := range line {
		w := lipgloss.Width(sp.text)
		if used+w <= width {
			clipped = append(clipped, sp)
			used += w
			continue
		}
		if room := width - used; room > 0 {
			sp.text = truncate.String(sp.text, uint(room))
			clipped = append(clipped, sp)
		}
		break
	}
	return clipped
}

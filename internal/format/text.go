// Package format holds the text shaping shared by the selector and the list
// command: display-safe paths, width-bounded truncation and relative times.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

// Ellipsis marks text cut by Head.
const Ellipsis = "..."

// Lossy makes raw text safe to display by replacing invalid UTF-8 sequences.
func Lossy(s string) string {
	return strings.ToValidUTF8(s, "�")
}

// Head keeps the start of s within width cells, ending with Ellipsis when cut.
func Head(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = Lossy(s)
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= len(Ellipsis) {
		return truncate.String(s, uint(width))
	}
	return truncate.StringWithTail(s, uint(width), Ellipsis)
}

// Tail keeps the end of s within width cells. Nothing marks the cut.
func Tail(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = Lossy(s)
	if runewidth.StringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	used := 0
	start := len(runes)
	for start > 0 {
		w := runewidth.RuneWidth(runes[start-1])
		if used+w > width {
			break
		}
		used += w
		start--
	}
	return string(runes[start:])
}

// Prefix keeps the first width cells of s with no marker.
func Prefix(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return truncate.String(Lossy(s), uint(width))
}

// Pad right-pads s with spaces to width cells.
func Pad(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Relative describes how long before now t happened.
func Relative(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	default:
		return plural(int(d/(24*time.Hour)), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

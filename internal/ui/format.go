package ui

import (
	"fmt"
	"strings"

	"github.com/lucasortiz/dayplan/internal/event"
)

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}

// categoryTag returns the short bracketed category marker.
func categoryTag(c event.Category) string {
	switch c {
	case event.CategoryMeeting:
		return "[M]"
	case event.CategoryPersonal:
		return "[P]"
	case event.CategoryBreak:
		return "[B]"
	default:
		return "[W]"
	}
}

// PrintEventRow prints a single event row.
func PrintEventRow(e *event.Event) {
	title := e.Title
	style := formatFlexible
	if e.IsFixed {
		title += " (fixed)"
		style = formatFixed
	}

	fmt.Printf("  %s-%s  %s  %s  %s\n",
		e.Start.Format("15:04"),
		e.End.Format("15:04"),
		categoryTag(e.Category),
		style(title),
		formatMuted(FormatDuration(int(e.Duration().Minutes()))),
	)
}

// PrintWarnings prints advisory warnings, if any.
func PrintWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Printf("  %s %s\n", formatWarning("!"), w)
	}
}

// shortID returns a truncated id for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// truncate shortens s to at most width runes.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

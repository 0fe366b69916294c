package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/lucasortiz/dayplan/internal/event"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h30m"},
		{150, "2h30m"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"fits", "short", 10, "short"},
		{"exact", "exactly10!", 10, "exactly10!"},
		{"truncated", "a much longer title", 10, "a much ..."},
		{"tiny width", "abcdef", 2, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.width); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveEventID(t *testing.T) {
	events := []*event.Event{
		{ID: "abc123"},
		{ID: "abd456"},
		{ID: "xyz789"},
	}

	tests := []struct {
		name   string
		prefix string
		want   string
	}{
		{"empty stays empty", "", ""},
		{"unique prefix expands", "xy", "xyz789"},
		{"full id", "abc123", "abc123"},
		{"ambiguous prefix kept as-is", "ab", "ab"},
		{"unknown prefix kept as-is", "zzz", "zzz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveEventID(events, tt.prefix); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveTaskID(t *testing.T) {
	tasks := []*event.Task{
		{ID: "fa01b2c3-full-task-id"},
		{ID: "fa99d4e5-full-task-id"},
		{ID: "0b12c3d4-full-task-id"},
	}

	tests := []struct {
		name   string
		prefix string
		want   string
	}{
		{"empty stays empty", "", ""},
		{"short printed id expands", "0b12c3d4", "0b12c3d4-full-task-id"},
		{"unique prefix expands", "fa0", "fa01b2c3-full-task-id"},
		{"ambiguous prefix kept as-is", "fa", "fa"},
		{"unknown prefix kept as-is", "zz", "zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveTaskID(tasks, tt.prefix); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderDay(t *testing.T) {
	DisableColor()

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	events := []*event.Event{
		{ID: "a", Title: "Standup", Start: day.Add(9 * time.Hour), End: day.Add(9*time.Hour + 30*time.Minute)},
		{ID: "b", Title: "Planning", Start: day.Add(9*time.Hour + 15*time.Minute), End: day.Add(10 * time.Hour)},
		{ID: "c", Title: "Lunch", Start: day.Add(12 * time.Hour), End: day.Add(13 * time.Hour), IsFixed: true},
	}

	out := renderDay(events)

	for _, want := range []string{"Standup", "Planning", "Lunch", "09:00", "12:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered day missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "(2 overlapping)") {
		t.Errorf("overlap note missing:\n%s", out)
	}

	// The second lane must be indented past the first.
	var planningIndented bool
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Planning") && strings.HasPrefix(line, strings.Repeat(" ", laneWidth)) {
			planningIndented = true
		}
	}
	if !planningIndented {
		t.Errorf("overlapping event not placed in a second lane:\n%s", out)
	}
}

package aiplan

import (
	"strings"
	"testing"
	"time"

	"github.com/lucasortiz/dayplan/internal/event"
)

func TestBuildMessages(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local) // Monday
	events := []*event.Event{
		{
			ID:    "e1",
			Title: "Standup ```not data```",
			Start: time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local),
			End:   time.Date(2025, 3, 10, 9, 30, 0, 0, time.Local),
		},
	}
	tasks := []*event.Task{
		{ID: "t1", Title: "Write report", EstimatedMinutes: 45},
		{ID: "t2", Title: "<b>Review</b> PR"},
	}

	system, user := buildMessages(now, "09:00", "18:00", events, tasks)

	if !strings.Contains(system, "09:00") || !strings.Contains(system, "18:00") {
		t.Error("system prompt missing working hours")
	}
	if !strings.Contains(system, "JSON array") {
		t.Error("system prompt missing output format instruction")
	}

	if !strings.HasPrefix(user, "<data>") || !strings.HasSuffix(user, "</data>") {
		t.Error("user message not wrapped in data delimiters")
	}
	if !strings.Contains(user, "Monday, 2025-03-10") {
		t.Errorf("user message missing current date:\n%s", user)
	}
	if strings.Contains(user, "```") {
		t.Error("event title reached prompt unsanitized")
	}
	if strings.Contains(user, "<b>") {
		t.Error("task title reached prompt unsanitized")
	}
	if !strings.Contains(user, "ID: t1") || !strings.Contains(user, "ID: t2") {
		t.Error("task ids missing from prompt")
	}
	if !strings.Contains(user, "estimated 45 minutes") {
		t.Error("explicit estimate missing from prompt")
	}
	if !strings.Contains(user, "estimated 30 minutes") {
		t.Error("default estimate missing from prompt")
	}
}

func TestBuildMessagesEmptyCalendar(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)
	tasks := []*event.Task{{ID: "t1", Title: "Something"}}

	_, user := buildMessages(now, "09:00", "18:00", nil, tasks)

	if !strings.Contains(user, "No existing events") {
		t.Error("empty calendar not stated in prompt")
	}
}

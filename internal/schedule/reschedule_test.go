package schedule

import (
	"strings"
	"testing"
	"time"

	"github.com/lucasortiz/dayplan/internal/event"
)

func TestReschedule_Empty(t *testing.T) {
	result := Reschedule(nil, 30, DefaultOptions())
	if len(result.Events) != 0 || len(result.Changes) != 0 || len(result.Warnings) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestReschedule_DelayPropagation(t *testing.T) {
	// A runs 20 minutes long; B sits right behind it.
	a := block("a", 9, 0, 10, 0)
	b := block("b", 10, 0, 10, 30)

	result := Reschedule([]*event.Event{a, b}, 20, DefaultOptions())

	got := eventsByID(result.Events)

	// A receives the delay directly: 09:20-10:20.
	if !got["a"].Start.Equal(at(9, 20)) || !got["a"].End.Equal(at(10, 20)) {
		t.Errorf("a = %v-%v, want 09:20-10:20", got["a"].Start, got["a"].End)
	}

	// B starts at max(10:20+5m, 10:00) = 10:25, keeping its 30m duration.
	if !got["b"].Start.Equal(at(10, 25)) || !got["b"].End.Equal(at(10, 55)) {
		t.Errorf("b = %v-%v, want 10:25-10:55", got["b"].Start, got["b"].End)
	}

	if len(result.Changes) != 2 {
		t.Fatalf("got %d changes, want 2", len(result.Changes))
	}
	for _, c := range result.Changes {
		if c.EventID == "b" && !c.NewStart.Equal(at(10, 25)) {
			t.Errorf("change for b = %v, want 10:25", c.NewStart)
		}
	}
}

func TestReschedule_NeverPullsEarlier(t *testing.T) {
	// C has a big gap before it; even after the shift there is room to pull
	// it forward, but the engine must leave it at its original slot.
	a := block("a", 9, 0, 9, 30)
	c := block("c", 14, 0, 15, 0)

	result := Reschedule([]*event.Event{a, c}, 10, DefaultOptions())

	got := eventsByID(result.Events)
	if !got["c"].Start.Equal(at(14, 0)) {
		t.Errorf("c pulled to %v, want original 14:00", got["c"].Start)
	}

	for _, e := range result.Events {
		orig := map[string]time.Time{"a": at(9, 0), "c": at(14, 0)}[e.ID]
		if e.ID != "a" && e.Start.Before(orig) {
			t.Errorf("event %s moved earlier than its original start", e.ID)
		}
	}
}

func TestReschedule_FixedEventUntouched(t *testing.T) {
	a := block("a", 12, 0, 13, 0)
	fixed := block("m", 13, 0, 14, 0)
	fixed.IsFixed = true
	c := block("c", 14, 0, 15, 0)

	result := Reschedule([]*event.Event{a, fixed, c}, 120, DefaultOptions())

	got := eventsByID(result.Events)
	if !got["m"].Start.Equal(at(13, 0)) || !got["m"].End.Equal(at(14, 0)) {
		t.Errorf("fixed event moved to %v-%v", got["m"].Start, got["m"].End)
	}
	for _, c := range result.Changes {
		if c.EventID == "m" {
			t.Error("change recorded for fixed event")
		}
	}
}

func TestReschedule_FixedMovedWhenNotRespected(t *testing.T) {
	fixed := block("m", 10, 0, 11, 0)
	fixed.IsFixed = true

	opts := DefaultOptions()
	opts.RespectFixed = false

	result := Reschedule([]*event.Event{fixed}, 30, opts)
	got := eventsByID(result.Events)
	if !got["m"].Start.Equal(at(10, 30)) {
		t.Errorf("m = %v, want 10:30 when RespectFixed is off", got["m"].Start)
	}
}

func TestReschedule_DurationPreserved(t *testing.T) {
	events := []*event.Event{
		block("a", 9, 0, 10, 15),
		block("b", 10, 20, 11, 0),
		block("c", 11, 30, 12, 0),
	}
	want := map[string]time.Duration{}
	for _, e := range events {
		want[e.ID] = e.Duration()
	}

	result := Reschedule(events, 45, DefaultOptions())
	for _, e := range result.Events {
		if e.Duration() != want[e.ID] {
			t.Errorf("event %s duration = %v, want %v", e.ID, e.Duration(), want[e.ID])
		}
	}
}

func TestReschedule_BufferEnforced(t *testing.T) {
	events := []*event.Event{
		block("a", 9, 0, 10, 0),
		block("b", 10, 0, 10, 30),
		block("c", 10, 30, 11, 0),
	}

	opts := DefaultOptions()
	opts.BufferMinutes = 10

	result := Reschedule(events, 15, opts)

	sorted := event.SortByStart(result.Events)
	for i := 1; i < len(sorted); i++ {
		gap := sorted[i].Start.Sub(sorted[i-1].End)
		if gap < 10*time.Minute {
			t.Errorf("gap between %s and %s = %v, want >= 10m", sorted[i-1].ID, sorted[i].ID, gap)
		}
	}
}

func TestReschedule_StartFromEvent(t *testing.T) {
	a := block("a", 9, 0, 10, 0)
	b := block("b", 10, 30, 11, 0)
	c := block("c", 11, 30, 12, 0)

	opts := DefaultOptions()
	opts.StartFromEventID = "b"

	result := Reschedule([]*event.Event{a, b, c}, 30, opts)

	got := eventsByID(result.Events)
	if !got["a"].Start.Equal(at(9, 0)) {
		t.Errorf("a moved to %v, want untouched prefix", got["a"].Start)
	}
	if !got["b"].Start.Equal(at(11, 0)) {
		t.Errorf("b = %v, want 11:00 (original + 30m)", got["b"].Start)
	}
	// c: max(11:30 + 5m buffer, 11:30) = 11:35.
	if !got["c"].Start.Equal(at(11, 35)) {
		t.Errorf("c = %v, want 11:35", got["c"].Start)
	}
}

func TestReschedule_UnknownStartFromFallsBackToDayStart(t *testing.T) {
	a := block("a", 9, 0, 10, 0)
	b := block("b", 10, 30, 11, 0)

	opts := DefaultOptions()
	opts.StartFromEventID = "missing"

	result := Reschedule([]*event.Event{a, b}, 30, opts)

	got := eventsByID(result.Events)
	if !got["a"].Start.Equal(at(9, 30)) {
		t.Errorf("a = %v, want 09:30 (fallback shifts from the first event)", got["a"].Start)
	}
}

func TestReschedule_WorkdayEndWarning(t *testing.T) {
	a := block("late", 16, 30, 17, 30)

	result := Reschedule([]*event.Event{a}, 60, DefaultOptions())

	if len(result.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(result.Warnings))
	}
	if !strings.Contains(result.Warnings[0], "late") {
		t.Errorf("warning %q does not name the event", result.Warnings[0])
	}

	// Advisory only: the event still moved within the same day.
	got := eventsByID(result.Events)
	if !got["late"].Start.Equal(at(17, 30)) {
		t.Errorf("late = %v, want 17:30", got["late"].Start)
	}
}

func TestReschedule_InputNotMutated(t *testing.T) {
	a := block("a", 9, 0, 10, 0)

	Reschedule([]*event.Event{a}, 30, DefaultOptions())

	if !a.Start.Equal(at(9, 0)) {
		t.Errorf("input event mutated: %v", a.Start)
	}
}

func TestNormalizeBuffers(t *testing.T) {
	events := []*event.Event{
		block("a", 9, 0, 10, 0),
		block("b", 10, 2, 10, 30), // only 2 minutes behind a
		block("c", 11, 0, 11, 30), // comfortable gap, stays put
	}

	result := NormalizeBuffers(events, 5)

	got := eventsByID(result)
	if !got["a"].Start.Equal(at(9, 0)) {
		t.Errorf("a moved to %v", got["a"].Start)
	}
	if !got["b"].Start.Equal(at(10, 5)) || !got["b"].End.Equal(at(10, 33)) {
		t.Errorf("b = %v-%v, want 10:05-10:33", got["b"].Start, got["b"].End)
	}
	if !got["c"].Start.Equal(at(11, 0)) {
		t.Errorf("c moved to %v, want untouched 11:00", got["c"].Start)
	}
}

func TestNormalizeBuffers_CascadingShift(t *testing.T) {
	events := []*event.Event{
		block("a", 9, 0, 10, 0),
		block("b", 10, 0, 10, 30),
		block("c", 10, 31, 11, 0),
	}

	result := NormalizeBuffers(events, 5)

	got := eventsByID(result)
	if !got["b"].Start.Equal(at(10, 5)) {
		t.Errorf("b = %v, want 10:05", got["b"].Start)
	}
	// b now ends 10:35, so c must move to 10:40.
	if !got["c"].Start.Equal(at(10, 40)) {
		t.Errorf("c = %v, want 10:40", got["c"].Start)
	}
}

func TestNormalizeBuffers_IgnoresFixed(t *testing.T) {
	fixed := block("m", 10, 1, 11, 0)
	fixed.IsFixed = true
	events := []*event.Event{block("a", 9, 0, 10, 0), fixed}

	result := NormalizeBuffers(events, 5)

	got := eventsByID(result)
	if !got["m"].Start.Equal(at(10, 5)) {
		t.Errorf("m = %v, want 10:05 (buffer pass ignores IsFixed)", got["m"].Start)
	}
}

func eventsByID(events []*event.Event) map[string]*event.Event {
	m := make(map[string]*event.Event, len(events))
	for _, e := range events {
		m[e.ID] = e
	}
	return m
}

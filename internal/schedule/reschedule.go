package schedule

import (
	"fmt"
	"time"

	"github.com/lucasortiz/dayplan/internal/event"
)

// Options configures Reschedule. Use DefaultOptions as the starting point;
// the zero value means no buffer and no respect for fixed events.
type Options struct {
	BufferMinutes    int    // minimum gap restored between shifted events
	RespectFixed     bool   // leave fixed events untouched
	StartFromEventID string // first event to shift; empty means start of day
	WorkDayEndHour   int    // hour after which shifted events trigger a warning
}

// DefaultOptions returns the standard reschedule settings.
func DefaultOptions() Options {
	return Options{
		BufferMinutes:  5,
		RespectFixed:   true,
		WorkDayEndHour: 18,
	}
}

// Change records an event whose start actually moved.
type Change struct {
	EventID  string
	OldStart time.Time
	NewStart time.Time
}

// Result is the outcome of a reschedule pass.
type Result struct {
	Events   []*event.Event
	Changes  []Change
	Warnings []string
}

// Reschedule pushes a day's schedule forward after a delay. The event named
// by StartFromEventID receives the delay directly; every later movable event
// starts at max(previous end + buffer, its original start), so events are
// only ever pushed later, never pulled earlier. Fixed events pass through
// untouched when RespectFixed is set, and durations are always preserved.
//
// An unknown StartFromEventID falls back to the start of the day. That is
// deliberate: the caller asked for a shift and gets one, rather than a
// silent no-op.
func Reschedule(events []*event.Event, delayMinutes int, opts Options) Result {
	result := Result{}
	if len(events) == 0 {
		return result
	}

	sorted := event.SortByStart(events)

	startIndex := 0
	if opts.StartFromEventID != "" {
		for i, e := range sorted {
			if e.ID == opts.StartFromEventID {
				startIndex = i
				break
			}
		}
	}

	// Events before the starting point pass through unchanged.
	for i := 0; i < startIndex; i++ {
		result.Events = append(result.Events, sorted[i].Clone())
	}

	lastEnd := sorted[startIndex].Start
	if startIndex > 0 {
		lastEnd = sorted[startIndex-1].End
	}

	for i := startIndex; i < len(sorted); i++ {
		e := sorted[i]

		if opts.RespectFixed && e.IsFixed {
			result.Events = append(result.Events, e.Clone())
			lastEnd = e.End
			continue
		}

		var newStart time.Time
		if i == startIndex {
			newStart = e.Start.Add(time.Duration(delayMinutes) * time.Minute)
		} else {
			earliest := lastEnd.Add(time.Duration(opts.BufferMinutes) * time.Minute)
			if earliest.After(e.Start) {
				newStart = earliest
			} else {
				newStart = e.Start
			}
		}

		newEnd := newStart.Add(e.Duration())

		if newEnd.Hour() >= opts.WorkDayEndHour {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%q would end after %02d:00. Consider moving it to another day.",
					e.Title, opts.WorkDayEndHour))
		}

		if !newStart.Equal(e.Start) {
			result.Changes = append(result.Changes, Change{
				EventID:  e.ID,
				OldStart: e.Start,
				NewStart: newStart,
			})
		}

		moved := e.Clone()
		moved.Start = newStart
		moved.End = newEnd
		result.Events = append(result.Events, moved)

		lastEnd = newEnd
	}

	return result
}

// NormalizeBuffers walks events in start order and shifts any event that
// sits closer than bufferMinutes behind its predecessor just far enough to
// restore the buffer, preserving duration. It is a display cleanup pass:
// it ignores IsFixed and reports nothing.
func NormalizeBuffers(events []*event.Event, bufferMinutes int) []*event.Event {
	sorted := event.SortByStart(events)

	result := make([]*event.Event, 0, len(sorted))
	for i, e := range sorted {
		if i > 0 {
			prevEnd := result[i-1].End
			gap := e.Start.Sub(prevEnd)
			if gap < time.Duration(bufferMinutes)*time.Minute {
				moved := e.Clone()
				moved.Start = prevEnd.Add(time.Duration(bufferMinutes) * time.Minute)
				moved.End = moved.Start.Add(e.Duration())
				result = append(result, moved)
				continue
			}
		}
		result = append(result, e.Clone())
	}

	return result
}

package schedule

import (
	"time"

	"github.com/lucasortiz/dayplan/internal/event"
)

// MinGapMinutes is the smallest free interval worth reporting.
const MinGapMinutes = 15

// Gap is a free interval within working hours.
type Gap struct {
	Start           time.Time
	End             time.Time
	DurationMinutes int
}

// FindGaps returns the free intervals of at least MinGapMinutes between
// the given events, bounded by dayStartHour and dayEndHour on the date of
// the first event. An empty input yields no gaps: the finder needs at
// least one event to anchor the day.
//
// Overlapping input events are tolerated; a negative or zero gap between
// a pair simply fails the minimum-size check and is not emitted.
func FindGaps(events []*event.Event, dayStartHour, dayEndHour int) []Gap {
	if len(events) == 0 {
		return nil
	}

	sorted := event.SortByStart(events)

	first := sorted[0].Start
	dayStart := time.Date(first.Year(), first.Month(), first.Day(), dayStartHour, 0, 0, 0, first.Location())
	dayEnd := time.Date(first.Year(), first.Month(), first.Day(), dayEndHour, 0, 0, 0, first.Location())

	var gaps []Gap

	// Before the first event.
	gaps = appendGap(gaps, dayStart, sorted[0].Start)

	// Between adjacent events.
	for i := 0; i < len(sorted)-1; i++ {
		gaps = appendGap(gaps, sorted[i].End, sorted[i+1].Start)
	}

	// After the last event.
	gaps = appendGap(gaps, sorted[len(sorted)-1].End, dayEnd)

	return gaps
}

func appendGap(gaps []Gap, start, end time.Time) []Gap {
	d := end.Sub(start)
	if d < MinGapMinutes*time.Minute {
		return gaps
	}
	return append(gaps, Gap{
		Start:           start,
		End:             end,
		DurationMinutes: int(d.Minutes()),
	})
}

// Package schedule provides the pure scheduling engines: overlap layout,
// gap finding, and delay propagation. All functions are side-effect-free
// and safe to call concurrently.
package schedule

import (
	"github.com/lucasortiz/dayplan/internal/event"
)

// Placement assigns an event a column for side-by-side rendering.
// Column is zero-based and always less than TotalColumns.
// A renderer gives each column 100/TotalColumns percent of the width.
type Placement struct {
	Column       int
	TotalColumns int
}

// Layout assigns each event a column so that no two overlapping events
// share one. Events are grouped by transitive overlap: a group grows while
// the next event (in start order) overlaps any member, and closes when one
// does not. Within a group, columns follow insertion order.
func Layout(events []*event.Event) map[string]Placement {
	layout := make(map[string]Placement)
	if len(events) == 0 {
		return layout
	}

	sorted := event.SortByStart(events)

	var groups [][]*event.Event
	var current []*event.Event

	for _, e := range sorted {
		if len(current) == 0 {
			current = append(current, e)
			continue
		}

		overlapsGroup := false
		for _, member := range current {
			if event.Overlaps(member, e) {
				overlapsGroup = true
				break
			}
		}

		if overlapsGroup {
			current = append(current, e)
		} else {
			groups = append(groups, current)
			current = []*event.Event{e}
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}

	for _, group := range groups {
		total := len(group)
		for i, e := range group {
			layout[e.ID] = Placement{Column: i, TotalColumns: total}
		}
	}

	return layout
}

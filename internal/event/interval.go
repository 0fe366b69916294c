package event

import "sort"

// Overlaps returns true if the two events' [start, end) ranges overlap.
// Touching endpoints do not overlap.
func Overlaps(a, b *Event) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// SortByStart returns a new slice sorted ascending by start time.
// The sort is stable: events with equal starts keep their relative order.
func SortByStart(events []*Event) []*Event {
	sorted := append([]*Event(nil), events...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})
	return sorted
}

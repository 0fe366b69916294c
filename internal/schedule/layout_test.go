package schedule

import (
	"reflect"
	"testing"
	"time"

	"github.com/lucasortiz/dayplan/internal/event"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 3, 10, hour, min, 0, 0, time.Local)
}

func block(id string, startH, startM, endH, endM int) *event.Event {
	return &event.Event{
		ID:       id,
		Title:    id,
		Start:    at(startH, startM),
		End:      at(endH, endM),
		Category: event.CategoryWork,
	}
}

func TestLayout_Empty(t *testing.T) {
	if got := Layout(nil); len(got) != 0 {
		t.Errorf("Layout(nil) = %v, want empty map", got)
	}
}

func TestLayout_SingleEvent(t *testing.T) {
	layout := Layout([]*event.Event{block("a", 9, 0, 10, 0)})

	want := Placement{Column: 0, TotalColumns: 1}
	if layout["a"] != want {
		t.Errorf("layout[a] = %+v, want %+v", layout["a"], want)
	}
}

func TestLayout_OverlappingPairPlusIndependent(t *testing.T) {
	// a and b overlap; c stands alone.
	events := []*event.Event{
		block("a", 9, 0, 10, 0),
		block("b", 9, 30, 10, 30),
		block("c", 11, 0, 12, 0),
	}

	layout := Layout(events)

	if got, want := layout["a"], (Placement{Column: 0, TotalColumns: 2}); got != want {
		t.Errorf("layout[a] = %+v, want %+v", got, want)
	}
	if got, want := layout["b"], (Placement{Column: 1, TotalColumns: 2}); got != want {
		t.Errorf("layout[b] = %+v, want %+v", got, want)
	}
	if got, want := layout["c"], (Placement{Column: 0, TotalColumns: 1}); got != want {
		t.Errorf("layout[c] = %+v, want %+v", got, want)
	}
}

func TestLayout_TransitiveOverlap(t *testing.T) {
	// b does not overlap a directly, but both overlap c, so all three form
	// one group.
	events := []*event.Event{
		block("a", 9, 0, 10, 0),
		block("c", 9, 30, 11, 30),
		block("b", 10, 30, 11, 0),
	}

	layout := Layout(events)

	for _, id := range []string{"a", "b", "c"} {
		if layout[id].TotalColumns != 3 {
			t.Errorf("layout[%s].TotalColumns = %d, want 3", id, layout[id].TotalColumns)
		}
	}
}

func TestLayout_NoSharedColumnsAmongOverlapping(t *testing.T) {
	events := []*event.Event{
		block("a", 9, 0, 11, 0),
		block("b", 9, 15, 10, 0),
		block("c", 9, 30, 10, 30),
		block("d", 12, 0, 13, 0),
		block("e", 12, 30, 13, 30),
	}

	layout := Layout(events)

	for i, x := range events {
		for _, y := range events[i+1:] {
			if !event.Overlaps(x, y) {
				continue
			}
			if layout[x.ID].Column == layout[y.ID].Column {
				t.Errorf("overlapping events %s and %s share column %d", x.ID, y.ID, layout[x.ID].Column)
			}
		}
	}
}

func TestLayout_ColumnsAreExactlyZeroToTotal(t *testing.T) {
	events := []*event.Event{
		block("a", 9, 0, 11, 0),
		block("b", 9, 15, 10, 0),
		block("c", 9, 30, 10, 30),
	}

	layout := Layout(events)

	seen := make(map[int]bool)
	for _, id := range []string{"a", "b", "c"} {
		p := layout[id]
		if p.TotalColumns != 3 {
			t.Fatalf("layout[%s].TotalColumns = %d, want 3", id, p.TotalColumns)
		}
		if p.Column < 0 || p.Column >= p.TotalColumns {
			t.Fatalf("layout[%s].Column = %d out of range", id, p.Column)
		}
		seen[p.Column] = true
	}
	if len(seen) != 3 {
		t.Errorf("columns used = %v, want exactly {0,1,2}", seen)
	}
}

func TestLayout_Idempotent(t *testing.T) {
	events := []*event.Event{
		block("a", 9, 0, 10, 0),
		block("b", 9, 30, 10, 30),
		block("c", 11, 0, 12, 0),
	}

	first := Layout(events)
	second := Layout(events)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("layout not idempotent: first %v, second %v", first, second)
	}
}

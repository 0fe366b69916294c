// Package ics imports calendar events from iCalendar files. Imported
// events are treated as fixed commitments: the rescheduler will not move
// them.
package ics

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/lucasortiz/dayplan/internal/event"
)

// ErrEmptyCalendar is returned when the payload contains no parseable calendar.
var ErrEmptyCalendar = errors.New("empty calendar")

// Result holds the outcome of an import.
type Result struct {
	Events  []*event.Event
	Skipped []string // human-readable reasons for skipped entries
}

// Import parses an iCalendar stream and converts VEVENTs whose start falls
// within [from, to) into fixed events. Recurring events, all-day entries,
// and entries with unusable times are skipped with a note rather than
// failing the whole import.
func Import(r io.Reader, from, to time.Time) (*Result, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parsing calendar: %w", err)
	}

	vevents := cal.Events()
	if len(vevents) == 0 {
		return nil, ErrEmptyCalendar
	}

	result := &Result{}
	for _, ve := range vevents {
		e, reason := convertVEvent(ve, from, to)
		if e == nil {
			if reason != "" {
				result.Skipped = append(result.Skipped, reason)
			}
			continue
		}
		result.Events = append(result.Events, e)
	}

	return result, nil
}

// convertVEvent maps one VEVENT to a fixed event. A nil event with an
// empty reason means the entry is simply outside the requested range.
func convertVEvent(ve *ical.VEvent, from, to time.Time) (*event.Event, string) {
	summary := "Imported event"
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil && p.Value != "" {
		summary = p.Value
	}

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		return nil, fmt.Sprintf("%q: recurring events are not supported", summary)
	}

	if isAllDay(ve) {
		return nil, fmt.Sprintf("%q: all-day events are not imported", summary)
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return nil, fmt.Sprintf("%q: unreadable start time", summary)
	}
	end, err := ve.GetEndAt()
	if err != nil {
		return nil, fmt.Sprintf("%q: unreadable end time", summary)
	}
	if !start.Before(end) {
		return nil, fmt.Sprintf("%q: end is not after start", summary)
	}

	if start.Before(from) || !start.Before(to) {
		return nil, ""
	}

	return &event.Event{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(summary),
		Start:     start,
		End:       end,
		Category:  event.CategoryMeeting,
		IsFixed:   true,
		CreatedAt: time.Now(),
	}, ""
}

// isAllDay detects all-day entries: DTSTART with VALUE=DATE or a
// date-only value.
func isAllDay(ve *ical.VEvent) bool {
	p := ve.GetProperty(ical.ComponentPropertyDtStart)
	if p == nil {
		return false
	}
	if params := p.ICalParameters; params != nil {
		if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			return true
		}
	}
	return !strings.Contains(p.Value, "T")
}

// Package event defines the core domain types for dayplan.
package event

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors.
var (
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrInvalidCategory = errors.New("category must be 'work', 'meeting', 'personal' or 'break'")
	ErrEndBeforeStart  = errors.New("end must be after start")
)

// Domain errors.
var (
	ErrEventNotFound = errors.New("event not found")
	ErrTaskNotFound  = errors.New("task not found")
)

// Category classifies an event for display purposes only.
// The scheduling engines never branch on it.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryMeeting  Category = "meeting"
	CategoryPersonal Category = "personal"
	CategoryBreak    Category = "break"
)

// ParseCategory converts a string into a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryWork, CategoryMeeting, CategoryPersonal, CategoryBreak:
		return Category(s), nil
	default:
		return "", ErrInvalidCategory
	}
}

// Valid returns true if the category is a known value.
func (c Category) Valid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}

// Event represents a time-blocked unit on the calendar.
type Event struct {
	ID           string
	Title        string
	Start        time.Time
	End          time.Time
	Category     Category
	IsFixed      bool   // fixed events are never auto-moved
	SourceTaskID string // set when the event was materialized from a task
	CreatedAt    time.Time
}

// New creates a new Event with validation.
func New(id, title string, category Category, start, end time.Time, fixed bool) (*Event, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}
	if !start.Before(end) {
		return nil, ErrEndBeforeStart
	}

	return &Event{
		ID:        id,
		Title:     title,
		Start:     start,
		End:       end,
		Category:  category,
		IsFixed:   fixed,
		CreatedAt: time.Now(),
	}, nil
}

// Duration returns the event length.
func (e *Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Validate reports whether the event satisfies the start < end invariant.
func (e *Event) Validate() error {
	if e.Title == "" {
		return ErrEmptyTitle
	}
	if !e.Start.Before(e.End) {
		return fmt.Errorf("event %q: %w", e.Title, ErrEndBeforeStart)
	}
	return nil
}

// Clone returns a copy of the event.
func (e *Event) Clone() *Event {
	c := *e
	return &c
}

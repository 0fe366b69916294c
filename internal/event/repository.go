package event

import (
	"context"
	"time"
)

// TimeUpdate represents an event time change for batch updates.
type TimeUpdate struct {
	ID       string
	NewStart time.Time
	NewEnd   time.Time
}

// Repository defines the storage interface for events and tasks.
// All operations are scoped to a user id.
type Repository interface {
	// CreateEvent adds a new event.
	CreateEvent(ctx context.Context, userID string, e *Event) error

	// ListEventsByRange returns events whose start falls within [start, end),
	// ordered by start time.
	ListEventsByRange(ctx context.Context, userID string, start, end time.Time) ([]*Event, error)

	// UpdateEventTimes updates multiple events' times atomically.
	// Used when a reschedule result is applied.
	UpdateEventTimes(ctx context.Context, userID string, updates []TimeUpdate) error

	// CreateTask adds a new task.
	CreateTask(ctx context.Context, userID string, t *Task) error

	// ListTasksByStatus returns all tasks with the given status,
	// ordered by creation time.
	ListTasksByStatus(ctx context.Context, userID string, status TaskStatus) ([]*Task, error)

	// SetTaskStatus transitions a task to a new status.
	SetTaskStatus(ctx context.Context, userID, id string, status TaskStatus) error

	// Close releases any resources held by the repository.
	Close() error
}

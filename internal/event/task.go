package event

import "time"

// TaskStatus represents the state of a pending task.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

// ParseTaskStatus converts a string into a TaskStatus.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	switch TaskStatus(s) {
	case StatusTodo, StatusInProgress, StatusDone:
		return TaskStatus(s), true
	default:
		return "", false
	}
}

// Priority is advisory only; the scheduling engines ignore it.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority converts a string into a Priority, defaulting to medium.
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case PriorityLow, PriorityHigh:
		return Priority(s)
	default:
		return PriorityMedium
	}
}

// DefaultEstimateMinutes is assumed when a task carries no estimate.
const DefaultEstimateMinutes = 30

// Task represents a unit of pending work. It is never time-blocked
// until converted into an Event.
type Task struct {
	ID               string
	Title            string
	DueDate          *time.Time // optional
	EstimatedMinutes int        // 0 means unset
	Status           TaskStatus
	Priority         Priority
	CreatedAt        time.Time
}

// Estimate returns the task's estimated duration in minutes,
// falling back to DefaultEstimateMinutes when unset.
func (t *Task) Estimate() int {
	if t.EstimatedMinutes <= 0 {
		return DefaultEstimateMinutes
	}
	return t.EstimatedMinutes
}

// IsPending returns true if the task still needs scheduling.
func (t *Task) IsPending() bool {
	return t.Status == StatusTodo
}

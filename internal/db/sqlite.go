// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/lucasortiz/dayplan/internal/event"
)

// SQLite implements event.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Timestamps are stored as UTC RFC3339 text. Normalizing the offset keeps
// lexicographic string comparison chronologically correct even when callers
// mix local-offset times (CLI input) with UTC ones (calendar imports).
func storeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func loadTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(time.Local), nil
}

// CreateEvent adds a new event.
func (s *SQLite) CreateEvent(ctx context.Context, userID string, e *event.Event) error {
	query := `
		INSERT INTO events (id, user_id, title, start_at, end_at, category, is_fixed, source_task_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var sourceTaskID any
	if e.SourceTaskID != "" {
		sourceTaskID = e.SourceTaskID
	}

	_, err := s.db.ExecContext(ctx, query,
		e.ID,
		userID,
		e.Title,
		storeTime(e.Start),
		storeTime(e.End),
		string(e.Category),
		e.IsFixed,
		sourceTaskID,
		storeTime(createdAt),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}

	return nil
}

// ListEventsByRange returns events whose start falls within [start, end),
// ordered by start time.
func (s *SQLite) ListEventsByRange(ctx context.Context, userID string, start, end time.Time) ([]*event.Event, error) {
	query := `
		SELECT id, title, start_at, end_at, category, is_fixed, source_task_id, created_at
		FROM events
		WHERE user_id = ? AND start_at >= ? AND start_at < ?
		ORDER BY start_at, id
	`

	rows, err := s.db.QueryContext(ctx, query, userID,
		storeTime(start), storeTime(end))
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []*event.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}

	return events, nil
}

func scanEvent(rows *sql.Rows) (*event.Event, error) {
	var (
		e            event.Event
		startAt      string
		endAt        string
		category     string
		createdAt    string
		sourceTaskID sql.NullString
	)

	err := rows.Scan(
		&e.ID,
		&e.Title,
		&startAt,
		&endAt,
		&category,
		&e.IsFixed,
		&sourceTaskID,
		&createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning event: %w", err)
	}

	if e.Start, err = loadTime(startAt); err != nil {
		return nil, fmt.Errorf("parsing start time: %w", err)
	}
	if e.End, err = loadTime(endAt); err != nil {
		return nil, fmt.Errorf("parsing end time: %w", err)
	}
	if e.CreatedAt, err = loadTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}

	e.Category = event.Category(category)
	if sourceTaskID.Valid {
		e.SourceTaskID = sourceTaskID.String
	}

	return &e, nil
}

// UpdateEventTimes updates multiple events' times atomically.
// Returns event.ErrEventNotFound if any id does not exist for the user.
func (s *SQLite) UpdateEventTimes(ctx context.Context, userID string, updates []event.TimeUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `UPDATE events SET start_at = ?, end_at = ? WHERE id = ? AND user_id = ?`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, u := range updates {
		result, err := stmt.ExecContext(ctx,
			storeTime(u.NewStart),
			storeTime(u.NewEnd),
			u.ID,
			userID,
		)
		if err != nil {
			return fmt.Errorf("updating event %s: %w", u.ID, err)
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return fmt.Errorf("event %s: %w", u.ID, event.ErrEventNotFound)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// CreateTask adds a new task.
func (s *SQLite) CreateTask(ctx context.Context, userID string, t *event.Task) error {
	query := `
		INSERT INTO tasks (id, user_id, title, due_date, estimated_minutes, status, priority, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := t.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var dueDate any
	if t.DueDate != nil {
		dueDate = storeTime(*t.DueDate)
	}

	_, err := s.db.ExecContext(ctx, query,
		t.ID,
		userID,
		t.Title,
		dueDate,
		t.EstimatedMinutes,
		string(t.Status),
		string(t.Priority),
		storeTime(createdAt),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}

	return nil
}

// ListTasksByStatus returns all tasks with the given status,
// ordered by creation time.
func (s *SQLite) ListTasksByStatus(ctx context.Context, userID string, status event.TaskStatus) ([]*event.Task, error) {
	query := `
		SELECT id, title, due_date, estimated_minutes, status, priority, created_at
		FROM tasks
		WHERE user_id = ? AND status = ?
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query, userID, string(status))
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []*event.Task
	for rows.Next() {
		var (
			t         event.Task
			dueDate   sql.NullString
			status    string
			priority  string
			createdAt string
		)

		err := rows.Scan(
			&t.ID,
			&t.Title,
			&dueDate,
			&t.EstimatedMinutes,
			&status,
			&priority,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}

		if dueDate.Valid {
			due, err := loadTime(dueDate.String)
			if err != nil {
				return nil, fmt.Errorf("parsing due date: %w", err)
			}
			t.DueDate = &due
		}
		if t.CreatedAt, err = loadTime(createdAt); err != nil {
			return nil, fmt.Errorf("parsing created at: %w", err)
		}
		t.Status = event.TaskStatus(status)
		t.Priority = event.Priority(priority)

		tasks = append(tasks, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}

	return tasks, nil
}

// SetTaskStatus transitions a task to a new status.
// Returns event.ErrTaskNotFound if the id does not exist for the user.
func (s *SQLite) SetTaskStatus(ctx context.Context, userID, id string, status event.TaskStatus) error {
	query := `UPDATE tasks SET status = ? WHERE id = ? AND user_id = ?`

	result, err := s.db.ExecContext(ctx, query, string(status), id, userID)
	if err != nil {
		return fmt.Errorf("updating task status: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("task %s: %w", id, event.ErrTaskNotFound)
	}

	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

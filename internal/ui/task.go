package ui

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lucasortiz/dayplan/internal/dateutil"
	"github.com/lucasortiz/dayplan/internal/event"
)

func (a *App) taskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage pending tasks",
	}

	cmd.AddCommand(a.taskAddCmd())
	cmd.AddCommand(a.taskListCmd())
	cmd.AddCommand(a.taskDoneCmd())

	return cmd
}

func (a *App) taskAddCmd() *cobra.Command {
	var (
		due      string
		estimate int
		priority string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a pending task",
		Long: `Add a task to the backlog. Tasks have no time slot until the
AI planner (dayplan plan) turns them into events.

Example:
  dayplan task add "Write quarterly report" --due=friday --estimate=90 --priority=high`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			if args[0] == "" {
				return event.ErrEmptyTitle
			}

			t := &event.Task{
				ID:               uuid.NewString(),
				Title:            args[0],
				EstimatedMinutes: estimate,
				Status:           event.StatusTodo,
				Priority:         event.ParsePriority(priority),
				CreatedAt:        nowFunc(),
			}

			if due != "" {
				d, err := dateutil.ParseRelativeDate(due, nowFunc())
				if err != nil {
					return err
				}
				t.DueDate = &d
			}

			if err := a.repo.CreateTask(context.Background(), localUser, t); err != nil {
				return fmt.Errorf("creating task: %w", err)
			}

			fmt.Printf("Created task %s: %s (%s)\n",
				shortID(t.ID), t.Title, FormatDuration(t.Estimate()))

			return nil
		},
	}

	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD or relative, optional)")
	cmd.Flags().IntVar(&estimate, "estimate", 0, "Estimated minutes (default 30)")
	cmd.Flags().StringVar(&priority, "priority", "medium", "Priority: low, medium or high")

	return cmd
}

func (a *App) taskListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks by status",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			st, ok := event.ParseTaskStatus(status)
			if !ok {
				return fmt.Errorf("unknown status %q", status)
			}

			tasks, err := a.repo.ListTasksByStatus(context.Background(), localUser, st)
			if err != nil {
				return fmt.Errorf("listing tasks: %w", err)
			}

			if len(tasks) == 0 {
				fmt.Printf("No %s tasks.\n", st)
				return nil
			}

			for _, t := range tasks {
				due := ""
				if t.DueDate != nil {
					due = " due " + t.DueDate.Format("2006-01-02")
				}
				fmt.Printf("  %s  %s  %s%s\n",
					formatMuted(shortID(t.ID)),
					padRight(truncate(t.Title, 40), 40),
					formatMuted(FormatDuration(t.Estimate())),
					formatMuted(due),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "todo", "Status: todo, in_progress or done")

	return cmd
}

func (a *App) taskDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done [id]",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			var open []*event.Task
			for _, st := range []event.TaskStatus{event.StatusTodo, event.StatusInProgress} {
				tasks, err := a.repo.ListTasksByStatus(ctx, localUser, st)
				if err != nil {
					return fmt.Errorf("listing tasks: %w", err)
				}
				open = append(open, tasks...)
			}

			id := resolveTaskID(open, args[0])
			if err := a.repo.SetTaskStatus(ctx, localUser, id, event.StatusDone); err != nil {
				return err
			}

			fmt.Printf("Task %s marked done.\n", shortID(id))
			return nil
		},
	}
}

// resolveTaskID expands a short id prefix to a full task id, the same way
// shift resolves event ids. Ambiguous or unknown prefixes are returned
// as-is and fail downstream with a not-found error.
func resolveTaskID(tasks []*event.Task, prefix string) string {
	if prefix == "" {
		return ""
	}

	var match string
	for _, t := range tasks {
		if len(t.ID) >= len(prefix) && t.ID[:len(prefix)] == prefix {
			if match != "" {
				return prefix // ambiguous
			}
			match = t.ID
		}
	}
	if match == "" {
		return prefix
	}
	return match
}

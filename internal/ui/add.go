package ui

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lucasortiz/dayplan/internal/dateutil"
	"github.com/lucasortiz/dayplan/internal/event"
)

func (a *App) addCmd() *cobra.Command {
	var (
		date     string
		start    string
		end      string
		category string
		fixed    bool
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a calendar event",
		Long: `Add an event to your calendar.

Dates accept YYYY-MM-DD as well as "today", "tomorrow", weekday
names, and "next-" prefixed forms.

Example:
  dayplan add "Design review" --date=tomorrow --start=13:00 --end=14:00 --category=meeting --fixed`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			day, err := dateutil.ParseRelativeDate(date, nowFunc())
			if err != nil {
				return err
			}
			startAt, err := dateutil.AtClock(day, start)
			if err != nil {
				return fmt.Errorf("start: %w", err)
			}
			endAt, err := dateutil.AtClock(day, end)
			if err != nil {
				return fmt.Errorf("end: %w", err)
			}

			cat, err := event.ParseCategory(category)
			if err != nil {
				return err
			}

			e, err := event.New(uuid.NewString(), args[0], cat, startAt, endAt, fixed)
			if err != nil {
				return err
			}

			if err := a.repo.CreateEvent(context.Background(), localUser, e); err != nil {
				return fmt.Errorf("creating event: %w", err)
			}

			fmt.Printf("Created event %s: %s %s %s-%s\n",
				shortID(e.ID),
				e.Title,
				e.Start.Format("2006-01-02"),
				e.Start.Format("15:04"),
				e.End.Format("15:04"),
			)

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Event date (default: today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, required)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM, required)")
	cmd.Flags().StringVar(&category, "category", "work", "Category: work, meeting, personal or break")
	cmd.Flags().BoolVar(&fixed, "fixed", false, "Mark as a fixed commitment the rescheduler must not move")

	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucasortiz/dayplan/internal/dateutil"
	"github.com/lucasortiz/dayplan/internal/schedule"
)

func (a *App) gapsCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "gaps",
		Short: "Show free slots in a day",
		Long: `Show gaps of at least 15 minutes between a day's events,
within configured working hours.

Example:
  dayplan gaps --date=tomorrow`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			day, err := dateutil.ParseRelativeDate(date, nowFunc())
			if err != nil {
				return err
			}

			from, to := dateutil.DayWindow(day)
			events, err := a.repo.ListEventsByRange(context.Background(), localUser, from, to)
			if err != nil {
				return fmt.Errorf("listing events: %w", err)
			}

			if len(events) == 0 {
				fmt.Println("No events scheduled; the whole day is free.")
				return nil
			}

			gaps := schedule.FindGaps(events, a.config.DayStartHour(), a.config.DayEndHour())
			if len(gaps) == 0 {
				fmt.Println("No free slots.")
				return nil
			}

			fmt.Println(formatHeader("Free slots on " + day.Format("Monday, 2006-01-02")))
			for _, g := range gaps {
				fmt.Printf("  %s-%s  %s\n",
					g.Start.Format("15:04"),
					g.End.Format("15:04"),
					formatOK(FormatDuration(g.DurationMinutes)),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to inspect (default: today)")

	return cmd
}

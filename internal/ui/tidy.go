package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucasortiz/dayplan/internal/dateutil"
	"github.com/lucasortiz/dayplan/internal/event"
	"github.com/lucasortiz/dayplan/internal/schedule"
)

func (a *App) tidyCmd() *cobra.Command {
	var (
		date   string
		buffer int
		apply  bool
	)

	cmd := &cobra.Command{
		Use:   "tidy",
		Short: "Restore buffers between back-to-back events",
		Long: `Walk a day's events in order and push any event that starts too
close to its predecessor just far enough to restore the configured
buffer. Without --apply the result is only previewed.

Example:
  dayplan tidy --date=today --apply`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			day, err := dateutil.ParseRelativeDate(date, nowFunc())
			if err != nil {
				return err
			}

			from, to := dateutil.DayWindow(day)
			ctx := context.Background()
			events, err := a.repo.ListEventsByRange(ctx, localUser, from, to)
			if err != nil {
				return fmt.Errorf("listing events: %w", err)
			}
			if len(events) == 0 {
				fmt.Println("Nothing to tidy.")
				return nil
			}

			if buffer < 0 {
				return fmt.Errorf("--buffer cannot be negative, got %d", buffer)
			}
			if !cmd.Flags().Changed("buffer") {
				buffer = a.config.Schedule.BufferMinutes
			}

			tidied := schedule.NormalizeBuffers(events, buffer)

			var updates []event.TimeUpdate
			orig := make(map[string]*event.Event, len(events))
			for _, e := range events {
				orig[e.ID] = e
			}
			for _, e := range tidied {
				if o := orig[e.ID]; o != nil && !e.Start.Equal(o.Start) {
					updates = append(updates, event.TimeUpdate{
						ID:       e.ID,
						NewStart: e.Start,
						NewEnd:   e.End,
					})
				}
			}

			if len(updates) == 0 {
				fmt.Println("Buffers already look fine.")
				return nil
			}

			fmt.Println(formatHeader("Tidied schedule:"))
			for _, e := range tidied {
				PrintEventRow(e)
			}

			if !apply {
				fmt.Println(formatMuted("Preview only. Re-run with --apply to save."))
				return nil
			}

			if err := a.repo.UpdateEventTimes(ctx, localUser, updates); err != nil {
				return fmt.Errorf("applying tidy: %w", err)
			}

			fmt.Printf("%s %d event(s) updated.\n", formatOK("Applied:"), len(updates))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to tidy (default: today)")
	cmd.Flags().IntVar(&buffer, "buffer", 0, "Buffer minutes to restore (default: configured buffer)")
	cmd.Flags().BoolVar(&apply, "apply", false, "Persist the tidied times")

	return cmd
}

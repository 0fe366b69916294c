package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lucasortiz/dayplan/internal/dateutil"
	"github.com/lucasortiz/dayplan/internal/event"
	"github.com/lucasortiz/dayplan/internal/schedule"
)

func (a *App) shiftCmd() *cobra.Command {
	var (
		date   string
		fromID string
		apply  bool
	)

	cmd := &cobra.Command{
		Use:   "shift [minutes]",
		Short: "Push a delayed schedule forward",
		Long: `Shift a day's events later after a delay. Fixed events stay put,
buffers between events are restored, and nothing is ever moved earlier
than it already was. Without --apply the result is only previewed.

Example:
  dayplan shift 20 --from=3f2a91b4 --apply`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			delay, err := strconv.Atoi(args[0])
			if err != nil || delay <= 0 {
				return fmt.Errorf("delay must be a positive number of minutes, got %q", args[0])
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
				fmt.Println("Nothing to shift.")
				return nil
			}

			opts := schedule.DefaultOptions()
			opts.BufferMinutes = a.config.Schedule.BufferMinutes
			opts.WorkDayEndHour = a.config.DayEndHour()
			opts.StartFromEventID = resolveEventID(events, fromID)

			result := schedule.Reschedule(events, delay, opts)

			if len(result.Changes) == 0 {
				fmt.Println("No events needed to move.")
				PrintWarnings(result.Warnings)
				return nil
			}

			fmt.Println(formatHeader(fmt.Sprintf("Shifted by %dm:", delay)))
			for _, e := range result.Events {
				PrintEventRow(e)
			}
			PrintWarnings(result.Warnings)

			if !apply {
				fmt.Println(formatMuted("Preview only. Re-run with --apply to save."))
				return nil
			}

			updates := make([]event.TimeUpdate, 0, len(result.Changes))
			byID := make(map[string]*event.Event, len(result.Events))
			for _, e := range result.Events {
				byID[e.ID] = e
			}
			for _, c := range result.Changes {
				moved := byID[c.EventID]
				updates = append(updates, event.TimeUpdate{
					ID:       c.EventID,
					NewStart: moved.Start,
					NewEnd:   moved.End,
				})
			}

			if err := a.repo.UpdateEventTimes(ctx, localUser, updates); err != nil {
				return fmt.Errorf("applying shift: %w", err)
			}

			fmt.Printf("%s %d event(s) updated.\n", formatOK("Applied:"), len(updates))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to shift (default: today)")
	cmd.Flags().StringVar(&fromID, "from", "", "Event id (or unique prefix) to start shifting from")
	cmd.Flags().BoolVar(&apply, "apply", false, "Persist the shifted times")

	return cmd
}

// resolveEventID expands a short id prefix to a full event id. Ambiguous
// or unknown prefixes are returned as-is; the rescheduler treats an
// unknown id as "shift the whole day".
func resolveEventID(events []*event.Event, prefix string) string {
	if prefix == "" {
		return ""
	}

	var match string
	for _, e := range events {
		if len(e.ID) >= len(prefix) && e.ID[:len(prefix)] == prefix {
			if match != "" {
				return prefix // ambiguous
			}
			match = e.ID
		}
	}
	if match == "" {
		return prefix
	}
	return match
}

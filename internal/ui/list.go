package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucasortiz/dayplan/internal/dateutil"
)

func (a *App) listCmd() *cobra.Command {
	var (
		from string
		to   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events in a date range",
		Long: `List calendar events, one day per section.

Example:
  dayplan list --from=2025-03-10 --to=2025-03-14`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			r, err := dateutil.NewRange(from, to)
			if err != nil {
				return err
			}

			events, err := a.repo.ListEventsByRange(context.Background(), localUser,
				r.Start, r.End.AddDate(0, 0, 1))
			if err != nil {
				return fmt.Errorf("listing events: %w", err)
			}

			if len(events) == 0 {
				fmt.Println("No events in range.")
				return nil
			}

			var currentDay string
			for _, e := range events {
				day := e.Start.Format("Monday, 2006-01-02")
				if day != currentDay {
					if currentDay != "" {
						fmt.Println()
					}
					fmt.Println(formatHeader(day))
					currentDay = day
				}
				PrintEventRow(e)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&to, "to", "", "Range end, inclusive (YYYY-MM-DD, default: same as --from)")

	return cmd
}

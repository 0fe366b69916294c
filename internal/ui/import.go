package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lucasortiz/dayplan/internal/dateutil"
	"github.com/lucasortiz/dayplan/internal/ics"
)

func (a *App) importCmd() *cobra.Command {
	var (
		from string
		to   string
	)

	cmd := &cobra.Command{
		Use:   "import [file.ics]",
		Short: "Import fixed events from an iCalendar file",
		Long: `Import events from an .ics export. Imported events are stored as
fixed commitments, so shifting and AI planning schedule around them.
Recurring and all-day entries are skipped.

Example:
  dayplan import meetings.ics --from=2025-03-10 --to=2025-03-14`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			r, err := dateutil.NewRange(from, to)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening file: %w", err)
			}
			defer func() { _ = f.Close() }()

			result, err := ics.Import(f, r.Start, r.End.AddDate(0, 0, 1))
			if err != nil {
				return fmt.Errorf("importing calendar: %w", err)
			}

			ctx := context.Background()
			for _, e := range result.Events {
				if err := a.repo.CreateEvent(ctx, localUser, e); err != nil {
					return fmt.Errorf("saving %q: %w", e.Title, err)
				}
			}

			fmt.Printf("%s %d event(s) imported.\n", formatOK("Imported:"), len(result.Events))
			for _, e := range result.Events {
				PrintEventRow(e)
			}
			for _, reason := range result.Skipped {
				fmt.Printf("  %s skipped %s\n", formatWarning("!"), reason)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&to, "to", "", "Range end, inclusive (default: same as --from)")

	return cmd
}

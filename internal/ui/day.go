package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lucasortiz/dayplan/internal/dateutil"
	"github.com/lucasortiz/dayplan/internal/event"
	"github.com/lucasortiz/dayplan/internal/schedule"
)

// laneWidth is the display width of one concurrency column.
const laneWidth = 22

var (
	dayTitleStyle = lipgloss.NewStyle().Bold(true).Underline(true)

	fixedBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1).
			Width(laneWidth)

	flexBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1).
			Width(laneWidth)
)

func (a *App) dayCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show a day's schedule with overlaps side by side",
		Long: `Render a day's events. Events that overlap in time are laid out
in parallel lanes, the way a calendar grid would draw them.

Example:
  dayplan day --date=tomorrow`,
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

			fmt.Println(dayTitleStyle.Render(day.Format("Monday, 2006-01-02")))
			if len(events) == 0 {
				fmt.Println("No events.")
				return nil
			}

			fmt.Print(renderDay(events))

			if gaps := schedule.FindGaps(events, a.config.DayStartHour(), a.config.DayEndHour()); len(gaps) > 0 {
				fmt.Println(formatHeader("Free:"))
				for _, g := range gaps {
					fmt.Printf("  %s-%s  %s\n",
						g.Start.Format("15:04"), g.End.Format("15:04"),
						formatOK(FormatDuration(g.DurationMinutes)))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to show (default: today)")

	return cmd
}

// renderDay renders events in start order, placing each one in the lane
// assigned by the layout engine so simultaneous events sit side by side.
func renderDay(events []*event.Event) string {
	placements := schedule.Layout(events)
	sorted := event.SortByStart(events)

	var sb strings.Builder
	for _, e := range sorted {
		p := placements[e.ID]

		label := fmt.Sprintf("%s-%s\n%s",
			e.Start.Format("15:04"),
			e.End.Format("15:04"),
			truncate(e.Title, laneWidth-2),
		)

		style := flexBoxStyle
		if e.IsFixed {
			style = fixedBoxStyle
		}

		box := style.Render(label)
		indent := strings.Repeat(" ", p.Column*(laneWidth+2))

		for _, line := range strings.Split(box, "\n") {
			sb.WriteString(indent)
			sb.WriteString(line)
			sb.WriteString("\n")
		}

		if p.TotalColumns > 1 && p.Column == 0 {
			sb.WriteString(formatMuted(fmt.Sprintf("  (%d overlapping)\n", p.TotalColumns)))
		}
	}

	return sb.String()
}

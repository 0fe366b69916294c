package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucasortiz/dayplan/internal/aiplan"
	"github.com/lucasortiz/dayplan/internal/event"
	"github.com/lucasortiz/dayplan/internal/llm"
	"github.com/lucasortiz/dayplan/internal/ratelimit"
)

func (a *App) planCmd() *cobra.Command {
	var (
		modelFlag string
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Let the AI fit pending tasks into today's gaps",
		Long: `Send your pending tasks and today's events to the configured AI
model and persist the proposed time blocks. Proposals that collide
with existing events are dropped with a warning; the result may cover
only part of the backlog.

Examples:
  dayplan plan
  dayplan plan --model=gpt-4o
  dayplan plan --dry-run`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			model := modelFlag
			if model == "" {
				model = a.config.LLM.Model
			}

			client, err := llm.NewClient(a.config.LLM.Provider, model, a.config.LLM.BaseURL)
			if err != nil {
				return fmt.Errorf("creating LLM client: %w", err)
			}

			repo := a.repo
			if dryRun {
				repo = &previewRepo{Repository: a.repo}
			}

			g := aiplan.New(client, a.config, repo, a.limiter)

			fmt.Println("Generating schedule...")
			result, err := g.Generate(context.Background(), localUser)
			if err != nil {
				var rlErr *ratelimit.Error
				if errors.As(err, &rlErr) {
					return fmt.Errorf("too many requests, try again in %ds", rlErr.RetryAfter)
				}
				if result != nil && result.Count > 0 {
					// Partial persistence: report what landed before failing.
					fmt.Printf("%s %d event(s) were saved before the error.\n",
						formatWarning("Partial:"), result.Count)
				}
				return err
			}

			if result.Count == 0 {
				fmt.Println("The model proposed nothing usable.")
				PrintWarnings(result.Warnings)
				return nil
			}

			fmt.Println(formatHeader(fmt.Sprintf("Scheduled %d task(s):", result.Count)))
			for _, e := range result.Created {
				PrintEventRow(e)
			}
			PrintWarnings(result.Warnings)

			if dryRun {
				fmt.Println(formatMuted("Dry run: nothing was saved."))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&modelFlag, "model", "", "Override the configured model")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the proposal without saving it")

	return cmd
}

// previewRepo reads through to the real repository but swallows writes,
// so a dry run exercises the full generation path without persisting.
type previewRepo struct {
	event.Repository
}

func (p *previewRepo) CreateEvent(_ context.Context, _ string, _ *event.Event) error {
	return nil
}

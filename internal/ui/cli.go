// Package ui implements the command line interface.
package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/lucasortiz/dayplan/internal/config"
	"github.com/lucasortiz/dayplan/internal/db"
	"github.com/lucasortiz/dayplan/internal/event"
	"github.com/lucasortiz/dayplan/internal/ratelimit"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// localUser scopes all storage operations for the single-user CLI.
const localUser = "local"

// nowFunc is replaceable in tests.
var nowFunc = time.Now

// App holds the CLI application state.
type App struct {
	repo    event.Repository
	limiter ratelimit.Limiter
	config  *config.Config
	root    *cobra.Command
	noColor bool
}

// NewApp creates a new CLI application with the given config. The
// database is opened lazily by commands that need it.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "dayplan",
		Short: "A CLI day planner with conflict-aware scheduling",
		Long: `Dayplan keeps your calendar events and pending tasks in one place.

It lays out overlapping events, finds free slots, shifts a delayed
schedule forward without touching fixed commitments, and can ask an
AI model to fit your pending tasks into today's gaps.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor {
				DisableColor()
			}
		},
		SilenceUsage: true,
	}

	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.taskCmd())
	a.root.AddCommand(a.dayCmd())
	a.root.AddCommand(a.gapsCmd())
	a.root.AddCommand(a.shiftCmd())
	a.root.AddCommand(a.tidyCmd())
	a.root.AddCommand(a.planCmd())
	a.root.AddCommand(a.importCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("dayplan %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureRepo opens the database on first use.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}

	path := a.config.Storage.DBPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	repo, err := db.New(path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	a.repo = repo
	a.limiter = db.NewRateLimiter(repo)
	return nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the database if it was opened.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}

package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lucasortiz/dayplan/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	var initFlag bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the active configuration",
		Long: `Print the configuration dayplan is running with, after merging
defaults, the config file, and environment overrides.

Example:
  dayplan config --init`,
		RunE: func(_ *cobra.Command, _ []string) error {
			path := config.DefaultConfigPath()
			fmt.Printf("Config file: %s\n", path)

			if _, err := os.Stat(path); os.IsNotExist(err) {
				if !initFlag {
					fmt.Println(formatMuted("(not present; using defaults, run with --init to create it)"))
				} else {
					if err := a.config.SaveTo(path); err != nil {
						return fmt.Errorf("saving config: %w", err)
					}
					fmt.Printf("%s %s\n", formatOK("Created"), path)
				}
			}

			fmt.Println()
			printConfig(a.config)
			return nil
		},
	}

	cmd.Flags().BoolVar(&initFlag, "init", false, "Write the current configuration to the config file")

	return cmd
}

func printConfig(cfg *config.Config) {
	fmt.Println(formatHeader("[schedule]"))
	fmt.Printf("  workdays       = %s\n", strings.Join(cfg.Schedule.Workdays, ", "))
	fmt.Printf("  day_start      = %s\n", cfg.Schedule.DayStart)
	fmt.Printf("  day_end        = %s\n", cfg.Schedule.DayEnd)
	fmt.Printf("  buffer_minutes = %d\n", cfg.Schedule.BufferMinutes)

	fmt.Println(formatHeader("[llm]"))
	fmt.Printf("  provider = %s\n", cfg.LLM.Provider)
	fmt.Printf("  model    = %s\n", cfg.LLM.Model)
	if cfg.LLM.BaseURL != "" {
		fmt.Printf("  base_url = %s\n", cfg.LLM.BaseURL)
	}

	fmt.Println(formatHeader("[ai]"))
	fmt.Printf("  max_requests   = %d\n", cfg.AI.MaxRequests)
	fmt.Printf("  window_seconds = %d\n", cfg.AI.WindowSeconds)

	fmt.Println(formatHeader("[storage]"))
	fmt.Printf("  db_path = %s\n", cfg.Storage.DBPath)
}

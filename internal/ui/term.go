package ui

import "github.com/fatih/color"

// Color definitions for consistent styling across the UI.
var (
	// Fixed commitments: bold cyan, they anchor the day
	colorFixed = color.New(color.FgCyan, color.Bold)

	// Flexible events: default foreground
	colorFlexible = color.New(color.FgWhite)

	// Warnings: yellow to make them pop
	colorWarning = color.New(color.FgYellow)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Positive results: green
	colorOK = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

func formatFixed(s string) string {
	return colorFixed.Sprint(s)
}

func formatFlexible(s string) string {
	return colorFlexible.Sprint(s)
}

func formatWarning(s string) string {
	return colorWarning.Sprint(s)
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatOK(s string) string {
	return colorOK.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere in the package.
var (
	// ColorCyan is used for identifiable nouns: component names and paths.
	ColorCyan = lipgloss.Color("14")

	// ColorBlue is used for the info symbol and table headers.
	ColorBlue = lipgloss.Color("12")

	// ColorBoldRed is used for failures (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (component names, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (tree connectors, descriptions).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleFailure styles failure summaries.
	StyleFailure = lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
)

// FormatCheckmark renders a green checkmark with a bold message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + StyleSummary.Render(msg)
}

// FormatInfo renders a blue info symbol with a bold message.
func FormatInfo(msg string) string {
	info := lipgloss.NewStyle().Foreground(ColorBlue).Render("ℹ")
	return info + " " + StyleSummary.Render(msg)
}

// FormatFailure renders a red cross with a bold red message.
func FormatFailure(msg string) string {
	return StyleFailure.Render("✖ " + msg)
}

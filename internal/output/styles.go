package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: node names, paths, variant names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "generated" file status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "skipped" status and warnings.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "failed" status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (node names, file paths, variants).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (assembling, scanning, watching).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleBold styles emphasized tree roots and headers.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleMuted styles inline annotations.
	StyleMuted = lipgloss.NewStyle().Faint(true)
)

// File status constants for assembly output lines.
const (
	StatusGenerated = "generated"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
)

// StatusStyle returns the lipgloss style for a given file status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusGenerated:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusSkipped:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minFileColumnWidth is the minimum width for the file path column before the
// status suffix, so status words align across lines.
const minFileColumnWidth = 48

// FormatFileLine renders a generated-file path with a right-aligned,
// color-coded status suffix.
func FormatFileLine(path, status string) string {
	padding := minFileColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	styledPath := StyleNoun.Render(path)
	styledStatus := StatusStyle(status).Render(status)

	return styledPath + strings.Repeat(" ", padding) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

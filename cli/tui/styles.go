// Package tui provides the Bubble Tea point-of-sale screen.
//
// The screen is a thin surface over the classifier and the transaction
// engine: every key press is classified, classified intents drive engine
// operations, and engine events drive rendering, persistence, and outbound
// payloads. The Update loop is the single logical thread the core requires.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	primaryColor   = lipgloss.Color("#F59E0B") // Amber
	successColor   = lipgloss.Color("#10B981") // Green
	warningColor   = lipgloss.Color("#FBBF24") // Light amber
	errorColor     = lipgloss.Color("#EF4444") // Red
	mutedColor     = lipgloss.Color("#6B7280") // Gray
	highlightColor = lipgloss.Color("#3B82F6") // Blue
)

// Styles for TUI components.
var (
	// TitleStyle for headers and titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// LabelStyle for field labels.
	LabelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(14)

	// ValueStyle for field values.
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	// SuccessStyle for success toasts and healthy stock.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// WarningStyle for low stock.
	WarningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	// ErrorStyle for error toasts and depleted stock.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	// BoxStyle for bordered containers.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(1, 2)

	// ModalStyle for modal overlays.
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(primaryColor).
			Padding(1, 3)

	// HelpStyle for the key help line.
	HelpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	// SelectedStyle for the highlighted cart line.
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(highlightColor)

	// StreakStyle for the streak counter.
	StreakStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(warningColor)
)

// StockStyle returns a style based on the stock level.
func StockStyle(stock int) lipgloss.Style {
	switch {
	case stock <= 0:
		return ErrorStyle
	case stock <= 5:
		return WarningStyle
	default:
		return SuccessStyle
	}
}

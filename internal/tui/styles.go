package tui

import "github.com/charmbracelet/lipgloss"

// Colors used in the TUI.
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#9CA3AF") // Light gray
)

// Styles holds the styles for the task list TUI.
type Styles struct {
	Title        lipgloss.Style
	Selected     lipgloss.Style
	Normal       lipgloss.Style
	DoneTask     lipgloss.Style
	PriorityHigh lipgloss.Style
	PriorityLow  lipgloss.Style
	Help         lipgloss.Style
	Error        lipgloss.Style
	Input        lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorPrimary).
			Padding(0, 1),
		Normal: lipgloss.NewStyle().
			Padding(0, 1),
		DoneTask: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Strikethrough(true),
		PriorityHigh: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		PriorityLow: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Help: lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1),
		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1),
	}
}

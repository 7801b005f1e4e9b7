package styles

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	ColorAccent   = lipgloss.Color("#7D56F4")
	ColorPositive = lipgloss.Color("#43BF6D")
	ColorNegative = lipgloss.Color("#E5534B")
	ColorMuted    = lipgloss.Color("#777777")
	ColorBorder   = lipgloss.Color("#555555")

	// Indicator colours per difficulty
	ColorEasy   = "#00B8A3"
	ColorMedium = "#FFC01E"
	ColorHard   = "#FF375F"
)

var (
	// Text styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(ColorAccent).
		Padding(0, 1)

	Info = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#DEDEDE"))

	Muted = lipgloss.NewStyle().
		Foreground(ColorMuted)

	Positive = lipgloss.NewStyle().
			Foreground(ColorPositive).
			Bold(true)

	Negative = lipgloss.NewStyle().
			Foreground(ColorNegative).
			Bold(true)

	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#CCCCCC")).
		Bold(true)

	// Fetch button states
	Button = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#3C3C3C")).
		Padding(0, 2)

	ButtonFocused = Button.
			Background(ColorAccent).
			Bold(true)

	ButtonDisabled = Button.
			Foreground(ColorMuted).
			Background(lipgloss.Color("#262626"))

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1).
		Align(lipgloss.Center)
)

// Layout helpers
func Header(width int, title string) string {
	return Title.
		Width(width).
		Align(lipgloss.Center).
		Render(title)
}

func ContentBox(width int, content string, padding int) string {
	return lipgloss.NewStyle().
		Width(width).
		Padding(padding).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Render(content)
}

func CenteredText(width int, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(text)
}

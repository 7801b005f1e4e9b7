package components

import (
	"github.com/PizzaHomicide/leetmetrics/internal/dashboard"
	"github.com/PizzaHomicide/leetmetrics/internal/ui/tui/styles"
	"github.com/PizzaHomicide/leetmetrics/internal/ui/tui/util"
	"github.com/charmbracelet/lipgloss"
)

const minCardWidth = 14

// Cards lays the summary cards out in a single row across width
func Cards(width int, cards []dashboard.Card) string {
	if len(cards) == 0 {
		return styles.Muted.Render("No metrics yet. Enter a username to fetch them.")
	}

	// Each card has a border and one cell of padding either side
	cardWidth := max(width/len(cards)-2, minCardWidth)
	inner := cardWidth - 4

	rendered := make([]string, 0, len(cards))
	for _, card := range cards {
		value := card.Value
		if value == "" {
			value = "-"
		}
		body := lipgloss.JoinVertical(lipgloss.Center,
			styles.Muted.Render(util.TruncateString(card.Label, inner)),
			styles.Label.Render(util.TruncateString(value, inner)),
		)
		rendered = append(rendered, styles.Card.Width(cardWidth-2).Render(body))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

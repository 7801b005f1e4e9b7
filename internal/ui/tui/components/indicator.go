package components

import (
	"fmt"

	"github.com/PizzaHomicide/leetmetrics/internal/ui/tui/styles"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const (
	indicatorTitleWidth = 8
	indicatorLabelWidth = 16
	minBarWidth         = 10
)

// Indicator renders one difficulty's progress as a bar.  The value shown is whatever the animation last wrote, so the
// bar never animates on its own.
type Indicator struct {
	title string
	bar   progress.Model
}

func NewIndicator(title string, color string) *Indicator {
	return &Indicator{
		title: title,
		bar: progress.New(
			progress.WithSolidFill(color),
			progress.WithoutPercentage(),
			progress.WithWidth(minBarWidth),
		),
	}
}

// Resize fits the bar into a row of the given width
func (i *Indicator) Resize(width int) {
	i.bar.Width = max(width-indicatorTitleWidth-indicatorLabelWidth-4, minBarWidth)
}

// View renders the row for a percentage in [0, 100] and its solved/total label, which is empty until the value settles
func (i *Indicator) View(percent float64, label string) string {
	title := styles.Label.Width(indicatorTitleWidth).Render(i.title)
	pct := lipgloss.NewStyle().Width(7).Align(lipgloss.Right).Render(fmt.Sprintf("%.1f%%", percent))
	text := styles.Info.Width(indicatorLabelWidth - 7).Align(lipgloss.Right).Render(label)

	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", i.bar.ViewAs(percent/100), " ", pct, " ", text)
}

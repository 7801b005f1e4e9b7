package models

import (
	"strings"

	"github.com/PizzaHomicide/leetmetrics/internal/dashboard"
	"github.com/PizzaHomicide/leetmetrics/internal/domain"
	"github.com/PizzaHomicide/leetmetrics/internal/ui/tui/components"
	kb "github.com/PizzaHomicide/leetmetrics/internal/ui/tui/keybindings"
	"github.com/PizzaHomicide/leetmetrics/internal/ui/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// Screen rows of the clickable controls.  View must keep the header, a blank line, the input and another blank line
// above the trigger.
const (
	bodyIndent = 2
	inputRow   = 2
	triggerRow = 4

	maxRecent = 5
)

// View renders the dashboard
func (m *DashboardModel) View() string {
	body := lipgloss.NewStyle().PaddingLeft(bodyIndent)

	rows := []string{
		styles.Header(m.width, "LeetCode Metrics"),
		"",
		body.Render(styles.Label.Render("Username ") + m.input.View()),
		"",
		body.Render(m.renderTrigger() + "  " + m.renderStatus()),
		"",
		body.Render(m.renderIndicators()),
		"",
		body.Render(components.Cards(m.width-bodyIndent*2, m.board.Cards(dashboard.ElementCards))),
	}

	if recent := m.renderRecent(); recent != "" {
		rows = append(rows, "", body.Render(recent))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)

	footer := components.KeyBindingsBar(m.width, m.footerBindings())
	gap := m.height - lipgloss.Height(content) - lipgloss.Height(footer)
	if gap > 0 {
		content += strings.Repeat("\n", gap)
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, footer)
}

func (m *DashboardModel) renderTrigger() string {
	label := m.board.Text(dashboard.ElementTrigger)

	switch {
	case m.board.Flag(dashboard.ElementTrigger, dashboard.FlagDisabled):
		return styles.ButtonDisabled.Render(label)
	case m.focus == focusTrigger:
		return styles.ButtonFocused.Render(label)
	default:
		return styles.Button.Render(label)
	}
}

func (m *DashboardModel) renderStatus() string {
	text := m.board.Text(dashboard.ElementStatus)
	if text == "" {
		return ""
	}

	switch {
	case m.board.Flag(dashboard.ElementStatus, dashboard.FlagNegative):
		return styles.Negative.Render(text)
	case m.dash.Busy():
		return m.spinner.View() + " " + styles.Positive.Render(text)
	case m.board.Flag(dashboard.ElementStatus, dashboard.FlagPositive):
		return styles.Positive.Render(text)
	default:
		return styles.Info.Render(text)
	}
}

func (m *DashboardModel) renderIndicators() string {
	rows := make([]string, 0, len(domain.Difficulties))
	for _, d := range domain.Difficulties {
		id := dashboard.IndicatorElement(d)
		rows = append(rows, m.indicators[d].View(m.board.Percent(id), m.board.Text(id)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderRecent lists the session's usernames that match what has been typed so far
func (m *DashboardModel) renderRecent() string {
	matches := m.statsService.History().Match(m.input.Value())
	if len(matches) == 0 {
		return ""
	}
	if len(matches) > maxRecent {
		matches = matches[:maxRecent]
	}
	return styles.Muted.Render("Recent: " + strings.Join(matches, " · "))
}

func (m *DashboardModel) footerBindings() []components.KeyBinding {
	bindings := components.BindingsFor(kb.ContextBindings[m.KeyContext()],
		kb.ActionFetch, kb.ActionFocusNext, kb.ActionHistoryOlder)
	return append(bindings, components.BindingsFor(kb.ContextBindings[kb.ContextGlobal],
		kb.ActionToggleHelp, kb.ActionQuit)...)
}

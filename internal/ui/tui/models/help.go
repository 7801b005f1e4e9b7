package models

import (
	"fmt"
	"strings"
	"unicode/utf8"

	kb "github.com/PizzaHomicide/leetmetrics/internal/ui/tui/keybindings"
	"github.com/PizzaHomicide/leetmetrics/internal/ui/tui/styles"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel displays the keybindings with scrolling
type HelpModel struct {
	width, height int
	viewport      viewport.Model
}

// NewHelpModel creates a new help model
func NewHelpModel() *HelpModel {
	m := &HelpModel{
		viewport: viewport.New(0, 0),
	}
	m.updateContent()
	return m
}

// Update handles messages
func (m *HelpModel) Update(msg tea.Msg) (*HelpModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch kb.GetActionByKey(msg, kb.ContextHelp) {
		case kb.ActionMoveUp, kb.ActionMoveDown, kb.ActionPageUp, kb.ActionPageDown:
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		case kb.ActionMoveTop:
			m.viewport.GotoTop()
		case kb.ActionMoveBottom:
			m.viewport.GotoBottom()
		}
	}
	return m, cmd
}

// Resize updates the dimensions
func (m *HelpModel) Resize(width, height int) {
	m.width = width
	m.height = height

	// Leave room for the borders, header and footer
	m.viewport.Width = max(width-4, 1)
	m.viewport.Height = max(height-10, 1)

	m.updateContent()
}

// updateContent generates help content and updates the viewport
func (m *HelpModel) updateContent() {
	m.viewport.SetContent(m.generateHelpContent())
	m.viewport.GotoTop()
}

// View renders the help screen
func (m *HelpModel) View() string {
	header := styles.Header(m.width, "Help: LeetCode Metrics")

	scrollText := "↑/↓: Scroll • PgUp/PgDn: Page scroll • Home/End: Goto top/bottom • ESC: Return"
	footer := styles.CenteredText(m.width, styles.Info.Render(scrollText))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		styles.ContentBox(m.width-2, m.viewport.View(), 1),
		"",
		footer,
	)
}

// formatKeybindingSection formats a section of keybindings with aligned colons
func formatKeybindingSection(title string, bindings []kb.Binding) string {
	if len(bindings) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(title))
	b.WriteString("\n\n")

	keyTexts := make([]string, len(bindings))
	maxKeyWidth := 0
	for i, binding := range bindings {
		keyText := kb.DisplayKey(binding.KeyMap.Primary)
		if binding.KeyMap.Secondary != "" {
			keyText += " or " + kb.DisplayKey(binding.KeyMap.Secondary)
		}
		keyTexts[i] = keyText
		maxKeyWidth = max(maxKeyWidth, utf8.RuneCountInString(keyText))
	}

	for i, binding := range bindings {
		padding := strings.Repeat(" ", maxKeyWidth-utf8.RuneCountInString(keyTexts[i]))
		b.WriteString(fmt.Sprintf("• %s%s : %s\n",
			lipgloss.NewStyle().Bold(true).Render(keyTexts[i]),
			padding,
			binding.KeyMap.Help))
	}

	return b.String()
}

// generateHelpContent builds the complete help content
func (m *HelpModel) generateHelpContent() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.ColorAccent)

	b.WriteString(titleStyle.Render("LeetCode Metrics"))
	b.WriteString("\n\n")
	b.WriteString("Type a LeetCode username and press the fetch button to see how many easy, medium and hard problems " +
		"that user has solved.\n\n" +
		"Usernames are 1 to 15 letters, digits, underscores or hyphens. The three bars pulse until a lookup " +
		"succeeds, then settle on the solved percentage for each difficulty. The cards underneath show the " +
		"acceptance rate, ranking, contribution points and reputation exactly as the API reports them.\n\n" +
		"Usernames looked up successfully are remembered until you quit. Start typing and use ctrl+p / ctrl+n " +
		"to cycle through the matching ones. The fetch button can also be clicked with the mouse.")
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("Keybindings"))
	b.WriteString("\n\n")

	sections := []struct {
		title   string
		context kb.ContextName
	}{
		{"Global commands:", kb.ContextGlobal},
		{"Username input:", kb.ContextInput},
		{"Fetch button:", kb.ContextTrigger},
		{"This help screen:", kb.ContextHelp},
	}
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(formatKeybindingSection(s.title, kb.ContextBindings[s.context]))
	}

	return b.String()
}

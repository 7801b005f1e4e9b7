package components

import (
	"fmt"
	"strings"

	kb "github.com/PizzaHomicide/leetmetrics/internal/ui/tui/keybindings"
	"github.com/PizzaHomicide/leetmetrics/internal/ui/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// KeyBinding represents a single key and its description for the keybinding bar
type KeyBinding struct {
	Key  string
	Desc string
}

// keyStyle is used to highlight keyboard shortcuts in UI
var keyStyle = lipgloss.NewStyle().
	Foreground(styles.ColorAccent).
	Bold(true)

// KeyBindingsBar creates a styled footer showing a set of keybindings
// width: The width of the screen to center the bar
// bindings: The list of keybindings to display
func KeyBindingsBar(width int, bindings []KeyBinding) string {
	var parts []string
	for _, b := range bindings {
		parts = append(parts, fmt.Sprintf("%s: %s",
			keyStyle.Render(kb.DisplayKey(b.Key)),
			b.Desc))
	}

	keyBar := styles.Info.Render(strings.Join(parts, " • "))
	return styles.CenteredText(width, keyBar)
}

// BindingsFor builds footer entries for the given actions from a binding set, skipping any it does not contain
func BindingsFor(bindings []kb.Binding, actions ...kb.Action) []KeyBinding {
	var out []KeyBinding
	for _, action := range actions {
		for _, b := range bindings {
			if b.Action == action {
				out = append(out, KeyBinding{Key: b.KeyMap.Primary, Desc: b.KeyMap.Help})
				break
			}
		}
	}
	return out
}

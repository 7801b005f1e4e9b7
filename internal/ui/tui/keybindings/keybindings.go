package keybindings

import tea "github.com/charmbracelet/bubbletea"

// Action represents a specific action that can be triggered by a key
type Action string

// Define all possible actions
const (
	// Global actions
	ActionQuit       Action = "quit"
	ActionToggleHelp Action = "toggle_help"
	ActionBack       Action = "back" // General purpose "go back" or "cancel"

	// Navigation actions
	ActionMoveUp     Action = "move_up"
	ActionMoveDown   Action = "move_down"
	ActionPageUp     Action = "page_up"
	ActionPageDown   Action = "page_down"
	ActionMoveTop    Action = "move_top"
	ActionMoveBottom Action = "move_bottom"

	// Dashboard actions
	ActionFetch         Action = "fetch"
	ActionFocusNext     Action = "focus_next"
	ActionFocusPrev     Action = "focus_prev"
	ActionHistoryOlder  Action = "history_older"
	ActionHistoryNewer  Action = "history_newer"
	ActionClearUsername Action = "clear_username"
)

// ContextName represents a specific UI context in the application that has its own keybinds
type ContextName string

const (
	ContextGlobal  ContextName = "global"
	ContextInput   ContextName = "input"
	ContextTrigger ContextName = "trigger"
	ContextHelp    ContextName = "help"
)

var ContextBindings = map[ContextName][]Binding{
	ContextGlobal:  globalBindings,
	ContextInput:   inputBindings,
	ContextTrigger: triggerBindings,
	ContextHelp:    helpBindings,
}

// KeyMap stores the mappings from actions to key sequences for each context
type KeyMap struct {
	Primary   string
	Secondary string // Optional alternative key
	Help      string // Description for help screen
}

// Binding maps an action to its keys and help text
type Binding struct {
	Action Action
	KeyMap KeyMap
}

// navigationBindings contains general navigation bindings for scrollable views
var navigationBindings = []Binding{
	{
		Action: ActionMoveUp,
		KeyMap: KeyMap{
			Primary:   "up",
			Secondary: "k",
			Help:      "Scroll up",
		},
	},
	{
		Action: ActionMoveDown,
		KeyMap: KeyMap{
			Primary:   "down",
			Secondary: "j",
			Help:      "Scroll down",
		},
	},
	{
		Action: ActionPageUp,
		KeyMap: KeyMap{
			Primary: "pgup",
			Help:    "Scroll up one page",
		},
	},
	{
		Action: ActionPageDown,
		KeyMap: KeyMap{
			Primary: "pgdown",
			Help:    "Scroll down one page",
		},
	},
	{
		Action: ActionMoveTop,
		KeyMap: KeyMap{
			Primary: "home",
			Help:    "Go to top",
		},
	},
	{
		Action: ActionMoveBottom,
		KeyMap: KeyMap{
			Primary: "end",
			Help:    "Go to bottom",
		},
	},
}

// globalBindings contains key bindings that work across all views
var globalBindings = []Binding{
	{
		Action: ActionQuit,
		KeyMap: KeyMap{
			Primary: "ctrl+c",
			Help:    "Quit application",
		},
	},
	{
		Action: ActionToggleHelp,
		KeyMap: KeyMap{
			Primary: "ctrl+h",
			Help:    "Toggle help screen",
		},
	},
	{
		Action: ActionBack,
		KeyMap: KeyMap{
			Primary: "esc",
			Help:    "Close help",
		},
	},
}

// focusBindings move focus between the username input and the fetch button
var focusBindings = []Binding{
	{
		Action: ActionFocusNext,
		KeyMap: KeyMap{
			Primary: "tab",
			Help:    "Focus next control",
		},
	},
	{
		Action: ActionFocusPrev,
		KeyMap: KeyMap{
			Primary: "shift+tab",
			Help:    "Focus previous control",
		},
	},
}

// inputBindings apply while the username input has focus.  Anything unbound is typed into the input.
var inputBindings = withFocus([]Binding{
	{
		Action: ActionFetch,
		KeyMap: KeyMap{
			Primary: "enter",
			Help:    "Fetch metrics for the username",
		},
	},
	{
		Action: ActionHistoryOlder,
		KeyMap: KeyMap{
			Primary: "ctrl+p",
			Help:    "Previous matching username from this session",
		},
	},
	{
		Action: ActionHistoryNewer,
		KeyMap: KeyMap{
			Primary: "ctrl+n",
			Help:    "Next matching username from this session",
		},
	},
	{
		Action: ActionClearUsername,
		KeyMap: KeyMap{
			Primary: "ctrl+u",
			Help:    "Clear the username",
		},
	},
})

// triggerBindings apply while the fetch button has focus
var triggerBindings = withFocus([]Binding{
	{
		Action: ActionFetch,
		KeyMap: KeyMap{
			Primary:   "enter",
			Secondary: " ",
			Help:      "Press the fetch button",
		},
	},
})

// helpBindings contains key bindings specific to the help view
var helpBindings = withNavigation([]Binding{})

// GetActionKey returns the primary key for an action
func GetActionKey(action Action, bindings []Binding) string {
	for _, binding := range bindings {
		if binding.Action == action {
			return binding.KeyMap.Primary
		}
	}
	return ""
}

// GetBindingByKey returns the action and help text for a given key
func GetBindingByKey(key string, bindings []Binding) (Action, string) {
	for _, binding := range bindings {
		if binding.KeyMap.Primary == key || binding.KeyMap.Secondary == key {
			return binding.Action, binding.KeyMap.Help
		}
	}
	return "", ""
}

// GetActionByKey returns just the action for a given key, or an empty Action if not found
func GetActionByKey(keyMsg tea.KeyMsg, name ContextName) Action {
	action, _ := GetBindingByKey(keyMsg.String(), ContextBindings[name])
	return action
}

// DisplayKey renders a key name for the help screen and footer
func DisplayKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}

func withNavigation(bindings []Binding) []Binding {
	return append(append([]Binding{}, navigationBindings...), bindings...)
}

func withFocus(bindings []Binding) []Binding {
	return append(append([]Binding{}, focusBindings...), bindings...)
}

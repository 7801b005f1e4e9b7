package models

import (
	"github.com/PizzaHomicide/leetmetrics/internal/config"
	"github.com/PizzaHomicide/leetmetrics/internal/log"
	"github.com/PizzaHomicide/leetmetrics/internal/service"
	kb "github.com/PizzaHomicide/leetmetrics/internal/ui/tui/keybindings"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel is the main application model that coordinates all child models.  It is the high level wrapper.
type AppModel struct {
	config        *config.Config
	activeView    View  // Track the current active 'main view'
	activeModal   Modal // Track the current active 'modal overlay' if any
	width, height int

	dashboardModel *DashboardModel
	helpModel      *HelpModel
}

// NewAppModel creates a new instance of the main application model.  username may be empty.
func NewAppModel(cfg *config.Config, statsService *service.StatsService, username string) AppModel {
	return AppModel{
		config:         cfg,
		activeView:     ViewDashboard,
		activeModal:    ModalNone,
		dashboardModel: NewDashboardModel(cfg, statsService, username),
		helpModel:      NewHelpModel(),
	}
}

func (m AppModel) Init() tea.Cmd {
	log.Info("Initialising LeetCode Metrics TUI")
	return m.dashboardModel.Init()
}

// Update handles messages and updates the models as appropriate
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch kb.GetActionByKey(msg, kb.ContextGlobal) {
		case kb.ActionQuit:
			log.Info("Quit command received.  Shutting down...")
			return m, tea.Quit
		case kb.ActionToggleHelp:
			log.Debug("Help requested", "active_view", m.activeView)
			// Disable/toggle modal if one already active
			if m.activeModal != ModalNone {
				m.activeModal = ModalNone
			} else {
				m.activeModal = ModalHelp
			}
			return m, nil
		case kb.ActionBack:
			if m.activeModal != ModalNone {
				m.activeModal = ModalNone
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		log.Debug("Window size changed", "old_width", m.width, "new_width", msg.Width, "old_height", m.height, "new_height", msg.Height)
		m.width = msg.Width
		m.height = msg.Height

		// Propagate new window size to all views so they are aware and can render correctly
		m.helpModel.Resize(msg.Width, msg.Height)
		m.dashboardModel.Resize(msg.Width, msg.Height)
		return m, nil
	}

	// Input goes to the modal while one is open.  Everything else, such as frames and lookup results, keeps flowing
	// to the dashboard underneath.
	if m.activeModal == ModalHelp {
		switch msg.(type) {
		case tea.KeyMsg, tea.MouseMsg:
			return m.updateHelpModal(msg)
		}
	}

	return m.updateDashboardView(msg)
}

func (m AppModel) View() string {
	// If there is an active modal it takes precedence
	if m.activeModal == ModalHelp {
		return m.helpModel.View()
	}

	switch m.activeView {
	case ViewDashboard:
		return m.dashboardModel.View()
	default:
		return "Unknown view\nPress ctrl+c to quit."
	}
}

// updateDashboardView delegates message processing to the dashboard model
func (m AppModel) updateDashboardView(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.dashboardModel.Update(msg)
	m.dashboardModel = model.(*DashboardModel)

	return m, cmd
}

func (m AppModel) updateHelpModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.helpModel.Update(msg)
	m.helpModel = model

	return m, cmd
}

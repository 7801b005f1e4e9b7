package models

import (
	"context"
	"time"

	"github.com/PizzaHomicide/leetmetrics/internal/animation"
	"github.com/PizzaHomicide/leetmetrics/internal/config"
	"github.com/PizzaHomicide/leetmetrics/internal/dashboard"
	"github.com/PizzaHomicide/leetmetrics/internal/domain"
	"github.com/PizzaHomicide/leetmetrics/internal/log"
	"github.com/PizzaHomicide/leetmetrics/internal/service"
	"github.com/PizzaHomicide/leetmetrics/internal/ui/tui/components"
	kb "github.com/PizzaHomicide/leetmetrics/internal/ui/tui/keybindings"
	"github.com/PizzaHomicide/leetmetrics/internal/ui/tui/styles"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var indicatorColors = map[domain.Difficulty]string{
	domain.DifficultyEasy:   styles.ColorEasy,
	domain.DifficultyMedium: styles.ColorMedium,
	domain.DifficultyHard:   styles.ColorHard,
}

// historyCursor walks the session history while ctrl+p / ctrl+n are pressed.  pos -1 is the text typed before
// cycling began.
type historyCursor struct {
	active  bool
	query   string
	matches []string
	pos     int
}

// DashboardModel is the single screen of the application: username input, fetch button, status line, indicators and
// summary cards.  Everything it shows is read from a dashboard.Board, which only the dashboard and its animations
// write to.
type DashboardModel struct {
	config        *config.Config
	statsService  *service.StatsService
	board         *dashboard.Board
	animator      *animation.Controller
	dash          *dashboard.Dashboard
	width, height int

	input      textinput.Model
	spinner    spinner.Model
	indicators map[domain.Difficulty]*components.Indicator
	focus      focus
	ticking    bool // Whether a FrameMsg is already scheduled
	history    historyCursor
	autoFetch  bool
}

// NewDashboardModel creates the dashboard.  A non-empty username is prefilled and fetched as soon as the model starts.
func NewDashboardModel(cfg *config.Config, statsService *service.StatsService, username string) *DashboardModel {
	board := dashboard.NewBoard()
	animator := animation.NewController(board, cfg.Animation.SettleDelay)
	dash := dashboard.New(board, animator, statsService, dashboard.Timings{
		IdlePeriod:     cfg.Animation.IdlePeriod,
		SettleDuration: cfg.Animation.SettleDuration,
	})

	input := textinput.New()
	input.Placeholder = "LeetCode username"
	input.Prompt = "› "
	input.CharLimit = 64
	input.Width = 24
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.ColorAccent)

	indicators := make(map[domain.Difficulty]*components.Indicator, len(domain.Difficulties))
	for _, d := range domain.Difficulties {
		indicators[d] = components.NewIndicator(string(d), indicatorColors[d])
	}

	autoFetch := username != ""
	if !autoFetch {
		username = cfg.UI.DefaultUsername
	}
	input.SetValue(username)

	return &DashboardModel{
		config:       cfg,
		statsService: statsService,
		board:        board,
		animator:     animator,
		dash:         dash,
		input:        input,
		spinner:      s,
		indicators:   indicators,
		focus:        focusInput,
		autoFetch:    autoFetch,
	}
}

// Init starts the idle animation, and the first lookup if a username was given on the command line
func (m *DashboardModel) Init() tea.Cmd {
	m.dash.Start()
	cmds := []tea.Cmd{textinput.Blink, m.startTicking()}
	if m.autoFetch {
		log.Debug("Fetching username given at startup", "username", m.input.Value())
		cmds = append(cmds, m.submit())
	}
	return tea.Batch(cmds...)
}

// Resize updates the model with new dimensions
func (m *DashboardModel) Resize(width, height int) {
	m.width = width
	m.height = height

	m.input.Width = max(min(width-bodyIndent-20, 30), 10)
	for _, ind := range m.indicators {
		ind.Resize(width - bodyIndent*2)
	}
}

// KeyContext is the keybinding context for the control that has focus
func (m *DashboardModel) KeyContext() kb.ContextName {
	if m.focus == focusTrigger {
		return kb.ContextTrigger
	}
	return kb.ContextInput
}

// Update handles messages and updates the model
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		if !m.animator.Advance(msg.Time) {
			log.Trace("No live animations, frame loop stopped")
			m.ticking = false
			return m, nil
		}
		return m, m.tick()

	case StatsLoadedMsg:
		log.Debug("Stats loaded", "username", msg.Username)
		m.dash.CompleteFetch(msg.Stats, nil)
		m.statsService.RecordSuccess(msg.Username)
		return m, m.startTicking()

	case StatsErrorMsg:
		log.Debug("Stats load error", "username", msg.Username, "error", msg.Error)
		m.dash.CompleteFetch(nil, msg.Error)
		return m, nil

	case spinner.TickMsg:
		// Letting the tick lapse stops the spinner until the next lookup
		if !m.dash.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		switch kb.GetActionByKey(msg, m.KeyContext()) {
		case kb.ActionFetch:
			return m, m.submit()
		case kb.ActionFocusNext, kb.ActionFocusPrev:
			return m, m.toggleFocus()
		case kb.ActionHistoryOlder:
			m.cycleHistory(1)
			return m, nil
		case kb.ActionHistoryNewer:
			m.cycleHistory(-1)
			return m, nil
		case kb.ActionClearUsername:
			m.history = historyCursor{}
			m.input.SetValue("")
			return m, nil
		}

		if m.focus != focusInput {
			return m, nil
		}
		m.history = historyCursor{}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit validates the input and, if it passes, starts a lookup.  Nothing happens while one is already in flight.
func (m *DashboardModel) submit() tea.Cmd {
	if m.dash.Busy() {
		log.Debug("Lookup already in flight, ignoring trigger")
		return nil
	}

	username, ok := m.dash.Submit(m.input.Value())
	if !ok {
		return nil
	}

	m.dash.BeginFetch(username)
	return tea.Batch(m.spinner.Tick, fetchStats(m.dash, username))
}

// fetchStats performs the lookup off the UI goroutine.  The dashboard's Fetch writes nothing to the board.
func fetchStats(dash *dashboard.Dashboard, username string) tea.Cmd {
	return func() tea.Msg {
		stats, err := dash.Fetch(context.Background(), username)
		if err != nil {
			return StatsErrorMsg{Username: username, Error: err}
		}
		return StatsLoadedMsg{Username: username, Stats: stats}
	}
}

// startTicking schedules the next frame unless one already is
func (m *DashboardModel) startTicking() tea.Cmd {
	if m.ticking || !m.animator.Active() {
		return nil
	}
	m.ticking = true
	return m.tick()
}

func (m *DashboardModel) tick() tea.Cmd {
	return tea.Tick(m.config.Animation.FrameInterval(), func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}

func (m *DashboardModel) toggleFocus() tea.Cmd {
	if m.focus == focusInput {
		m.focus = focusTrigger
		m.input.Blur()
		return nil
	}
	m.focus = focusInput
	return m.input.Focus()
}

func (m *DashboardModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	switch {
	case m.onTrigger(msg.X, msg.Y):
		m.focus = focusTrigger
		m.input.Blur()
		return m.submit()
	case msg.Y == inputRow:
		m.focus = focusInput
		return m.input.Focus()
	}
	return nil
}

// onTrigger reports whether a screen cell falls on the fetch button
func (m *DashboardModel) onTrigger(x, y int) bool {
	if y != triggerRow {
		return false
	}
	return x >= bodyIndent && x < bodyIndent+lipgloss.Width(m.renderTrigger())
}

// cycleHistory replaces the input with the next (delta 1) or previous (delta -1) matching username from this session
func (m *DashboardModel) cycleHistory(delta int) {
	h := &m.history
	if !h.active {
		matches := m.statsService.History().Match(m.input.Value())
		if len(matches) == 0 {
			return
		}
		*h = historyCursor{active: true, query: m.input.Value(), matches: matches, pos: -1}
	}

	h.pos = min(max(h.pos+delta, -1), len(h.matches)-1)
	if h.pos == -1 {
		m.input.SetValue(h.query)
	} else {
		m.input.SetValue(h.matches[h.pos])
	}
	m.input.CursorEnd()
}

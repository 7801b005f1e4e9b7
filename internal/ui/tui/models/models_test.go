package models

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PizzaHomicide/leetmetrics/internal/config"
	"github.com/PizzaHomicide/leetmetrics/internal/dashboard"
	"github.com/PizzaHomicide/leetmetrics/internal/domain"
	"github.com/PizzaHomicide/leetmetrics/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	stats *domain.Stats
	err   error
	calls int
}

func (r *stubRepo) GetStats(_ context.Context, _ string) (*domain.Stats, error) {
	r.calls++
	return r.stats, r.err
}

func testConfig() *config.Config {
	return &config.Config{
		API: config.APIConfig{Timeout: time.Second},
		Animation: config.AnimationConfig{
			IdlePeriod:     1500 * time.Millisecond,
			SettleDuration: 200 * time.Millisecond,
			SettleDelay:    0,
			FrameRate:      60,
		},
		UI: config.UIConfig{HistorySize: 10},
	}
}

func newTestModel(repo *stubRepo, username string) (*DashboardModel, *service.StatsService) {
	svc := service.NewStatsService(repo, time.Second, service.NewHistory(10))
	m := NewDashboardModel(testConfig(), svc, username)
	m.Resize(100, 40)
	return m, svc
}

func typeText(m *DashboardModel, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// settleFrames feeds frames until the animations are done
func settleFrames(t *testing.T, m *DashboardModel) {
	t.Helper()
	now := time.Now()
	for i := 0; i < 1000; i++ {
		if _, cmd := m.Update(FrameMsg{Time: now.Add(time.Duration(i) * 16 * time.Millisecond)}); cmd == nil {
			return
		}
	}
	t.Fatal("animations never settled")
}

var sampleStats = &domain.Stats{
	TotalEasy: 100, EasySolved: 25,
	TotalMedium: 50, MediumSolved: 10,
	TotalHard: 30, HardSolved: 3,
	AcceptanceRate: "60%", Ranking: "12345", ContributionPoints: "10", Reputation: "500",
}

func TestDashboardModel_Init(t *testing.T) {
	m, _ := newTestModel(&stubRepo{}, "")

	cmd := m.Init()

	assert.NotNil(t, cmd)
	assert.True(t, m.ticking, "idle pulse needs frames")
	assert.Equal(t, dashboard.TriggerLabel, m.board.Text(dashboard.ElementTrigger))
	assert.False(t, m.dash.Busy())
}

func TestDashboardModel_FetchFlow(t *testing.T) {
	repo := &stubRepo{stats: sampleStats}
	m, svc := newTestModel(repo, "")
	m.Init()

	typeText(m, "octocat")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.True(t, m.dash.Busy())
	assert.Equal(t, dashboard.TriggerWorkingLabel, m.board.Text(dashboard.ElementTrigger))
	assert.Equal(t, dashboard.MsgLoading, m.board.Text(dashboard.ElementStatus))

	// A second press while in flight is ignored
	_, again := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, again)

	msg := fetchStats(m.dash, "octocat")()
	require.IsType(t, StatsLoadedMsg{}, msg)
	m.Update(msg)

	assert.False(t, m.dash.Busy())
	assert.Equal(t, dashboard.TriggerLabel, m.board.Text(dashboard.ElementTrigger))
	assert.Equal(t, []string{"octocat"}, svc.History().Entries())

	settleFrames(t, m)
	assert.InDelta(t, 25, m.board.Percent(dashboard.ElementProgressEasy), 1e-9)
	assert.Equal(t, "10/50", m.board.Text(dashboard.ElementProgressMedium))
	assert.Len(t, m.board.Cards(dashboard.ElementCards), 4)
	assert.False(t, m.ticking)

	view := m.View()
	assert.Contains(t, view, "25/100")
	assert.Contains(t, view, "12345")
}

func TestDashboardModel_FetchError(t *testing.T) {
	repo := &stubRepo{err: errors.New("connection refused")}
	m, svc := newTestModel(repo, "octocat")
	m.Init()

	msg := fetchStats(m.dash, "octocat")()
	require.IsType(t, StatsErrorMsg{}, msg)
	m.Update(msg)

	assert.Equal(t, dashboard.MsgFetchFailed, m.board.Text(dashboard.ElementStatus))
	assert.False(t, m.dash.Busy())
	assert.Empty(t, svc.History().Entries())
	assert.Contains(t, m.View(), dashboard.MsgFetchFailed)
}

func TestDashboardModel_InvalidInputNeverFetches(t *testing.T) {
	repo := &stubRepo{stats: sampleStats}
	m, _ := newTestModel(repo, "")
	m.Init()

	typeText(m, "ab cd")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, dashboard.MsgInvalidUsername, m.board.Text(dashboard.ElementStatus))
	assert.Zero(t, repo.calls)
}

func TestDashboardModel_Trigger(t *testing.T) {
	t.Run("tab focuses the button and space presses it", func(t *testing.T) {
		m, _ := newTestModel(&stubRepo{stats: sampleStats}, "")
		m.Init()
		typeText(m, "octocat")

		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, focusTrigger, m.focus)

		// Typing while the button is focused goes nowhere
		typeText(m, "x")
		assert.Equal(t, "octocat", m.input.Value())

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
		assert.NotNil(t, cmd)
		assert.True(t, m.dash.Busy())
	})

	t.Run("left click on the button fetches", func(t *testing.T) {
		m, _ := newTestModel(&stubRepo{stats: sampleStats}, "")
		m.Init()
		typeText(m, "octocat")

		_, cmd := m.Update(tea.MouseMsg{X: bodyIndent + 1, Y: triggerRow, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

		assert.NotNil(t, cmd)
		assert.True(t, m.dash.Busy())
	})

	t.Run("clicks elsewhere do nothing", func(t *testing.T) {
		m, _ := newTestModel(&stubRepo{stats: sampleStats}, "")
		m.Init()
		typeText(m, "octocat")

		m.Update(tea.MouseMsg{X: 90, Y: triggerRow, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		m.Update(tea.MouseMsg{X: bodyIndent + 1, Y: triggerRow, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

		assert.False(t, m.dash.Busy())
	})
}

func TestDashboardModel_UsernameFromCommandLine(t *testing.T) {
	m, _ := newTestModel(&stubRepo{stats: sampleStats}, "octocat")

	m.Init()

	assert.Equal(t, "octocat", m.input.Value())
	assert.True(t, m.dash.Busy(), "lookup starts immediately")
}

func TestDashboardModel_History(t *testing.T) {
	m, svc := newTestModel(&stubRepo{}, "")
	m.Init()
	svc.RecordSuccess("leetcoder")
	svc.RecordSuccess("neetcode")
	svc.RecordSuccess("lee215")

	typeText(m, "lee2")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.Equal(t, "lee215", m.input.Value())

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, "lee2", m.input.Value(), "walking back past the newest restores what was typed")

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Empty(t, m.input.Value())
	assert.Contains(t, m.View(), "Recent: ")
}

func TestAppModel(t *testing.T) {
	svc := service.NewStatsService(&stubRepo{stats: sampleStats}, time.Second, service.NewHistory(10))
	app := NewAppModel(testConfig(), svc, "")
	app.Init()

	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	app = model.(AppModel)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyCtrlH})
	app = model.(AppModel)
	assert.Equal(t, ModalHelp, app.activeModal)
	assert.Contains(t, app.View(), "Help")

	// Frames keep reaching the dashboard while help is open
	model, cmd := app.Update(FrameMsg{Time: time.Now()})
	app = model.(AppModel)
	assert.NotNil(t, cmd)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(AppModel)
	assert.Equal(t, ModalNone, app.activeModal)

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

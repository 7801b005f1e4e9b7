package tui

import (
	"github.com/PizzaHomicide/leetmetrics/internal/config"
	"github.com/PizzaHomicide/leetmetrics/internal/service"
	"github.com/PizzaHomicide/leetmetrics/internal/ui/tui/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive dashboard and blocks until the user quits.  A non-empty username is fetched immediately.
func Run(cfg *config.Config, statsService *service.StatsService, username string) error {
	p := tea.NewProgram(
		models.NewAppModel(cfg, statsService, username),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

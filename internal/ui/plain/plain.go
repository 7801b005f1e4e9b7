// Package plain runs a single lookup without the interactive UI and prints the settled dashboard as text.
package plain

import (
	"context"
	"fmt"
	"io"

	"github.com/PizzaHomicide/leetmetrics/internal/animation"
	"github.com/PizzaHomicide/leetmetrics/internal/config"
	"github.com/PizzaHomicide/leetmetrics/internal/dashboard"
	"github.com/PizzaHomicide/leetmetrics/internal/domain"
	"github.com/PizzaHomicide/leetmetrics/internal/log"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Run validates username, fetches its stats, lets the indicator animations play out on a wall-clock ticker and writes
// the final board to w.  Validation and lookup failures are written to w as the dashboard would show them and
// returned.
func Run(ctx context.Context, cfg *config.Config, fetcher dashboard.Fetcher, username string, w io.Writer) error {
	return run(ctx, cfg, fetcher, username, w, animation.NewTickerSource(cfg.Animation.FrameInterval()))
}

func run(ctx context.Context, cfg *config.Config, fetcher dashboard.Fetcher, username string, w io.Writer, frames animation.FrameSource) error {
	if ticker, ok := frames.(*animation.TickerSource); ok {
		defer ticker.Stop()
	}

	board := dashboard.NewBoard()
	animator := animation.NewController(board, cfg.Animation.SettleDelay)
	dash := dashboard.New(board, animator, fetcher, dashboard.Timings{
		IdlePeriod:     cfg.Animation.IdlePeriod,
		SettleDuration: cfg.Animation.SettleDuration,
	})
	dash.Start()

	name, ok := dash.Submit(username)
	if !ok {
		_, _ = fmt.Fprintln(w, board.Text(dashboard.ElementStatus))
		return fmt.Errorf("invalid username %q", username)
	}

	if err := dash.FetchAndRender(ctx, name); err != nil {
		_, _ = fmt.Fprintln(w, board.Text(dashboard.ElementStatus))
		return err
	}

	if err := animation.Run(ctx, frames, animator.Advance); err != nil {
		return fmt.Errorf("animation interrupted: %w", err)
	}
	log.Debug("Plain render settled", "username", name)

	_, err := fmt.Fprintln(w, Render(name, board))
	return err
}

// Render formats a settled board as two tables: progress per difficulty, then the summary cards
func Render(username string, board *dashboard.Board) string {
	progress := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Difficulty", "Solved", "Progress")
	for _, d := range domain.Difficulties {
		id := dashboard.IndicatorElement(d)
		progress.Row(string(d), board.Text(id), fmt.Sprintf("%.1f%%", board.Percent(id)))
	}

	cards := board.Cards(dashboard.ElementCards)
	headers := make([]string, len(cards))
	values := make([]string, len(cards))
	for i, card := range cards {
		headers[i] = card.Label
		values[i] = card.Value
	}
	summary := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Row(values...)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(username),
		progress.String(),
		summary.String(),
	)
}

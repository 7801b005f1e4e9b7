package service

import (
	"context"
	"fmt"
	"github.com/PizzaHomicide/leetmetrics/internal/domain"
	"github.com/PizzaHomicide/leetmetrics/internal/log"
	"github.com/google/uuid"
	"time"
)

type StatsService struct {
	repo    domain.StatsRepository
	timeout time.Duration
	history *History
}

func NewStatsService(repo domain.StatsRepository, timeout time.Duration, history *History) *StatsService {
	if history == nil {
		history = NewHistory(0)
	}
	return &StatsService{
		repo:    repo,
		timeout: timeout,
		history: history,
	}
}

// History returns the session history of successful lookups
func (s *StatsService) History() *History {
	return s.history
}

// Fetch looks up a single user's statistics.  The lookup is abandoned once the configured timeout elapses so a hung
// request cannot leave the caller waiting forever.
//
// Fetch touches no UI state and is safe to call from a tea.Cmd.  The history is only appended to from the same
// goroutine the result is delivered to, see RecordSuccess.
func (s *StatsService) Fetch(ctx context.Context, username string) (*domain.Stats, error) {
	logger := log.With("lookup_id", uuid.NewString(), "username", username)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	logger.Info("Fetching stats")
	start := time.Now()

	stats, err := s.repo.GetStats(ctx, username)
	if err != nil {
		logger.Error("Failed to fetch stats", "error", err, "elapsed", time.Since(start))
		return nil, fmt.Errorf("failed to fetch stats for %s: %w", username, err)
	}

	logger.Info("Fetched stats",
		"elapsed", time.Since(start),
		"easy", stats.Progress(domain.DifficultyEasy).Label(),
		"medium", stats.Progress(domain.DifficultyMedium).Label(),
		"hard", stats.Progress(domain.DifficultyHard).Label())

	return stats, nil
}

// RecordSuccess adds a username to the session history after its stats have been rendered
func (s *StatsService) RecordSuccess(username string) {
	s.history.Add(username)
}

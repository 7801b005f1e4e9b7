package domain

import "context"

// StatsRepository defines the interface for fetching a user's statistics
type StatsRepository interface {
	// GetStats retrieves the statistics of a single user
	GetStats(ctx context.Context, username string) (*Stats, error)
}

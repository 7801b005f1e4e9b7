package leetcode

import (
	"fmt"
	"github.com/PizzaHomicide/leetmetrics/internal/config"
	"github.com/PizzaHomicide/leetmetrics/internal/domain"
	"net/http"
)

// NewRepository creates the stats repository selected by the api.source setting
func NewRepository(cfg config.APIConfig) (domain.StatsRepository, error) {
	// Lookups are bounded by the service's context deadline, so the client itself carries no timeout
	httpClient := &http.Client{}

	switch cfg.Source {
	case config.SourceREST, "":
		return NewClient(cfg.StatsURL, httpClient), nil
	case config.SourceGraphQL:
		return NewGraphQLClient(cfg.GraphQLURL, httpClient), nil
	default:
		return nil, fmt.Errorf("unsupported stats source: %s", cfg.Source)
	}
}

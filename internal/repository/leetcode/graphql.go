package leetcode

import (
	"context"
	"errors"
	"fmt"
	"github.com/PizzaHomicide/leetmetrics/internal/domain"
	"github.com/PizzaHomicide/leetmetrics/internal/log"
	"github.com/machinebox/graphql"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const userStatsQuery = `
    query userStats($username: String!) {
        allQuestionsCount {
            difficulty
            count
        }
        matchedUser(username: $username) {
            contributions {
                points
            }
            profile {
                reputation
                ranking
            }
            submitStats {
                acSubmissionNum {
                    difficulty
                    count
                    submissions
                }
                totalSubmissionNum {
                    difficulty
                    count
                    submissions
                }
            }
        }
    }
`

// GraphQLClient reads the same statistics straight from the upstream GraphQL endpoint instead of the REST proxy
type GraphQLClient struct {
	client *graphql.Client
}

func NewGraphQLClient(endpoint string, httpClient *http.Client) *GraphQLClient {
	opts := []graphql.ClientOption{}
	if httpClient != nil {
		opts = append(opts, graphql.WithHTTPClient(httpClient))
	}
	return &GraphQLClient{
		client: graphql.NewClient(endpoint, opts...),
	}
}

type submissionCount struct {
	Difficulty  string `json:"difficulty"`
	Count       int    `json:"count"`
	Submissions int    `json:"submissions"`
}

type userStatsResponse struct {
	AllQuestionsCount []submissionCount `json:"allQuestionsCount"`
	MatchedUser       *struct {
		Contributions struct {
			Points int `json:"points"`
		} `json:"contributions"`
		Profile struct {
			Reputation int `json:"reputation"`
			Ranking    int `json:"ranking"`
		} `json:"profile"`
		SubmitStats struct {
			AcSubmissionNum    []submissionCount `json:"acSubmissionNum"`
			TotalSubmissionNum []submissionCount `json:"totalSubmissionNum"`
		} `json:"submitStats"`
	} `json:"matchedUser"`
}

// GetStats runs the userStats query and maps it onto domain.Stats
func (c *GraphQLClient) GetStats(ctx context.Context, username string) (*domain.Stats, error) {
	req := graphql.NewRequest(userStatsQuery)
	req.Var("username", username)

	var response userStatsResponse
	if err := c.client.Run(ctx, req, &response); err != nil {
		var netErr *url.Error
		if errors.As(err, &netErr) {
			return nil, NetworkError{Err: err}
		}
		if strings.Contains(err.Error(), "does not exist") {
			return nil, fmt.Errorf("%w: %v", ErrUserNotFound, err)
		}
		return nil, fmt.Errorf("failed to query user stats: %w", err)
	}

	if response.MatchedUser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, username)
	}

	stats := mapUserStats(&response)
	log.Trace("Mapped graphql stats", "username", username, "stats", stats)
	return stats, nil
}

func mapUserStats(r *userStatsResponse) *domain.Stats {
	user := r.MatchedUser
	totals := byDifficulty(r.AllQuestionsCount)
	solved := byDifficulty(user.SubmitStats.AcSubmissionNum)

	accepted := submissionsFor(user.SubmitStats.AcSubmissionNum, "All")
	submitted := submissionsFor(user.SubmitStats.TotalSubmissionNum, "All")

	return &domain.Stats{
		TotalSolved:        solved["All"],
		TotalQuestions:     totals["All"],
		TotalEasy:          totals[string(domain.DifficultyEasy)],
		TotalMedium:        totals[string(domain.DifficultyMedium)],
		TotalHard:          totals[string(domain.DifficultyHard)],
		EasySolved:         solved[string(domain.DifficultyEasy)],
		MediumSolved:       solved[string(domain.DifficultyMedium)],
		HardSolved:         solved[string(domain.DifficultyHard)],
		AcceptanceRate:     acceptanceRate(accepted, submitted),
		Ranking:            domain.DisplayValue(strconv.Itoa(user.Profile.Ranking)),
		ContributionPoints: domain.DisplayValue(strconv.Itoa(user.Contributions.Points)),
		Reputation:         domain.DisplayValue(strconv.Itoa(user.Profile.Reputation)),
	}
}

func byDifficulty(counts []submissionCount) map[string]int {
	m := make(map[string]int, len(counts))
	for _, c := range counts {
		m[c.Difficulty] = c.Count
	}
	return m
}

func submissionsFor(counts []submissionCount, difficulty string) int {
	for _, c := range counts {
		if c.Difficulty == difficulty {
			return c.Submissions
		}
	}
	return 0
}

// acceptanceRate is accepted/total submissions as a percentage rounded to two decimals, matching the REST API
func acceptanceRate(accepted, submitted int) domain.DisplayValue {
	if submitted <= 0 {
		return "0"
	}
	rate := float64(accepted) / float64(submitted) * 100
	return domain.DisplayValue(strconv.FormatFloat(rate, 'f', 2, 64))
}

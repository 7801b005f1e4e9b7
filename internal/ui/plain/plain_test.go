package plain

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PizzaHomicide/leetmetrics/internal/animation"
	"github.com/PizzaHomicide/leetmetrics/internal/config"
	"github.com/PizzaHomicide/leetmetrics/internal/dashboard"
	"github.com/PizzaHomicide/leetmetrics/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetchFunc func(ctx context.Context, username string) (*domain.Stats, error)

func (f fetchFunc) Fetch(ctx context.Context, username string) (*domain.Stats, error) {
	return f(ctx, username)
}

var testConfig = &config.Config{
	Animation: config.AnimationConfig{
		IdlePeriod:     time.Second,
		SettleDuration: 100 * time.Millisecond,
		SettleDelay:    20 * time.Millisecond,
		FrameRate:      240,
	},
}

func synthetic() animation.FrameSource {
	return animation.NewSyntheticSource(time.Unix(0, 0), 10*time.Millisecond)
}

func TestRun(t *testing.T) {
	t.Run("prints the settled board", func(t *testing.T) {
		fetcher := fetchFunc(func(_ context.Context, username string) (*domain.Stats, error) {
			assert.Equal(t, "octocat", username)
			return &domain.Stats{
				TotalEasy: 100, EasySolved: 25,
				TotalMedium: 50, MediumSolved: 10,
				TotalHard: 30, HardSolved: 3,
				AcceptanceRate: "60%", Ranking: "12345", ContributionPoints: "10", Reputation: "500",
			}, nil
		})

		var out bytes.Buffer
		err := run(context.Background(), testConfig, fetcher, "octocat", &out, synthetic())

		require.NoError(t, err)
		for _, want := range []string{"octocat", "25/100", "25.0%", "10/50", "20.0%", "3/30", "10.0%",
			"Acceptance Rate", "60%", "Ranking", "12345", "Contribution Pts", "Reputation", "500"} {
			assert.Contains(t, out.String(), want)
		}
	})

	t.Run("invalid username is reported without fetching", func(t *testing.T) {
		fetcher := fetchFunc(func(context.Context, string) (*domain.Stats, error) {
			t.Fatal("fetch must not be called")
			return nil, nil
		})

		var out bytes.Buffer
		err := run(context.Background(), testConfig, fetcher, "ab cd", &out, synthetic())

		require.Error(t, err)
		assert.Contains(t, out.String(), dashboard.MsgInvalidUsername)
	})

	t.Run("lookup failure prints the error message", func(t *testing.T) {
		cause := errors.New("connection refused")
		fetcher := fetchFunc(func(context.Context, string) (*domain.Stats, error) {
			return nil, cause
		})

		var out bytes.Buffer
		err := run(context.Background(), testConfig, fetcher, "octocat", &out, synthetic())

		assert.ErrorIs(t, err, cause)
		assert.Contains(t, out.String(), dashboard.MsgFetchFailed)
	})

	t.Run("wall clock ticker settles", func(t *testing.T) {
		fetcher := fetchFunc(func(context.Context, string) (*domain.Stats, error) {
			return &domain.Stats{TotalEasy: 2, EasySolved: 1}, nil
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var out bytes.Buffer
		require.NoError(t, Run(ctx, testConfig, fetcher, "octocat", &out))
		assert.Contains(t, out.String(), "50.0%")
	})
}

package dashboard

import (
	"context"
	"errors"
	"github.com/PizzaHomicide/leetmetrics/internal/animation"
	"github.com/PizzaHomicide/leetmetrics/internal/domain"
	"github.com/PizzaHomicide/leetmetrics/internal/log"
	"github.com/PizzaHomicide/leetmetrics/internal/service"
	"time"
)

// Messages shown in the status element and on the trigger
const (
	MsgEmptyUsername   = "Please enter a valid username"
	MsgInvalidUsername = "Username contains invalid characters"
	MsgLoading         = "Loading data..."
	MsgFetchFailed     = "Error fetching data. Please check the username and try again."

	TriggerLabel        = "Fetch Metrics"
	TriggerWorkingLabel = "Fetching..."
)

// indicators maps each difficulty onto its progress element, in display order
var indicators = []struct {
	difficulty domain.Difficulty
	element    string
}{
	{domain.DifficultyEasy, ElementProgressEasy},
	{domain.DifficultyMedium, ElementProgressMedium},
	{domain.DifficultyHard, ElementProgressHard},
}

// IndicatorElement returns the progress element of a difficulty
func IndicatorElement(d domain.Difficulty) string {
	for _, ind := range indicators {
		if ind.difficulty == d {
			return ind.element
		}
	}
	return ""
}

// Fetcher performs the single network lookup of a fetch
type Fetcher interface {
	Fetch(ctx context.Context, username string) (*domain.Stats, error)
}

// Timings are the animation durations the dashboard uses
type Timings struct {
	IdlePeriod     time.Duration
	SettleDuration time.Duration
}

// Dashboard holds everything one page of statistics needs: where it renders, what animates it and where its data
// comes from.  It is built once at startup and is not safe for concurrent use, with the exception of Fetch.
type Dashboard struct {
	surface  Surface
	animator *animation.Controller
	fetcher  Fetcher
	timings  Timings
}

func New(surface Surface, animator *animation.Controller, fetcher Fetcher, timings Timings) *Dashboard {
	return &Dashboard{
		surface:  surface,
		animator: animator,
		fetcher:  fetcher,
		timings:  timings,
	}
}

// Start puts the trigger in its resting state and starts the idle pulse on every indicator
func (d *Dashboard) Start() {
	d.surface.SetText(ElementTrigger, TriggerLabel)
	d.surface.SetFlag(ElementTrigger, FlagDisabled, false)
	for _, ind := range indicators {
		d.animator.StartIdle(ind.element, d.timings.IdlePeriod)
	}
}

// Busy reports whether a fetch is in flight
func (d *Dashboard) Busy() bool {
	return d.surface.Flag(ElementTrigger, FlagDisabled)
}

// Submit is what a click on the trigger or Enter in the input does before fetching: clear the status, then validate.
func (d *Dashboard) Submit(raw string) (string, bool) {
	d.clearStatus()
	if !d.Validate(raw) {
		return "", false
	}
	return raw, true
}

// Validate checks raw input and reports problems in the status element.  Valid input clears any previous message.
func (d *Dashboard) Validate(raw string) bool {
	err := service.ValidateUsername(raw)
	switch {
	case err == nil:
		d.clearStatus()
		return true
	case errors.Is(err, service.ErrEmptyUsername):
		d.showNegative(MsgEmptyUsername)
	default:
		d.showNegative(MsgInvalidUsername)
	}
	log.Debug("Username rejected", "input", raw, "reason", err)
	return false
}

// BeginFetch disables the trigger and shows the loading message
func (d *Dashboard) BeginFetch(username string) {
	log.Info("Starting lookup", "username", username)
	d.surface.SetFlag(ElementTrigger, FlagDisabled, true)
	d.surface.SetText(ElementTrigger, TriggerWorkingLabel)
	d.showPositive(MsgLoading)
}

// Fetch performs the network request.  It writes nothing to the surface, so it may run off the UI goroutine.
func (d *Dashboard) Fetch(ctx context.Context, username string) (*domain.Stats, error) {
	return d.fetcher.Fetch(ctx, username)
}

// CompleteFetch applies the outcome of Fetch.  On success the indicators settle and the cards are replaced; on failure
// the error message is shown and the cards are left alone.  Either way the trigger is restored.
func (d *Dashboard) CompleteFetch(stats *domain.Stats, err error) {
	defer d.restoreTrigger()

	if err == nil && stats == nil {
		err = errors.New("lookup returned no stats")
	}
	if err != nil {
		log.Error("Error fetching data", "error", err)
		d.showNegative(MsgFetchFailed)
		return
	}

	d.Render(stats)
	d.clearStatus()
}

// FetchAndRender runs a whole lookup: disable, request, success or failure, re-enable
func (d *Dashboard) FetchAndRender(ctx context.Context, username string) error {
	d.BeginFetch(username)
	stats, err := d.Fetch(ctx, username)
	d.CompleteFetch(stats, err)
	return err
}

// Render settles the indicators on the fetched values and replaces the summary cards
func (d *Dashboard) Render(stats *domain.Stats) {
	for _, ind := range indicators {
		p := stats.Progress(ind.difficulty)
		d.UpdateProgress(p.Solved, p.Total, ind.element)
	}
	d.surface.SetCards(ElementCards, SummaryCards(stats))
}

// UpdateProgress settles one indicator on solved/total and labels it
func (d *Dashboard) UpdateProgress(solved, total int, element string) {
	p := domain.Progress{Solved: solved, Total: total}
	if total <= 0 {
		log.Warn("Category has no problems, showing 0%", "indicator", element, "solved", solved, "total", total)
	}
	d.animator.Settle(element, p.Percent(), d.timings.SettleDuration, p.Label())
}

// SummaryCards lists the cards shown under the indicators, always in this order
func SummaryCards(stats *domain.Stats) []Card {
	return []Card{
		{Label: "Acceptance Rate", Value: stats.AcceptanceRate.String()},
		{Label: "Ranking", Value: stats.Ranking.String()},
		{Label: "Contribution Pts", Value: stats.ContributionPoints.String()},
		{Label: "Reputation", Value: stats.Reputation.String()},
	}
}

func (d *Dashboard) restoreTrigger() {
	d.surface.SetFlag(ElementTrigger, FlagDisabled, false)
	d.surface.SetText(ElementTrigger, TriggerLabel)
}

func (d *Dashboard) showPositive(msg string) {
	d.surface.SetFlag(ElementStatus, FlagNegative, false)
	d.surface.SetFlag(ElementStatus, FlagPositive, true)
	d.surface.SetText(ElementStatus, msg)
}

func (d *Dashboard) showNegative(msg string) {
	d.surface.SetFlag(ElementStatus, FlagPositive, false)
	d.surface.SetFlag(ElementStatus, FlagNegative, true)
	d.surface.SetText(ElementStatus, msg)
}

func (d *Dashboard) clearStatus() {
	d.surface.SetText(ElementStatus, "")
}

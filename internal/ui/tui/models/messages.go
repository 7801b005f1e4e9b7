package models

import (
	"time"

	"github.com/PizzaHomicide/leetmetrics/internal/domain"
)

// FrameMsg is delivered once per animation frame while any indicator is animating
type FrameMsg struct {
	Time time.Time
}

// StatsLoadedMsg is sent when a lookup returns stats
type StatsLoadedMsg struct {
	Username string
	Stats    *domain.Stats
}

// StatsErrorMsg is sent when a lookup fails for any reason
type StatsErrorMsg struct {
	Username string
	Error    error
}

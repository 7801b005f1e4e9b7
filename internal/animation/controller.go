package animation

import (
	"github.com/PizzaHomicide/leetmetrics/internal/log"
	"time"
)

// Surface is the part of the presentation an animation may write to
type Surface interface {
	SetPercent(id string, pct float64)
	SetText(id string, text string)
}

// Controller owns the animations of a set of indicators.  Each indicator has at most one live Handle; starting a new
// animation cancels the previous one first.
//
// Controller is not safe for concurrent use.  All calls must come from the goroutine that renders the surface.
type Controller struct {
	surface     Surface
	settleDelay time.Duration
	handles     map[string]*Handle
	order       []string // indicators in the order they were first animated, so frames are written deterministically
}

func NewController(surface Surface, settleDelay time.Duration) *Controller {
	return &Controller{
		surface:     surface,
		settleDelay: settleDelay,
		handles:     make(map[string]*Handle),
	}
}

// StartIdle resets the indicator to 0 and pulses it until cancelled
func (c *Controller) StartIdle(id string, period time.Duration) *Handle {
	h := newHandle(id, IdleStep(period), "")
	c.replace(h)
	c.surface.SetPercent(id, 0)
	return h
}

// Settle waits for the settle delay, then eases the indicator from 0 to target over duration and writes label once
// the value has been reached.
func (c *Controller) Settle(id string, target float64, duration time.Duration, label string) *Handle {
	h := newHandle(id, SettleStep(target, c.settleDelay, duration), label)
	c.replace(h)
	return h
}

// Cancel stops whatever is animating the indicator.  Returns false if nothing was.
func (c *Controller) Cancel(id string) bool {
	if h, ok := c.handles[id]; ok {
		return h.Cancel()
	}
	return false
}

// Handle returns the most recent animation started on the indicator, or nil
func (c *Controller) Handle(id string) *Handle {
	return c.handles[id]
}

// Advance writes one frame for every live animation and reports whether any are still live
func (c *Controller) Advance(now time.Time) bool {
	live := false
	for _, id := range c.order {
		h := c.handles[id]
		wasLive := h.Live()
		h.advance(now, c.surface)
		if wasLive && h.Finished() {
			log.Trace("Animation finished", "indicator", id, "label", h.label)
		}
		live = live || h.Live()
	}
	return live
}

// Active reports whether any animation is live
func (c *Controller) Active() bool {
	for _, h := range c.handles {
		if h.Live() {
			return true
		}
	}
	return false
}

func (c *Controller) replace(h *Handle) {
	id := h.indicator
	if old, ok := c.handles[id]; ok {
		if old.Cancel() {
			log.Trace("Cancelled running animation", "indicator", id)
		}
	} else {
		c.order = append(c.order, id)
	}
	c.handles[id] = h
}

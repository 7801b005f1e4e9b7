package animation

import "time"

type handleState int

const (
	stateLive handleState = iota
	stateCancelled
	stateFinished
)

// Handle is one running animation on one indicator
type Handle struct {
	indicator string
	step      StepFunc
	label     string // written with the final frame
	origin    time.Time
	started   bool
	state     handleState
}

func newHandle(indicator string, step StepFunc, label string) *Handle {
	return &Handle{
		indicator: indicator,
		step:      step,
		label:     label,
	}
}

// Indicator is the id of the element this animation drives
func (h *Handle) Indicator() string {
	return h.indicator
}

// Cancel stops the animation.  It returns true only for the call that actually stopped it; cancelling a cancelled or
// finished animation is a no-op.
func (h *Handle) Cancel() bool {
	if h.state != stateLive {
		return false
	}
	h.state = stateCancelled
	return true
}

// Cancelled reports whether the animation was stopped before finishing
func (h *Handle) Cancelled() bool {
	return h.state == stateCancelled
}

// Finished reports whether the animation ran to completion
func (h *Handle) Finished() bool {
	return h.state == stateFinished
}

// Live reports whether the animation will produce further frames
func (h *Handle) Live() bool {
	return h.state == stateLive
}

// advance writes the frame for now to surface.  The first timestamp seen becomes the animation's time origin.
func (h *Handle) advance(now time.Time, surface Surface) {
	if h.state != stateLive {
		return
	}
	if !h.started {
		h.origin = now
		h.started = true
	}

	frame := h.step(now.Sub(h.origin))
	if frame.Pending {
		return
	}

	surface.SetPercent(h.indicator, frame.Value)

	if frame.Done {
		h.state = stateFinished
		if h.label != "" {
			surface.SetText(h.indicator, h.label)
		}
	}
}

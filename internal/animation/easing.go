package animation

import (
	"math"
	"time"
)

// Ease is a cubic ease-out over normalised time t, clamped to [0, 1]
func Ease(t float64) float64 {
	t = min(max(t, 0), 1)
	return 1 - math.Pow(1-t, 3)
}

// Pulse is a triangular wave: 0 to 100 over the first half of period, back to 0 over the second half, repeating
func Pulse(elapsed, period time.Duration) float64 {
	if period <= 0 || elapsed < 0 {
		return 0
	}
	phase := float64(elapsed%period) / float64(period)
	if phase <= 0.5 {
		return phase * 2 * 100
	}
	return (1 - (phase-0.5)*2) * 100
}

// Frame is what one animation produces for one timestamp
type Frame struct {
	Value float64
	// Pending frames write nothing
	Pending bool
	// Done marks the last frame; it is still written
	Done bool
}

// StepFunc computes the frame for the time elapsed since an animation's first frame
type StepFunc func(elapsed time.Duration) Frame

// IdleStep pulses forever
func IdleStep(period time.Duration) StepFunc {
	return func(elapsed time.Duration) Frame {
		return Frame{Value: Pulse(elapsed, period)}
	}
}

// SettleStep holds for delay, then eases from 0 to target over duration
func SettleStep(target float64, delay, duration time.Duration) StepFunc {
	return func(elapsed time.Duration) Frame {
		if elapsed < delay {
			return Frame{Pending: true}
		}
		t := 1.0
		if duration > 0 {
			t = float64(elapsed-delay) / float64(duration)
		}
		if t >= 1 {
			return Frame{Value: target, Done: true}
		}
		return Frame{Value: target * Ease(t)}
	}
}

package animation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type write struct {
	id    string
	value float64
	text  string
}

// recordingSurface keeps every write in order
type recordingSurface struct {
	writes []write
}

func (s *recordingSurface) SetPercent(id string, pct float64) {
	s.writes = append(s.writes, write{id: id, value: pct})
}

func (s *recordingSurface) SetText(id string, text string) {
	s.writes = append(s.writes, write{id: id, text: text})
}

func (s *recordingSurface) reset() {
	s.writes = nil
}

func (s *recordingSurface) percents(id string) []float64 {
	var values []float64
	for _, w := range s.writes {
		if w.id == id && w.text == "" {
			values = append(values, w.value)
		}
	}
	return values
}

func (s *recordingSurface) texts(id string) []string {
	var texts []string
	for _, w := range s.writes {
		if w.id == id && w.text != "" {
			texts = append(texts, w.text)
		}
	}
	return texts
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

func TestEase(t *testing.T) {
	assert.Equal(t, 0.0, Ease(0))
	assert.Equal(t, 1.0, Ease(1))
	assert.InDelta(t, 0.875, Ease(0.5), 1e-12)
	assert.Equal(t, 0.0, Ease(-3))
	assert.Equal(t, 1.0, Ease(7))
}

func TestPulse(t *testing.T) {
	period := 1500 * time.Millisecond
	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 0},
		{375 * time.Millisecond, 50},
		{750 * time.Millisecond, 100},
		{1125 * time.Millisecond, 50},
		{1500 * time.Millisecond, 0},
		{1875 * time.Millisecond, 50},
		{2250 * time.Millisecond, 100},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Pulse(tt.elapsed, period), 1e-9, "elapsed %s", tt.elapsed)
	}

	assert.Equal(t, 0.0, Pulse(time.Second, 0))
}

func TestSettleStep(t *testing.T) {
	step := SettleStep(50, 0, time.Second)

	t.Run("reaches target at t=1", func(t *testing.T) {
		frame := step(time.Second)
		assert.True(t, frame.Done)
		assert.InDelta(t, 50, frame.Value, 1e-9)

		frame = step(5 * time.Second)
		assert.True(t, frame.Done)
		assert.InDelta(t, 50, frame.Value, 1e-9)
	})

	t.Run("monotonically non-decreasing", func(t *testing.T) {
		prev := -1.0
		for ms := 0; ms <= 1000; ms += 7 {
			frame := step(time.Duration(ms) * time.Millisecond)
			require.GreaterOrEqual(t, frame.Value, prev, "at %dms", ms)
			prev = frame.Value
		}
	})

	t.Run("holds during delay", func(t *testing.T) {
		delayed := SettleStep(50, 100*time.Millisecond, time.Second)
		assert.True(t, delayed(99*time.Millisecond).Pending)

		frame := delayed(100 * time.Millisecond)
		assert.False(t, frame.Pending)
		assert.Equal(t, 0.0, frame.Value)
	})

	t.Run("zero duration finishes immediately", func(t *testing.T) {
		frame := SettleStep(30, 0, 0)(0)
		assert.True(t, frame.Done)
		assert.Equal(t, 30.0, frame.Value)
	})
}

func TestController_Idle(t *testing.T) {
	surface := &recordingSurface{}
	c := NewController(surface, 100*time.Millisecond)

	h := c.StartIdle("easy", 1500*time.Millisecond)

	assert.Equal(t, []float64{0}, surface.percents("easy"), "idle resets the indicator immediately")
	assert.True(t, h.Live())
	assert.True(t, c.Active())

	surface.reset()
	assert.True(t, c.Advance(at(0)))
	assert.True(t, c.Advance(at(750)))
	assert.True(t, c.Advance(at(1500)))
	assert.True(t, c.Advance(at(2250)))

	values := surface.percents("easy")
	require.Len(t, values, 4)
	assert.InDelta(t, 0, values[0], 1e-9)
	assert.InDelta(t, 100, values[1], 1e-9)
	assert.InDelta(t, 0, values[2], 1e-9)
	assert.InDelta(t, 100, values[3], 1e-9, "idle pulse loops")
}

func TestController_CancelBeforeStart(t *testing.T) {
	surface := &recordingSurface{}
	c := NewController(surface, 100*time.Millisecond)

	idle := c.StartIdle("easy", 1500*time.Millisecond)
	c.Advance(at(0))
	c.Advance(at(300))

	settle := c.Settle("easy", 25, time.Second, "25/100")

	assert.True(t, idle.Cancelled(), "previous animation cancelled")
	assert.False(t, idle.Cancel(), "it was cancelled exactly once")
	assert.Same(t, settle, c.Handle("easy"))

	surface.reset()

	// First frame after settle is its origin and falls inside the delay: no writes from either animation
	c.Advance(at(316))
	assert.Empty(t, surface.writes)

	c.Advance(at(416))
	c.Advance(at(916))
	values := surface.percents("easy")
	require.Len(t, values, 2, "one write per frame, only from the settle animation")
	assert.Equal(t, 0.0, values[0])
	assert.InDelta(t, 25*Ease(0.5), values[1], 1e-9)
	assert.Empty(t, surface.texts("easy"), "label waits for the easing to finish")

	assert.False(t, c.Advance(at(1416)))
	assert.True(t, settle.Finished())
	assert.InDelta(t, 25, surface.percents("easy")[2], 1e-9)
	assert.Equal(t, []string{"25/100"}, surface.texts("easy"))

	// Nothing is written once every animation is done
	surface.reset()
	c.Advance(at(2000))
	assert.Empty(t, surface.writes)
}

func TestController_CancelIsIdempotent(t *testing.T) {
	surface := &recordingSurface{}
	c := NewController(surface, 0)

	h := c.Settle("hard", 10, 100*time.Millisecond, "3/30")
	assert.True(t, c.Cancel("hard"))
	assert.False(t, c.Cancel("hard"))
	assert.False(t, h.Cancel())
	assert.False(t, c.Cancel("unknown"))

	c.Advance(at(0))
	c.Advance(at(200))
	assert.Empty(t, surface.writes, "a cancelled animation never writes")
	assert.False(t, c.Active())

	finished := c.Settle("hard", 10, 0, "3/30")
	c.Advance(at(300))
	assert.True(t, finished.Finished())
	assert.False(t, finished.Cancel(), "cancelling a finished animation is a no-op")
	assert.False(t, finished.Cancelled())
}

func TestController_IndependentIndicators(t *testing.T) {
	surface := &recordingSurface{}
	c := NewController(surface, 0)

	c.Settle("easy", 25, 100*time.Millisecond, "25/100")
	c.Settle("medium", 20, 100*time.Millisecond, "10/50")
	c.Settle("hard", 10, 100*time.Millisecond, "3/30")

	c.Advance(at(0))
	c.Advance(at(100))

	assert.Equal(t, []string{"25/100"}, surface.texts("easy"))
	assert.Equal(t, []string{"10/50"}, surface.texts("medium"))
	assert.Equal(t, []string{"3/30"}, surface.texts("hard"))

	// Frames are written in the order indicators were first animated
	require.GreaterOrEqual(t, len(surface.writes), 3)
	assert.Equal(t, "easy", surface.writes[0].id)
	assert.Equal(t, "medium", surface.writes[1].id)
	assert.Equal(t, "hard", surface.writes[2].id)
}

func TestRun(t *testing.T) {
	t.Run("drives a controller until settled", func(t *testing.T) {
		surface := &recordingSurface{}
		c := NewController(surface, 100*time.Millisecond)
		c.StartIdle("easy", 1500*time.Millisecond)
		c.Settle("easy", 50, time.Second, "50/100")

		src := NewSyntheticSource(epoch, 16*time.Millisecond)
		err := Run(context.Background(), src, c.Advance)

		require.NoError(t, err)
		values := surface.percents("easy")
		assert.InDelta(t, 50, values[len(values)-1], 1e-9)
		assert.Equal(t, []string{"50/100"}, surface.texts("easy"))
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		c := NewController(&recordingSurface{}, 0)
		c.StartIdle("easy", time.Second)

		ctx, cancel := context.WithCancel(context.Background())
		frames := 0
		err := Run(ctx, NewSyntheticSource(epoch, time.Millisecond), func(now time.Time) bool {
			frames++
			if frames == 10 {
				cancel()
			}
			return c.Advance(now)
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 10, frames)
	})

	t.Run("ticker source honours context", func(t *testing.T) {
		src := NewTickerSource(time.Hour)
		defer src.Stop()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := src.Next(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

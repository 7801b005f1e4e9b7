package animation

import (
	"context"
	"time"
)

// FrameSource delivers the timestamps animations are advanced to.  Next blocks until the next frame is due.
type FrameSource interface {
	Next(ctx context.Context) (time.Time, error)
}

// Run pulls frames from src and calls step with each timestamp until step returns false or ctx is done.  Use
// Controller.Advance as step to drive a controller until every animation has finished.
func Run(ctx context.Context, src FrameSource, step func(now time.Time) bool) error {
	for {
		now, err := src.Next(ctx)
		if err != nil {
			return err
		}
		if !step(now) {
			return nil
		}
	}
}

// TickerSource produces wall-clock frames at a fixed interval
type TickerSource struct {
	ticker *time.Ticker
}

func NewTickerSource(interval time.Duration) *TickerSource {
	return &TickerSource{ticker: time.NewTicker(interval)}
}

func (s *TickerSource) Next(ctx context.Context) (time.Time, error) {
	select {
	case <-ctx.Done():
		return time.Time{}, ctx.Err()
	case t := <-s.ticker.C:
		return t, nil
	}
}

// Stop releases the underlying ticker
func (s *TickerSource) Stop() {
	s.ticker.Stop()
}

// SyntheticSource produces frames without waiting: the first frame is at start and every later one is step after the
// previous.  It lets animations be driven deterministically.
type SyntheticSource struct {
	next time.Time
	step time.Duration
}

func NewSyntheticSource(start time.Time, step time.Duration) *SyntheticSource {
	return &SyntheticSource{next: start, step: step}
}

func (s *SyntheticSource) Next(ctx context.Context) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}
	now := s.next
	s.next = s.next.Add(s.step)
	return now, nil
}

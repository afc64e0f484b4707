package service

import (
	"context"
	"time"

	"training_briefing/internal/models"
)

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Compute breaks max(0, target-now) into days/hours/minutes/seconds.
// Sub-second remainders are floored, and anything at or past target is the finished zero state.
func Compute(target, now time.Time) models.CountdownState {
	remaining := target.Sub(now).Milliseconds()
	if remaining <= 0 {
		return models.CountdownState{Finished: true}
	}
	return models.CountdownState{
		Days:    remaining / msPerDay,
		Hours:   int(remaining / msPerHour % 24),
		Minutes: int(remaining / msPerMinute % 60),
		Seconds: int(remaining / msPerSecond % 60),
	}
}

// CountdownService counts down to a fixed target instant.
type CountdownService struct {
	target time.Time
	tick   time.Duration
	now    func() time.Time
}

func NewCountdownService(target time.Time, tick time.Duration) *CountdownService {
	if tick <= 0 {
		tick = time.Second
	}
	return &CountdownService{target: target, tick: tick, now: time.Now}
}

// Target is the instant being counted down to.
func (s *CountdownService) Target() time.Time { return s.target }

// Snapshot is the state right now.
func (s *CountdownService) Snapshot() models.CountdownState {
	return Compute(s.target, s.now())
}

// Start emits the current state immediately and then once per tick (the
// service default when tick <= 0). The ticker stops and the channel closes
// when ctx is cancelled. After the target passes it keeps emitting the
// finished state.
func (s *CountdownService) Start(ctx context.Context, tick time.Duration) <-chan models.CountdownState {
	if tick <= 0 {
		tick = s.tick
	}
	out := make(chan models.CountdownState, 1)

	go func() {
		defer close(out)
		t := time.NewTicker(tick)
		defer t.Stop()

		if !s.emit(ctx, out) {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if !s.emit(ctx, out) {
					return
				}
			}
		}
	}()

	return out
}

func (s *CountdownService) emit(ctx context.Context, out chan<- models.CountdownState) bool {
	select {
	case out <- s.Snapshot():
		return true
	case <-ctx.Done():
		return false
	}
}

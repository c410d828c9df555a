// Package frame drives the per-frame callback at display cadence with an
// injectable clock, so the update path can run deterministically in tests.
package frame

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cowviewer/internal/logger"
)

// Clock supplies frame timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock (monotonic reading included).
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// StepFunc runs one frame at the given timestamp. Returning false stops
// the loop without error.
type StepFunc func(now time.Time) (bool, error)

// Loop calls a StepFunc repeatedly until it stops, fails, or the context
// is cancelled.
type Loop struct {
	clock    Clock
	minFrame time.Duration
	sleep    func(time.Duration)

	frames uint64
	fps    float64
}

// NewLoop creates a loop. A positive fpsLimit caps the frame rate by
// sleeping out the rest of each frame; zero leaves pacing to VSync.
func NewLoop(clock Clock, fpsLimit int) *Loop {
	if clock == nil {
		clock = SystemClock{}
	}
	l := &Loop{
		clock: clock,
		sleep: time.Sleep,
	}
	if fpsLimit > 0 {
		l.minFrame = time.Second / time.Duration(fpsLimit)
	}
	return l
}

// Frames returns how many frames completed.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// FPS returns the frame rate measured over the last full second, or zero
// before the first second has passed.
func (l *Loop) FPS() float64 {
	return l.fps
}

// Run executes frames until step returns false or an error, or ctx is done.
// Cancellation returns ctx.Err().
func (l *Loop) Run(ctx context.Context, step StepFunc) error {
	logger.Info("starting frame loop", zap.Duration("min_frame", l.minFrame))

	frameCount := 0
	var fpsTimer time.Time

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := l.clock.Now()
		if fpsTimer.IsZero() {
			fpsTimer = start
		}
		if elapsed := start.Sub(fpsTimer); elapsed >= time.Second {
			l.fps = float64(frameCount) / elapsed.Seconds()
			logger.Debug("fps", zap.Float64("rate", l.fps))
			frameCount = 0
			fpsTimer = start
		}

		cont, err := step(start)
		if err != nil {
			return fmt.Errorf("frame %d: %w", l.frames, err)
		}
		if !cont {
			return nil
		}
		l.frames++
		frameCount++

		if l.minFrame > 0 {
			if spent := l.clock.Now().Sub(start); spent < l.minFrame {
				l.sleep(l.minFrame - spent)
			}
		}
	}
}

package animate

import (
	"context"
	"sort"
	"time"

	"github.com/matt-g-everett/posetrace/trace"
	"go.uber.org/zap"
)

// FrameFunc is called after each frame is recorded. Returning an error stops Run.
type FrameFunc func(frame int) error

// Controller steps a set of animations into a recorder.
type Controller struct {
	animations []Animation
	frameRate  float64
	pace       time.Duration
	frame      int
	runtimeMs  int64
	logger     *zap.Logger

	recorded   int
	suppressed int
}

// NewController creates a Controller advancing at frameRate frames per second
// of animation time.
func NewController(frameRate float64, logger *zap.Logger, animations ...Animation) *Controller {
	c := new(Controller)
	c.animations = animations
	c.frameRate = frameRate
	c.logger = logger
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c
}

// SetPace makes Run wait d between frames. Zero runs as fast as possible.
func (c *Controller) SetPace(d time.Duration) {
	c.pace = d
}

// Declare declares the objects of every animation.
func (c *Controller) Declare(r *trace.Recorder) {
	for _, a := range c.animations {
		a.Declare(r)
	}
}

// RuntimeMs is the animation time of the next frame.
func (c *Controller) RuntimeMs() int64 {
	return c.runtimeMs
}

// Frames returns how many frames have been stepped.
func (c *Controller) Frames() int {
	return c.frame
}

// Stats returns the number of recorded and suppressed poses so far.
func (c *Controller) Stats() (recorded, suppressed int) {
	return c.recorded, c.suppressed
}

// Step starts a frame in r and submits every animation's poses into it.
func (c *Controller) Step(r *trace.Recorder) {
	r.StartFrame()
	for _, a := range c.animations {
		poses := a.CalculatePoses(c.runtimeMs)
		names := make([]string, 0, len(poses))
		for name := range poses {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			if r.RecordPose(name, poses[name]) {
				c.recorded++
			} else {
				c.suppressed++
			}
		}
	}

	c.frame++
	c.runtimeMs = int64(float64(c.frame) * 1000 / c.frameRate)
}

// Run steps frames until it has stepped frames of them, ctx is done, or
// onFrame fails. frames <= 0 runs until ctx is done.
func (c *Controller) Run(ctx context.Context, r *trace.Recorder, frames int, onFrame FrameFunc) error {
	var tick <-chan time.Time
	if c.pace > 0 {
		ticker := time.NewTicker(c.pace)
		defer ticker.Stop()
		tick = ticker.C
	}

	for n := 0; frames <= 0 || n < frames; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}

		c.Step(r)
		if onFrame != nil {
			if err := onFrame(c.frame); err != nil {
				return err
			}
		}
	}

	c.logger.Info("animation finished",
		zap.Int("frames", c.frame),
		zap.Int("recorded", c.recorded),
		zap.Int("suppressed", c.suppressed))
	return nil
}

package core

// FrameClock throttles simulation steps against the render frame rate. Every
// rendered frame calls Tick; a step is due once ticksPerStep frames have been
// counted, after which the counter starts over.
type FrameClock struct {
	frameRate int
	rate      int
	perStep   int
	frames    int
}

// NewFrameClock constructs a clock for the given render frame rate and
// simulation rate (steps per second).
func NewFrameClock(frameRate, rate int) *FrameClock {
	c := &FrameClock{}
	c.SetRates(frameRate, rate)
	return c
}

// SetRates changes the cadence. It is safe to call from the main loop; the
// pending frame count is kept.
func (c *FrameClock) SetRates(frameRate, rate int) {
	if frameRate <= 0 {
		frameRate = 60
	}
	if rate <= 0 {
		rate = 1
	}
	if rate > frameRate {
		rate = frameRate
	}
	c.frameRate = frameRate
	c.rate = rate
	c.perStep = max(frameRate/rate, 1)
}

// SetRate changes only the simulation rate.
func (c *FrameClock) SetRate(rate int) { c.SetRates(c.frameRate, rate) }

// Rate returns the simulation rate in steps per second.
func (c *FrameClock) Rate() int { return c.rate }

// FrameRate returns the render frame rate the clock was configured with.
func (c *FrameClock) FrameRate() int { return c.frameRate }

// TicksPerStep returns how many frames elapse between two steps.
func (c *FrameClock) TicksPerStep() int { return c.perStep }

// Tick counts one frame and reports whether the simulation should step now.
func (c *FrameClock) Tick() bool {
	c.frames++
	if c.frames >= c.perStep {
		c.frames = 0
		return true
	}
	return false
}

// Reset drops any partially counted frames.
func (c *FrameClock) Reset() { c.frames = 0 }

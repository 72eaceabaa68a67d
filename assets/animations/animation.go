package animations

import "time"

// Cycle steps through a list of atlas indices, holding each one for Delay.
type Cycle struct {
	Frames  []int
	Delay   time.Duration
	elapsed time.Duration
	index   int
	Looped  bool
}

func NewCycle(frames []int, delay time.Duration) *Cycle {
	return &Cycle{
		Frames: frames,
		Delay:  delay,
	}
}

// Update advances the cycle by dt and returns the current frame. Several
// frames are skipped when dt spans more than one delay.
func (c *Cycle) Update(dt time.Duration) int {
	if len(c.Frames) == 0 {
		return -1
	}
	if c.Delay <= 0 {
		return c.Frame()
	}

	c.elapsed += dt
	for c.elapsed >= c.Delay {
		c.elapsed -= c.Delay
		c.index++
		if c.index >= len(c.Frames) {
			c.index = 0
			c.Looped = true
		}
	}
	return c.Frame()
}

// Frame returns the atlas index currently shown.
func (c *Cycle) Frame() int {
	if len(c.Frames) == 0 {
		return -1
	}
	return c.Frames[c.index]
}

func (c *Cycle) Restart() {
	c.index = 0
	c.elapsed = 0
	c.Looped = false
}

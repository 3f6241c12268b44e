package motion

import (
	"time"

	"github.com/charmbracelet/harmonica"
)

// DefaultFPS is the frame rate used when a Clock has none.
const DefaultFPS = 60

// Clock converts between frames and wall time at a fixed rate.
type Clock struct {
	FPS int
}

// NewClock returns a clock, falling back to DefaultFPS for non-positive rates.
func NewClock(fps int) Clock {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return Clock{FPS: fps}
}

func (c Clock) fps() int {
	if c.FPS <= 0 {
		return DefaultFPS
	}
	return c.FPS
}

// Frame is the duration of a single frame.
func (c Clock) Frame() time.Duration {
	return time.Second / time.Duration(c.fps())
}

// Elapsed is the exact wall time covered by n frames.
func (c Clock) Elapsed(n int) time.Duration {
	return time.Duration(int64(n) * int64(time.Second) / int64(c.fps()))
}

// Delta is the frame duration in seconds, as harmonica expects it.
func (c Clock) Delta() float64 {
	return harmonica.FPS(c.fps())
}

// Frames returns how many whole frames cover d, rounding up.
func (c Clock) Frames(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	n := int64(d) * int64(c.fps())
	return int((n + int64(time.Second) - 1) / int64(time.Second))
}

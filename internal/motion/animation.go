package motion

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// A spring is at rest once every property is this close to its target
// and moving slower than restSpeed units per second.
const (
	restDelta = 0.01
	restSpeed = 0.1
)

// maxSettleFrames bounds Settle for springs that are barely damped.
const maxSettleFrames = 10000

// Animation drives one element's Values toward a target, one frame at a time.
// The zero value is not usable; create one with NewAnimation.
type Animation struct {
	clock      Clock
	transition Transition
	spring     harmonica.Spring

	from     Values
	current  Values
	target   Values
	velocity Values

	frames int // since the last retarget
	moving bool
}

// NewAnimation returns an animation resting at initial.
func NewAnimation(initial Values, t Transition, clock Clock) Animation {
	a := Animation{
		clock:   clock,
		from:    initial,
		current: initial,
		target:  initial,
	}
	a.SetTransition(t)
	return a
}

// SetTransition changes how future motion is interpolated.
func (a *Animation) SetTransition(t Transition) {
	a.transition = t
	if t.Kind == KindSpring {
		a.spring = harmonica.NewSpring(a.clock.Delta(), t.AngularFrequency(), t.DampingRatio())
	}
}

// Transition returns the active transition.
func (a Animation) Transition() Transition {
	return a.transition
}

// AnimateTo starts moving from the current value toward target.
// A spring keeps its velocity, so retargeting mid-flight stays smooth.
func (a *Animation) AnimateTo(target Values) {
	a.from = a.current
	a.target = target
	a.frames = 0
	a.moving = !a.current.Near(target, 0) || !a.velocity.Near(Values{}, 0)
}

// Jump places the animation at v with no motion.
func (a *Animation) Jump(v Values) {
	a.from = v
	a.current = v
	a.target = v
	a.velocity = Values{}
	a.frames = 0
	a.moving = false
}

// Restart remounts the element: it reappears at initial and animates to target.
func (a *Animation) Restart(initial, target Values) {
	a.Jump(initial)
	a.AnimateTo(target)
}

// Step advances one frame and reports whether the animation is still running.
func (a *Animation) Step() bool {
	if !a.moving {
		return false
	}

	a.frames++
	if a.Elapsed() <= a.transition.Delay {
		return true
	}

	switch a.transition.Kind {
	case KindSpring:
		a.stepSpring()
	default:
		a.stepTween()
	}
	return a.moving
}

func (a *Animation) stepTween() {
	active := a.Elapsed() - a.transition.Delay
	progress := float64(active) / float64(a.transition.duration())
	if progress >= 1 {
		a.finish()
		return
	}
	a.current = a.from.Lerp(a.target, a.transition.easing()(progress))
}

func (a *Animation) stepSpring() {
	resting := true
	for i := range a.current {
		pos, vel := a.spring.Update(a.current[i], a.velocity[i], a.target[i])
		a.current[i] = pos
		a.velocity[i] = vel
		if math.Abs(pos-a.target[i]) > restDelta || math.Abs(vel) > restSpeed {
			resting = false
		}
	}
	if resting {
		a.finish()
	}
}

func (a *Animation) finish() {
	a.current = a.target
	a.velocity = Values{}
	a.moving = false
}

// Settle steps until the animation stops and returns the number of frames taken.
func (a *Animation) Settle() int {
	frames := 0
	for a.moving && frames < maxSettleFrames {
		a.Step()
		frames++
	}
	if a.moving {
		a.finish()
	}
	return frames
}

// Value returns the values for the current frame.
func (a Animation) Value() Values {
	return a.current
}

// Target returns the values being animated toward.
func (a Animation) Target() Values {
	return a.target
}

// Elapsed is the time since the last retarget, including any delay.
func (a Animation) Elapsed() time.Duration {
	return a.clock.Elapsed(a.frames)
}

// Running reports whether Step would change anything.
func (a Animation) Running() bool {
	return a.moving
}

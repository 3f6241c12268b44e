package motion

import (
	"math"
	"time"
)

// Kind selects how a transition interpolates.
type Kind int

const (
	KindTween Kind = iota
	KindSpring
)

func (k Kind) String() string {
	if k == KindSpring {
		return "spring"
	}
	return "tween"
}

// Spring defaults used when a transition only names a stiffness.
const (
	DefaultStiffness = 100.0
	DefaultDamping   = 10.0
	DefaultMass      = 1.0
)

// DefaultDuration is the tween duration used when none is given.
const DefaultDuration = 300 * time.Millisecond

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(t float64) float64

// EaseOut decelerates toward the end (cubic).
func EaseOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// Transition describes how an Animation moves between values.
// Zero spring fields take the Default* constants.
type Transition struct {
	Kind     Kind
	Duration time.Duration // tween only
	Delay    time.Duration
	Ease     Easing // tween only; nil means EaseOut

	Stiffness float64 // spring only
	Damping   float64
	Mass      float64
}

// Tween returns a duration-based transition with ease-out easing.
func Tween(d time.Duration) Transition {
	return Transition{Kind: KindTween, Duration: d, Ease: EaseOut}
}

// Spring returns a physics transition with explicit stiffness and damping.
func Spring(stiffness, damping float64) Transition {
	return Transition{
		Kind:      KindSpring,
		Stiffness: stiffness,
		Damping:   damping,
		Mass:      DefaultMass,
	}
}

// SpringStiffness returns a spring with the default damping.
func SpringStiffness(stiffness float64) Transition {
	return Spring(stiffness, DefaultDamping)
}

// WithDelay returns a copy of t that waits d before moving.
func (t Transition) WithDelay(d time.Duration) Transition {
	t.Delay = d
	return t
}

// AngularFrequency is sqrt(k/m) with defaults filled in.
func (t Transition) AngularFrequency() float64 {
	k, _, m := t.springParams()
	return math.Sqrt(k / m)
}

// DampingRatio is c/(2*sqrt(k*m)) with defaults filled in.
// Below 1 the spring overshoots.
func (t Transition) DampingRatio() float64 {
	k, c, m := t.springParams()
	return c / (2 * math.Sqrt(k*m))
}

func (t Transition) springParams() (k, c, m float64) {
	k, c, m = t.Stiffness, t.Damping, t.Mass
	if k <= 0 {
		k = DefaultStiffness
	}
	if c <= 0 {
		c = DefaultDamping
	}
	if m <= 0 {
		m = DefaultMass
	}
	return k, c, m
}

func (t Transition) easing() Easing {
	if t.Ease == nil {
		return EaseOut
	}
	return t.Ease
}

func (t Transition) duration() time.Duration {
	if t.Duration <= 0 {
		return DefaultDuration
	}
	return t.Duration
}

// Stagger returns base delayed by index*step on top of its own delay.
// Used for lists whose items share a transition but enter one after another.
func Stagger(base Transition, index int, step time.Duration) Transition {
	if index < 0 {
		index = 0
	}
	return base.WithDelay(base.Delay + time.Duration(index)*step)
}

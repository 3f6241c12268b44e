package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clock60 = NewClock(60)

func TestNewAnimation_AtRest(t *testing.T) {
	a := NewAnimation(Identity(), Tween(time.Second), clock60)

	assert.False(t, a.Running())
	assert.False(t, a.Step())
	assert.Equal(t, Identity(), a.Value())
}

func TestAnimation_TweenReachesTarget(t *testing.T) {
	from := Identity().Apply(Patch{Opacity: 0, Y: -50})
	a := NewAnimation(from, Tween(800*time.Millisecond), clock60)
	a.AnimateTo(Identity())

	require.True(t, a.Running())

	frames := a.Settle()
	assert.Equal(t, clock60.Frames(800*time.Millisecond), frames)
	assert.Equal(t, Identity(), a.Value())
	assert.False(t, a.Running())
}

func TestAnimation_TweenIsMonotonic(t *testing.T) {
	a := NewAnimation(Identity().Apply(Patch{Opacity: 0}), Tween(500*time.Millisecond), clock60)
	a.AnimateTo(Identity())

	prev := a.Value()[Opacity]
	for a.Step() {
		cur := a.Value()[Opacity]
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
	assert.Equal(t, 1.0, a.Value()[Opacity])
}

func TestAnimation_DelayHoldsFromValue(t *testing.T) {
	from := Identity().Apply(Patch{Opacity: 0, X: -50})
	delay := 300 * time.Millisecond
	a := NewAnimation(from, Tween(500*time.Millisecond).WithDelay(delay), clock60)
	a.AnimateTo(Identity())

	for {
		require.True(t, a.Step())
		if a.Elapsed() > delay {
			break
		}
		assert.Equal(t, from, a.Value())
	}

	assert.NotEqual(t, from, a.Value(), "first frame after the delay moves")
}

func TestAnimation_SpringOvershootsAndSettles(t *testing.T) {
	hidden := Identity().Apply(Patch{Opacity: 0, X: -100})
	a := NewAnimation(hidden, Spring(100, 10), clock60)
	a.AnimateTo(Identity())

	maxX := -100.0
	frames := 0
	for a.Step() {
		if x := a.Value()[X]; x > maxX {
			maxX = x
		}
		frames++
		require.Less(t, frames, maxSettleFrames)
	}

	assert.Greater(t, maxX, 0.0, "an underdamped spring passes its target")
	assert.Equal(t, Identity(), a.Value(), "a resting spring snaps to its target")
	assert.Equal(t, Values{}, a.velocity)
}

func TestAnimation_SpringRetargetKeepsVelocity(t *testing.T) {
	hidden := Identity().Apply(Patch{Opacity: 0, X: -100})
	a := NewAnimation(hidden, Spring(100, 10), clock60)
	a.AnimateTo(Identity())

	for i := 0; i < 10; i++ {
		a.Step()
	}
	v := a.velocity
	require.NotZero(t, v[X])

	a.AnimateTo(hidden)
	assert.Equal(t, v, a.velocity)
	assert.True(t, a.Running())

	a.Settle()
	assert.Equal(t, hidden, a.Value())
}

func TestAnimation_AnimateToSameValueIsNoop(t *testing.T) {
	a := NewAnimation(Identity(), SpringStiffness(300), clock60)
	a.AnimateTo(Identity())

	assert.False(t, a.Running())
}

func TestAnimation_Jump(t *testing.T) {
	a := NewAnimation(Identity(), Spring(100, 10), clock60)
	a.AnimateTo(Identity().Apply(Patch{X: 40}))
	a.Step()

	target := Identity().Apply(Patch{Scale: 2})
	a.Jump(target)

	assert.False(t, a.Running())
	assert.Equal(t, target, a.Value())
	assert.Equal(t, target, a.Target())
	assert.Equal(t, Values{}, a.velocity)
}

func TestAnimation_Restart(t *testing.T) {
	enter := Identity().Apply(Patch{Scale: 0.5, Opacity: 0})
	a := NewAnimation(Identity(), SpringStiffness(200), clock60)

	a.Restart(enter, Identity())

	assert.Equal(t, enter, a.Value())
	assert.Equal(t, Identity(), a.Target())
	assert.True(t, a.Running())

	a.Step()
	assert.Greater(t, a.Value()[Scale], 0.5)
}

func TestGesture_Resolve(t *testing.T) {
	g := Gesture{
		Hover:      Patch{Scale: 1.05, Rotate: 5, Shadow: 1},
		Tap:        Patch{Scale: 0.95},
		Transition: SpringStiffness(300),
	}
	rest := Identity()

	tests := []struct {
		name    string
		hovered bool
		pressed bool
		expect  Values
	}{
		{"rest", false, false, rest},
		{"hover", true, false, rest.Apply(Patch{Scale: 1.05, Rotate: 5, Shadow: 1})},
		{"tap without hover", false, true, rest.Apply(Patch{Scale: 0.95})},
		{"tap over hover", true, true, rest.Apply(Patch{Scale: 0.95, Rotate: 5, Shadow: 1})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, g.Resolve(rest, tt.hovered, tt.pressed))
		})
	}
}

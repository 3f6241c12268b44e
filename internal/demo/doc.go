// Package demo implements the animated showcase view as a Bubble Tea model.
//
// The view owns two pieces of state (a visibility flag and a counter) and a
// set of motion.Animation values, one per animated element. Every user action
// changes state and/or retargets animations; frame ticks step the animations
// and re-render the page into a scrollable viewport.
//
// # Sections
//
//	Header       fades and slides down on mount (0.8s tween)
//	Fade In      panel fades and scales up on mount (0.5s tween, 0.2s delay)
//	Interactive  spring box toggled by a button (stiffness 100, damping 10)
//	Hover        three cards with hover/tap gestures (stiffness 300)
//	Counter      keyed counter that re-enters on every increment (stiffness 200)
//	Staggered    five labels entering 100ms apart (0.5s tween each)
//
// # Input
//
// Hover is keyboard focus or the mouse pointer; tap is enter/space or a mouse
// press. Terminals never report key release, so a keyboard tap is released
// after Settings.TapHold.
//
// # Frames
//
// Ticks are only scheduled while some animation is running. Once everything
// rests the program sits idle until the next input event.
package demo

// Package motion is a small declarative animation runtime for terminal UIs.
//
// Callers describe what an element should look like (a Values target, usually
// built from Identity and a Patch) and how to get there (a Transition). An
// Animation then produces one Values snapshot per frame. Nothing here knows
// about rendering: the demo package maps each Property onto cells and colors.
//
// # Transitions
//
//	Tween(500*time.Millisecond).WithDelay(200*time.Millisecond)
//	Spring(100, 10)        // stiffness, damping
//	SpringStiffness(300)   // damping defaults to 10
//
// Springs are integrated with harmonica. Stiffness k, damping c and mass m are
// converted to an angular frequency sqrt(k/m) and a damping ratio
// c/(2*sqrt(k*m)).
//
// # Frames
//
// Animations advance in whole frames of a fixed Clock. A Bubble Tea program
// calls Step once per tick; snapshots and tests call Step in a loop or Settle.
package motion

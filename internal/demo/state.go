package demo

// State is the view's only application state.
// Everything else in Model is presentation.
type State struct {
	visible bool
	count   int
}

// Visible reports whether the animated box is in its entered state.
func (s State) Visible() bool {
	return s.visible
}

// Count returns how many times the counter was incremented.
func (s State) Count() int {
	return s.count
}

// Toggle flips visibility and returns the new value.
func (s *State) Toggle() bool {
	s.visible = !s.visible
	return s.visible
}

// Increment adds one to the counter and returns the new value.
func (s *State) Increment() int {
	s.count++
	return s.count
}

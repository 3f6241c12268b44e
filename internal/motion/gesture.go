package motion

// Gesture maps pointer states onto partial targets.
// Tap is layered over Hover, so a pressed card keeps its hover tilt
// but takes the tap scale.
type Gesture struct {
	Hover      Patch
	Tap        Patch
	Transition Transition
}

// Resolve returns the target for the given pointer state.
func (g Gesture) Resolve(rest Values, hovered, pressed bool) Values {
	p := Patch{}
	if hovered {
		p = p.Merge(g.Hover)
	}
	if pressed {
		p = p.Merge(g.Tap)
	}
	return rest.Apply(p)
}

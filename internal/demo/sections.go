package demo

import (
	"time"

	"github.com/rileyhilliard/motion/internal/motion"
)

// Copy shown on the page.
const (
	Title    = "Motion Demo"
	Subtitle = "Springs, tweens and gestures in a Bubble Tea terminal UI"

	PanelText = "This panel fades in with a scale effect when the demo starts"
	BoxText   = "Animated!"
	CardText  = "Hover & click!"

	ShowLabel      = "Show Animated Box"
	HideLabel      = "Hide Animated Box"
	IncrementLabel = "Increment Counter"
)

// Section titles, in page order.
const (
	SectionFade        = "Fade In Animation"
	SectionInteractive = "Interactive Animation"
	SectionHover       = "Hover Animations"
	SectionCounter     = "Animated Counter"
	SectionStaggered   = "Staggered List Animation"
)

// NumCards is the number of hoverable cards.
const NumCards = 3

// listItems is the staggered list. It never changes.
var listItems = [...]string{"Bubble Tea", "Lip Gloss", "Bubbles", "Harmonica", "Cobra"}

// ListItems returns the staggered list labels in display order.
func ListItems() []string {
	out := make([]string, len(listItems))
	copy(out, listItems[:])
	return out
}

// Entrance and exit variants. Every element rests at motion.Identity().
var (
	headerInitial  = motion.Identity().Apply(motion.Patch{motion.Opacity: 0, motion.Y: -50})
	panelInitial   = motion.Identity().Apply(motion.Patch{motion.Opacity: 0, motion.Scale: 0.8})
	boxHidden      = motion.Identity().Apply(motion.Patch{motion.Opacity: 0, motion.X: -100})
	counterInitial = motion.Identity().Apply(motion.Patch{motion.Scale: 0.5, motion.Opacity: 0})
	itemInitial    = motion.Identity().Apply(motion.Patch{motion.Opacity: 0, motion.X: -50})
)

// Transitions.
var (
	headerTransition  = motion.Tween(800 * time.Millisecond)
	panelTransition   = motion.Tween(500 * time.Millisecond).WithDelay(200 * time.Millisecond)
	boxTransition     = motion.Spring(100, 10)
	counterTransition = motion.SpringStiffness(200)
	itemTransition    = motion.Tween(500 * time.Millisecond)
)

// itemStagger is the extra delay per list position.
const itemStagger = 100 * time.Millisecond

// cardGesture is shared by all hover cards.
var cardGesture = motion.Gesture{
	Hover:      motion.Patch{motion.Scale: 1.05, motion.Rotate: 5, motion.Shadow: 1},
	Tap:        motion.Patch{motion.Scale: 0.95},
	Transition: motion.SpringStiffness(300),
}

func boxTarget(visible bool) motion.Values {
	if visible {
		return motion.Identity()
	}
	return boxHidden
}

func itemTransitionAt(i int) motion.Transition {
	return motion.Stagger(itemTransition, i, itemStagger)
}

package demo

import (
	"time"

	"github.com/rileyhilliard/motion/internal/logger"
)

// SnapshotOptions describes a single frame rendered without a terminal program.
type SnapshotOptions struct {
	// Width is the terminal width to lay out for. Zero means the widest page.
	Width int

	// At is the time since mount. Ignored when Settle is set.
	At time.Duration

	// Settle renders after every animation has come to rest.
	Settle bool

	// Toggles and Increments are applied right after mount.
	Toggles    int
	Increments int

	// Hover is the 1-based card to hover, 0 for none.
	Hover int
}

// Snapshot renders one frame of the demo as a string.
func Snapshot(s Settings, opts SnapshotOptions) string {
	m := NewModel(s, logger.Noop())
	m.width = opts.Width

	for i := 0; i < opts.Toggles; i++ {
		m.toggle()
	}
	for i := 0; i < opts.Increments; i++ {
		m.increment()
	}
	if opts.Hover >= 1 && opts.Hover <= NumCards {
		m.focus = cardFocus(opts.Hover - 1)
		m.updateCards()
	}

	if opts.Settle {
		m.settle()
	} else {
		for i := m.clock.Frames(opts.At); i > 0 && m.animating(); i-- {
			m.step()
		}
	}

	return m.renderPage(opts.Width).content
}

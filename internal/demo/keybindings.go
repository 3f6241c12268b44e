package demo

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Focus identifies the interactive element that has keyboard focus.
type Focus int

const (
	FocusNone Focus = iota
	FocusToggle
	FocusCard1
	FocusCard2
	FocusCard3
	FocusIncrement
)

// focusOrder is the tab order, top to bottom.
var focusOrder = []Focus{FocusToggle, FocusCard1, FocusCard2, FocusCard3, FocusIncrement}

// String returns a label for debug logs.
func (f Focus) String() string {
	switch f {
	case FocusToggle:
		return "toggle"
	case FocusCard1:
		return "card1"
	case FocusCard2:
		return "card2"
	case FocusCard3:
		return "card3"
	case FocusIncrement:
		return "increment"
	default:
		return "none"
	}
}

// Card returns the zero-based card index for card focus targets.
func (f Focus) Card() (int, bool) {
	if f >= FocusCard1 && f <= FocusCard3 {
		return int(f - FocusCard1), true
	}
	return 0, false
}

// cardFocus is the inverse of Focus.Card.
func cardFocus(i int) Focus {
	return FocusCard1 + Focus(i)
}

// Next cycles forward through focusOrder, wrapping at the end.
func (f Focus) Next() Focus {
	for i, o := range focusOrder {
		if o == f {
			return focusOrder[(i+1)%len(focusOrder)]
		}
	}
	return focusOrder[0]
}

// Prev cycles backward through focusOrder, wrapping at the start.
func (f Focus) Prev() Focus {
	for i, o := range focusOrder {
		if o == f {
			return focusOrder[(i-1+len(focusOrder))%len(focusOrder)]
		}
	}
	return focusOrder[len(focusOrder)-1]
}

type keyMap struct {
	Toggle    key.Binding
	Increment key.Binding
	Next      key.Binding
	Prev      key.Binding
	Activate  key.Binding
	Replay    key.Binding
	Scroll    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Toggle: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle box"),
	),
	Increment: key.NewBinding(
		key.WithKeys("+", "=", "i"),
		key.WithHelp("+", "increment"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab", "right", "l"),
		key.WithHelp("tab/→", "next"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "left", "h"),
		key.WithHelp("shift+tab/←", "previous"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter/space", "press"),
	),
	Replay: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "replay entrances"),
	),
	// Scrolling itself is handled by the viewport's own key map.
	Scroll: key.NewBinding(
		key.WithKeys("up", "down", "pgup", "pgdown"),
		key.WithHelp("↑/↓/pgup/pgdn", "scroll"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Increment, k.Next, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Increment, k.Replay},
		{k.Next, k.Prev, k.Activate},
		{k.Scroll, k.Help, k.Quit},
	}
}

// HandleKeyMsg processes keyboard input.
// Returns false for keys the view doesn't own, so the caller can pass them to the viewport.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return true, nil

	case key.Matches(msg, keys.Toggle):
		m.toggle()
		return true, m.redraw()

	case key.Matches(msg, keys.Increment):
		m.increment()
		return true, m.redraw()

	case key.Matches(msg, keys.Replay):
		m.replay()
		return true, m.redraw()

	case key.Matches(msg, keys.Next):
		m.setFocus(m.focus.Next())
		return true, m.redraw()

	case key.Matches(msg, keys.Prev):
		m.setFocus(m.focus.Prev())
		return true, m.redraw()

	case key.Matches(msg, keys.Activate):
		return true, m.activate()
	}

	return false, nil
}

package demo

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/motion/internal/logger"
	"github.com/rileyhilliard/motion/internal/motion"
)

// Model is the Bubble Tea model for the demo view.
type Model struct {
	settings Settings
	clock    motion.Clock
	log      logger.Logger
	state    State

	// One animation per animated element.
	header  motion.Animation
	panel   motion.Animation
	box     motion.Animation
	counter motion.Animation
	cards   [NumCards]motion.Animation
	items   [len(listItems)]motion.Animation

	focus      Focus
	mouseHover Focus // card under the pointer, FocusNone otherwise
	pressed    [NumCards]bool
	pressSeq   [NumCards]int // invalidates stale keyboard tap releases

	width    int
	height   int
	viewport viewport.Model
	ready    bool
	zones    []zone

	help     help.Model
	ticking  bool
	quitting bool
}

// frameMsg advances every running animation by one frame.
type frameMsg time.Time

// tapReleaseMsg ends a keyboard tap on a card.
type tapReleaseMsg struct {
	card int
	seq  int
}

// NewModel creates the view with every entrance animation queued.
func NewModel(s Settings, log logger.Logger) Model {
	if log == nil {
		log = logger.Noop()
	}
	clock := s.Clock()

	m := Model{
		settings:   s,
		clock:      clock,
		log:        log,
		header:     motion.NewAnimation(headerInitial, headerTransition, clock),
		panel:      motion.NewAnimation(panelInitial, panelTransition, clock),
		box:        motion.NewAnimation(boxHidden, boxTransition, clock),
		counter:    motion.NewAnimation(counterInitial, counterTransition, clock),
		focus:      FocusNone,
		mouseHover: FocusNone,
		help:       help.New(),
	}
	for i := range m.cards {
		m.cards[i] = motion.NewAnimation(motion.Identity(), cardGesture.Transition, clock)
	}
	for i := range m.items {
		m.items[i] = motion.NewAnimation(itemInitial, itemTransitionAt(i), clock)
	}

	m.mount()
	m.ticking = m.animating()
	return m
}

// Init starts the frame loop for the entrance animations.
func (m Model) Init() tea.Cmd {
	if m.ticking {
		return m.frameCmd()
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := m.HandleKeyMsg(msg); handled {
			return m, cmd
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case frameMsg:
		m.step()
		m.refresh()
		if m.animating() {
			return m, m.frameCmd()
		}
		m.ticking = false
		m.log.Debug("all animations at rest")
		return m, nil

	case tapReleaseMsg:
		if msg.card >= 0 && msg.card < NumCards && msg.seq == m.pressSeq[msg.card] {
			m.pressed[msg.card] = false
			m.updateCards()
		}
		return m, m.redraw()
	}

	return m, nil
}

// View renders the viewport and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return m.renderPage(m.width).content
	}
	return m.viewport.View() + "\n" + m.footer()
}

// State returns the current application state.
func (m Model) State() State {
	return m.state
}

// Focused returns the element with keyboard focus.
func (m Model) Focused() Focus {
	return m.focus
}

// Animating reports whether any element is still moving.
func (m Model) Animating() bool {
	return m.animating()
}

func (m Model) frameCmd() tea.Cmd {
	return tea.Tick(m.clock.Frame(), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m Model) footer() string {
	return FooterStyle.Render(m.help.View(keys))
}

// animations lists every animated element so they can be stepped together.
func (m *Model) animations() []*motion.Animation {
	all := []*motion.Animation{&m.header, &m.panel, &m.box, &m.counter}
	for i := range m.cards {
		all = append(all, &m.cards[i])
	}
	for i := range m.items {
		all = append(all, &m.items[i])
	}
	return all
}

func (m Model) animating() bool {
	for _, a := range m.animations() {
		if a.Running() {
			return true
		}
	}
	return false
}

func (m *Model) step() {
	for _, a := range m.animations() {
		a.Step()
	}
}

// settle runs every animation to rest.
func (m *Model) settle() {
	for _, a := range m.animations() {
		a.Settle()
	}
}

// animate retargets a, or jumps there under reduced motion.
func (m *Model) animate(a *motion.Animation, target motion.Values) {
	if m.settings.ReducedMotion {
		a.Jump(target)
		return
	}
	a.AnimateTo(target)
}

// remount replays an element's entrance from initial.
func (m *Model) remount(a *motion.Animation, initial motion.Values) {
	if m.settings.ReducedMotion {
		a.Jump(motion.Identity())
		return
	}
	a.Restart(initial, motion.Identity())
}

// mount queues every entrance animation, as on first render.
func (m *Model) mount() {
	m.remount(&m.header, headerInitial)
	m.remount(&m.panel, panelInitial)
	m.remount(&m.counter, counterInitial)
	for i := range m.items {
		m.remount(&m.items[i], itemInitial)
	}
}

func (m *Model) toggle() {
	visible := m.state.Toggle()
	m.animate(&m.box, boxTarget(visible))
	m.log.Debug("toggle visible=%t", visible)
}

func (m *Model) increment() {
	count := m.state.Increment()
	// The counter is keyed by its value: a new value is a new element.
	m.remount(&m.counter, counterInitial)
	m.log.Debug("increment count=%d", count)
}

func (m *Model) replay() {
	m.mount()
	m.log.Debug("replay entrances")
}

func (m *Model) setFocus(f Focus) {
	m.focus = f
	m.updateCards()
	m.refresh()
	m.scrollTo(f)
	m.log.Debug("focus %s", f)
}

// activate presses whatever has focus.
func (m *Model) activate() tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case FocusToggle:
		m.toggle()
	case FocusIncrement:
		m.increment()
	default:
		if i, ok := m.focus.Card(); ok {
			cmd = m.tapCard(i)
		}
	}
	return tea.Batch(cmd, m.redraw())
}

// tapCard presses card i and schedules its release.
func (m *Model) tapCard(i int) tea.Cmd {
	m.pressed[i] = true
	m.pressSeq[i]++
	seq := m.pressSeq[i]
	m.updateCards()
	m.log.Debug("tap card%d", i+1)

	return tea.Tick(m.settings.TapHold, func(time.Time) tea.Msg {
		return tapReleaseMsg{card: i, seq: seq}
	})
}

func (m Model) cardHovered(i int) bool {
	f := cardFocus(i)
	return m.focus == f || m.mouseHover == f
}

// updateCards retargets every card whose gesture state changed.
func (m *Model) updateCards() {
	for i := range m.cards {
		target := cardGesture.Resolve(motion.Identity(), m.cardHovered(i), m.pressed[i])
		if target != m.cards[i].Target() {
			m.animate(&m.cards[i], target)
		}
	}
}

// redraw refreshes the page and starts the frame loop if something moves.
func (m *Model) redraw() tea.Cmd {
	m.refresh()
	if m.ticking || !m.animating() {
		return nil
	}
	m.ticking = true
	return m.frameCmd()
}

// resize fits the viewport between the top of the screen and the footer.
func (m *Model) resize() {
	height := m.height - lipgloss.Height(m.footer())
	if height < 1 {
		height = 1
	}

	if !m.ready {
		m.viewport = viewport.New(m.width, height)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = height
	}
	m.help.Width = m.width
	m.refresh()
}

// refresh re-renders the page into the viewport.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	p := m.renderPage(m.viewport.Width)
	m.zones = p.zones
	m.viewport.SetContent(p.content)
}

// scrollTo brings the zone for f into view, keeping its section title visible.
func (m *Model) scrollTo(f Focus) {
	if !m.ready {
		return
	}
	for _, z := range m.zones {
		if z.focus != f {
			continue
		}
		top := z.y - sectionTitleRows - 1
		bottom := z.y + z.h
		switch {
		case top < m.viewport.YOffset:
			m.viewport.SetYOffset(max(top, 0))
		case bottom > m.viewport.YOffset+m.viewport.Height:
			m.viewport.SetYOffset(bottom - m.viewport.Height)
		}
		return
	}
}

// zoneAt maps screen coordinates to the element under them.
func (m Model) zoneAt(x, y int) Focus {
	if !m.ready || y < 0 || y >= m.viewport.Height {
		return FocusNone
	}
	py := y + m.viewport.YOffset
	for _, z := range m.zones {
		if z.contains(x, py) {
			return z.focus
		}
	}
	return FocusNone
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}

	target := m.zoneAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		hover := FocusNone
		if _, ok := target.Card(); ok {
			hover = target
		}
		if hover == m.mouseHover {
			return nil
		}
		m.mouseHover = hover
		m.updateCards()
		return m.redraw()

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || target == FocusNone {
			return nil
		}
		m.focus = target
		switch target {
		case FocusToggle:
			m.toggle()
		case FocusIncrement:
			m.increment()
		default:
			i, _ := target.Card()
			m.mouseHover = target
			m.pressed[i] = true
			m.pressSeq[i]++
		}
		m.updateCards()
		return m.redraw()

	case tea.MouseActionRelease:
		released := false
		for i := range m.pressed {
			if m.pressed[i] {
				m.pressed[i] = false
				m.pressSeq[i]++
				released = true
			}
		}
		if !released {
			return nil
		}
		m.updateCards()
		return m.redraw()
	}

	return nil
}

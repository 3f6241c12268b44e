package demo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/motion/internal/motion"
)

// sectionTitleRows is the title line plus the blank line under it.
const sectionTitleRows = 2

// zone is a clickable rectangle in page coordinates.
type zone struct {
	focus Focus
	x, y  int
	w, h  int
}

func (z zone) contains(x, y int) bool {
	return x >= z.x && x < z.x+z.w && y >= z.y && y < z.y+z.h
}

// page is one rendered frame of the whole demo.
type page struct {
	content string
	zones   []zone
}

// pageBuilder stacks blocks and tracks where clickable zones end up.
type pageBuilder struct {
	left  int
	lines []string
	zones []zone
}

func (b *pageBuilder) add(block string) {
	for _, line := range strings.Split(block, "\n") {
		b.lines = append(b.lines, strings.Repeat(" ", b.left)+line)
	}
}

// section frames body under a title. Zones are relative to the body origin.
func (b *pageBuilder) section(title, body string, width int, zones []zone) {
	top := len(b.lines)
	frame := SectionStyle.Width(width - 2).Render(SectionTitleStyle.Render(title) + "\n\n" + body)
	b.add(frame)
	b.add("")

	ox := b.left + 1 + sectionIndent
	oy := top + 1 + sectionTitleRows
	for _, z := range zones {
		z.x += ox
		z.y += oy
		b.zones = append(b.zones, z)
	}
}

// pageWidth clamps the terminal width to the page column.
func pageWidth(termWidth int) int {
	if termWidth <= 0 {
		return maxPageWidth
	}
	return max(minPageWidth, min(termWidth, maxPageWidth))
}

// renderPage renders every section for a terminal of the given width.
func (m Model) renderPage(termWidth int) page {
	pw := pageWidth(termWidth)
	inner := pw - 2 - 2*sectionIndent

	b := pageBuilder{}
	if termWidth > pw {
		b.left = (termWidth - pw) / 2
	}

	b.add(m.renderHeader(pw))
	b.add("")

	b.section(SectionFade, m.renderPanel(inner), pw, nil)

	body, zones := m.renderInteractive(inner)
	b.section(SectionInteractive, body, pw, zones)

	body, zones = m.renderCards(inner)
	b.section(SectionHover, body, pw, zones)

	body, zones = m.renderCounter(inner)
	b.section(SectionCounter, body, pw, zones)

	b.section(SectionStaggered, m.renderList(inner), pw, nil)

	return page{
		content: strings.Join(b.lines, "\n"),
		zones:   b.zones,
	}
}

func (m Model) renderHeader(w int) string {
	v := m.header.Value()
	op := clamp01(v[motion.Opacity])
	if op < invisibleBelow {
		return blank(w, headerHeight)
	}

	title := lipgloss.NewStyle().
		Foreground(fade(ColorAccent, op)).
		Bold(true).
		Render(Title)
	subtitle := lipgloss.NewStyle().
		Foreground(fade(ColorTextSecondary, op)).
		Render(Subtitle)

	block := "\n" + center(title, w) + "\n" + center(subtitle, w)
	return fit(shiftY(block, m.settings.rows(v[motion.Y]), headerHeight), w, headerHeight)
}

func (m Model) renderPanel(inner int) string {
	v := m.panel.Value()
	op := clamp01(v[motion.Opacity])
	if op < invisibleBelow {
		return blank(inner, panelHeight)
	}

	w := min(scaled(inner, v[motion.Scale]), inner)
	panel := lipgloss.NewStyle().
		Width(w).
		Padding(1, 2).
		Align(lipgloss.Center).
		Background(fade(ColorPanel, op)).
		Foreground(fade(ColorPanelInk, op)).
		Render(PanelText)

	return fit(center(panel, inner), inner, panelHeight)
}

// renderButton centers a button on one line and returns its zone.
func (m Model) renderButton(label string, f Focus, inner, row int) (string, zone) {
	style := ButtonStyle
	if m.focus == f {
		style = ButtonFocusedStyle
	}
	btn := style.Render(label)
	bw := lipgloss.Width(btn)
	x := max(0, (inner-bw)/2)
	return indent(btn, x), zone{focus: f, x: x, y: row, w: bw, h: 1}
}

func (m Model) renderInteractive(inner int) (string, []zone) {
	label := ShowLabel
	if m.state.Visible() {
		label = HideLabel
	}
	btn, z := m.renderButton(label, FocusToggle, inner, 0)

	body := btn + "\n\n" + m.renderBox(inner)
	return fit(body, inner, 0), []zone{z}
}

func (m Model) renderBox(inner int) string {
	v := m.box.Value()
	op := clamp01(v[motion.Opacity])
	if op < invisibleBelow {
		return blank(inner, boxHeight)
	}

	box := gradientBlock([]string{BoxText}, scaled(boxWidth, v[motion.Scale]), boxHeight,
		ColorPurple, ColorPink, ColorTextPrimary, op, true)
	left := (inner-boxWidth)/2 + m.settings.columns(v[motion.X])
	return fit(shiftX(box, left), inner, boxHeight)
}

// cardLayout decides between a row of cards and a stack.
func cardLayout(inner int) (cw int, horizontal bool) {
	if inner >= NumCards*minCardWidth+(NumCards-1)*cardGap {
		return (inner - (NumCards-1)*cardGap) / NumCards, true
	}
	return min(inner, 30), false
}

func (m Model) renderCards(inner int) (string, []zone) {
	cw, horizontal := cardLayout(inner)
	canvasH := cardHeight + 1 // shadow row

	blocks := make([]string, 0, 2*NumCards)
	zones := make([]zone, 0, NumCards)
	for i := range m.cards {
		z := zone{focus: cardFocus(i), w: cw, h: canvasH}
		if horizontal {
			z.x = i * (cw + cardGap)
			if i > 0 {
				blocks = append(blocks, blank(cardGap, canvasH))
			}
		} else {
			z.y = i * (canvasH + 1)
		}
		zones = append(zones, z)
		blocks = append(blocks, fit(m.renderCard(i, cw), cw, canvasH))
	}

	if horizontal {
		return fit(lipgloss.JoinHorizontal(lipgloss.Top, blocks...), inner, 0), zones
	}
	return fit(strings.Join(blocks, "\n\n"), inner, 0), zones
}

func (m Model) renderCard(i, cw int) string {
	v := m.cards[i].Value()
	base := cw - 2 // leaves room to grow on hover and for the shadow column
	w := scaled(base, v[motion.Scale])

	text := []string{fmt.Sprintf("Card %d", i+1), "", CardText}
	card := gradientBlock(text, w, cardHeight, ColorGreen, ColorBlue, ColorTextPrimary, 1, false)
	card = skew(card, v[motion.Rotate])
	card = dropShadow(card, v[motion.Shadow])

	return shiftX(card, (cw-1-w)/2)
}

func (m Model) renderCounter(inner int) (string, []zone) {
	btn, z := m.renderButton(IncrementLabel, FocusIncrement, inner, 0)
	caption := center(CaptionStyle.Render(fmt.Sprintf("count = %d", m.state.Count())), inner)

	body := btn + "\n\n" + m.renderDigits(inner) + "\n" + caption
	return fit(body, inner, 0), []zone{z}
}

// renderDigits draws the counter. Below 75% scale it is plain text that
// grows into the block font, which is as close to scaling as cells get.
func (m Model) renderDigits(inner int) string {
	v := m.counter.Value()
	op := clamp01(v[motion.Opacity])
	if op < invisibleBelow {
		return blank(inner, digitsHeight)
	}

	style := lipgloss.NewStyle().
		Foreground(fade(ColorIndigo, op)).
		Bold(true)

	var block string
	if v[motion.Scale] < 0.75 {
		block = shiftY(style.Render(strconv.Itoa(m.state.Count())), digitsHeight/2, digitsHeight)
	} else {
		rows := bigDigits(m.state.Count())
		for r := range rows {
			rows[r] = style.Render(rows[r])
		}
		block = strings.Join(rows, "\n")
	}
	return fit(center(block, inner), inner, digitsHeight)
}

func (m Model) renderList(inner int) string {
	rows := make([]string, 0, 2*len(listItems))
	for i, label := range listItems {
		if i > 0 {
			rows = append(rows, "")
		}

		v := m.items[i].Value()
		op := clamp01(v[motion.Opacity])
		if op < invisibleBelow {
			rows = append(rows, "")
			continue
		}

		pill := lipgloss.NewStyle().
			Width(inner).
			Padding(0, 1).
			Background(fade(ColorSurface, op)).
			Foreground(fade(ColorTextPrimary, op)).
			Render(label)
		rows = append(rows, shiftX(pill, m.settings.columns(v[motion.X])))
	}
	return fit(strings.Join(rows, "\n"), inner, 0)
}

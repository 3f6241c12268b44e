package demo

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

// invisibleBelow is the opacity under which an element renders as blank cells.
const invisibleBelow = 0.05

// cellAspect is roughly how much taller a terminal cell is than it is wide.
const cellAspect = 2.0

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// blend mixes two hex colors in L*a*b* space; t=0 is from, t=1 is to.
// Unparseable input falls back to to.
func blend(from, to string, t float64) lipgloss.Color {
	return lipgloss.Color(blendHex(from, to, t))
}

func blendHex(from, to string, t float64) string {
	a, err := colorful.Hex(from)
	if err != nil {
		return to
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return to
	}
	return a.BlendLab(b, clamp01(t)).Clamped().Hex()
}

// fade returns color as seen at the given opacity over the void.
func fade(color string, opacity float64) lipgloss.Color {
	return blend(ColorVoid, color, opacity)
}

// scaled returns base scaled by s, never below one cell.
func scaled(base int, s float64) int {
	n := int(math.Round(float64(base) * s))
	if n < 1 {
		return 1
	}
	return n
}

// fit pads or clips block to exactly w columns and h lines.
// h <= 0 keeps the block's own line count.
func fit(block string, w, h int) string {
	lines := strings.Split(block, "\n")
	if h <= 0 {
		h = len(lines)
	}
	out := make([]string, h)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = padRight(ansi.Truncate(line, w, ""), w)
	}
	return strings.Join(out, "\n")
}

func padRight(line string, w int) string {
	if pad := w - ansi.StringWidth(line); pad > 0 {
		return line + strings.Repeat(" ", pad)
	}
	return line
}

// blank is an empty w x h area.
func blank(w, h int) string {
	if h <= 0 {
		return ""
	}
	row := strings.Repeat(" ", max(w, 0))
	rows := make([]string, h)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// indent moves every line right by n columns.
func indent(block string, n int) string {
	if n <= 0 {
		return block
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}

// shiftX moves block horizontally. Negative shifts clip on the left.
func shiftX(block string, cols int) string {
	if cols >= 0 {
		return indent(block, cols)
	}
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = ansi.TruncateLeft(line, -cols, "")
	}
	return strings.Join(lines, "\n")
}

// shiftY moves block vertically inside a window of h lines.
// Negative shifts clip at the top, positive shifts clip at the bottom.
func shiftY(block string, rows, h int) string {
	lines := strings.Split(block, "\n")
	switch {
	case rows < 0 && -rows >= len(lines):
		lines = nil
	case rows < 0:
		lines = lines[-rows:]
	case rows > 0:
		lines = append(make([]string, rows), lines...)
	}
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// skew fakes a rotation: rows above the middle lean right, rows below lean left,
// in proportion to tan(degrees) and the cell aspect ratio.
func skew(block string, degrees float64) string {
	lines := strings.Split(block, "\n")
	if len(lines) < 2 || degrees == 0 {
		return block
	}

	slope := math.Tan(degrees*math.Pi/180) * cellAspect
	mid := float64(len(lines)-1) / 2

	offsets := make([]int, len(lines))
	minOff := 0
	for i := range lines {
		offsets[i] = int(math.Round((mid - float64(i)) * slope))
		if offsets[i] < minOff {
			minOff = offsets[i]
		}
	}
	for i, line := range lines {
		lines[i] = strings.Repeat(" ", offsets[i]-minOff) + line
	}
	return strings.Join(lines, "\n")
}

// dropShadow adds a one-cell shadow below and to the right of block.
// The block always grows by one column and one row, so layout stays stable
// whether or not the shadow is visible.
func dropShadow(block string, strength float64) string {
	lines := strings.Split(block, "\n")
	w := 0
	for _, line := range lines {
		w = max(w, ansi.StringWidth(line))
	}

	shade := " "
	if strength >= invisibleBelow {
		shade = lipgloss.NewStyle().
			Foreground(blend(ColorVoid, ColorGlow, clamp01(strength)*0.8)).
			Render("░")
	}

	out := make([]string, 0, len(lines)+1)
	for i, line := range lines {
		line = padRight(line, w)
		if i == 0 {
			out = append(out, line+" ")
		} else {
			out = append(out, line+shade)
		}
	}
	out = append(out, " "+strings.Repeat(shade, w))
	return strings.Join(out, "\n")
}

// gradientBlock paints text on a left-to-right gradient background, faded by opacity.
// Text lines are centered horizontally; the block is vertically centered in h rows.
func gradientBlock(text []string, w, h int, from, to, ink string, opacity float64, bold bool) string {
	if w <= 0 || h <= 0 {
		return ""
	}

	top := (h - len(text)) / 2
	fg := fade(ink, opacity)

	cols := make([]lipgloss.Style, w)
	for c := range cols {
		t := 0.0
		if w > 1 {
			t = float64(c) / float64(w-1)
		}
		cols[c] = lipgloss.NewStyle().
			Background(fade(blendHex(from, to, t), opacity)).
			Foreground(fg).
			Bold(bold)
	}

	rows := make([]string, h)
	for r := range rows {
		cells := []rune(strings.Repeat(" ", w))
		if i := r - top; i >= 0 && i < len(text) {
			label := []rune(ansi.Truncate(text[i], w, ""))
			start := (w - len(label)) / 2
			copy(cells[start:], label)
		}
		var b strings.Builder
		for c, ch := range cells {
			b.WriteString(cols[c].Render(string(ch)))
		}
		rows[r] = b.String()
	}
	return strings.Join(rows, "\n")
}

// center places a single-width-measured block in the middle of w columns.
func center(block string, w int) string {
	bw := lipgloss.Width(block)
	if bw >= w {
		return block
	}
	return indent(block, (w-bw)/2)
}

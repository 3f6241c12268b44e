package demo

import "github.com/charmbracelet/lipgloss"

// Palette as hex strings, so opacity can blend them (see blend).
const (
	// ColorVoid is what a fully transparent element dissolves into.
	ColorVoid    = "#0B0B14"
	ColorSurface = "#1A1A2E"
	ColorBorder  = "#2E2E4D"

	ColorTextPrimary   = "#F4F4FF"
	ColorTextSecondary = "#B4B4D0"
	ColorTextMuted     = "#6B6B8D"

	ColorAccent = "#FF2E97"
	ColorIndigo = "#818CF8"

	// Fade panel
	ColorPanel    = "#1E3A8A"
	ColorPanelInk = "#DBEAFE"

	// Gradients
	ColorPurple = "#A855F7"
	ColorPink   = "#F472B6"
	ColorGreen  = "#4ADE80"
	ColorBlue   = "#3B82F6"

	ColorGlow = "#7C3AED"
)

// Layout constants, in cells.
const (
	maxPageWidth = 78
	minPageWidth = 32

	headerHeight  = 3
	panelHeight   = 4
	boxWidth      = 16
	boxHeight     = 5
	cardHeight    = 5
	cardGap       = 2
	minCardWidth  = 18
	digitsHeight  = 5
	sectionIndent = 2 // horizontal padding inside a section frame
)

var (
	SectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Padding(0, sectionIndent)

	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorTextPrimary)).
				Bold(true)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorTextPrimary)).
			Background(lipgloss.Color(ColorSurface)).
			Padding(0, 2)

	ButtonFocusedStyle = ButtonStyle.
				Background(lipgloss.Color(ColorAccent)).
				Bold(true)

	CaptionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorTextMuted))

	FooterStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

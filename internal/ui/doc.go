// Package ui styles the CLI's own output: status lines and errors printed
// outside the interactive demo.
//
// Colors are ANSI codes for broad terminal compatibility and go through the
// global lipgloss color profile, so --no-color and piped output come out
// plain.
package ui

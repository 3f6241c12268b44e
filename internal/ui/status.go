package ui

import (
	"fmt"
	"io"
	"strings"
)

// Success prints "✓ msg" in green, followed by optional muted detail lines.
func Success(w io.Writer, msg string, details ...string) {
	fmt.Fprintln(w, SuccessStyle().Render(SymbolSuccess+" "+msg))
	for _, d := range details {
		fmt.Fprintln(w, MutedStyle().Render("  "+d))
	}
}

// RenderError colors the headline of a multi-line error message.
// The rest (cause, suggestion) stays in the default color.
func RenderError(err error) string {
	msg := err.Error()
	head, rest, found := strings.Cut(msg, "\n")
	if !strings.HasPrefix(head, SymbolFail) {
		head = SymbolFail + " " + head
	}
	head = ErrorStyle().Render(head)
	if !found {
		return head
	}
	return head + "\n" + rest
}

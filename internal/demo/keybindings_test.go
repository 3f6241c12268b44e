package demo

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
)

func TestFocus_NextPrev(t *testing.T) {
	f := FocusNone
	var seen []Focus
	for range focusOrder {
		f = f.Next()
		seen = append(seen, f)
	}
	assert.Equal(t, focusOrder, seen)
	assert.Equal(t, FocusToggle, f.Next(), "wraps to the top")

	assert.Equal(t, FocusIncrement, FocusNone.Prev())
	assert.Equal(t, FocusIncrement, FocusToggle.Prev())
	assert.Equal(t, FocusCard2, FocusCard3.Prev())
}

func TestFocus_Card(t *testing.T) {
	for i := 0; i < NumCards; i++ {
		got, ok := cardFocus(i).Card()
		assert.True(t, ok)
		assert.Equal(t, i, got)
	}

	for _, f := range []Focus{FocusNone, FocusToggle, FocusIncrement} {
		_, ok := f.Card()
		assert.False(t, ok, "%s is not a card", f)
	}
}

func TestFocus_String(t *testing.T) {
	assert.Equal(t, "toggle", FocusToggle.String())
	assert.Equal(t, "card3", FocusCard3.String())
	assert.Equal(t, "none", Focus(99).String())
}

func TestKeyMap_Help(t *testing.T) {
	assert.Len(t, keys.ShortHelp(), 5)

	full := keys.FullHelp()
	assert.Len(t, full, 3)

	var all []key.Binding
	for _, col := range full {
		all = append(all, col...)
	}
	for _, b := range all {
		assert.NotEmpty(t, b.Help().Key)
		assert.NotEmpty(t, b.Help().Desc)
	}
}

func TestHandleKeyMsg_UnknownKeyFallsThrough(t *testing.T) {
	m := newTestModel()
	handled, cmd := m.HandleKeyMsg(keyMsg("z"))

	assert.False(t, handled)
	assert.Nil(t, cmd)
}

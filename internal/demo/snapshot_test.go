package demo

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot_Settled(t *testing.T) {
	out := plain(Snapshot(DefaultSettings(), SnapshotOptions{Width: 100, Settle: true}))

	assert.Contains(t, out, Title)
	assert.Contains(t, out, ShowLabel)
	assert.Contains(t, out, "count = 0")
	for _, item := range ListItems() {
		assert.Contains(t, out, item)
	}
	assert.NotContains(t, out, BoxText)
}

func TestSnapshot_AtMount(t *testing.T) {
	out := plain(Snapshot(DefaultSettings(), SnapshotOptions{Width: 100}))

	assert.NotContains(t, out, Title)
	assert.Contains(t, out, SectionStaggered)
}

func TestSnapshot_MidEntrance(t *testing.T) {
	s := DefaultSettings()
	early := Snapshot(s, SnapshotOptions{Width: 100, At: 100 * time.Millisecond})
	late := Snapshot(s, SnapshotOptions{Width: 100, At: 2 * time.Second})
	settled := Snapshot(s, SnapshotOptions{Width: 100, Settle: true})

	assert.NotEqual(t, early, settled)
	assert.Equal(t, plain(late), plain(settled), "everything rests well before two seconds")
}

func TestSnapshot_FarFutureStopsAtRest(t *testing.T) {
	s := DefaultSettings()
	far := Snapshot(s, SnapshotOptions{Width: 100, At: 1000 * time.Hour, Toggles: 1})
	settled := Snapshot(s, SnapshotOptions{Width: 100, Settle: true, Toggles: 1})

	assert.Equal(t, plain(settled), plain(far))
}

func TestSnapshot_Actions(t *testing.T) {
	out := plain(Snapshot(DefaultSettings(), SnapshotOptions{
		Width:      100,
		Settle:     true,
		Toggles:    3,
		Increments: 12,
	}))

	assert.Contains(t, out, BoxText)
	assert.Contains(t, out, HideLabel)
	assert.Contains(t, out, "count = 12")
}

func TestSnapshot_Hover(t *testing.T) {
	s := DefaultSettings()
	rest := Snapshot(s, SnapshotOptions{Width: 100, Settle: true})
	hover := Snapshot(s, SnapshotOptions{Width: 100, Settle: true, Hover: 2})
	outOfRange := Snapshot(s, SnapshotOptions{Width: 100, Settle: true, Hover: 9})

	assert.NotEqual(t, rest, hover)
	assert.Contains(t, plain(hover), "░", "hovered cards cast a shadow")
	assert.Equal(t, rest, outOfRange)
}

func TestSnapshot_ReducedMotion(t *testing.T) {
	s := DefaultSettings()
	s.ReducedMotion = true

	atMount := Snapshot(s, SnapshotOptions{Width: 100, Increments: 1})
	assert.Contains(t, plain(atMount), Title)
	assert.True(t, strings.Contains(plain(atMount), "█"), "the counter is already full size")
}

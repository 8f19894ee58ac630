package rlui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestClickTracker(t *testing.T) {
	var tracker clickTracker

	assert.False(t, tracker.click(1.0, "a"))
	assert.True(t, tracker.click(1.2, "a"), "second click within the window is a double click")
	assert.False(t, tracker.click(1.3, "a"), "third click starts a new pair")

	assert.False(t, tracker.click(5.0, "a"))
	assert.False(t, tracker.click(5.1, "b"), "clicks on different targets")

	assert.False(t, tracker.click(9.0, "c"))
	assert.False(t, tracker.click(9.5, "c"), "too slow")
}

func TestBlockedAt(t *testing.T) {
	chrome := []chromeRect{
		{rect: rl.NewRectangle(0, 0, 100, 20), layer: layerBase},
		{rect: rl.NewRectangle(50, 50, 100, 100), layer: layerWindow, owner: 3},
		{rect: rl.NewRectangle(200, 0, 50, 50), layer: layerPopup},
	}
	inWindow := rl.NewVector2(60, 60)
	inPopup := rl.NewVector2(210, 10)

	assert.True(t, blockedAt(chrome, inWindow, layerBase, 0))
	assert.False(t, blockedAt(chrome, inWindow, layerWindow, 3), "a window does not block itself")
	assert.True(t, blockedAt(chrome, inPopup, layerWindow, 3))
	assert.False(t, blockedAt(chrome, inPopup, layerPopup, 0))
	assert.False(t, blockedAt(chrome, rl.NewVector2(10, 10), layerBase, 0), "same layer never blocks")

	assert.True(t, overChrome(chrome, rl.NewVector2(10, 10)))
	assert.False(t, overChrome(chrome, rl.NewVector2(500, 500)))
}

func TestSplitFraction(t *testing.T) {
	rect := rl.NewRectangle(100, 0, 400, 200)

	assert.InDelta(t, 0.25, splitFraction(rect, rl.NewVector2(200, 0), true), 1e-6)
	assert.InDelta(t, 0.5, splitFraction(rect, rl.NewVector2(0, 100), false), 1e-6)
	assert.InDelta(t, 0.1, splitFraction(rect, rl.NewVector2(0, 0), true), 1e-6)
	assert.InDelta(t, 0.9, splitFraction(rect, rl.NewVector2(1000, 0), true), 1e-6)
	assert.InDelta(t, 0.5, splitFraction(rl.Rectangle{}, rl.NewVector2(10, 10), true), 1e-6)
}

func TestSeparatorRect(t *testing.T) {
	rect := rl.NewRectangle(0, 0, 400, 200)

	assert.Equal(t, rl.NewRectangle(97, 0, 6, 200), separatorRect(rect, 0.25, true))
	assert.Equal(t, rl.NewRectangle(0, 97, 400, 6), separatorRect(rect, 0.5, false))
}

func TestUIAlloc(t *testing.T) {
	c := New(nil)
	ui := c.newUI(rl.NewRectangle(10, 20, 300, 200), layerBase, 0)

	first := ui.alloc(50, 22)
	second := ui.alloc(80, 22)
	assert.Equal(t, rl.NewRectangle(14, 24, 50, 22), first)
	assert.Equal(t, rl.NewRectangle(14, 50, 80, 22), second)
	assert.Equal(t, rl.NewVector2(296, 144), ui.AvailableSize())

	row := c.newUI(rl.NewRectangle(0, 0, 300, 22), layerBase, 0)
	row.horizontal = true
	a := row.alloc(40, 22)
	b := row.alloc(40, 22)
	assert.Equal(t, a.X+40+c.Spacing, b.X)
	assert.Equal(t, a.Y, b.Y)
}

func TestDrawDeferredInPopups(t *testing.T) {
	c := New(nil)
	var cmds []func()
	ui := c.newUI(rl.NewRectangle(0, 0, 100, 100), layerPopup, 0)
	ui.cmds = &cmds

	ran := false
	ui.draw(func() { ran = true })
	assert.False(t, ran)
	assert.Len(t, cmds, 1)

	cmds[0]()
	assert.True(t, ran)
}

func TestCloseMenuMatchesKey(t *testing.T) {
	c := New(nil)
	c.menu = &popup{key: "Open window"}
	c.contextMenu = &popup{key: "tab:Camera"}

	c.closeMenu("tab:Camera")
	assert.Nil(t, c.contextMenu)
	assert.NotNil(t, c.menu)

	c.closeMenu("Open window")
	assert.Nil(t, c.menu)
}

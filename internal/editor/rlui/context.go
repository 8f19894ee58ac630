// Package rlui draws the editor with raylib and raygui.
//
// Call BeginFrame before editor.Editor.Frame and EndFrame after it, both
// between rl.BeginDrawing and rl.EndDrawing.
package rlui

import (
	"log/slog"

	"dockeditor/internal/editor"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	menuWidth = 200
	popupPad  = 4
)

// popup is an open drop-down or context menu.
type popup struct {
	key    string
	anchor rl.Rectangle
	pos    rl.Vector2
}

// Context implements editor.Context on top of raylib.
type Context struct {
	log *slog.Logger

	MenuBarHeight float32
	TabBarHeight  float32
	RowHeight     float32
	Spacing       float32

	now       float64
	mouse     rl.Vector2
	onScreen  bool
	pressed   bool
	down      bool
	secondary bool
	anyDown   bool
	consumed  bool
	clicks    clickTracker
	cursor    rl.MouseCursor

	// chrome holds last frame's menu bar, floating windows and popups.
	chrome     []chromeRect
	nextChrome []chromeRect
	grab       grab

	menu        *popup
	contextMenu *popup
	popupOpened bool
	popupRects  []rl.Rectangle
	overlays    []func()

	windows     map[uint32]*floating
	seenWindows map[uint32]bool
	nextCascade float32
}

func New(log *slog.Logger) *Context {
	if log == nil {
		log = slog.Default()
	}
	return &Context{
		log:           log,
		MenuBarHeight: 28,
		TabBarHeight:  24,
		RowHeight:     22,
		Spacing:       4,
		windows:       make(map[uint32]*floating),
		seenWindows:   make(map[uint32]bool),
	}
}

// BeginFrame reads this frame's input.
func (c *Context) BeginFrame() {
	c.now = rl.GetTime()
	c.mouse = rl.GetMousePosition()
	c.onScreen = rl.IsCursorOnScreen()
	c.pressed = rl.IsMouseButtonPressed(rl.MouseButtonLeft)
	c.down = rl.IsMouseButtonDown(rl.MouseButtonLeft)
	c.secondary = rl.IsMouseButtonPressed(rl.MouseButtonRight)
	c.anyDown = c.down || rl.IsMouseButtonDown(rl.MouseButtonRight) || rl.IsMouseButtonDown(rl.MouseButtonMiddle)
	c.consumed = false
	c.popupOpened = false
	c.cursor = rl.MouseCursorDefault
	c.overlays = c.overlays[:0]
	c.popupRects = c.popupRects[:0]
	c.nextChrome = c.nextChrome[:0]
	clear(c.seenWindows)

	if c.grab.kind != grabNone && !c.down {
		c.grab = grab{}
	}
}

// EndFrame draws menus on top of everything and closes them on outside clicks.
func (c *Context) EndFrame() {
	for _, draw := range c.overlays {
		draw()
	}

	if c.pressed || c.secondary {
		inside := false
		for _, r := range c.popupRects {
			if rl.CheckCollisionPointRec(c.mouse, r) {
				inside = true
				break
			}
		}
		if c.menu != nil && !inside && !rl.CheckCollisionPointRec(c.mouse, c.menu.anchor) {
			c.menu = nil
		}
		if c.contextMenu != nil && !inside && !c.popupOpened {
			c.contextMenu = nil
		}
	}

	for id := range c.windows {
		if !c.seenWindows[id] {
			delete(c.windows, id)
		}
	}

	c.chrome, c.nextChrome = c.nextChrome, c.chrome

	if c.grab.kind == grabWindowResize {
		c.cursor = rl.MouseCursorResizeAll
	}
	rl.SetMouseCursor(int32(c.cursor))
}

func (c *Context) Input() editor.Input {
	in := editor.Input{
		PrimaryPressed: c.pressed,
		PrimaryDown:    c.down,
		AnyDown:        c.anyDown,
	}
	if c.onScreen {
		latest := c.mouse
		in.LatestPos = &latest
	}
	if c.onScreen || c.anyDown {
		interact := c.mouse
		in.InteractPos = &interact
	}
	return in
}

func (c *Context) WantsPointerInput() bool {
	return c.grab.kind != grabNone || overChrome(c.chrome, c.mouse)
}

// ClickConsumed reports whether a widget took this frame's primary click.
func (c *Context) ClickConsumed() bool {
	return c.consumed
}

// WantsKeyboardInput is always false: no widget here takes text.
func (c *Context) WantsKeyboardInput() bool {
	return false
}

func (c *Context) addChrome(r rl.Rectangle, l layer, owner uint32) {
	c.nextChrome = append(c.nextChrome, chromeRect{rect: r, layer: l, owner: owner})
}

func (c *Context) hovered(r rl.Rectangle, l layer, owner uint32) bool {
	if c.grab.kind != grabNone {
		return false
	}
	if !rl.CheckCollisionPointRec(c.mouse, r) {
		return false
	}
	return !blockedAt(c.chrome, c.mouse, l, owner)
}

// press claims this frame's primary press for a widget under the pointer.
func (c *Context) press(r rl.Rectangle, l layer, owner uint32) bool {
	if !c.pressed || c.consumed || !c.hovered(r, l, owner) {
		return false
	}
	c.consumed = true
	return true
}

func (c *Context) MenuBar(add func(ui editor.UI)) editor.Response {
	bar := rl.NewRectangle(0, 0, float32(rl.GetScreenWidth()), c.MenuBarHeight)
	rl.DrawRectangleRec(bar, colorBgDark)
	rl.DrawRectangle(0, int32(bar.Height)-1, int32(bar.Width), 1, colorBorder)
	c.addChrome(bar, layerBase, 0)

	ui := c.newUI(bar, layerBase, 0)
	ui.horizontal = true
	ui.cursor = rl.NewVector2(bar.X+c.Spacing, bar.Y+(bar.Height-c.RowHeight)/2)
	add(ui)

	resp := editor.Response{Rect: bar, Hovered: c.hovered(bar, layerBase, 0)}
	if c.press(bar, layerBase, 0) {
		resp.Clicked = true
		resp.DoubleClicked = c.clicks.click(c.now, "menubar")
	}
	return resp
}

// openPopup runs add in a popup UI and queues its drawing for EndFrame.
func (c *Context) openPopup(p *popup, add func(ui editor.UI)) {
	var cmds []func()
	area := rl.NewRectangle(p.pos.X, p.pos.Y, menuWidth, float32(rl.GetScreenHeight())-p.pos.Y)
	ui := c.newUI(area, layerPopup, 0)
	ui.cmds = &cmds
	ui.menu = p.key
	ui.cursor = rl.NewVector2(area.X+popupPad, area.Y+popupPad)
	add(ui)

	rect := rl.NewRectangle(p.pos.X, p.pos.Y, menuWidth, ui.cursor.Y-area.Y+popupPad)
	c.popupRects = append(c.popupRects, rect)
	c.addChrome(rect, layerPopup, 0)
	c.overlays = append(c.overlays, func() {
		rl.DrawRectangleRec(rect, colorBgPanel)
		rl.DrawRectangleLinesEx(rect, 1, colorBorder)
		for _, draw := range cmds {
			draw()
		}
	})
}

func (c *Context) closeMenu(key string) {
	if c.menu != nil && c.menu.key == key {
		c.menu = nil
	}
	if c.contextMenu != nil && c.contextMenu.key == key {
		c.contextMenu = nil
	}
}

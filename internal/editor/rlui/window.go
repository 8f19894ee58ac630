package rlui

import (
	"dockeditor/internal/editor"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	minWindowWidth  = 160
	minWindowHeight = 100
	resizeGrip      = 12
)

// floating is the geometry the backend keeps for a floating window.
type floating struct {
	rect rl.Rectangle
}

func (c *Context) ShowWindow(opts editor.WindowOptions, open *bool, add func(ui editor.UI)) (rl.Rectangle, bool) {
	w, ok := c.windows[opts.ID]
	if !ok {
		w = &floating{rect: c.placeWindow(opts)}
		c.windows[opts.ID] = w
	}
	c.seenWindows[opts.ID] = true

	title := rl.NewRectangle(w.rect.X, w.rect.Y, w.rect.Width, c.TabBarHeight)
	closeBox := rl.NewRectangle(title.X+title.Width-closeBoxSize-6, title.Y+(title.Height-closeBoxSize)/2, closeBoxSize, closeBoxSize)
	grip := rl.NewRectangle(w.rect.X+w.rect.Width-resizeGrip, w.rect.Y+w.rect.Height-resizeGrip, resizeGrip, resizeGrip)

	switch {
	case c.grab.kind == grabWindowMove && c.grab.window == opts.ID:
		w.rect.X = c.mouse.X - c.grab.offset.X
		w.rect.Y = c.mouse.Y - c.grab.offset.Y
	case c.grab.kind == grabWindowResize && c.grab.window == opts.ID:
		w.rect.Width = max(c.mouse.X-w.rect.X, minWindowWidth)
		w.rect.Height = max(c.mouse.Y-w.rect.Y, minWindowHeight)
	case c.press(closeBox, layerWindow, opts.ID):
		*open = false
	case opts.Resizable && c.press(grip, layerWindow, opts.ID):
		c.grab = grab{kind: grabWindowResize, window: opts.ID}
	case c.press(title, layerWindow, opts.ID):
		c.grab = grab{kind: grabWindowMove, window: opts.ID, offset: rl.Vector2Subtract(c.mouse, rl.NewVector2(w.rect.X, w.rect.Y))}
	}

	// Geometry may have moved above.
	title = rl.NewRectangle(w.rect.X, w.rect.Y, w.rect.Width, c.TabBarHeight)
	closeBox = rl.NewRectangle(title.X+title.Width-closeBoxSize-6, title.Y+(title.Height-closeBoxSize)/2, closeBoxSize, closeBoxSize)
	content := rl.NewRectangle(w.rect.X, w.rect.Y+c.TabBarHeight, w.rect.Width, w.rect.Height-c.TabBarHeight)

	rl.DrawRectangleRec(w.rect, colorBgPanel)
	rl.DrawRectangleRec(title, colorBgActive)
	rl.DrawRectangleLinesEx(w.rect, 1, colorBorder)
	drawText(uiFontBold, opts.Title, title.X+textPaddingX, title.Y+(title.Height-textSize)/2, textSize, colorTextPrimary)
	closeColor := colorTextMuted
	if c.hovered(closeBox, layerWindow, opts.ID) {
		closeColor = colorClose
	}
	drawText(uiFont, "x", closeBox.X+3, closeBox.Y, textSize, closeColor)

	rl.BeginScissorMode(int32(content.X), int32(content.Y), int32(content.Width), int32(content.Height))
	add(c.newUI(content, layerWindow, opts.ID))
	rl.EndScissorMode()

	if opts.Resizable {
		rl.DrawTriangle(
			rl.NewVector2(w.rect.X+w.rect.Width, w.rect.Y+w.rect.Height-resizeGrip),
			rl.NewVector2(w.rect.X+w.rect.Width-resizeGrip, w.rect.Y+w.rect.Height),
			rl.NewVector2(w.rect.X+w.rect.Width, w.rect.Y+w.rect.Height),
			colorBorder,
		)
	}

	// Clicks on the window body never reach whatever is below it.
	if c.pressed && c.hovered(w.rect, layerWindow, opts.ID) {
		c.consumed = true
	}

	c.addChrome(w.rect, layerWindow, opts.ID)
	return w.rect, true
}

// placeWindow picks the first rectangle of a new floating window: the
// requested position, or a cascade from the top left of the screen.
func (c *Context) placeWindow(opts editor.WindowOptions) rl.Rectangle {
	size := opts.DefaultSize
	if opts.DefaultPos != nil {
		return rl.NewRectangle(opts.DefaultPos.X, opts.DefaultPos.Y, size.X, size.Y+c.TabBarHeight)
	}
	offset := c.nextCascade
	c.nextCascade += 24
	if c.nextCascade > 240 {
		c.nextCascade = 0
	}
	return rl.NewRectangle(80+offset, c.MenuBarHeight+60+offset, size.X, size.Y+c.TabBarHeight)
}

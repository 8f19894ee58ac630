package rlui

import (
	"fmt"

	"dockeditor/internal/editor"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	sliderWidth      = 120
	sliderValueWidth = 48
)

// UI lays widgets out top to bottom, or left to right inside Horizontal.
type UI struct {
	c          *Context
	clip       rl.Rectangle
	cursor     rl.Vector2
	horizontal bool
	layer      layer
	owner      uint32

	// menu is the key of the popup this UI draws into.
	menu string
	// cmds collects draw calls for popups, which are drawn at EndFrame.
	cmds *[]func()
}

func (c *Context) newUI(clip rl.Rectangle, l layer, owner uint32) *UI {
	return &UI{
		c:      c,
		clip:   clip,
		cursor: rl.NewVector2(clip.X+c.Spacing, clip.Y+c.Spacing),
		layer:  l,
		owner:  owner,
	}
}

func (u *UI) child(clip rl.Rectangle) *UI {
	sub := u.c.newUI(clip, u.layer, u.owner)
	sub.menu = u.menu
	sub.cmds = u.cmds
	return sub
}

func (u *UI) draw(fn func()) {
	if u.cmds != nil {
		*u.cmds = append(*u.cmds, fn)
		return
	}
	fn()
}

// alloc reserves a w by h rectangle at the cursor.
func (u *UI) alloc(w, h float32) rl.Rectangle {
	r := rl.NewRectangle(u.cursor.X, u.cursor.Y, w, h)
	if u.horizontal {
		u.cursor.X += w + u.c.Spacing
	} else {
		u.cursor.Y += h + u.c.Spacing
	}
	return r
}

// fullWidth is the width left on the current row.
func (u *UI) fullWidth() float32 {
	return max(u.clip.X+u.clip.Width-u.cursor.X-u.c.Spacing, 0)
}

func (u *UI) respond(r rl.Rectangle, target string) editor.Response {
	resp := editor.Response{Rect: r, Hovered: u.c.hovered(r, u.layer, u.owner)}
	if u.c.press(r, u.layer, u.owner) {
		resp.Clicked = true
		resp.DoubleClicked = u.c.clicks.click(u.c.now, target)
	}
	if resp.Hovered && u.c.secondary {
		resp.SecondaryClicked = true
	}
	return resp
}

func (u *UI) Label(text string) {
	w := measureText(uiFont, text, textSize)
	r := u.alloc(w, u.c.RowHeight)
	u.draw(func() {
		drawText(uiFont, text, r.X, r.Y+(r.Height-textSize)/2, textSize, colorTextSecondary)
	})
}

func (u *UI) Heading(text string) {
	w := measureText(uiFontBold, text, headingSize)
	r := u.alloc(w, u.c.RowHeight+4)
	u.draw(func() {
		drawText(uiFontBold, text, r.X, r.Y+(r.Height-headingSize)/2, headingSize, colorTextPrimary)
	})
}

func (u *UI) Button(text string) editor.Response {
	w := measureText(uiFont, text, textSize) + 2*textPaddingX
	r := u.alloc(w, u.c.RowHeight)
	resp := u.respond(r, text)

	bg, fg := colorBgElement, colorTextSecondary
	if resp.Hovered {
		bg, fg = colorAccent, colorTextPrimary
	}
	u.draw(func() {
		rl.DrawRectangleRounded(r, 0.4, 6, bg)
		drawText(uiFont, text, r.X+textPaddingX, r.Y+(r.Height-textSize)/2, textSize, fg)
	})
	return resp
}

func (u *UI) Selectable(text string, selected bool) editor.Response {
	w := u.fullWidth()
	if u.horizontal {
		w = measureText(uiFont, text, textSize) + 2*textPaddingX
	}
	r := u.alloc(w, u.c.RowHeight)
	resp := u.respond(r, text)

	fg := colorTextSecondary
	if selected {
		fg = colorAccentLight
	}
	u.draw(func() {
		switch {
		case selected:
			rl.DrawRectangleRec(r, colorSelection)
			rl.DrawRectangle(int32(r.X), int32(r.Y), 3, int32(r.Height), colorAccent)
		case resp.Hovered:
			rl.DrawRectangleRec(r, colorBgHover)
		}
		drawText(uiFont, text, r.X+textPaddingX, r.Y+(r.Height-textSize)/2, textSize, fg)
	})
	return resp
}

func (u *UI) Toggle(text string, on bool) bool {
	box := u.c.RowHeight - 6
	w := box + textPaddingX + measureText(uiFont, text, textSize)
	r := u.alloc(w, u.c.RowHeight)
	bounds := rl.NewRectangle(r.X, r.Y+3, box, box)

	if u.cmds == nil {
		next := gui.CheckBox(bounds, text, on)
		// raygui does not know about floating windows; ignore toggles from below one.
		if next == on || u.c.consumed || !u.c.hovered(r, u.layer, u.owner) {
			return on
		}
		u.c.consumed = true
		return next
	}

	if u.c.press(r, u.layer, u.owner) {
		on = !on
	}
	checked := on
	u.draw(func() {
		rl.DrawRectangleLinesEx(bounds, 1, colorBorder)
		if checked {
			rl.DrawRectangleRec(rl.NewRectangle(bounds.X+3, bounds.Y+3, bounds.Width-6, bounds.Height-6), colorAccent)
		}
		drawText(uiFont, text, bounds.X+box+textPaddingX, r.Y+(r.Height-textSize)/2, textSize, colorTextSecondary)
	})
	return on
}

func (u *UI) Slider(text string, value, minValue, maxValue float32) float32 {
	label := measureText(uiFont, text, textSize)
	w := u.fullWidth()
	if u.horizontal {
		w = label + textPaddingX + sliderWidth
	}
	r := u.alloc(w, u.c.RowHeight)
	bounds := rl.NewRectangle(r.X+label+textPaddingX, r.Y+3, max(r.Width-label-textPaddingX-sliderValueWidth, 20), r.Height-6)

	if u.cmds != nil {
		fill := (value - minValue) / max(maxValue-minValue, 1e-6)
		u.draw(func() {
			drawText(uiFont, text, r.X, r.Y+(r.Height-textSize)/2, textSize, colorTextSecondary)
			rl.DrawRectangleLinesEx(bounds, 1, colorBorder)
			rl.DrawRectangleRec(rl.NewRectangle(bounds.X, bounds.Y, bounds.Width*fill, bounds.Height), colorAccent)
		})
		return value
	}

	drawText(uiFont, text, r.X, r.Y+(r.Height-textSize)/2, textSize, colorTextSecondary)
	next := gui.Slider(bounds, "", fmt.Sprintf("%.1f", value), value, minValue, maxValue)
	if next == value || !u.c.hovered(r, u.layer, u.owner) {
		return value
	}
	return rl.Clamp(next, minValue, maxValue)
}

func (u *UI) Separator() {
	if u.horizontal {
		r := u.alloc(1, u.c.RowHeight)
		u.draw(func() { rl.DrawRectangleRec(r, colorBorder) })
		return
	}
	r := u.alloc(u.fullWidth(), 1)
	u.draw(func() { rl.DrawRectangleRec(r, colorBorder) })
}

func (u *UI) MenuButton(text string, add func(ui editor.UI)) {
	c := u.c
	open := c.menu != nil && c.menu.key == text
	resp := u.Button(text)
	if resp.Clicked {
		if open {
			c.menu = nil
		} else {
			c.menu = &popup{key: text}
		}
		open = !open
	}
	if !open {
		return
	}
	c.menu.anchor = resp.Rect
	c.menu.pos = rl.NewVector2(resp.Rect.X, resp.Rect.Y+resp.Rect.Height+2)
	c.openPopup(c.menu, add)
}

func (u *UI) CloseMenu() {
	if u.menu != "" {
		u.c.closeMenu(u.menu)
	}
}

func (u *UI) Horizontal(add func(ui editor.UI)) {
	row := rl.NewRectangle(u.cursor.X, u.cursor.Y, u.fullWidth(), u.c.RowHeight)
	sub := u.child(row)
	sub.horizontal = true
	sub.cursor = rl.NewVector2(row.X, row.Y)
	add(sub)
	u.alloc(row.Width, row.Height)
}

func (u *UI) ClipRect() rl.Rectangle {
	return u.clip
}

func (u *UI) AvailableSize() rl.Vector2 {
	return rl.NewVector2(
		max(u.clip.X+u.clip.Width-u.cursor.X, 0),
		max(u.clip.Y+u.clip.Height-u.cursor.Y, 0),
	)
}

func (u *UI) AllocateSpace(size rl.Vector2) rl.Rectangle {
	return u.alloc(size.X, size.Y)
}

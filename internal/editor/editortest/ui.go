package editortest

import (
	"dockeditor/internal/editor"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UI implements editor.UI by recording widgets on its Context. Widgets are
// stacked in rows of equal height.
type UI struct {
	ctx        *Context
	rect       rl.Rectangle
	used       float32
	horizontal bool
	// menu names the drop-down or context menu this UI draws, if any.
	menu string
}

func (u *UI) next() rl.Rectangle {
	if u.horizontal {
		return rl.NewRectangle(u.rect.X, u.rect.Y, u.rect.Width, rowHeight)
	}
	r := rl.NewRectangle(u.rect.X, u.rect.Y+u.used, u.rect.Width, rowHeight)
	u.used += rowHeight
	return r
}

func (u *UI) respond(text string) editor.Response {
	return editor.Response{
		Rect:          u.next(),
		Clicked:       u.ctx.clicks[text],
		DoubleClicked: u.ctx.doubleClicks[text],
	}
}

func (u *UI) Label(text string) {
	u.ctx.record("label:" + text)
	u.next()
}

func (u *UI) Heading(text string) {
	u.ctx.record("heading:" + text)
	u.next()
}

func (u *UI) Button(text string) editor.Response {
	u.ctx.record("button:" + text)
	return u.respond(text)
}

func (u *UI) Selectable(text string, selected bool) editor.Response {
	if selected {
		u.ctx.record("selected:" + text)
	} else {
		u.ctx.record("selectable:" + text)
	}
	return u.respond(text)
}

func (u *UI) Toggle(text string, on bool) bool {
	u.ctx.record("toggle:" + text)
	u.next()
	if u.ctx.clicks[text] {
		return !on
	}
	return on
}

func (u *UI) Slider(text string, value, minValue, maxValue float32) float32 {
	u.ctx.record("slider:" + text)
	u.next()
	if v, ok := u.ctx.sliders[text]; ok {
		return min(max(v, minValue), maxValue)
	}
	return value
}

func (u *UI) Separator() {
	u.ctx.record("separator")
}

func (u *UI) MenuButton(text string, add func(ui editor.UI)) {
	u.ctx.record("menu:" + text)
	u.next()
	if !u.ctx.openMenus[text] {
		return
	}
	add(&UI{ctx: u.ctx, rect: u.rect, menu: text})
}

func (u *UI) CloseMenu() {
	if u.menu == "" {
		return
	}
	delete(u.ctx.openMenus, u.menu)
	u.ctx.ClosedMenus = append(u.ctx.ClosedMenus, u.menu)
}

func (u *UI) Horizontal(add func(ui editor.UI)) {
	u.ctx.record("row")
	row := u.next()
	add(&UI{ctx: u.ctx, rect: row, horizontal: true, menu: u.menu})
	u.ctx.record("/row")
}

func (u *UI) ClipRect() rl.Rectangle {
	return u.rect
}

func (u *UI) AvailableSize() rl.Vector2 {
	return rl.NewVector2(u.rect.Width, max(u.rect.Height-u.used, 0))
}

func (u *UI) AllocateSpace(size rl.Vector2) rl.Rectangle {
	r := rl.NewRectangle(u.rect.X, u.rect.Y+u.used, size.X, size.Y)
	u.used += size.Y
	return r
}

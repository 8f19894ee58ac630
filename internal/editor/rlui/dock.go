package rlui

import (
	"dockeditor/internal/editor"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const closeBoxSize = 14

type tabRef struct {
	node editor.NodeIndex
	tab  int
}

func (c *Context) DockArea(dock *editor.DockState, viewer editor.TabViewer) {
	area := rl.NewRectangle(0, c.MenuBarHeight, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())-c.MenuBarHeight)
	dock.Layout(area)

	c.separators(dock)

	// Only one press per frame, so at most one tab closes. It is removed after
	// drawing because removal can move panes to other indices.
	var closing *tabRef
	for _, leaf := range dock.Leaves() {
		if ref, ok := c.pane(dock, leaf, viewer); ok {
			closing = &ref
		}
	}
	if closing != nil {
		dock.RemoveTab(closing.node, closing.tab)
	}
}

// separators draws and drags the borders between split panes.
func (c *Context) separators(dock *editor.DockState) {
	for i := 0; i < dock.Len(); i++ {
		node := dock.Node(editor.NodeIndex(i))
		if node == nil || node.IsLeaf() {
			continue
		}
		horizontal := node.Kind == editor.NodeHorizontal
		sep := separatorRect(node.Rect, node.Fraction, horizontal)

		dragging := c.grab.kind == grabSplit && c.grab.node == i
		if dragging {
			node.Fraction = splitFraction(node.Rect, c.mouse, horizontal)
			sep = separatorRect(node.Rect, node.Fraction, horizontal)
		} else if c.press(sep, layerBase, 0) {
			c.grab = grab{kind: grabSplit, node: i}
			dragging = true
		}

		color := colorBorder
		if dragging || c.hovered(sep, layerBase, 0) {
			color = colorAccent
			if horizontal {
				c.cursor = rl.MouseCursorResizeEW
			} else {
				c.cursor = rl.MouseCursorResizeNS
			}
		}
		if horizontal {
			rl.DrawRectangle(int32(sep.X+sep.Width/2)-1, int32(sep.Y), 2, int32(sep.Height), color)
		} else {
			rl.DrawRectangle(int32(sep.X), int32(sep.Y+sep.Height/2)-1, int32(sep.Width), 2, color)
		}
	}
}

// pane draws one leaf: its tab bar, context menu and active tab. It returns
// the tab whose close button was clicked, if any.
func (c *Context) pane(dock *editor.DockState, leaf editor.NodeIndex, viewer editor.TabViewer) (tabRef, bool) {
	node := dock.Node(leaf)
	bar := rl.NewRectangle(node.Rect.X, node.Rect.Y, node.Rect.Width, c.TabBarHeight)
	content := rl.NewRectangle(node.Rect.X, node.Rect.Y+c.TabBarHeight, node.Rect.Width, max(node.Rect.Height-c.TabBarHeight, 0))
	focused, _ := dock.FocusedLeaf()

	rl.DrawRectangleRec(bar, colorBgDark)

	var closing tabRef
	closed := false
	x := bar.X
	for i, tab := range node.Tabs {
		title := viewer.Title(tab)
		closeable := viewer.Closeable(tab)

		w := measureText(uiFont, title, textSize) + 2*textPaddingX
		if closeable {
			w += closeBoxSize + 4
		}
		r := rl.NewRectangle(x, bar.Y, w, bar.Height)
		x += w + 1

		var closeBox rl.Rectangle
		if closeable {
			closeBox = rl.NewRectangle(r.X+r.Width-closeBoxSize-6, r.Y+(r.Height-closeBoxSize)/2, closeBoxSize, closeBoxSize)
			if c.press(closeBox, layerBase, 0) {
				closing = tabRef{node: leaf, tab: i}
				closed = true
			}
		}

		hovered := c.hovered(r, layerBase, 0)
		if c.press(r, layerBase, 0) {
			dock.SetActiveTab(leaf, i)
			dock.SetFocusedNode(leaf)
		}
		if hovered && c.secondary {
			c.contextMenu = &popup{key: "tab:" + title, pos: c.mouse}
			c.popupOpened = true
		}

		active := i == node.Active
		bg, fg := colorBgDark, colorTextMuted
		switch {
		case active:
			bg, fg = colorBgPanel, colorTextPrimary
		case hovered:
			bg, fg = colorBgHover, colorTextSecondary
		}
		rl.DrawRectangleRec(r, bg)
		if active && leaf == focused {
			rl.DrawRectangle(int32(r.X), int32(r.Y+r.Height)-2, int32(r.Width), 2, colorAccent)
		}
		drawText(uiFont, title, r.X+textPaddingX, r.Y+(r.Height-textSize)/2, textSize, fg)
		if closeable {
			closeColor := colorTextMuted
			if c.hovered(closeBox, layerBase, 0) {
				closeColor = colorClose
			}
			drawText(uiFont, "x", closeBox.X+3, closeBox.Y, textSize, closeColor)
		}

		if c.contextMenu != nil && c.contextMenu.key == "tab:"+title {
			c.openPopup(c.contextMenu, func(ui editor.UI) {
				viewer.ContextMenu(ui, tab, leaf)
			})
		}
	}

	if c.pressed && !c.consumed && c.hovered(content, layerBase, 0) {
		dock.SetFocusedNode(leaf)
	}

	active, ok := node.ActiveTab()
	if !ok {
		rl.DrawRectangleRec(content, colorBgPanel)
		return closing, closed
	}

	if !viewer.ClearBackground(active) {
		viewer.UI(c.newUI(content, layerBase, 0), active)
		return closing, closed
	}

	rl.DrawRectangleRec(content, colorBgPanel)
	rl.BeginScissorMode(int32(content.X), int32(content.Y), int32(content.Width), int32(content.Height))
	viewer.UI(c.newUI(content, layerBase, 0), active)
	rl.EndScissorMode()
	return closing, closed
}

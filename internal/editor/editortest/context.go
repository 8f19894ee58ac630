// Package editortest provides a scripted UI surface for driving an
// editor.Editor in tests without a window.
//
// A test scripts the user for one frame (pointer movement, clicks, closing
// windows), runs Editor.Frame, inspects what was drawn and then calls
// NextFrame before scripting the next one.
package editortest

import (
	"slices"

	"dockeditor/internal/editor"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const rowHeight = 20

// ShownWindow records a floating window drawn during the frame.
type ShownWindow struct {
	Options editor.WindowOptions
	Rect    rl.Rectangle
}

// Pane records a dock pane laid out during the frame.
type Pane struct {
	Node   editor.NodeIndex
	Rect   rl.Rectangle
	Titles []string
	Active string
}

// Context implements editor.Context.
type Context struct {
	Screen        rl.Rectangle
	MenuBarHeight float32
	TabBarHeight  float32

	In             editor.Input
	PointerWanted  bool
	KeyboardWanted bool

	barDoubleClick bool
	clicks         map[string]bool
	doubleClicks   map[string]bool
	openMenus      map[string]bool
	selectTabs     map[string]bool
	contextTabs    map[string]bool
	closeTabs      map[string]bool
	closeWindows   map[string]bool
	sliders        map[string]float32
	windowRects    map[uint32]rl.Rectangle

	// Drawn lists every widget in draw order, e.g. "button:Play" or "tab:Viewport".
	Drawn       []string
	Windows     []ShownWindow
	Panes       []Pane
	ClosedMenus []string
}

// New returns a 1280x720 surface with nothing scripted.
func New() *Context {
	return &Context{
		Screen:        rl.NewRectangle(0, 0, 1280, 720),
		MenuBarHeight: 24,
		TabBarHeight:  20,
		clicks:        make(map[string]bool),
		doubleClicks:  make(map[string]bool),
		openMenus:     make(map[string]bool),
		selectTabs:    make(map[string]bool),
		contextTabs:   make(map[string]bool),
		closeTabs:     make(map[string]bool),
		closeWindows:  make(map[string]bool),
		sliders:       make(map[string]float32),
		windowRects:   make(map[uint32]rl.Rectangle),
	}
}

// Click makes every widget labelled label report a click this frame.
func (c *Context) Click(label string) { c.clicks[label] = true }

// DoubleClick makes every widget labelled label report a double click this frame.
func (c *Context) DoubleClick(label string) {
	c.clicks[label] = true
	c.doubleClicks[label] = true
}

// DoubleClickMenuBar double clicks the empty part of the menu bar.
func (c *Context) DoubleClickMenuBar() { c.barDoubleClick = true }

// OpenMenu opens a drop-down menu until the editor closes it.
func (c *Context) OpenMenu(label string) { c.openMenus[label] = true }

// SelectTab clicks the tab with the given title.
func (c *Context) SelectTab(title string) { c.selectTabs[title] = true }

// RightClickTab opens the context menu of the tab with the given title.
func (c *Context) RightClickTab(title string) { c.contextTabs[title] = true }

// CloseTab clicks the close button of the tab with the given title.
func (c *Context) CloseTab(title string) { c.closeTabs[title] = true }

// CloseWindow clicks the close button of the floating window with the given title.
func (c *Context) CloseWindow(title string) { c.closeWindows[title] = true }

// Drag sets the slider labelled label to value this frame.
func (c *Context) Drag(label string, value float32) { c.sliders[label] = value }

// SetWindowRect places floating window id at rect, as if the user moved it.
func (c *Context) SetWindowRect(id uint32, rect rl.Rectangle) { c.windowRects[id] = rect }

// MoveTo moves the pointer to (x, y).
func (c *Context) MoveTo(x, y float32) {
	pos := rl.NewVector2(x, y)
	c.In.LatestPos = &pos
	interact := pos
	c.In.InteractPos = &interact
}

// LeaveWindow moves the pointer off the window.
func (c *Context) LeaveWindow() {
	c.In.LatestPos = nil
	c.In.InteractPos = nil
}

// Press pushes the primary button down this frame.
func (c *Context) Press() {
	c.In.PrimaryPressed = true
	c.In.PrimaryDown = true
	c.In.AnyDown = true
}

// Release lets go of every button.
func (c *Context) Release() {
	c.In.PrimaryPressed = false
	c.In.PrimaryDown = false
	c.In.AnyDown = false
}

// NextFrame forgets the one-shot actions and the draw record.
func (c *Context) NextFrame() {
	c.In.PrimaryPressed = false
	c.barDoubleClick = false
	clear(c.clicks)
	clear(c.doubleClicks)
	clear(c.selectTabs)
	clear(c.contextTabs)
	clear(c.closeTabs)
	clear(c.closeWindows)
	clear(c.sliders)
	c.Drawn = nil
	c.Windows = nil
	c.Panes = nil
	c.ClosedMenus = nil
}

// Has reports whether entry was drawn this frame.
func (c *Context) Has(entry string) bool {
	return slices.Contains(c.Drawn, entry)
}

// Index returns the draw position of entry, or -1.
func (c *Context) Index(entry string) int {
	return slices.Index(c.Drawn, entry)
}

// Window returns the floating window drawn with title this frame.
func (c *Context) Window(title string) (ShownWindow, bool) {
	for _, w := range c.Windows {
		if w.Options.Title == title {
			return w, true
		}
	}
	return ShownWindow{}, false
}

func (c *Context) record(entry string) {
	c.Drawn = append(c.Drawn, entry)
}

func (c *Context) Input() editor.Input      { return c.In }
func (c *Context) WantsPointerInput() bool  { return c.PointerWanted }
func (c *Context) WantsKeyboardInput() bool { return c.KeyboardWanted }

func (c *Context) MenuBar(add func(ui editor.UI)) editor.Response {
	rect := rl.NewRectangle(c.Screen.X, c.Screen.Y, c.Screen.Width, c.MenuBarHeight)
	c.record("menubar")
	add(&UI{ctx: c, rect: rect, horizontal: true})
	return editor.Response{Rect: rect, DoubleClicked: c.barDoubleClick, Clicked: c.barDoubleClick}
}

func (c *Context) DockArea(dock *editor.DockState, viewer editor.TabViewer) {
	area := rl.NewRectangle(c.Screen.X, c.Screen.Y+c.MenuBarHeight, c.Screen.Width, c.Screen.Height-c.MenuBarHeight)

	c.closeScriptedTabs(dock, viewer)
	dock.Layout(area)

	for _, leaf := range dock.Leaves() {
		node := dock.Node(leaf)
		for i, tab := range node.Tabs {
			if c.selectTabs[viewer.Title(tab)] {
				dock.SetActiveTab(leaf, i)
				dock.SetFocusedNode(leaf)
			}
		}

		pane := Pane{Node: leaf, Rect: node.Rect}
		for _, tab := range node.Tabs {
			pane.Titles = append(pane.Titles, viewer.Title(tab))
		}

		for _, tab := range node.Tabs {
			title := viewer.Title(tab)
			if c.contextTabs[title] {
				c.record("contextmenu:" + title)
				viewer.ContextMenu(&UI{ctx: c, rect: node.Rect, menu: "context:" + title}, tab, leaf)
			}
		}

		active, ok := node.ActiveTab()
		if !ok {
			c.Panes = append(c.Panes, pane)
			continue
		}
		pane.Active = viewer.Title(active)
		c.Panes = append(c.Panes, pane)

		content := rl.NewRectangle(node.Rect.X, node.Rect.Y+c.TabBarHeight, node.Rect.Width, node.Rect.Height-c.TabBarHeight)
		c.record("tab:" + pane.Active)
		viewer.UI(&UI{ctx: c, rect: content}, active)
	}
}

func (c *Context) closeScriptedTabs(dock *editor.DockState, viewer editor.TabViewer) {
	for title := range c.closeTabs {
		for {
			leaf, idx, ok := findTitle(dock, viewer, title)
			if !ok {
				break
			}
			tab := dock.Node(leaf).Tabs[idx]
			if !viewer.Closeable(tab) {
				break
			}
			dock.RemoveTab(leaf, idx)
		}
	}
}

func findTitle(dock *editor.DockState, viewer editor.TabViewer, title string) (editor.NodeIndex, int, bool) {
	for _, leaf := range dock.Leaves() {
		for i, tab := range dock.Node(leaf).Tabs {
			if viewer.Title(tab) == title {
				return leaf, i, true
			}
		}
	}
	return 0, 0, false
}

func (c *Context) ShowWindow(opts editor.WindowOptions, open *bool, add func(ui editor.UI)) (rl.Rectangle, bool) {
	rect, moved := c.windowRects[opts.ID]
	if !moved {
		pos := rl.NewVector2(100, 100)
		if opts.DefaultPos != nil {
			pos = *opts.DefaultPos
		}
		rect = rl.NewRectangle(pos.X, pos.Y, opts.DefaultSize.X, opts.DefaultSize.Y)
		c.windowRects[opts.ID] = rect
	}
	if c.closeWindows[opts.Title] {
		*open = false
	}

	c.record("window:" + opts.Title)
	content := rl.NewRectangle(rect.X, rect.Y+rowHeight, rect.Width, rect.Height-rowHeight)
	add(&UI{ctx: c, rect: content})

	c.Windows = append(c.Windows, ShownWindow{Options: opts, Rect: rect})
	return rect, true
}

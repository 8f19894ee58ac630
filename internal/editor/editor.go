// Package editor is the docking host of the in-game editor. It owns the
// registered editor windows and their state, the dock tree and floating
// windows, and decides each frame whether the pointer belongs to the game
// viewport or to the editor.
package editor

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// WindowHandle identifies the OS window the editor is drawn on.
type WindowHandle uint32

type WindowMode int

const (
	WindowModeWindowed WindowMode = iota
	WindowModeBorderlessFullscreen
)

// DisplayWindow is the part of an OS window the editor can change.
type DisplayWindow interface {
	Mode() WindowMode
	SetMode(mode WindowMode)
}

// WindowLookup is implemented by worlds that can resolve window handles.
type WindowLookup interface {
	DisplayWindow(h WindowHandle) (DisplayWindow, bool)
}

type Option func(*Editor)

// WithLogger sets the logger used for warnings and lookup misses.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.log = l
		}
	}
}

// Editor is the editor host. Create one at startup and call Frame once per
// rendered frame from the UI update.
type Editor struct {
	onWindow     WindowHandle
	alwaysActive bool

	active           bool
	pointerUsed      bool
	interaction      Interaction
	listeningForText bool
	viewport         rl.Rectangle

	windows  *registry
	internal *InternalState
	events   *Events
	pointer  PointerState

	log *slog.Logger
}

// New creates an editor drawing on window onWindow. An always-active editor
// starts active and cannot be switched off.
func New(onWindow WindowHandle, alwaysActive bool, opts ...Option) *Editor {
	e := &Editor{
		onWindow:     onWindow,
		alwaysActive: alwaysActive,
		active:       alwaysActive,
		viewport:     rl.NewRectangle(0, 0, 640, 480),
		windows:      newRegistry(),
		internal:     newInternalState(),
		events:       &Events{},
		log:          slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.internal.isRegistered = func(id WindowID) bool {
		_, ok := e.windows.get(id)
		return ok
	}
	return e
}

// AddWindow registers w and creates its state.
func (e *Editor) AddWindow(w Window) error {
	return e.windows.add(w)
}

// MustAddWindow registers w and panics if it was already registered.
func (e *Editor) MustAddWindow(w Window) {
	if err := e.AddWindow(w); err != nil {
		panic(err)
	}
}

// Windows returns the registered window ids in registration order.
func (e *Editor) Windows() []WindowID {
	ids := make([]WindowID, len(e.windows.order))
	for i, d := range e.windows.order {
		ids[i] = d.id
	}
	return ids
}

// WindowName returns the display name of a registered window.
func (e *Editor) WindowName(id WindowID) (string, bool) {
	d, ok := e.windows.get(id)
	if !ok {
		return "", false
	}
	return d.name, true
}

// State returns the state of window id as S.
func State[S any](e *Editor, id WindowID) (S, bool) {
	var zero S
	raw, ok := e.windows.states[id]
	if !ok {
		e.log.Warn("window state requested for unregistered window", "window", id.String())
		return zero, false
	}
	s, ok := raw.(S)
	if !ok {
		e.log.Error("window state has unexpected type", "window", id.String())
		return zero, false
	}
	return s, true
}

// WindowState returns the state of window type W as S.
func WindowState[S any, W Window](e *Editor) (S, bool) {
	return State[S](e, IDOf[W]())
}

func (e *Editor) Window() WindowHandle { return e.onWindow }
func (e *Editor) AlwaysActive() bool   { return e.alwaysActive }
func (e *Editor) Active() bool         { return e.active }

// SetActive switches the editor on or off. Switching off an always-active
// editor is refused with a warning.
func (e *Editor) SetActive(active bool) {
	if !active && e.alwaysActive {
		e.log.Warn("cannot deactivate an always-active editor")
		return
	}
	e.active = active
}

func (e *Editor) Viewport() rl.Rectangle {
	return e.viewport
}

func (e *Editor) IsInViewport(pos rl.Vector2) bool {
	return rl.CheckCollisionPointRec(pos, e.viewport)
}

// PointerUsed reports whether the editor owns the pointer this frame.
func (e *Editor) PointerUsed() bool {
	return e.pointerUsed || e.interaction == InteractionEditor
}

// ListeningForText reports whether a text field in the editor has focus.
func (e *Editor) ListeningForText() bool {
	return e.listeningForText
}

// ViewportInteractionActive reports whether the game view may react to the pointer.
func (e *Editor) ViewportInteractionActive() bool {
	return !e.pointerUsed || e.interaction == InteractionViewport
}

func (e *Editor) Interaction() Interaction { return e.interaction }
func (e *Editor) Logger() *slog.Logger     { return e.log }
func (e *Editor) Pointer() PointerState    { return e.pointer }
func (e *Editor) Internal() *InternalState { return e.internal }
func (e *Editor) Events() *Events          { return e.events }

func (e *Editor) context(id WindowID) *WindowContext {
	return &WindowContext{
		id:       id,
		states:   e.windows.states,
		Host:     e,
		Internal: e.internal,
	}
}

// Frame runs the editor for one frame. A nil ctx means the UI surface is not
// available yet and the frame is skipped.
func (e *Editor) Frame(world any, ctx Context) {
	if ctx == nil {
		return
	}

	e.menuBar(world, ctx)

	if !e.active {
		e.floatingWindows(world, ctx)
		e.pointerUsed = ctx.WantsPointerInput()
		return
	}

	e.dockArea(world, ctx)

	in := ctx.Input()
	e.pointerUsed = in.InteractPos != nil && !e.IsInViewport(*in.InteractPos)
	e.floatingWindows(world, ctx)

	e.setupInputState(in)

	e.listeningForText = ctx.WantsKeyboardInput()
	e.interaction = nextInteraction(e.interaction, in.AnyDown, e.pointerUsed)
}

// dockArea lends the dock tree to the UI backend for the docking pass. Tabs
// that windows open while the tree is lent are moved into it afterwards.
func (e *Editor) dockArea(world any, ctx Context) {
	e.pointer.ViewportPointerPos = nil

	tree := e.internal.lend()
	ctx.DockArea(tree, &tabViewer{editor: e, world: world, ctx: ctx})
	e.internal.giveBack(tree)
}

func (e *Editor) menuBar(world any, ctx Context) {
	bar := ctx.MenuBar(func(ui UI) {
		if !e.alwaysActive && playPauseButton(e.active, ui).Clicked {
			e.active = !e.active
			e.events.Send(ToggleEvent{NowActive: e.active})
		}

		ui.MenuButton("Open window", func(ui UI) {
			for _, w := range e.windows.order {
				w.menuUI(world, e.context(w.id), ui)
			}
		})

		e.drawWindowMenuItems(world, ui)
	})

	if bar.DoubleClicked {
		e.toggleFullscreen(world)
	}
}

// drawWindowMenuItems draws each window's menu bar item by menu bar order.
func (e *Editor) drawWindowMenuItems(world any, ui UI) {
	for _, w := range e.windows.menuBarOrder() {
		w.menuBarUI(world, e.context(w.id), ui)
	}
}

func (e *Editor) toggleFullscreen(world any) {
	lookup, ok := world.(WindowLookup)
	if !ok {
		e.log.Debug("world cannot resolve windows, fullscreen toggle ignored")
		return
	}
	win, ok := lookup.DisplayWindow(e.onWindow)
	if !ok {
		e.log.Warn("editor window not found", "window", e.onWindow)
		return
	}
	if win.Mode() == WindowModeWindowed {
		win.SetMode(WindowModeBorderlessFullscreen)
	} else {
		win.SetMode(WindowModeWindowed)
	}
}

func (e *Editor) windowInner(world any, id WindowID, ui UI) {
	d, ok := e.windows.get(id)
	if !ok {
		e.log.Warn("tab refers to unregistered window", "window", id.String())
		return
	}
	d.ui(world, e.context(id), ui)
}

func (e *Editor) windowContextMenu(ui UI, tab Tab) {
	if ui.Button("Pop out").Clicked {
		if tab.Kind == TabWindow {
			if _, ok := e.internal.PopOut(tab.Window); !ok {
				e.log.Debug("window already floating", "window", tab.Window.String())
			}
		}
		ui.CloseMenu()
	}
}

// floatingWindows draws every floating window. It works on a copy of the list
// and writes geometry and removals back once all windows have been drawn.
func (e *Editor) floatingWindows(world any, ctx Context) {
	state := e.internal
	windows := state.FloatingWindows()
	var closed []int

	clear(state.closedFloatingWindows)

	for i := range windows {
		fw := &windows[i]
		d, ok := e.windows.get(fw.Window)
		if !ok {
			e.log.Warn("floating window refers to unregistered window", "window", fw.Window.String())
			continue
		}

		open := true
		opts := WindowOptions{
			ID:          fw.ID,
			Title:       d.name,
			DefaultSize: d.defaultSize,
			Resizable:   true,
		}
		if fw.InitialPosition != nil {
			pos := rl.Vector2Subtract(*fw.InitialPosition, rl.NewVector2(10, 10))
			opts.DefaultPos = &pos
		}

		rect, shown := ctx.ShowWindow(opts, &open, func(ui UI) {
			e.windowInner(world, fw.Window, ui)
			avail := ui.AvailableSize()
			ui.AllocateSpace(rl.NewVector2(max(avail.X-5, 0), max(avail.Y-5, 0)))
		})
		if shown {
			fw.CurrentRect = rect
		}

		if !open {
			closed = append(closed, i)
			state.closedFloatingWindows[fw.Window] = struct{}{}
		}
	}

	for i := range state.floatingWindows {
		if i < len(windows) {
			state.floatingWindows[i].CurrentRect = windows[i].CurrentRect
		}
	}

	for j := len(closed) - 1; j >= 0; j-- {
		i := closed[j]
		last := len(state.floatingWindows) - 1
		state.floatingWindows[i] = state.floatingWindows[last]
		state.floatingWindows = state.floatingWindows[:last]
	}
}

func (e *Editor) viewportToolbarUI(world any, ui UI) {
	for _, w := range e.windows.order {
		w.viewportToolbarUI(world, e.context(w.id), ui)
	}
}

func (e *Editor) viewportUI(world any, ui UI) {
	for _, w := range e.windows.order {
		w.viewportUI(world, e.context(w.id), ui)
	}
}

func (e *Editor) extractViewportPointerPos(in Input) {
	if in.LatestPos == nil {
		e.pointer.ViewportPointerPos = nil
		return
	}
	local := rl.Vector2Subtract(*in.LatestPos, rl.NewVector2(e.viewport.X, e.viewport.Y))
	e.pointer.ViewportPointerPos = &local
}

func (e *Editor) setupInputState(in Input) {
	e.pointer.PressActive = in.PrimaryDown

	inViewport := false
	overFloating := false
	if in.InteractPos != nil {
		inViewport = e.IsInViewport(*in.InteractPos)
		// Clicks on top of floating windows never count as viewport clicks.
		overFloating = e.internal.pointerOverFloatingWindow(*in.InteractPos)
	}

	if !inViewport || overFloating {
		e.pointer.ViewportPointerPos = nil
	}

	if in.PrimaryPressed {
		e.pointer.PressStartInViewport = inViewport && !overFloating
		return
	}
	if !in.PrimaryDown {
		e.pointer.PressStartInViewport = false
	}
}

func playPauseButton(active bool, ui UI) Response {
	if active {
		return ui.Button("Play")
	}
	return ui.Button("Pause")
}

package editor

import (
	"log/slog"
	"reflect"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultMenuBarOrder is used for windows that do not implement MenuBarOrderer.
const DefaultMenuBarOrder = 100

// WindowID identifies a window plugin by its Go type.
type WindowID struct {
	t reflect.Type
}

// IDOf returns the identity of window type W.
func IDOf[W Window]() WindowID {
	return WindowID{t: reflect.TypeFor[W]()}
}

// IDFor returns the identity of w's dynamic type.
func IDFor(w Window) WindowID {
	return WindowID{t: reflect.TypeOf(w)}
}

func (id WindowID) IsZero() bool {
	return id.t == nil
}

func (id WindowID) String() string {
	if id.t == nil {
		return "<none>"
	}
	return id.t.String()
}

// UIFunc is the erased form of every window callback.
type UIFunc func(world any, cx *WindowContext, ui UI)

// Window is an editor feature hosted in a dock tab or floating window.
// Implementations should be stateless values; everything that changes lives
// in the state returned by NewState, which the editor owns.
type Window interface {
	Name() string
	NewState() any
	UI(world any, cx *WindowContext, ui UI)
}

// Optional window capabilities. A window that does not implement one gets the
// default behaviour for that slot.
type (
	DefaultSizer interface {
		DefaultSize() rl.Vector2
	}
	MenuBarOrderer interface {
		MenuBarOrder() int
	}
	MenuEntry interface {
		MenuUI(world any, cx *WindowContext, ui UI)
	}
	MenuBarItem interface {
		MenuBarUI(world any, cx *WindowContext, ui UI)
	}
	ViewportToolbar interface {
		ViewportToolbarUI(world any, cx *WindowContext, ui UI)
	}
	ViewportOverlay interface {
		ViewportUI(world any, cx *WindowContext, ui UI)
	}
)

// Host is the read side of the editor handed to windows.
type Host interface {
	Active() bool
	Viewport() rl.Rectangle
	IsInViewport(pos rl.Vector2) bool
	PointerUsed() bool
	ListeningForText() bool
	ViewportInteractionActive() bool
	Pointer() PointerState
	Events() *Events
	Logger() *slog.Logger
}

// WindowContext is passed to every window callback.
type WindowContext struct {
	id     WindowID
	states map[WindowID]any

	Host     Host
	Internal *InternalState
}

// ID is the identity of the window being called.
func (cx *WindowContext) ID() WindowID {
	return cx.id
}

// State returns the calling window's state.
func (cx *WindowContext) State() any {
	return cx.states[cx.id]
}

// ContextState returns the calling window's state as S.
func ContextState[S any](cx *WindowContext) (S, bool) {
	s, ok := cx.states[cx.id].(S)
	return s, ok
}

// OtherState returns the state of another registered window as S.
func OtherState[S any](cx *WindowContext, id WindowID) (S, bool) {
	s, ok := cx.states[id].(S)
	return s, ok
}

// OpenFloatingWindow pops the calling window out into a floating window.
func (cx *WindowContext) OpenFloatingWindow() {
	cx.Internal.PopOut(cx.id)
}

func noopUI(any, *WindowContext, UI) {}

// defaultMenuUI opens the window as a floating window from the "Open window" menu.
func defaultMenuUI(name string) UIFunc {
	return func(_ any, cx *WindowContext, ui UI) {
		if ui.Button(name).Clicked {
			cx.OpenFloatingWindow()
			ui.CloseMenu()
		}
	}
}

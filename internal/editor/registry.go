package editor

import (
	"errors"
	"fmt"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrWindowAlreadyRegistered = errors.New("window already registered")
	ErrWindowNotRegistered     = errors.New("window not registered")
)

var defaultWindowSize = rl.Vector2{X: 480, Y: 360}

// windowData is a registered window with its callbacks resolved.
type windowData struct {
	id           WindowID
	name         string
	defaultSize  rl.Vector2
	menuBarOrder int

	ui                UIFunc
	menuUI            UIFunc
	menuBarUI         UIFunc
	viewportToolbarUI UIFunc
	viewportUI        UIFunc
}

func newWindowData(w Window) *windowData {
	d := &windowData{
		id:                IDFor(w),
		name:              w.Name(),
		defaultSize:       defaultWindowSize,
		menuBarOrder:      DefaultMenuBarOrder,
		ui:                w.UI,
		menuUI:            defaultMenuUI(w.Name()),
		menuBarUI:         noopUI,
		viewportToolbarUI: noopUI,
		viewportUI:        noopUI,
	}
	if s, ok := w.(DefaultSizer); ok {
		d.defaultSize = s.DefaultSize()
	}
	if o, ok := w.(MenuBarOrderer); ok {
		d.menuBarOrder = o.MenuBarOrder()
	}
	if m, ok := w.(MenuEntry); ok {
		d.menuUI = m.MenuUI
	}
	if m, ok := w.(MenuBarItem); ok {
		d.menuBarUI = m.MenuBarUI
	}
	if v, ok := w.(ViewportToolbar); ok {
		d.viewportToolbarUI = v.ViewportToolbarUI
	}
	if v, ok := w.(ViewportOverlay); ok {
		d.viewportUI = v.ViewportUI
	}
	return d
}

// registry keeps windows in registration order next to their states.
type registry struct {
	order  []*windowData
	byID   map[WindowID]*windowData
	states map[WindowID]any
}

func newRegistry() *registry {
	return &registry{
		byID:   make(map[WindowID]*windowData),
		states: make(map[WindowID]any),
	}
}

func (r *registry) add(w Window) error {
	d := newWindowData(w)
	if _, exists := r.byID[d.id]; exists {
		return fmt.Errorf("%w: %s", ErrWindowAlreadyRegistered, d.id)
	}
	r.order = append(r.order, d)
	r.byID[d.id] = d
	r.states[d.id] = w.NewState()
	return nil
}

func (r *registry) get(id WindowID) (*windowData, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// menuBarOrder returns the windows sorted by menu bar order, keeping
// registration order for equal ranks.
func (r *registry) menuBarOrder() []*windowData {
	sorted := make([]*windowData, len(r.order))
	copy(sorted, r.order)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].menuBarOrder < sorted[j].menuBarOrder
	})
	return sorted
}

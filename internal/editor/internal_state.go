package editor

import (
	"fmt"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FloatingWindow is a window popped out of the dock tree.
type FloatingWindow struct {
	Window          WindowID
	ID              uint32
	InitialPosition *rl.Vector2
	CurrentRect     rl.Rectangle
}

// InternalState is the layout store: the dock tree plus floating windows.
type InternalState struct {
	dock            *DockState
	floatingWindows []FloatingWindow

	nextFloatingWindowID uint32

	// closedFloatingWindows holds windows closed during the last redraw.
	closedFloatingWindows map[WindowID]struct{}

	// lent is set while the dock tree is handed to the UI backend. Tabs
	// opened meanwhile wait in pendingTabs.
	lent        bool
	pendingTabs []WindowID

	isRegistered func(WindowID) bool
}

func newInternalState() *InternalState {
	return &InternalState{
		dock:                  NewDockState(ViewportTab()),
		closedFloatingWindows: make(map[WindowID]struct{}),
	}
}

// Dock returns the dock tree. While the docking pass runs the tree is lent to
// the UI backend and Dock returns an empty placeholder.
func (s *InternalState) Dock() *DockState {
	return s.dock
}

// PushToFocusedLeaf adds a tab for window id to the focused pane and shows it.
func (s *InternalState) PushToFocusedLeaf(id WindowID) {
	s.dock.PushToFocusedLeaf(WindowTab(id))
}

// OpenTab shows window id as a docked tab. An already docked window gets its
// tab selected and its pane focused instead of a second tab. Calls made while
// the dock tree is being drawn take effect once it is back.
func (s *InternalState) OpenTab(id WindowID) error {
	if s.isRegistered != nil && !s.isRegistered(id) {
		return fmt.Errorf("open tab %s: %w", id, ErrWindowNotRegistered)
	}
	if s.lent {
		if !slices.Contains(s.pendingTabs, id) {
			s.pendingTabs = append(s.pendingTabs, id)
		}
		return nil
	}
	s.openTab(id)
	return nil
}

func (s *InternalState) openTab(id WindowID) {
	if leaf, idx, ok := s.dock.FindTab(WindowTab(id)); ok {
		s.dock.SetActiveTab(leaf, idx)
		s.dock.SetFocusedNode(leaf)
		return
	}
	s.PushToFocusedLeaf(id)
}

// lend swaps in an empty placeholder tree and returns the real one.
func (s *InternalState) lend() *DockState {
	tree := s.dock
	s.dock = NewDockState()
	s.lent = true
	return tree
}

// giveBack restores tree. Tabs pushed into the placeholder are appended to
// the focused pane, then queued OpenTab calls are applied.
func (s *InternalState) giveBack(tree *DockState) {
	pending := s.dock
	s.dock = tree
	s.lent = false
	for _, leaf := range pending.Leaves() {
		for _, tab := range pending.Node(leaf).Tabs {
			tree.PushToFocusedLeaf(tab)
		}
	}
	open := s.pendingTabs
	s.pendingTabs = nil
	for _, id := range open {
		s.openTab(id)
	}
}

// Split places a new pane holding window id next to parent.
func (s *InternalState) Split(parent NodeIndex, split Split, fraction float32, id WindowID) [2]NodeIndex {
	return s.dock.Split(parent, split, fraction, NewLeaf(WindowTab(id)))
}

func (s *InternalState) SplitRight(parent NodeIndex, fraction float32, id WindowID) [2]NodeIndex {
	return s.Split(parent, SplitRight, fraction, id)
}

func (s *InternalState) SplitLeft(parent NodeIndex, fraction float32, id WindowID) [2]NodeIndex {
	return s.Split(parent, SplitLeft, fraction, id)
}

func (s *InternalState) SplitAbove(parent NodeIndex, fraction float32, id WindowID) [2]NodeIndex {
	return s.Split(parent, SplitAbove, fraction, id)
}

func (s *InternalState) SplitBelow(parent NodeIndex, fraction float32, id WindowID) [2]NodeIndex {
	return s.Split(parent, SplitBelow, fraction, id)
}

// SplitMany places one new pane next to parent holding all ids as tabs.
func (s *InternalState) SplitMany(parent NodeIndex, fraction float32, split Split, ids ...WindowID) [2]NodeIndex {
	tabs := make([]Tab, len(ids))
	for i, id := range ids {
		tabs[i] = WindowTab(id)
	}
	return s.dock.Split(parent, split, fraction, NewLeaf(tabs...))
}

// HasFloatingWindow reports whether window id is currently popped out.
func (s *InternalState) HasFloatingWindow(id WindowID) bool {
	for _, w := range s.floatingWindows {
		if w.Window == id {
			return true
		}
	}
	return false
}

// ClosedFloatingWindow reports whether a floating window for id was closed
// during the last redraw.
func (s *InternalState) ClosedFloatingWindow(id WindowID) bool {
	_, ok := s.closedFloatingWindows[id]
	return ok
}

// FloatingWindows returns a copy of the floating windows.
func (s *InternalState) FloatingWindows() []FloatingWindow {
	return append([]FloatingWindow(nil), s.floatingWindows...)
}

// NextFloatingWindowID hands out a new id; ids are never reused.
func (s *InternalState) NextFloatingWindowID() uint32 {
	id := s.nextFloatingWindowID
	s.nextFloatingWindowID++
	return id
}

// PopOut opens a floating window for id with default placement. It returns
// false and does nothing if id is not registered or already floating.
func (s *InternalState) PopOut(id WindowID) (uint32, bool) {
	if s.isRegistered != nil && !s.isRegistered(id) {
		return 0, false
	}
	if s.HasFloatingWindow(id) {
		return 0, false
	}
	fid := s.NextFloatingWindowID()
	s.floatingWindows = append(s.floatingWindows, FloatingWindow{
		Window: id,
		ID:     fid,
	})
	return fid, true
}

// pointerOverFloatingWindow tests pos against the last known window rectangles.
func (s *InternalState) pointerOverFloatingWindow(pos rl.Vector2) bool {
	for _, w := range s.floatingWindows {
		if rl.CheckCollisionPointRec(pos, w.CurrentRect) {
			return true
		}
	}
	return false
}

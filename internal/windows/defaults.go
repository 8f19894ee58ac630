// Package windows holds the editor windows shipped with the engine and the
// layout they open in.
package windows

import (
	"fmt"

	"dockeditor/internal/editor"
)

// RegisterDefaults adds every built-in window to e.
func RegisterDefaults(e *editor.Editor) error {
	for _, w := range []editor.Window{
		HierarchyWindow{},
		InspectorWindow{},
		DiagnosticsWindow{},
		CameraWindow{},
	} {
		if err := e.AddWindow(w); err != nil {
			return fmt.Errorf("register %s: %w", w.Name(), err)
		}
	}
	return nil
}

// DefaultLayout docks the built-in windows around the viewport: hierarchy on
// the left, inspector on the right, diagnostics and cameras below.
func DefaultLayout(e *editor.Editor) {
	s := e.Internal()
	game, _ := splitPair(s.SplitRight(editor.RootNode, 0.78, editor.IDOf[InspectorWindow]()))
	game, _ = splitPair(s.SplitLeft(game, 0.2, editor.IDOf[HierarchyWindow]()))
	game, _ = splitPair(s.SplitMany(game, 0.75, editor.SplitBelow,
		editor.IDOf[DiagnosticsWindow](),
		editor.IDOf[CameraWindow](),
	))
	s.Dock().SetFocusedNode(game)
}

func splitPair(idx [2]editor.NodeIndex) (old, added editor.NodeIndex) {
	return idx[0], idx[1]
}

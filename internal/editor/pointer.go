package editor

import rl "github.com/gen2brain/raylib-go/raylib"

// PointerState is the primary pointer as seen by the viewport. It is rebuilt
// from raw input every frame.
type PointerState struct {
	PressActive          bool
	PressStartInViewport bool

	// ViewportPointerPos is the cursor in viewport-local coordinates, nil when
	// the cursor is outside the viewport or over a floating window.
	ViewportPointerPos *rl.Vector2
}

// IsPointerInViewport reports whether the cursor is over the game view and not
// covered by a floating window.
func (p PointerState) IsPointerInViewport() bool {
	return p.ViewportPointerPos != nil
}

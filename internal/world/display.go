package world

import (
	"dockeditor/internal/editor"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Display is the raylib window seen as an editor.DisplayWindow.
type Display struct{}

func (*Display) Mode() editor.WindowMode {
	if rl.IsWindowState(rl.FlagBorderlessWindowedMode) {
		return editor.WindowModeBorderlessFullscreen
	}
	return editor.WindowModeWindowed
}

// SetMode toggles borderless windowed mode when mode differs from the current one.
func (d *Display) SetMode(mode editor.WindowMode) {
	if d.Mode() != mode {
		rl.ToggleBorderlessWindowed()
	}
}

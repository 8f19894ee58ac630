package windows

import (
	"fmt"

	"dockeditor/internal/editor"
	"dockeditor/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DiagnosticsWindow shows frame timing and scene counts.
type DiagnosticsWindow struct{}

type DiagnosticsState struct {
	// ShowInMenuBar puts the FPS counter in the menu bar.
	ShowInMenuBar bool
}

func (DiagnosticsWindow) Name() string            { return "Diagnostics" }
func (DiagnosticsWindow) NewState() any           { return &DiagnosticsState{ShowInMenuBar: true} }
func (DiagnosticsWindow) DefaultSize() rl.Vector2 { return rl.NewVector2(260, 160) }
func (DiagnosticsWindow) MenuBarOrder() int       { return 50 }

func (DiagnosticsWindow) UI(app any, cx *editor.WindowContext, ui editor.UI) {
	s, ok := editor.ContextState[*DiagnosticsState](cx)
	if !ok {
		return
	}
	w, ok := app.(*world.World)
	if !ok {
		ui.Label("No world")
		return
	}

	stats := w.Stats()
	ui.Label(fmt.Sprintf("FPS %d", stats.FPS))
	ui.Label(fmt.Sprintf("Frame time %.2f ms", stats.FrameTime*1000))
	ui.Label(fmt.Sprintf("Objects %d (%d drawn)", stats.Objects, stats.Drawn))
	ui.Separator()
	w.Paused = ui.Toggle("Pause game", w.Paused)
	s.ShowInMenuBar = ui.Toggle("FPS in menu bar", s.ShowInMenuBar)
}

func (DiagnosticsWindow) MenuBarUI(app any, cx *editor.WindowContext, ui editor.UI) {
	s, ok := editor.ContextState[*DiagnosticsState](cx)
	if !ok || !s.ShowInMenuBar {
		return
	}
	w, ok := app.(*world.World)
	if !ok {
		return
	}
	ui.Label(fmt.Sprintf("%d fps", w.Stats().FPS))
}

package editor

// tabViewer connects the dock area to the editor for one docking pass.
type tabViewer struct {
	editor *Editor
	world  any
	ctx    Context
}

func (v *tabViewer) Title(tab Tab) string {
	if tab.Kind == TabViewport {
		return "Viewport"
	}
	if name, ok := v.editor.WindowName(tab.Window); ok {
		return name
	}
	return tab.Window.String()
}

func (v *tabViewer) UI(ui UI, tab Tab) {
	e := v.editor
	if tab.Kind != TabViewport {
		e.windowInner(v.world, tab.Window, ui)
		return
	}

	viewport := ui.ClipRect()

	ui.Horizontal(func(ui UI) {
		e.viewportToolbarUI(v.world, ui)
	})

	e.viewport = viewport
	e.extractViewportPointerPos(v.ctx.Input())

	e.viewportUI(v.world, ui)
}

func (v *tabViewer) ContextMenu(ui UI, tab Tab, _ NodeIndex) {
	v.editor.windowContextMenu(ui, tab)
}

func (v *tabViewer) Closeable(tab Tab) bool {
	return tab.Kind != TabViewport
}

// ClearBackground is false for the viewport so the game shows through.
func (v *tabViewer) ClearBackground(tab Tab) bool {
	return tab.Kind != TabViewport
}

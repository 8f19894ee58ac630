package editor

import rl "github.com/gen2brain/raylib-go/raylib"

// Input is the raw pointer snapshot for the current frame.
type Input struct {
	// LatestPos is the last known cursor position, nil if the cursor left the window.
	LatestPos *rl.Vector2
	// InteractPos is where the current or last interaction happened.
	InteractPos *rl.Vector2

	PrimaryPressed bool // primary button went down this frame
	PrimaryDown    bool // primary button is held
	AnyDown        bool // any button is held
}

// Response describes what happened to a widget this frame.
type Response struct {
	Rect             rl.Rectangle
	Hovered          bool
	Clicked          bool
	DoubleClicked    bool
	SecondaryClicked bool
}

// UI is a region the editor and its windows draw widgets into.
type UI interface {
	Label(text string)
	Heading(text string)
	Button(text string) Response
	Selectable(text string, selected bool) Response
	Toggle(text string, on bool) bool
	// Slider edits value within [minValue, maxValue] and returns the new value.
	Slider(text string, value, minValue, maxValue float32) float32
	Separator()

	// MenuButton draws a button that opens a drop-down; add runs while it is open.
	MenuButton(text string, add func(ui UI))
	// CloseMenu closes the drop-down or context menu currently being drawn.
	CloseMenu()

	// Horizontal lays out the widgets added by add in a single row.
	Horizontal(add func(ui UI))

	ClipRect() rl.Rectangle
	AvailableSize() rl.Vector2
	AllocateSpace(size rl.Vector2) rl.Rectangle
}

// WindowOptions configures a native-style floating window.
type WindowOptions struct {
	ID          uint32
	Title       string
	DefaultSize rl.Vector2
	DefaultPos  *rl.Vector2
	Resizable   bool
}

// Context is the frame-level UI surface. It is supplied by the UI backend each
// frame; the editor never keeps it past Frame.
type Context interface {
	Input() Input
	WantsPointerInput() bool
	WantsKeyboardInput() bool

	// MenuBar draws the top menu bar and returns the bar's own response.
	MenuBar(add func(ui UI)) Response

	// DockArea lays out and draws the dock tree. It handles tab selection,
	// splitting and closing, and calls viewer for titles, content and
	// context menus.
	DockArea(dock *DockState, viewer TabViewer)

	// ShowWindow draws a floating window. open is set to false when the user
	// closes it. The returned rectangle is valid when ok is true.
	ShowWindow(opts WindowOptions, open *bool, add func(ui UI)) (rect rl.Rectangle, ok bool)
}

// TabViewer is how a DockArea talks back to the editor about tabs.
type TabViewer interface {
	Title(tab Tab) string
	UI(ui UI, tab Tab)
	ContextMenu(ui UI, tab Tab, node NodeIndex)
	Closeable(tab Tab) bool
	ClearBackground(tab Tab) bool
}

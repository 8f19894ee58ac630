package editor_test

import (
	"bytes"
	"log/slog"
	"testing"

	"dockeditor/internal/editor"
	"dockeditor/internal/editor/editortest"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type alphaState struct {
	draws int
}

type alphaWindow struct{}

func (alphaWindow) Name() string      { return "Alpha" }
func (alphaWindow) NewState() any     { return &alphaState{} }
func (alphaWindow) MenuBarOrder() int { return 10 }

func (alphaWindow) UI(_ any, cx *editor.WindowContext, ui editor.UI) {
	s, _ := editor.ContextState[*alphaState](cx)
	s.draws++
	ui.Label("alpha body")
}

func (alphaWindow) MenuBarUI(_ any, _ *editor.WindowContext, ui editor.UI) {
	ui.Label("alpha bar")
}

func (alphaWindow) ViewportToolbarUI(_ any, _ *editor.WindowContext, ui editor.UI) {
	ui.Label("alpha toolbar")
}

func (alphaWindow) ViewportUI(_ any, _ *editor.WindowContext, ui editor.UI) {
	ui.Label("alpha overlay")
}

type betaWindow struct{}

func (betaWindow) Name() string            { return "Beta" }
func (betaWindow) NewState() any           { return nil }
func (betaWindow) MenuBarOrder() int       { return 5 }
func (betaWindow) DefaultSize() rl.Vector2 { return rl.NewVector2(200, 100) }

func (betaWindow) UI(_ any, _ *editor.WindowContext, ui editor.UI) {
	ui.Label("beta body")
}

func (betaWindow) MenuBarUI(_ any, _ *editor.WindowContext, ui editor.UI) {
	ui.Label("beta bar")
}

func (betaWindow) ViewportToolbarUI(_ any, _ *editor.WindowContext, ui editor.UI) {
	ui.Label("beta toolbar")
}

// spawnerWindow opens the beta window as a tab the first time it is drawn.
type spawnerWindow struct{}

type spawnerState struct {
	spawned bool
}

func (spawnerWindow) Name() string  { return "Spawner" }
func (spawnerWindow) NewState() any { return &spawnerState{} }

func (spawnerWindow) UI(_ any, cx *editor.WindowContext, _ editor.UI) {
	s, _ := editor.ContextState[*spawnerState](cx)
	if !s.spawned {
		cx.Internal.PushToFocusedLeaf(editor.IDOf[betaWindow]())
		s.spawned = true
	}
}

// openerWindow asks for the beta tab every frame it is drawn.
type openerWindow struct{}

func (openerWindow) Name() string  { return "Opener" }
func (openerWindow) NewState() any { return nil }

func (openerWindow) UI(_ any, cx *editor.WindowContext, _ editor.UI) {
	if err := cx.Internal.OpenTab(editor.IDOf[betaWindow]()); err != nil {
		panic(err)
	}
}

type fakeDisplay struct {
	mode editor.WindowMode
}

func (d *fakeDisplay) Mode() editor.WindowMode        { return d.mode }
func (d *fakeDisplay) SetMode(mode editor.WindowMode) { d.mode = mode }

type fakeWorld struct {
	windows map[editor.WindowHandle]*fakeDisplay
}

func (w *fakeWorld) DisplayWindow(h editor.WindowHandle) (editor.DisplayWindow, bool) {
	d, ok := w.windows[h]
	return d, ok
}

func newEditor(t *testing.T, alwaysActive bool, windows ...editor.Window) (*editor.Editor, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := editor.New(1, alwaysActive, editor.WithLogger(logger))
	for _, w := range windows {
		require.NoError(t, e.AddWindow(w))
	}
	return e, &logs
}

func TestAddWindowTwice(t *testing.T) {
	e, _ := newEditor(t, true, alphaWindow{})

	err := e.AddWindow(alphaWindow{})
	require.ErrorIs(t, err, editor.ErrWindowAlreadyRegistered)
	assert.Panics(t, func() { e.MustAddWindow(alphaWindow{}) })
	assert.Equal(t, []editor.WindowID{editor.IDOf[alphaWindow]()}, e.Windows())
}

func TestStateExistsAfterRegistration(t *testing.T) {
	e, logs := newEditor(t, true, alphaWindow{})

	s, ok := editor.WindowState[*alphaState, alphaWindow](e)
	require.True(t, ok)
	assert.Equal(t, 0, s.draws)

	_, ok = editor.WindowState[*alphaState, betaWindow](e)
	assert.False(t, ok)
	assert.Contains(t, logs.String(), "unregistered window")

	_, ok = editor.WindowState[int, alphaWindow](e)
	assert.False(t, ok)
	assert.Contains(t, logs.String(), "unexpected type")
}

func TestNilContextSkipsFrame(t *testing.T) {
	e, _ := newEditor(t, true, alphaWindow{})
	assert.NotPanics(t, func() { e.Frame(nil, nil) })
}

func TestMenuBarItemsFollowOrder(t *testing.T) {
	e, _ := newEditor(t, true, alphaWindow{}, betaWindow{})
	ctx := editortest.New()

	e.Frame(nil, ctx)

	beta := ctx.Index("label:beta bar")
	alpha := ctx.Index("label:alpha bar")
	require.NotEqual(t, -1, beta)
	require.NotEqual(t, -1, alpha)
	assert.Less(t, beta, alpha)
}

func TestOpenWindowMenuListsRegistrationOrder(t *testing.T) {
	e, _ := newEditor(t, true, alphaWindow{}, betaWindow{})
	ctx := editortest.New()
	ctx.OpenMenu("Open window")

	e.Frame(nil, ctx)

	assert.Less(t, ctx.Index("button:Alpha"), ctx.Index("button:Beta"))
	ctx.NextFrame()

	ctx.Click("Beta")
	e.Frame(nil, ctx)

	assert.True(t, e.Internal().HasFloatingWindow(editor.IDOf[betaWindow]()))
	assert.Contains(t, ctx.ClosedMenus, "Open window")
}

func TestPushedTabBecomesActive(t *testing.T) {
	e, _ := newEditor(t, true, alphaWindow{})
	ctx := editortest.New()

	e.Internal().PushToFocusedLeaf(editor.IDOf[alphaWindow]())
	e.Frame(nil, ctx)

	require.Len(t, ctx.Panes, 1)
	assert.Equal(t, []string{"Viewport", "Alpha"}, ctx.Panes[0].Titles)
	assert.Equal(t, "Alpha", ctx.Panes[0].Active)
	assert.True(t, ctx.Has("label:alpha body"))

	s, _ := editor.WindowState[*alphaState, alphaWindow](e)
	assert.Equal(t, 1, s.draws)
}

func TestTabPushedDuringDockingIsKept(t *testing.T) {
	e, _ := newEditor(t, true, spawnerWindow{}, betaWindow{})
	ctx := editortest.New()
	e.Internal().PushToFocusedLeaf(editor.IDOf[spawnerWindow]())

	e.Frame(nil, ctx)

	_, _, ok := e.Internal().Dock().FindTab(editor.WindowTab(editor.IDOf[betaWindow]()))
	assert.True(t, ok)
	_, _, ok = e.Internal().Dock().FindTab(editor.ViewportTab())
	assert.True(t, ok)
}

func TestOpenTabDuringDockingKeepsOneTab(t *testing.T) {
	e, _ := newEditor(t, true, openerWindow{}, betaWindow{})
	ctx := editortest.New()
	in := e.Internal()
	in.PushToFocusedLeaf(editor.IDOf[openerWindow]())
	idx := in.SplitBelow(editor.RootNode, 0.6, editor.IDOf[betaWindow]())
	in.Dock().SetFocusedNode(idx[0])

	for range 3 {
		e.Frame(nil, ctx)
		ctx.NextFrame()
	}

	beta := editor.WindowTab(editor.IDOf[betaWindow]())
	count := 0
	for _, leaf := range in.Dock().Leaves() {
		for _, tab := range in.Dock().Node(leaf).Tabs {
			if tab == beta {
				count++
			}
		}
	}
	assert.Equal(t, 1, count)
	focused, ok := in.Dock().FocusedLeaf()
	require.True(t, ok)
	assert.Equal(t, idx[1], focused)
}

func TestViewportCallbacksInRegistrationOrder(t *testing.T) {
	e, _ := newEditor(t, true, betaWindow{}, alphaWindow{})
	ctx := editortest.New()

	e.Frame(nil, ctx)

	assert.Less(t, ctx.Index("label:beta toolbar"), ctx.Index("label:alpha toolbar"))
	assert.Less(t, ctx.Index("label:alpha toolbar"), ctx.Index("label:alpha overlay"))
}

func TestViewportTabCannotBeClosed(t *testing.T) {
	e, _ := newEditor(t, true, alphaWindow{})
	ctx := editortest.New()
	e.Internal().PushToFocusedLeaf(editor.IDOf[alphaWindow]())

	ctx.CloseTab("Viewport")
	ctx.CloseTab("Alpha")
	e.Frame(nil, ctx)

	require.Len(t, ctx.Panes, 1)
	assert.Equal(t, []string{"Viewport"}, ctx.Panes[0].Titles)
}

func TestPopOutAndCloseFloatingWindow(t *testing.T) {
	e, _ := newEditor(t, true, alphaWindow{})
	ctx := editortest.New()
	id := editor.IDOf[alphaWindow]()

	_, ok := e.Internal().PopOut(id)
	require.True(t, ok)

	e.Frame(nil, ctx)
	assert.True(t, ctx.Has("window:Alpha"))
	assert.True(t, e.Internal().HasFloatingWindow(id))
	assert.False(t, e.Internal().ClosedFloatingWindow(id))

	ctx.NextFrame()
	ctx.CloseWindow("Alpha")
	e.Frame(nil, ctx)
	assert.False(t, e.Internal().HasFloatingWindow(id))
	assert.True(t, e.Internal().ClosedFloatingWindow(id))

	ctx.NextFrame()
	e.Frame(nil, ctx)
	assert.False(t, ctx.Has("window:Alpha"))
	assert.False(t, e.Internal().ClosedFloatingWindow(id))
}

func TestFloatingWindowIDsIncrease(t *testing.T) {
	e, _ := newEditor(t, true, alphaWindow{}, betaWindow{})
	ctx := editortest.New()

	first, ok := e.Internal().PopOut(editor.IDOf[alphaWindow]())
	require.True(t, ok)
	second, ok := e.Internal().PopOut(editor.IDOf[betaWindow]())
	require.True(t, ok)
	assert.Greater(t, second, first)

	ctx.CloseWindow("Alpha")
	e.Frame(nil, ctx)
	ctx.NextFrame()

	third, ok := e.Internal().PopOut(editor.IDOf[alphaWindow]())
	require.True(t, ok)
	assert.Greater(t, third, second)

	windows := e.Internal().FloatingWindows()
	require.Len(t, windows, 2)
}

func TestDuplicatePopOutKeepsOneWindow(t *testing.T) {
	e, _ := newEditor(t, true, alphaWindow{})
	ctx := editortest.New()

	e.Internal().PushToFocusedLeaf(editor.IDOf[alphaWindow]())
	_, ok := e.Internal().PopOut(editor.IDOf[alphaWindow]())
	require.True(t, ok)

	ctx.RightClickTab("Alpha")
	ctx.Click("Pop out")
	e.Frame(nil, ctx)

	assert.True(t, ctx.Has("contextmenu:Alpha"))
	assert.Contains(t, ctx.ClosedMenus, "context:Alpha")
	assert.Len(t, e.Internal().FloatingWindows(), 1)
	assert.Len(t, ctx.Windows, 1)
}

func TestContextMenuPopsOut(t *testing.T) {
	e, _ := newEditor(t, true, alphaWindow{})
	ctx := editortest.New()
	e.Internal().PushToFocusedLeaf(editor.IDOf[alphaWindow]())

	ctx.RightClickTab("Alpha")
	ctx.Click("Pop out")
	e.Frame(nil, ctx)

	assert.True(t, e.Internal().HasFloatingWindow(editor.IDOf[alphaWindow]()))
}

func TestFloatingWindowGeometry(t *testing.T) {
	e, _ := newEditor(t, true, betaWindow{})
	ctx := editortest.New()

	fid, _ := e.Internal().PopOut(editor.IDOf[betaWindow]())
	e.Frame(nil, ctx)

	shown, ok := ctx.Window("Beta")
	require.True(t, ok)
	assert.Equal(t, fid, shown.Options.ID)
	assert.Equal(t, rl.NewVector2(200, 100), shown.Options.DefaultSize)
	assert.Nil(t, shown.Options.DefaultPos)

	moved := rl.NewRectangle(300, 200, 200, 100)
	ctx.SetWindowRect(fid, moved)
	ctx.NextFrame()
	e.Frame(nil, ctx)

	assert.Equal(t, moved, e.Internal().FloatingWindows()[0].CurrentRect)
}

func TestViewportPointer(t *testing.T) {
	e, _ := newEditor(t, true)
	ctx := editortest.New()

	ctx.MoveTo(50, 300)
	e.Frame(nil, ctx)

	viewport := e.Viewport()
	assert.Equal(t, ctx.Panes[0].Rect.Y+ctx.TabBarHeight, viewport.Y)
	require.True(t, e.Pointer().IsPointerInViewport())
	assert.Equal(t, rl.NewVector2(50, 300-viewport.Y), *e.Pointer().ViewportPointerPos)
	assert.False(t, e.PointerUsed())

	ctx.NextFrame()
	ctx.MoveTo(50, 5)
	e.Frame(nil, ctx)

	assert.False(t, e.Pointer().IsPointerInViewport())
	assert.True(t, e.PointerUsed())

	ctx.NextFrame()
	ctx.LeaveWindow()
	e.Frame(nil, ctx)

	assert.False(t, e.Pointer().IsPointerInViewport())
	assert.False(t, e.PointerUsed())
}

func TestFloatingWindowHidesViewportPointer(t *testing.T) {
	e, _ := newEditor(t, true, alphaWindow{})
	ctx := editortest.New()

	fid, _ := e.Internal().PopOut(editor.IDOf[alphaWindow]())
	ctx.SetWindowRect(fid, rl.NewRectangle(400, 200, 300, 200))

	ctx.MoveTo(500, 300)
	ctx.Press()
	e.Frame(nil, ctx)

	assert.True(t, e.IsInViewport(rl.NewVector2(500, 300)))
	assert.Nil(t, e.Pointer().ViewportPointerPos)
	assert.True(t, e.Pointer().PressActive)
	assert.False(t, e.Pointer().PressStartInViewport)

	ctx.NextFrame()
	ctx.Release()
	ctx.MoveTo(100, 300)
	e.Frame(nil, ctx)

	assert.NotNil(t, e.Pointer().ViewportPointerPos)
}

func TestPressStartInViewportLastsUntilRelease(t *testing.T) {
	e, _ := newEditor(t, true)
	ctx := editortest.New()

	ctx.MoveTo(50, 300)
	ctx.Press()
	e.Frame(nil, ctx)
	assert.True(t, e.Pointer().PressStartInViewport)
	assert.Equal(t, editor.InteractionViewport, e.Interaction())

	// Drag out of the viewport onto the menu bar.
	ctx.NextFrame()
	ctx.MoveTo(50, 5)
	e.Frame(nil, ctx)
	assert.True(t, e.Pointer().PressStartInViewport)
	assert.Equal(t, editor.InteractionViewport, e.Interaction())
	assert.True(t, e.ViewportInteractionActive())

	ctx.NextFrame()
	ctx.Release()
	e.Frame(nil, ctx)
	assert.False(t, e.Pointer().PressStartInViewport)
	assert.False(t, e.Pointer().PressActive)
	assert.Equal(t, editor.InteractionNone, e.Interaction())
}

func TestEditorDragKeepsPointer(t *testing.T) {
	e, _ := newEditor(t, true)
	ctx := editortest.New()

	ctx.MoveTo(50, 5)
	ctx.Press()
	e.Frame(nil, ctx)
	assert.Equal(t, editor.InteractionEditor, e.Interaction())
	assert.False(t, e.Pointer().PressStartInViewport)

	ctx.NextFrame()
	ctx.MoveTo(50, 300)
	e.Frame(nil, ctx)
	assert.Equal(t, editor.InteractionEditor, e.Interaction())
	assert.True(t, e.PointerUsed())
}

func TestListeningForText(t *testing.T) {
	e, _ := newEditor(t, true)
	ctx := editortest.New()

	ctx.KeyboardWanted = true
	e.Frame(nil, ctx)
	assert.True(t, e.ListeningForText())

	ctx.KeyboardWanted = false
	e.Frame(nil, ctx)
	assert.False(t, e.ListeningForText())
}

func TestInactiveEditorShowsOnlyMenuAndFloatingWindows(t *testing.T) {
	e, _ := newEditor(t, false, alphaWindow{})
	ctx := editortest.New()
	e.Internal().PopOut(editor.IDOf[alphaWindow]())

	ctx.PointerWanted = true
	e.Frame(nil, ctx)

	assert.False(t, e.Active())
	assert.True(t, ctx.Has("button:Pause"))
	assert.False(t, ctx.Has("tab:Viewport"))
	assert.True(t, ctx.Has("window:Alpha"))
	assert.True(t, e.PointerUsed())

	ctx.NextFrame()
	ctx.PointerWanted = false
	e.Frame(nil, ctx)
	assert.False(t, e.PointerUsed())
}

func TestPlayPauseTogglesEditor(t *testing.T) {
	e, _ := newEditor(t, false)
	ctx := editortest.New()

	ctx.Click("Pause")
	e.Frame(nil, ctx)

	assert.True(t, e.Active())
	events := e.Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, editor.ToggleEvent{NowActive: true}, events[0])

	ctx.NextFrame()
	e.Frame(nil, ctx)
	assert.True(t, ctx.Has("button:Play"))
	assert.True(t, ctx.Has("tab:Viewport"))

	ctx.NextFrame()
	ctx.Click("Play")
	e.Frame(nil, ctx)
	assert.False(t, e.Active())
	assert.Equal(t, []editor.Event{editor.ToggleEvent{NowActive: false}}, e.Events().Drain())
}

func TestAlwaysActiveEditor(t *testing.T) {
	e, logs := newEditor(t, true)
	ctx := editortest.New()

	e.Frame(nil, ctx)
	assert.False(t, ctx.Has("button:Play"))
	assert.False(t, ctx.Has("button:Pause"))

	e.SetActive(false)
	assert.True(t, e.Active())
	assert.Contains(t, logs.String(), "cannot deactivate")
}

func TestSetActive(t *testing.T) {
	e, _ := newEditor(t, false)

	e.SetActive(true)
	assert.True(t, e.Active())
	e.SetActive(false)
	assert.False(t, e.Active())
}

func TestMenuBarDoubleClickTogglesFullscreen(t *testing.T) {
	e, _ := newEditor(t, true)
	ctx := editortest.New()
	display := &fakeDisplay{}
	world := &fakeWorld{windows: map[editor.WindowHandle]*fakeDisplay{1: display}}

	ctx.DoubleClickMenuBar()
	e.Frame(world, ctx)
	assert.Equal(t, editor.WindowModeBorderlessFullscreen, display.mode)

	ctx.NextFrame()
	ctx.DoubleClickMenuBar()
	e.Frame(world, ctx)
	assert.Equal(t, editor.WindowModeWindowed, display.mode)
}

func TestFullscreenToggleUnknownWindow(t *testing.T) {
	e, logs := newEditor(t, true)
	ctx := editortest.New()
	world := &fakeWorld{windows: map[editor.WindowHandle]*fakeDisplay{}}

	ctx.DoubleClickMenuBar()
	e.Frame(world, ctx)

	assert.Contains(t, logs.String(), "editor window not found")
}

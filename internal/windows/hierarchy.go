package windows

import (
	"fmt"
	"strings"

	"dockeditor/internal/camera"
	"dockeditor/internal/editor"
	"dockeditor/internal/engine"
	"dockeditor/internal/physics"
	"dockeditor/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HierarchyWindow lists the scene's objects and holds the selection.
type HierarchyWindow struct{}

const pickDistance = 500

type HierarchyState struct {
	Selected engine.GameObjectRef
	created  int
}

func (HierarchyWindow) Name() string            { return "Hierarchy" }
func (HierarchyWindow) NewState() any           { return &HierarchyState{} }
func (HierarchyWindow) DefaultSize() rl.Vector2 { return rl.NewVector2(240, 400) }

func (HierarchyWindow) UI(app any, cx *editor.WindowContext, ui editor.UI) {
	s, ok := editor.ContextState[*HierarchyState](cx)
	if !ok {
		return
	}
	w, ok := app.(*world.World)
	if !ok {
		ui.Label("No scene loaded")
		return
	}
	scene := w.Scene

	ui.Horizontal(func(ui editor.UI) {
		ui.Heading(scene.Name)
		if ui.Button("+ New").Clicked {
			s.created++
			g := engine.NewGameObject(fmt.Sprintf("GameObject_%d", s.created))
			scene.AddGameObject(g)
			s.Selected.Set(g)
		}
	})

	scene.Walk(func(g *engine.GameObject, depth int) bool {
		r := ui.Selectable(hierarchyLabel(g, depth), s.Selected.UID == g.UID)
		if r.Clicked {
			s.Selected.Set(g)
		}
		if r.DoubleClicked {
			cx.Host.Events().Send(editor.FocusSelectedEvent{})
		}
		return true
	})

	selected := s.Selected.Get(scene)
	if selected == nil {
		s.Selected.Clear()
		return
	}
	ui.Separator()
	ui.Horizontal(func(ui editor.UI) {
		if ui.Button("Focus").Clicked {
			cx.Host.Events().Send(editor.FocusSelectedEvent{})
		}
		if ui.Button("Inspect").Clicked {
			if err := cx.Internal.OpenTab(editor.IDOf[InspectorWindow]()); err != nil {
				cx.Host.Logger().Warn("cannot open inspector", "err", err)
			}
		}
		if ui.Button("Delete").Clicked {
			scene.RemoveGameObject(selected)
			s.Selected.Clear()
		}
	})
}

func hierarchyLabel(g *engine.GameObject, depth int) string {
	name := g.Name
	if !g.Active {
		name += " (inactive)"
	}
	return strings.Repeat("  ", depth) + name
}

// Selection resolves the hierarchy selection in w's scene.
func Selection(e *editor.Editor, w *world.World) *engine.GameObject {
	s, ok := editor.WindowState[*HierarchyState, HierarchyWindow](e)
	if !ok {
		return nil
	}
	return s.Selected.Get(w.Scene)
}

// SelectUnderPointer selects the object under the viewport pointer as seen
// through cam. A click on empty space clears the selection.
func SelectUnderPointer(e *editor.Editor, w *world.World, cam rl.Camera3D) bool {
	s, ok := editor.WindowState[*HierarchyState, HierarchyWindow](e)
	if !ok {
		return false
	}
	pos := e.Pointer().ViewportPointerPos
	if pos == nil {
		return false
	}
	vp := e.Viewport()
	ray := camera.ViewportRay(cam, *pos, rl.NewVector2(vp.Width, vp.Height))
	hit, ok := physics.Raycast(w.Scene.GameObjects, ray, pickDistance)
	if !ok {
		s.Selected.Clear()
		return false
	}
	s.Selected.Set(hit.GameObject)
	return true
}

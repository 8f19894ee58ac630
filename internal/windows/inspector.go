package windows

import (
	"fmt"
	"reflect"
	"strings"

	"dockeditor/internal/editor"
	"dockeditor/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// InspectorWindow shows the object selected in the hierarchy.
type InspectorWindow struct{}

func (InspectorWindow) Name() string            { return "Inspector" }
func (InspectorWindow) NewState() any           { return nil }
func (InspectorWindow) DefaultSize() rl.Vector2 { return rl.NewVector2(300, 420) }

func (InspectorWindow) UI(app any, cx *editor.WindowContext, ui editor.UI) {
	w, ok := app.(*world.World)
	if !ok {
		ui.Label("No scene loaded")
		return
	}
	hs, ok := editor.OtherState[*HierarchyState](cx, editor.IDOf[HierarchyWindow]())
	if !ok {
		ui.Label("Hierarchy window not available")
		return
	}
	g := hs.Selected.Get(w.Scene)
	if g == nil {
		ui.Label("Nothing selected")
		return
	}

	ui.Heading(g.Name)
	g.Active = ui.Toggle("Active", g.Active)
	if g.Parent != nil {
		ui.Label("Parent " + g.Parent.Name)
	}
	if len(g.Tags) > 0 {
		ui.Label("Tags " + strings.Join(g.Tags, ", "))
	}

	ui.Separator()
	ui.Heading("Transform")
	t := g.Transform
	ui.Label(vectorLabel("Position", t.Position))
	ui.Label(vectorLabel("Rotation", t.Rotation))
	ui.Label(vectorLabel("Scale", t.Scale))
	ui.Label(vectorLabel("World", g.WorldPosition()))

	if len(g.Components()) == 0 {
		return
	}
	ui.Separator()
	ui.Heading("Components")
	for _, c := range g.Components() {
		ui.Label(componentName(c))
	}
}

func vectorLabel(name string, v rl.Vector3) string {
	return fmt.Sprintf("%s %.2f %.2f %.2f", name, v.X, v.Y, v.Z)
}

func componentName(c any) string {
	t := reflect.TypeOf(c)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

package windows

import (
	"fmt"
	"log/slog"

	"dockeditor/internal/camera"
	"dockeditor/internal/editor"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CameraWindow owns the editor cameras and lets the user switch between them.
type CameraWindow struct{}

type CameraState struct {
	Rig *camera.Rig
}

var cameraKinds = []camera.Kind{camera.KindFly, camera.KindOrbit}

func (CameraWindow) Name() string            { return "Cameras" }
func (CameraWindow) DefaultSize() rl.Vector2 { return rl.NewVector2(260, 180) }

func (CameraWindow) NewState() any {
	return &CameraState{
		Rig: camera.NewRig(rl.NewVector3(14, 10, 14), rl.NewVector3(0, 1, 0)),
	}
}

func (CameraWindow) UI(_ any, cx *editor.WindowContext, ui editor.UI) {
	s, ok := editor.ContextState[*CameraState](cx)
	if !ok {
		return
	}
	ui.Heading("Editor camera")
	for _, kind := range cameraKinds {
		if ui.Selectable(kind.String(), s.Rig.Active == kind).Clicked {
			s.Rig.SetActive(kind)
		}
	}
	ui.Separator()

	cam := s.Rig.Camera3D()
	ui.Label(fmt.Sprintf("Position %.1f %.1f %.1f", cam.Position.X, cam.Position.Y, cam.Position.Z))
	ui.Label(fmt.Sprintf("Target %.1f %.1f %.1f", cam.Target.X, cam.Target.Y, cam.Target.Z))
	switch s.Rig.Active {
	case camera.KindFly:
		s.Rig.Fly.MoveSpeed = ui.Slider("Speed", s.Rig.Fly.MoveSpeed, 1, 100)
	case camera.KindOrbit:
		s.Rig.Orbit.Distance = ui.Slider("Distance", s.Rig.Orbit.Distance, 1, 500)
	}
}

// ViewportToolbarUI shows the camera switch above the viewport.
func (CameraWindow) ViewportToolbarUI(_ any, cx *editor.WindowContext, ui editor.UI) {
	s, ok := editor.ContextState[*CameraState](cx)
	if !ok {
		return
	}
	for _, kind := range cameraKinds {
		if ui.Toggle(kind.String(), s.Rig.Active == kind) && s.Rig.Active != kind {
			s.Rig.SetActive(kind)
		}
	}
}

// CameraRig returns the editor camera rig, if the camera window is registered.
func CameraRig(e *editor.Editor) (*camera.Rig, bool) {
	if _, ok := e.WindowName(editor.IDOf[CameraWindow]()); !ok {
		return nil, false
	}
	s, ok := editor.WindowState[*CameraState, CameraWindow](e)
	if !ok {
		return nil, false
	}
	return s.Rig, true
}

// SetActiveCamera switches the editor camera. Without a camera window it
// logs and does nothing.
func SetActiveCamera(e *editor.Editor, log *slog.Logger, kind camera.Kind) {
	rig, ok := CameraRig(e)
	if !ok {
		log.Info("no camera window registered, active camera not changed", "camera", kind.String())
		return
	}
	rig.SetActive(kind)
}

// DriveCamera feeds one frame of input to the editor camera. Mouse look and
// zoom only apply while the viewport owns the pointer; movement keys are
// ignored while the editor takes text input.
func DriveCamera(e *editor.Editor, in camera.Input, deltaTime float32) {
	rig, ok := CameraRig(e)
	if !ok || !e.Active() {
		return
	}

	pointer := e.Pointer()
	ownsPointer := e.ViewportInteractionActive() &&
		(pointer.IsPointerInViewport() || (pointer.PressActive && pointer.PressStartInViewport))
	if !ownsPointer {
		in.Look = false
		in.Scroll = 0
		in.MouseDelta = rl.Vector2{}
	}
	if e.ListeningForText() {
		in.Forward, in.Back, in.Left, in.Right, in.Up, in.Down = false, false, false, false, false, false
	}
	rig.Update(in, deltaTime)
}

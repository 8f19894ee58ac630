// Package world is the engine state the editor windows operate on: the scene,
// the pause flag, frame statistics and the OS window.
package world

import (
	"fmt"
	"math"
	"math/rand"

	"dockeditor/internal/components"
	"dockeditor/internal/editor"
	"dockeditor/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PrimaryWindow is the handle of the single raylib window.
const PrimaryWindow editor.WindowHandle = 1

// Stats describes the last rendered frame.
type Stats struct {
	FPS       int32
	FrameTime float32 // seconds
	Objects   int
	Drawn     int
}

type World struct {
	Scene  *engine.Scene
	Paused bool

	window editor.DisplayWindow
	stats  Stats
}

// New creates an empty world attached to the primary window.
func New() *World {
	return &World{
		Scene:  engine.NewScene("Main"),
		window: &Display{},
	}
}

// DisplayWindow resolves h to the OS window.
func (w *World) DisplayWindow(h editor.WindowHandle) (editor.DisplayWindow, bool) {
	if h != PrimaryWindow || w.window == nil {
		return nil, false
	}
	return w.window, true
}

// Populate fills the scene with n animated cubes in a ring, each with a
// small marker child.
func (w *World) Populate(n int, rng *rand.Rand) {
	colors := []rl.Color{
		rl.Red, rl.Blue, rl.Green, rl.Purple, rl.Orange,
		rl.Yellow, rl.Pink, rl.SkyBlue, rl.Lime, rl.Magenta,
	}

	for i := range n {
		angle := float32(i) * (2 * math.Pi / float32(n))
		radius := float32(8 + rng.Float64()*5)

		cube := engine.NewGameObject(fmt.Sprintf("Cube_%d", i))
		cube.Tags = []string{"cube"}
		cube.Transform.Position = rl.Vector3{
			X: float32(math.Cos(float64(angle))) * radius,
			Y: float32(1 + rng.Float64()*2),
			Z: float32(math.Sin(float64(angle))) * radius,
		}
		cube.AddComponent(components.NewCubeRenderer(rl.NewVector3(1.5, 1.5, 1.5), colors[i%len(colors)]))
		cube.AddComponent(components.NewSpinner(
			float32(30+rng.Float64()*60),
			float32(0.5+rng.Float64()),
			float32(0.5+rng.Float64()*1.5),
			float32(rng.Float64()*2*math.Pi),
		))

		marker := engine.NewGameObject(fmt.Sprintf("Marker_%d", i))
		marker.Tags = []string{"marker"}
		marker.Transform.Position = rl.NewVector3(0, 1.25, 0)
		marker.AddComponent(components.NewCubeRenderer(rl.NewVector3(0.4, 0.4, 0.4), rl.White))
		cube.AddChild(marker)

		w.Scene.AddGameObject(cube)
		w.Scene.AddGameObject(marker)
	}

	w.Scene.Start()
}

// Update advances the scene. Paused only holds while the editor is open.
func (w *World) Update(deltaTime float32, editing bool) {
	if editing && w.Paused {
		return
	}
	w.Scene.Update(deltaTime)
}

// RecordFrame stores the timing of the frame that just finished.
func (w *World) RecordFrame(deltaTime float32, fps int32) {
	w.stats.FrameTime = deltaTime
	w.stats.FPS = fps
	w.stats.Objects = len(w.Scene.GameObjects)
}

func (w *World) Stats() Stats {
	return w.stats
}

// Draw renders the scene from cam. aspect is the viewport's width/height;
// objects outside the view are skipped.
func (w *World) Draw(cam rl.Camera3D, aspect float32) {
	frustum := ExtractFrustum(cam, aspect)

	rl.BeginMode3D(cam)
	rl.DrawGrid(40, 1)

	drawn := 0
	for _, g := range w.Scene.GameObjects {
		if !g.Active || !frustum.ContainsSphere(g.WorldPosition(), g.Radius()) {
			continue
		}
		for _, c := range g.Components() {
			if d, ok := c.(engine.Drawable); ok {
				d.Draw()
				drawn++
			}
		}
	}

	rl.EndMode3D()
	w.stats.Drawn = drawn
}

func (w *World) Unload() {
	for _, g := range w.Scene.GameObjects {
		if r := engine.GetComponent[*components.CubeRenderer](g); r != nil {
			r.Unload()
		}
	}
}

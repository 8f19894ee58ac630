package world

import (
	"math/rand"
	"testing"

	"dockeditor/internal/editor"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulateBuildsCubesWithMarkers(t *testing.T) {
	w := New()
	w.Populate(3, rand.New(rand.NewSource(1)))

	require.Len(t, w.Scene.GameObjects, 6)
	assert.Len(t, w.Scene.FindByTag("cube"), 3)

	marker := w.Scene.FindByName("Marker_1")
	require.NotNil(t, marker)
	assert.Equal(t, 1, marker.Depth())
	assert.Equal(t, "Cube_1", marker.Parent.Name)
}

func TestPauseHoldsWhileEditing(t *testing.T) {
	w := New()
	w.Populate(1, rand.New(rand.NewSource(1)))
	cube := w.Scene.FindByName("Cube_0")
	before := cube.Transform

	w.Paused = true
	w.Update(0.5, true)
	assert.Equal(t, before, cube.Transform)

	w.Update(0.5, false)
	assert.NotEqual(t, before.Rotation, cube.Transform.Rotation, "pause is ignored outside the editor")

	w.Paused = false
	rot := cube.Transform.Rotation
	w.Update(0.5, true)
	assert.NotEqual(t, rot, cube.Transform.Rotation)
}

func TestRecordFrame(t *testing.T) {
	w := New()
	w.Populate(2, rand.New(rand.NewSource(1)))

	w.RecordFrame(0.016, 60)

	s := w.Stats()
	assert.Equal(t, int32(60), s.FPS)
	assert.InDelta(t, 0.016, s.FrameTime, 1e-6)
	assert.Equal(t, 4, s.Objects)
}

func TestDisplayWindowLookup(t *testing.T) {
	w := New()

	_, ok := w.DisplayWindow(PrimaryWindow)
	assert.True(t, ok)
	_, ok = w.DisplayWindow(editor.WindowHandle(7))
	assert.False(t, ok)
}

func TestFrustumContainsSphere(t *testing.T) {
	cam := rl.Camera3D{
		Position:   rl.NewVector3(0, 0, 10),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
	f := ExtractFrustum(cam, 16.0/9.0)

	assert.True(t, f.ContainsSphere(rl.NewVector3(0, 0, 0), 1))
	assert.False(t, f.ContainsSphere(rl.NewVector3(0, 0, 20), 1), "behind the camera")
	assert.False(t, f.ContainsSphere(rl.NewVector3(100, 0, 0), 1), "far to the side")
	assert.True(t, f.ContainsSphere(rl.NewVector3(0, 0, 12), 2.5), "straddles the near plane")
}

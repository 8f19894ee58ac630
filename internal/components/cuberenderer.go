package components

import (
	"dockeditor/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CubeRenderer draws a solid cube. The GPU model is created on the first
// Draw so objects can be built before the window exists.
type CubeRenderer struct {
	engine.BaseComponent
	Size  rl.Vector3
	Color rl.Color

	model  rl.Model
	loaded bool
}

func NewCubeRenderer(size rl.Vector3, color rl.Color) *CubeRenderer {
	return &CubeRenderer{Size: size, Color: color}
}

// LocalBounds is the cube's box around the object origin.
func (c *CubeRenderer) LocalBounds() rl.BoundingBox {
	half := rl.Vector3Scale(c.Size, 0.5)
	return rl.NewBoundingBox(rl.Vector3Negate(half), half)
}

func (c *CubeRenderer) Draw() {
	g := c.GetGameObject()
	if g == nil || !g.Active {
		return
	}
	if !c.loaded {
		c.model = rl.LoadModelFromMesh(rl.GenMeshCube(c.Size.X, c.Size.Y, c.Size.Z))
		c.loaded = true
	}

	scale := g.WorldScale()
	scaleMatrix := rl.MatrixScale(scale.X, scale.Y, scale.Z)

	rot := g.WorldRotation()
	rotX := rl.MatrixRotateX(rot.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(rot.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(rot.Z * rl.Deg2rad)
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	pos := g.WorldPosition()
	transMatrix := rl.MatrixTranslate(pos.X, pos.Y, pos.Z)

	// scale -> rotate -> translate
	c.model.Transform = rl.MatrixMultiply(rl.MatrixMultiply(scaleMatrix, rotMatrix), transMatrix)

	rl.DrawModel(c.model, rl.Vector3Zero(), 1.0, c.Color)
	rl.DrawModelWires(c.model, rl.Vector3Zero(), 1.0, rl.Fade(rl.Black, 0.3))
}

func (c *CubeRenderer) Unload() {
	if c.loaded {
		rl.UnloadModel(c.model)
		c.loaded = false
	}
}

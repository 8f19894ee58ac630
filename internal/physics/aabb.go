// Package physics answers geometric queries against the scene, such as which
// object lies under the cursor.
package physics

import (
	"math"

	"dockeditor/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// WorldAABB returns the world-space box around g's local bounds. Objects
// without bounds get a unit cube around their position.
func WorldAABB(g *engine.GameObject) AABB {
	var local rl.BoundingBox
	found := false
	for _, c := range g.Components() {
		if b, ok := c.(engine.Bounded); ok {
			local = b.LocalBounds()
			found = true
			break
		}
	}
	if !found {
		return NewAABBFromCenter(g.WorldPosition(), rl.NewVector3(1, 1, 1))
	}

	scale := g.WorldScale()
	rot := g.WorldRotation()
	pos := g.WorldPosition()
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(
		rl.MatrixRotateX(rot.X*rl.Deg2rad),
		rl.MatrixRotateY(rot.Y*rl.Deg2rad)),
		rl.MatrixRotateZ(rot.Z*rl.Deg2rad))
	// scale -> rotate -> translate
	m := rl.MatrixMultiply(
		rl.MatrixMultiply(rl.MatrixScale(scale.X, scale.Y, scale.Z), rotMatrix),
		rl.MatrixTranslate(pos.X, pos.Y, pos.Z),
	)

	inf := float32(math.Inf(1))
	out := AABB{
		Min: rl.NewVector3(inf, inf, inf),
		Max: rl.NewVector3(-inf, -inf, -inf),
	}
	for i := range 8 {
		corner := local.Min
		if i&1 != 0 {
			corner.X = local.Max.X
		}
		if i&2 != 0 {
			corner.Y = local.Max.Y
		}
		if i&4 != 0 {
			corner.Z = local.Max.Z
		}
		p := rl.Vector3Transform(corner, m)
		out.Min = rl.Vector3Min(out.Min, p)
		out.Max = rl.Vector3Max(out.Max, p)
	}
	return out
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

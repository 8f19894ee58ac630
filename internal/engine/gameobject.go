package engine

import (
	"math"
	"slices"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var lastUID atomic.Uint64

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

// GameObject is a node of the scene shown in the hierarchy.
type GameObject struct {
	UID       uint64
	Name      string
	Tags      []string
	Transform Transform
	Active    bool
	Scene     *Scene
	Parent    *GameObject
	Children  []*GameObject

	components []Component
	started    bool
}

// NewGameObject creates an active object at the origin with a fresh UID.
func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    lastUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Scale: rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of g that is a T.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) HasTag(tag string) bool {
	return slices.Contains(g.Tags, tag)
}

func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	if i := slices.Index(g.Children, child); i >= 0 {
		g.Children = slices.Delete(g.Children, i, i+1)
		child.Parent = nil
	}
}

// Depth is the number of ancestors of g.
func (g *GameObject) Depth() int {
	depth := 0
	for p := g.Parent; p != nil; p = p.Parent {
		depth++
	}
	return depth
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	scale := g.Parent.WorldScale()
	local := rl.Vector3{
		X: g.Transform.Position.X * scale.X,
		Y: g.Transform.Position.Y * scale.Y,
		Z: g.Transform.Position.Z * scale.Z,
	}
	return rl.Vector3Add(g.Parent.WorldPosition(), rl.Vector3Transform(local, rotationMatrix(g.Parent.WorldRotation())))
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}

// Radius is half the largest world-space extent of the object's bounds, or
// 1 when no component reports bounds.
func (g *GameObject) Radius() float32 {
	var b Bounded
	for _, c := range g.components {
		if bc, ok := c.(Bounded); ok {
			b = bc
			break
		}
	}
	if b == nil {
		return 1
	}
	box := b.LocalBounds()
	scale := g.WorldScale()
	size := max(
		(box.Max.X-box.Min.X)*abs(scale.X),
		(box.Max.Y-box.Min.Y)*abs(scale.Y),
		(box.Max.Z-box.Min.Z)*abs(scale.Z),
	)
	return size / 2
}

// rotationMatrix applies X, then Y, then Z rotations given in degrees.
func rotationMatrix(deg rl.Vector3) rl.Matrix {
	rx := rl.MatrixRotateX(deg.X * rl.Deg2rad)
	ry := rl.MatrixRotateY(deg.Y * rl.Deg2rad)
	rz := rl.MatrixRotateZ(deg.Z * rl.Deg2rad)
	return rl.MatrixMultiply(rl.MatrixMultiply(rx, ry), rz)
}

func abs(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

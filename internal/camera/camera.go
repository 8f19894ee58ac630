// Package camera holds the editor cameras that look into the viewport.
package camera

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Kind selects which editor camera drives the viewport.
type Kind int

const (
	KindFly Kind = iota
	KindOrbit
)

func (k Kind) String() string {
	switch k {
	case KindFly:
		return "fly"
	case KindOrbit:
		return "orbit"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Input is one frame of camera controls.
type Input struct {
	MouseDelta rl.Vector2
	Scroll     float32
	Look       bool // look/orbit button held

	Forward, Back, Left, Right, Up, Down bool

	// Boost makes the scroll wheel change fly speed instead of zooming.
	Boost bool
}

// FlyCamera moves freely with WASD while the look button is held.
type FlyCamera struct {
	Position  rl.Vector3
	Yaw       float32
	Pitch     float32
	MoveSpeed float32
	LookSpeed float32

	zoom zoom
}

func NewFly(pos rl.Vector3) *FlyCamera {
	return &FlyCamera{
		Position:  pos,
		Yaw:       -135.0,
		Pitch:     -30.0,
		MoveSpeed: 10.0,
		LookSpeed: 0.1,
	}
}

func (c *FlyCamera) Update(in Input, deltaTime float32) {
	if c.zoom.active {
		c.Position = c.zoom.step(deltaTime)
	}

	if in.Boost && in.Scroll != 0 {
		c.MoveSpeed = rl.Clamp(c.MoveSpeed+in.Scroll*2, 1, 100)
	}

	if !in.Look {
		return
	}
	// Manual control cancels a focus animation.
	c.zoom.active = false

	c.Yaw += in.MouseDelta.X * c.LookSpeed
	c.Pitch = rl.Clamp(c.Pitch-in.MouseDelta.Y*c.LookSpeed, -89, 89)

	forward, right := c.directions()
	speed := c.MoveSpeed * deltaTime
	move := func(dir rl.Vector3, amount float32) {
		c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(dir, amount))
	}
	if in.Forward {
		move(forward, speed)
	}
	if in.Back {
		move(forward, -speed)
	}
	if in.Left {
		move(right, speed)
	}
	if in.Right {
		move(right, -speed)
	}
	if in.Up {
		c.Position.Y += speed
	}
	if in.Down {
		c.Position.Y -= speed
	}
}

func (c *FlyCamera) directions() (forward, right rl.Vector3) {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180

	forward = rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
	right = rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Y: 0,
		Z: float32(-math.Cos(yawRad)),
	}
	return
}

// LookAt turns the camera towards target without moving it.
func (c *FlyCamera) LookAt(target rl.Vector3) {
	dir := rl.Vector3Normalize(rl.Vector3Subtract(target, c.Position))
	c.Pitch = float32(math.Asin(float64(dir.Y))) * rl.Rad2deg
	c.Yaw = float32(math.Atan2(float64(dir.Z), float64(dir.X))) * rl.Rad2deg
}

// Focus starts a short zoom that frames a sphere of radius at target, keeping
// the current look direction.
func (c *FlyCamera) Focus(target rl.Vector3, radius float32) {
	distance := max(radius*3, 3)
	forward, _ := c.directions()
	c.zoom.start(c.Position, rl.Vector3Subtract(target, rl.Vector3Scale(forward, distance)))
}

// Focusing reports whether a focus animation is running.
func (c *FlyCamera) Focusing() bool {
	return c.zoom.active
}

func (c *FlyCamera) Camera3D() rl.Camera3D {
	forward, _ := c.directions()
	return rl.Camera3D{
		Position:   c.Position,
		Target:     rl.Vector3Add(c.Position, forward),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
}

// zoom eases a position towards a target over about a quarter second.
type zoom struct {
	active   bool
	from, to rl.Vector3
	progress float32
}

const zoomSpeed = 4.0

func (z *zoom) start(from, to rl.Vector3) {
	z.active = true
	z.from = from
	z.to = to
	z.progress = 0
}

func (z *zoom) step(deltaTime float32) rl.Vector3 {
	z.progress += deltaTime * zoomSpeed
	if z.progress >= 1 {
		z.progress = 1
		z.active = false
		return z.to
	}
	// ease-out cubic
	t := z.progress
	ease := 1 - (1-t)*(1-t)*(1-t)
	return rl.Vector3Lerp(z.from, z.to, ease)
}

package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	minOrbitDistance = 1
	maxOrbitDistance = 500
)

// OrbitCamera circles a target point. Dragging with the look button rotates
// it and the scroll wheel zooms.
type OrbitCamera struct {
	Target    rl.Vector3
	Distance  float32
	Yaw       float32
	Pitch     float32
	LookSpeed float32
	ZoomSpeed float32

	zoom zoom
}

func NewOrbit(target rl.Vector3, distance float32) *OrbitCamera {
	return &OrbitCamera{
		Target:    target,
		Distance:  rl.Clamp(distance, minOrbitDistance, maxOrbitDistance),
		Yaw:       45,
		Pitch:     30,
		LookSpeed: 0.3,
		ZoomSpeed: 0.1,
	}
}

func (c *OrbitCamera) Update(in Input, deltaTime float32) {
	if c.zoom.active {
		c.Target = c.zoom.step(deltaTime)
	}
	if in.Look {
		c.zoom.active = false
		c.Yaw += in.MouseDelta.X * c.LookSpeed
		c.Pitch = rl.Clamp(c.Pitch+in.MouseDelta.Y*c.LookSpeed, -89, 89)
	}
	if in.Scroll != 0 && !in.Boost {
		c.Distance = rl.Clamp(c.Distance*(1-in.Scroll*c.ZoomSpeed), minOrbitDistance, maxOrbitDistance)
	}
}

// Position is where the camera sits on its orbit.
func (c *OrbitCamera) Position() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180
	offset := rl.Vector3{
		X: float32(math.Cos(pitchRad)*math.Cos(yawRad)) * c.Distance,
		Y: float32(math.Sin(pitchRad)) * c.Distance,
		Z: float32(math.Cos(pitchRad)*math.Sin(yawRad)) * c.Distance,
	}
	return rl.Vector3Add(c.Target, offset)
}

// Focus moves the orbit centre to target and fits a sphere of radius.
func (c *OrbitCamera) Focus(target rl.Vector3, radius float32) {
	c.Distance = rl.Clamp(max(radius*3, 3), minOrbitDistance, maxOrbitDistance)
	c.zoom.start(c.Target, target)
}

func (c *OrbitCamera) Focusing() bool {
	return c.zoom.active
}

func (c *OrbitCamera) Camera3D() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
}

package components

import (
	"math"

	"dockeditor/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Spinner turns its object around Y and bobs it along a circle around the
// position it had when the scene started.
type Spinner struct {
	engine.BaseComponent
	RotationSpeed   float32 // degrees per second
	CurrentRotation float32
	MovementRadius  float32
	MovementSpeed   float32
	Phase           float32

	origin rl.Vector3
	time   float32
}

func NewSpinner(rotSpeed, moveRadius, moveSpeed, phase float32) *Spinner {
	return &Spinner{
		RotationSpeed:  rotSpeed,
		MovementRadius: moveRadius,
		MovementSpeed:  moveSpeed,
		Phase:          phase,
	}
}

func (s *Spinner) Start() {
	if g := s.GetGameObject(); g != nil {
		s.origin = g.Transform.Position
	}
}

func (s *Spinner) Update(deltaTime float32) {
	g := s.GetGameObject()
	if g == nil {
		return
	}

	s.time += deltaTime

	t := s.time*s.MovementSpeed + s.Phase
	offset := rl.Vector3{
		X: float32(math.Cos(float64(t))) * s.MovementRadius,
		Y: float32(math.Sin(float64(t*2))) * 0.5,
		Z: float32(math.Sin(float64(t))) * s.MovementRadius,
	}
	g.Transform.Position = rl.Vector3Add(s.origin, offset)

	s.CurrentRotation += s.RotationSpeed * deltaTime
	if s.CurrentRotation > 360 {
		s.CurrentRotation -= 360
	}
	g.Transform.Rotation.Y = s.CurrentRotation
}

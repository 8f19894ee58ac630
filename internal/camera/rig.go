package camera

import rl "github.com/gen2brain/raylib-go/raylib"

// Rig holds both editor cameras and which one is active.
type Rig struct {
	Active Kind
	Fly    *FlyCamera
	Orbit  *OrbitCamera
}

func NewRig(pos, target rl.Vector3) *Rig {
	fly := NewFly(pos)
	fly.LookAt(target)
	return &Rig{
		Active: KindFly,
		Fly:    fly,
		Orbit:  NewOrbit(target, rl.Vector3Distance(pos, target)),
	}
}

func (r *Rig) Update(in Input, deltaTime float32) {
	switch r.Active {
	case KindOrbit:
		r.Orbit.Update(in, deltaTime)
	default:
		r.Fly.Update(in, deltaTime)
	}
}

func (r *Rig) Focus(target rl.Vector3, radius float32) {
	switch r.Active {
	case KindOrbit:
		r.Orbit.Focus(target, radius)
	default:
		r.Fly.Focus(target, radius)
	}
}

// SetActive switches cameras. The new camera starts from the old one's view.
func (r *Rig) SetActive(kind Kind) {
	if kind == r.Active {
		return
	}
	switch kind {
	case KindOrbit:
		fly := r.Fly.Camera3D()
		r.Orbit.Target = rl.Vector3Add(fly.Position, rl.Vector3Scale(rl.Vector3Subtract(fly.Target, fly.Position), r.Orbit.Distance))
		r.Orbit.Yaw = r.Fly.Yaw + 180
		r.Orbit.Pitch = -r.Fly.Pitch
	case KindFly:
		r.Fly.Position = r.Orbit.Position()
		r.Fly.LookAt(r.Orbit.Target)
	}
	r.Active = kind
}

func (r *Rig) Camera3D() rl.Camera3D {
	if r.Active == KindOrbit {
		return r.Orbit.Camera3D()
	}
	return r.Fly.Camera3D()
}

package physics

import (
	"math"

	"dockeditor/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	GameObject *engine.GameObject
	Point      rl.Vector3
	Distance   float32
}

// Raycast returns the closest active object whose world box the ray hits.
func Raycast(objects []*engine.GameObject, ray rl.Ray, maxDistance float32) (RaycastHit, bool) {
	direction := rl.Vector3Normalize(ray.Direction)
	closest := RaycastHit{Distance: maxDistance}
	hit := false

	for _, obj := range objects {
		if !obj.Active {
			continue
		}
		t, ok := raycastBox(ray.Position, direction, WorldAABB(obj), maxDistance)
		if !ok || t >= closest.Distance {
			continue
		}
		closest = RaycastHit{
			GameObject: obj,
			Point:      rl.Vector3Add(ray.Position, rl.Vector3Scale(direction, t)),
			Distance:   t,
		}
		hit = true
	}
	return closest, hit
}

// raycastBox is the slab test. A ray starting inside the box hits its far side.
func raycastBox(origin, direction rl.Vector3, box AABB, maxDistance float32) (float32, bool) {
	tmin := float32(math.Inf(-1))
	tmax := float32(math.Inf(1))

	axes := [3][4]float32{
		{origin.X, direction.X, box.Min.X, box.Max.X},
		{origin.Y, direction.Y, box.Min.Y, box.Max.Y},
		{origin.Z, direction.Z, box.Min.Z, box.Max.Z},
	}
	for _, a := range axes {
		o, d, lo, hi := a[0], a[1], a[2], a[3]
		if d == 0 {
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return 0, false
	}
	return t, true
}

package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	clipNear = 0.01
	clipFar  = 1000.0
)

// Frustum holds the clip planes of a camera view with normals pointing
// inward, ordered left, right, bottom, top, near, far.
type Frustum struct {
	planes [6]plane
}

// plane is n·p + d = 0.
type plane struct {
	n rl.Vector3
	d float32
}

// ExtractFrustum builds the frustum of camera for a view of the given
// width/height aspect, using the clip planes of the combined view-projection
// matrix.
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)
	vp := rl.MatrixMultiply(view, projection(camera, aspect))

	// raylib matrices are column major: row i of the clip transform is
	// M(i), M(i+4), M(i+8), M(i+12).
	rows := [4][4]float32{
		{vp.M0, vp.M4, vp.M8, vp.M12},
		{vp.M1, vp.M5, vp.M9, vp.M13},
		{vp.M2, vp.M6, vp.M10, vp.M14},
		{vp.M3, vp.M7, vp.M11, vp.M15},
	}

	var f Frustum
	for axis := range 3 {
		f.planes[axis*2] = clipPlane(rows[3], rows[axis], 1)
		f.planes[axis*2+1] = clipPlane(rows[3], rows[axis], -1)
	}
	return f
}

func projection(camera rl.Camera3D, aspect float32) rl.Matrix {
	if camera.Projection == rl.CameraPerspective {
		return rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, clipNear, clipFar)
	}
	halfH := camera.Fovy / 2
	halfW := halfH * aspect
	return rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, clipNear, clipFar)
}

func clipPlane(w, r [4]float32, sign float32) plane {
	p := plane{
		n: rl.NewVector3(w[0]+sign*r[0], w[1]+sign*r[1], w[2]+sign*r[2]),
		d: w[3] + sign*r[3],
	}
	if l := rl.Vector3Length(p.n); l > 0 {
		p.n = rl.Vector3Scale(p.n, 1/l)
		p.d /= l
	}
	return p
}

// ContainsSphere reports whether any part of the sphere is inside f.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f.planes {
		if rl.Vector3DotProduct(p.n, center)+p.d < -radius {
			return false
		}
	}
	return true
}

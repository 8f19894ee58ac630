package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ViewportRay returns the ray through pos, given in pixels from the top-left
// corner of a view of the given size.
func ViewportRay(cam rl.Camera3D, pos, size rl.Vector2) rl.Ray {
	forward := rl.Vector3Normalize(rl.Vector3Subtract(cam.Target, cam.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, cam.Up))
	up := rl.Vector3CrossProduct(right, forward)

	ndcX := 2*pos.X/max(size.X, 1) - 1
	ndcY := 1 - 2*pos.Y/max(size.Y, 1)
	aspect := max(size.X, 1) / max(size.Y, 1)

	if cam.Projection == rl.CameraOrthographic {
		halfH := cam.Fovy / 2
		offset := rl.Vector3Add(
			rl.Vector3Scale(right, ndcX*halfH*aspect),
			rl.Vector3Scale(up, ndcY*halfH),
		)
		return rl.Ray{Position: rl.Vector3Add(cam.Position, offset), Direction: forward}
	}

	tanHalf := float32(math.Tan(float64(cam.Fovy*rl.Deg2rad) / 2))
	dir := rl.Vector3Add(forward, rl.Vector3Add(
		rl.Vector3Scale(right, ndcX*tanHalf*aspect),
		rl.Vector3Scale(up, ndcY*tanHalf),
	))
	return rl.Ray{Position: cam.Position, Direction: rl.Vector3Normalize(dir)}
}

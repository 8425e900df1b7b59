package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	pointerNear float32 = 0.01
	pointerFar  float32 = 1000
)

// ScreenToNDC converts a pixel position into normalized device coordinates:
// origin at the center, x right, y up, both axes in [-1, 1].
func ScreenToNDC(pos rl.Vector2, width, height float32) rl.Vector2 {
	if width <= 0 || height <= 0 {
		return rl.Vector2{}
	}
	return rl.Vector2{
		X: 2*pos.X/width - 1,
		Y: 1 - 2*pos.Y/height,
	}
}

// PointerRay casts a ray from ndc through cam. It matches raylib's
// GetScreenToWorldRayEx but works from NDC and needs no window, so it can
// run headless.
func PointerRay(ndc rl.Vector2, cam rl.Camera3D, aspect float32) rl.Ray {
	if aspect <= 0 {
		aspect = 1
	}

	view := rl.MatrixLookAt(cam.Position, cam.Target, cam.Up)

	var proj rl.Matrix
	if cam.Projection == rl.CameraOrthographic {
		top := cam.Fovy / 2
		right := top * aspect
		proj = rl.MatrixOrtho(-right, right, -top, top, pointerNear, pointerFar)
	} else {
		proj = rl.MatrixPerspective(cam.Fovy*rl.Deg2rad, aspect, pointerNear, pointerFar)
	}

	nearPoint := unproject(rl.Vector3{X: ndc.X, Y: ndc.Y, Z: 0}, proj, view)
	farPoint := unproject(rl.Vector3{X: ndc.X, Y: ndc.Y, Z: 1}, proj, view)
	direction := rl.Vector3Normalize(rl.Vector3Subtract(farPoint, nearPoint))

	origin := cam.Position
	if cam.Projection == rl.CameraOrthographic {
		origin = unproject(rl.Vector3{X: ndc.X, Y: ndc.Y, Z: -1}, proj, view)
	}

	return rl.Ray{Position: origin, Direction: direction}
}

func unproject(source rl.Vector3, projection, view rl.Matrix) rl.Vector3 {
	inv := rl.MatrixInvert(rl.MatrixMultiply(view, projection))
	q := rl.QuaternionTransform(rl.Quaternion{X: source.X, Y: source.Y, Z: source.Z, W: 1}, inv)
	if q.W == 0 {
		return rl.Vector3{X: q.X, Y: q.Y, Z: q.Z}
	}
	return rl.Vector3{X: q.X / q.W, Y: q.Y / q.W, Z: q.Z / q.W}
}

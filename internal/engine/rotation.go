package engine

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// mat3 is a row-major rotation acting on column vectors.
type mat3 [3][3]float64

const deg2rad = math.Pi / 180

// eulerMatrix builds the rotation for Euler degrees applied X, then Y,
// then Z about fixed axes (Rz * Ry * Rx).
func eulerMatrix(rot rl.Vector3) mat3 {
	sx, cx := math.Sincos(float64(rot.X) * deg2rad)
	sy, cy := math.Sincos(float64(rot.Y) * deg2rad)
	sz, cz := math.Sincos(float64(rot.Z) * deg2rad)
	return mat3{
		{cy * cz, sx*sy*cz - cx*sz, cx*sy*cz + sx*sz},
		{cy * sz, sx*sy*sz + cx*cz, cx*sy*sz - sx*cz},
		{-sy, sx * cy, cx * cy},
	}
}

// axisAngleMatrix rotates counterclockwise about axis (right-handed).
// axis must be normalized.
func axisAngleMatrix(axis rl.Vector3, degrees float32) mat3 {
	x, y, z := float64(axis.X), float64(axis.Y), float64(axis.Z)
	s, c := math.Sincos(float64(degrees) * deg2rad)
	t := 1 - c
	return mat3{
		{c + t*x*x, t*x*y - s*z, t*x*z + s*y},
		{t*x*y + s*z, c + t*y*y, t*y*z - s*x},
		{t*x*z - s*y, t*y*z + s*x, c + t*z*z},
	}
}

func (a mat3) mul(b mat3) mat3 {
	var m mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r][c] = a[r][0]*b[0][c] + a[r][1]*b[1][c] + a[r][2]*b[2][c]
		}
	}
	return m
}

func (m mat3) apply(v rl.Vector3) rl.Vector3 {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	return rl.Vector3{
		X: float32(m[0][0]*x + m[0][1]*y + m[0][2]*z),
		Y: float32(m[1][0]*x + m[1][1]*y + m[1][2]*z),
		Z: float32(m[2][0]*x + m[2][1]*y + m[2][2]*z),
	}
}

// euler inverts eulerMatrix. Y comes back in [-90, 90]; at the poles Z is
// folded into X.
func (m mat3) euler() rl.Vector3 {
	sy := math.Max(-1, math.Min(1, -m[2][0]))
	y := math.Asin(sy)
	var x, z float64
	if math.Abs(sy) < 0.999999 {
		x = math.Atan2(m[2][1], m[2][2])
		z = math.Atan2(m[1][0], m[0][0])
	} else {
		x = math.Atan2(-m[1][2], m[1][1])
	}
	return rl.Vector3{
		X: float32(x / deg2rad),
		Y: float32(y / deg2rad),
		Z: float32(z / deg2rad),
	}
}

package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitCamera circles a fixed target. Dragging rotates, the wheel zooms,
// panning is disabled.
type OrbitCamera struct {
	Target      rl.Vector3
	Distance    float32
	Yaw         float32 // degrees around Y
	Pitch       float32 // degrees above the XZ plane
	MinDistance float32
	MaxDistance float32
	RotateSpeed float32 // degrees per pixel dragged
	ZoomSpeed   float32 // fraction of distance per wheel step
	Fovy        float32
}

func New(target rl.Vector3, distance float32) *OrbitCamera {
	c := &OrbitCamera{
		Target:      target,
		Distance:    distance,
		Yaw:         90,
		Pitch:       0,
		MinDistance: 1,
		MaxDistance: 1000,
		RotateSpeed: 0.5,
		ZoomSpeed:   0.75,
		Fovy:        75,
	}
	return c
}

// Update applies this frame's mouse input. Left drag orbits, wheel zooms.
func (c *OrbitCamera) Update() {
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		c.Orbit(-delta.X*c.RotateSpeed, delta.Y*c.RotateSpeed)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		c.Zoom(wheel)
	}
}

// Orbit turns the camera around the target. Pitch stays short of the poles
// so the up vector never flips.
func (c *OrbitCamera) Orbit(dYaw, dPitch float32) {
	c.Yaw = float32(math.Mod(float64(c.Yaw+dYaw), 360))
	if c.Yaw < 0 {
		c.Yaw += 360
	}
	c.Pitch += dPitch
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

// Zoom moves toward (steps > 0) or away from the target, clamped to
// [MinDistance, MaxDistance].
func (c *OrbitCamera) Zoom(steps float32) {
	scale := float32(math.Pow(0.95, float64(steps*c.ZoomSpeed)))
	c.SetDistance(c.Distance * scale)
}

func (c *OrbitCamera) SetDistance(d float32) {
	if d < c.MinDistance {
		d = c.MinDistance
	}
	if d > c.MaxDistance {
		d = c.MaxDistance
	}
	c.Distance = d
}

func (c *OrbitCamera) Position() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180

	offset := rl.Vector3{
		X: float32(math.Cos(pitchRad) * math.Cos(yawRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Cos(pitchRad) * math.Sin(yawRad)),
	}
	return rl.Vector3Add(c.Target, rl.Vector3Scale(offset, c.Distance))
}

func (c *OrbitCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

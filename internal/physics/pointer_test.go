package physics

import (
	"testing"

	"dwellglobe/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func testCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.Vector3{Z: 50},
		Target:     rl.Vector3{},
		Up:         rl.Vector3{Y: 1},
		Fovy:       75,
		Projection: rl.CameraPerspective,
	}
}

func TestScreenToNDC(t *testing.T) {
	tests := []struct {
		name string
		pos  rl.Vector2
		want rl.Vector2
	}{
		{"center", rl.Vector2{X: 400, Y: 300}, rl.Vector2{X: 0, Y: 0}},
		{"top left", rl.Vector2{X: 0, Y: 0}, rl.Vector2{X: -1, Y: 1}},
		{"bottom right", rl.Vector2{X: 800, Y: 600}, rl.Vector2{X: 1, Y: -1}},
	}

	for _, tt := range tests {
		got := ScreenToNDC(tt.pos, 800, 600)
		if !approx(got.X, tt.want.X) || !approx(got.Y, tt.want.Y) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}

	if got := ScreenToNDC(rl.Vector2{X: 10, Y: 10}, 0, 0); got != (rl.Vector2{}) {
		t.Errorf("Zero-sized screen should give origin, got %v", got)
	}
}

func TestPointerRayCenter(t *testing.T) {
	ray := PointerRay(rl.Vector2{}, testCamera(), 16.0/9.0)

	if !approx(ray.Position.Z, 50) {
		t.Errorf("Perspective ray should start at the camera, got %v", ray.Position)
	}
	if !approx(ray.Direction.X, 0) || !approx(ray.Direction.Y, 0) || !approx(ray.Direction.Z, -1) {
		t.Errorf("Expected direction (0, 0, -1), got %v", ray.Direction)
	}
}

func TestPointerRayAxes(t *testing.T) {
	right := PointerRay(rl.Vector2{X: 0.5}, testCamera(), 1)
	if right.Direction.X <= 0 {
		t.Errorf("Positive NDC x should point right, got %v", right.Direction)
	}

	up := PointerRay(rl.Vector2{Y: 0.5}, testCamera(), 1)
	if up.Direction.Y <= 0 {
		t.Errorf("Positive NDC y should point up, got %v", up.Direction)
	}
}

func TestPointerRayHitsGlobe(t *testing.T) {
	globe := sphereObject("Globe", rl.Vector3{}, 15, engine.LayerSurface)

	hits := QueryAll(PointerRay(rl.Vector2{}, testCamera(), 1), []*engine.GameObject{globe}, 1000)
	if len(hits) != 1 {
		t.Fatal("Center ray should hit the globe")
	}
	if !approx(hits[0].Distance, 35) {
		t.Errorf("Expected distance 35, got %f", hits[0].Distance)
	}

	if hits := QueryAll(PointerRay(rl.Vector2{X: 1, Y: 1}, testCamera(), 1), []*engine.GameObject{globe}, 1000); len(hits) != 0 {
		t.Error("Corner ray should miss a globe filling the middle of the view")
	}
}

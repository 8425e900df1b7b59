package components

import (
	"dwellglobe/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MeshRenderer draws a sphere in immediate mode. Globe, targets and the
// hover marker are all spheres, so no model or shader is involved.
type MeshRenderer struct {
	engine.BaseComponent
	Radius    float32
	Color     rl.Color
	Wireframe bool
	Rings     int32
	Slices    int32
}

func NewMeshRenderer(radius float32, color rl.Color) *MeshRenderer {
	return &MeshRenderer{
		Radius: radius,
		Color:  color,
		Rings:  16,
		Slices: 32,
	}
}

func (m *MeshRenderer) WorldRadius() float32 {
	g := m.GetGameObject()
	if g == nil {
		return m.Radius
	}
	return m.Radius * maxAbsComponent(g.WorldScale())
}

func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	radius := m.WorldRadius()
	if radius <= 0 {
		return
	}

	pos := g.WorldPosition()
	rot := g.WorldRotation()

	// Rotate in place so the wireframe visibly spins with the object
	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	// Rz*Ry*Rx, the order WorldPosition composes in
	rl.Rotatef(rot.Z, 0, 0, 1)
	rl.Rotatef(rot.Y, 0, 1, 0)
	rl.Rotatef(rot.X, 1, 0, 0)
	if m.Wireframe {
		rl.DrawSphereWires(rl.Vector3Zero(), radius, m.Rings, m.Slices, m.Color)
	} else {
		rl.DrawSphereEx(rl.Vector3Zero(), radius, m.Rings, m.Slices, m.Color)
	}
	rl.PopMatrix()
}

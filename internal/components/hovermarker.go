package components

import (
	"dwellglobe/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HoverMarker drives the object that highlights the target under an active
// dwell. The object is expected to carry a unit-radius MeshRenderer and
// SphereCollider so that Transform.Scale alone sets its world radius.
type HoverMarker struct {
	engine.BaseComponent
}

func NewHoverMarker() *HoverMarker {
	return &HoverMarker{}
}

func (m *HoverMarker) Start() {
	m.Hide()
}

// ShowAround centers the marker on center with radius*multiplier world radius.
func (m *HoverMarker) ShowAround(center rl.Vector3, radius, multiplier float32) {
	g := m.GetGameObject()
	if g == nil {
		return
	}
	s := radius * multiplier
	g.Transform.Position = center
	g.Transform.Scale = rl.Vector3{X: s, Y: s, Z: s}
	g.Active = true
}

// Hide deactivates the marker and zeroes its scale.
func (m *HoverMarker) Hide() {
	g := m.GetGameObject()
	if g == nil {
		return
	}
	g.Active = false
	g.Transform.Scale = rl.Vector3{}
}

// Layers puts the marker on the effect layer so rays see through it.
func (m *HoverMarker) Layers() engine.LayerSet {
	return engine.Layers(engine.LayerEffect)
}

func (m *HoverMarker) Visible() bool {
	g := m.GetGameObject()
	return g != nil && g.Active
}

package components

import (
	"dwellglobe/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider. Detached
// colliders report their offset.
func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	if g == nil {
		return s.Offset
	}
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}

// WorldRadius scales Radius by the largest axis of the object's world scale.
func (s *SphereCollider) WorldRadius() float32 {
	g := s.GetGameObject()
	if g == nil {
		return s.Radius
	}
	return s.Radius * maxAbsComponent(g.WorldScale())
}

func maxAbsComponent(v rl.Vector3) float32 {
	m := abs(v.X)
	if y := abs(v.Y); y > m {
		m = y
	}
	if z := abs(v.Z); z > m {
		m = z
	}
	return m
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

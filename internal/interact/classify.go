package interact

import (
	"dwellglobe/internal/engine"
	"dwellglobe/internal/physics"
)

// Role is the semantic meaning of a pointer hit.
type Role int

const (
	RoleNone Role = iota
	RoleTarget
	RoleSurface
	RoleEffect
)

func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleTarget:
		return "target"
	case RoleSurface:
		return "surface"
	case RoleEffect:
		return "effect"
	}
	return "unknown"
}

// RoleOf resolves a layer set to one role. Target wins over Surface, which
// wins over Effect.
func RoleOf(layers engine.LayerSet) Role {
	switch {
	case layers.Has(engine.LayerTarget):
		return RoleTarget
	case layers.Has(engine.LayerSurface):
		return RoleSurface
	case layers.Has(engine.LayerEffect):
		return RoleEffect
	}
	return RoleNone
}

// Classify picks the nearest hit that can drive capture logic. hits must be
// ordered nearest first. Effect hits are see-through: a hover marker in
// front of its target must not hide it. Returns RoleNone and nil when no
// target or surface was hit.
func Classify(hits []physics.RaycastHit) (Role, *physics.RaycastHit) {
	for i := range hits {
		switch role := RoleOf(hits[i].Layers); role {
		case RoleTarget, RoleSurface:
			return role, &hits[i]
		}
	}
	return RoleNone, nil
}

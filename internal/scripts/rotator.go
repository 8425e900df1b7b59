package scripts

import (
	"dwellglobe/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rotator spins an object around the world Y axis. On the globe it carries
// every parented target along with it.
type Rotator struct {
	engine.BaseComponent
	Speed float32 // degrees per second
}

func (r *Rotator) Update(deltaTime float32) {
	g := r.GetGameObject()
	if g == nil {
		return
	}
	// composed with whatever orientation the globe already has
	g.RotateAround(rl.Vector3{Y: 1}, r.Speed*deltaTime)
}

func init() {
	engine.RegisterScript("Rotator", rotatorFactory)
}

func rotatorFactory(props map[string]any) engine.Component {
	speed := float32(90)
	if v, ok := props["speed"].(float64); ok {
		speed = float32(v)
	}
	return &Rotator{Speed: speed}
}

package components

import (
	"dwellglobe/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// VisualState is what a target shows to the player.
type VisualState int

const (
	StateUncaptured VisualState = iota
	StateCaptured
)

func (s VisualState) String() string {
	switch s {
	case StateUncaptured:
		return "uncaptured"
	case StateCaptured:
		return "captured"
	}
	return "unknown"
}

// Capturable marks a GameObject as a dwell target. Its identity is the
// owning object's UID. Only the capture ledger flips the captured flag.
type Capturable struct {
	engine.BaseComponent
	Radius          float32
	UncapturedColor rl.Color
	CapturedColor   rl.Color

	captured bool
}

func NewCapturable(radius float32, uncaptured, captured rl.Color) *Capturable {
	return &Capturable{
		Radius:          radius,
		UncapturedColor: uncaptured,
		CapturedColor:   captured,
	}
}

func (c *Capturable) Start() {
	c.applyVisual()
}

// UID returns the owning object's UID, or 0 if detached.
func (c *Capturable) UID() uint64 {
	if g := c.GetGameObject(); g != nil {
		return g.UID
	}
	return 0
}

func (c *Capturable) Captured() bool {
	return c.captured
}

func (c *Capturable) State() VisualState {
	if c.captured {
		return StateCaptured
	}
	return StateUncaptured
}

// SetCaptured updates the flag and the sibling MeshRenderer color together
// so flag and visual state never disagree.
func (c *Capturable) SetCaptured(captured bool) {
	c.captured = captured
	c.applyVisual()
}

// Center returns the world-space center of the target.
func (c *Capturable) Center() rl.Vector3 {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}
	return g.WorldPosition()
}

// WorldRadius is the target's radius in world units: the sibling collider's
// when there is one, otherwise Radius under the object's world scale.
func (c *Capturable) WorldRadius() float32 {
	g := c.GetGameObject()
	if g == nil {
		return c.Radius
	}
	if col := engine.GetComponent[*SphereCollider](g); col != nil {
		return col.WorldRadius()
	}
	return c.Radius * maxAbsComponent(g.WorldScale())
}

// Layers puts the owning object on the target layer.
func (c *Capturable) Layers() engine.LayerSet {
	return engine.Layers(engine.LayerTarget)
}

func (c *Capturable) applyVisual() {
	renderer := engine.GetComponent[*MeshRenderer](c.GetGameObject())
	if renderer == nil {
		return
	}
	if c.captured {
		renderer.Color = c.CapturedColor
	} else {
		renderer.Color = c.UncapturedColor
	}
}

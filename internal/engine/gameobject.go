package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID atomic.Uint64

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

type GameObject struct {
	UID        uint64
	Name       string
	Layer      LayerSet
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	if g == nil {
		return zero
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

// Layers implements Layered. The result is the object's own Layer plus
// the layers reported by any component that implements Layered.
func (g *GameObject) Layers() LayerSet {
	layers := g.Layer
	for _, c := range g.components {
		if l, ok := c.(Layered); ok {
			layers |= l.Layers()
		}
	}
	return layers
}

func (g *GameObject) AddChild(child *GameObject) {
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentScale := g.Parent.WorldScale()
	scaled := rl.Vector3{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
		Z: g.Transform.Position.Z * parentScale.Z,
	}
	rotated := g.Parent.worldRotationMatrix().apply(scaled)
	return rl.Vector3Add(g.Parent.WorldPosition(), rotated)
}

// WorldRotation returns the composed rotation as Euler degrees in the same
// X, Y, Z order as Transform.Rotation.
func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return g.worldRotationMatrix().euler()
}

func (g *GameObject) worldRotationMatrix() mat3 {
	local := eulerMatrix(g.Transform.Rotation)
	if g.Parent == nil {
		return local
	}
	return g.Parent.worldRotationMatrix().mul(local)
}

// RotateAround turns the object by degrees about axis, given in the
// parent's space (world space for a root object). Children follow.
func (g *GameObject) RotateAround(axis rl.Vector3, degrees float32) {
	if rl.Vector3Length(axis) < 1e-6 || degrees == 0 {
		return
	}
	turn := axisAngleMatrix(rl.Vector3Normalize(axis), degrees)
	g.Transform.Rotation = turn.mul(eulerMatrix(g.Transform.Rotation)).euler()
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}

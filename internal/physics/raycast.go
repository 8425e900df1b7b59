package physics

import (
	"math"
	"slices"

	"dwellglobe/internal/components"
	"dwellglobe/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	GameObject *engine.GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
	Layers     engine.LayerSet
}

// QueryAll returns every active sphere collider crossed by ray within
// maxDistance, nearest first. Equal distances keep the order of objects.
// The result is nil when nothing is hit.
func QueryAll(ray rl.Ray, objects []*engine.GameObject, maxDistance float32) []RaycastHit {
	direction := rl.Vector3Normalize(ray.Direction)
	if direction == (rl.Vector3{}) {
		return nil
	}

	var hits []RaycastHit
	for _, obj := range objects {
		if obj == nil || !obj.Active {
			continue
		}
		sphere := engine.GetComponent[*components.SphereCollider](obj)
		if sphere == nil {
			continue
		}
		hit, ok := raycastSphere(ray.Position, direction, sphere.GetCenter(), sphere.WorldRadius(), maxDistance)
		if !ok {
			continue
		}
		hit.GameObject = obj
		// object layer plus whatever its components report
		hit.Layers = obj.Layers()
		hits = append(hits, hit)
	}

	slices.SortStableFunc(hits, func(a, b RaycastHit) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})
	return hits
}

// raycastSphere expects a normalized direction. A ray starting inside the
// sphere reports the exit point.
func raycastSphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (RaycastHit, bool) {
	if radius <= 0 {
		return RaycastHit{}, false
	}

	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return RaycastHit{}, false
	}

	sq := float32(math.Sqrt(float64(discriminant)))
	t := (-b - sq) / (2 * a)
	if t < 0 {
		t = (-b + sq) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

package world

import (
	"fmt"
	"log"
	"math/rand"

	"dwellglobe/internal/components"
	"dwellglobe/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	markerAlpha = 0.35
	globeName   = "Globe"
	markerName  = "HoverMarker"
)

// World is the assembled scene: one globe, its targets, one hover marker.
type World struct {
	Scene    *engine.Scene
	Settings Settings
	Globe    *engine.GameObject
	Marker   *components.HoverMarker
}

// New assembles a world from sf. rng drives random target placement and
// may be nil when every target is listed explicitly.
func New(sf SceneFile, rng *rand.Rand) (*World, error) {
	sf.Settings.applyDefaults()
	if rng == nil {
		rng = rand.New(rand.NewSource(sf.Settings.Seed))
	}

	w := &World{
		Scene:    engine.NewScene("Globe"),
		Settings: sf.Settings,
	}

	globe, err := w.buildGlobe(sf.Globe)
	if err != nil {
		return nil, err
	}
	w.Globe = globe
	w.Scene.AddGameObject(globe)

	defs := sf.Targets
	if len(defs) == 0 {
		defs = randomTargets(rng, sf.Settings)
	}
	for i, def := range defs {
		w.addTarget(i, def, rng)
	}

	w.Marker = w.buildMarker()

	log.Printf("World: %d targets on a globe of radius %.1f", len(w.Targets()), w.Settings.GlobeRadius)
	return w, nil
}

func (w *World) buildGlobe(def GlobeDef) (*engine.GameObject, error) {
	layers, err := parseLayers(def.Layers)
	if err != nil {
		return nil, fmt.Errorf("globe: %w", err)
	}
	globe := engine.NewGameObject(globeName)
	globe.Layer = layers

	renderer := components.NewMeshRenderer(w.Settings.GlobeRadius, lookupColor(def.Color, defaultGlobeColor))
	renderer.Wireframe = def.Wireframe == nil || *def.Wireframe
	globe.AddComponent(renderer)
	globe.AddComponent(components.NewSphereCollider(w.Settings.GlobeRadius))

	for _, s := range def.Scripts {
		script := engine.CreateScript(s.Name, s.Props)
		if script == nil {
			return nil, fmt.Errorf("globe: unknown script %q", s.Name)
		}
		globe.AddComponent(script)
	}
	return globe, nil
}

func (w *World) addTarget(i int, def TargetDef, rng *rand.Rand) {
	radius := def.Radius
	if radius <= 0 {
		radius = float32(RandomInt(rng, w.Settings.TargetRadiusMin, w.Settings.TargetRadiusMax))
	}
	name := def.Name
	if name == "" {
		name = fmt.Sprintf("Target %d", i+1)
	}

	obj := engine.NewGameObject(name)
	obj.Transform.Position = LatLngToVector(def.Lat, def.Lng, w.Settings.GlobeRadius, w.Settings.TargetHeight)

	obj.AddComponent(components.NewMeshRenderer(radius, lookupColor(def.Color, defaultTargetColor)))
	obj.AddComponent(components.NewSphereCollider(radius))
	target := components.NewCapturable(radius, lookupColor(def.Color, defaultTargetColor), colorByName[capturedColor])
	obj.AddComponent(target)

	// parented so the globe's spin carries it
	w.Globe.AddChild(obj)
	w.Scene.AddGameObject(obj)
}

func (w *World) buildMarker() *components.HoverMarker {
	obj := engine.NewGameObject(markerName)

	renderer := components.NewMeshRenderer(1, rl.Fade(rl.White, markerAlpha))
	obj.AddComponent(renderer)
	obj.AddComponent(components.NewSphereCollider(1))
	marker := components.NewHoverMarker()
	obj.AddComponent(marker)

	w.Scene.AddGameObject(obj)
	return marker
}

// parseLayers resolves scene file layer names. No names means surface.
func parseLayers(names []string) (engine.LayerSet, error) {
	var set engine.LayerSet
	for _, name := range names {
		l, ok := engine.ParseLayer(name)
		if !ok {
			return 0, fmt.Errorf("unknown layer %q", name)
		}
		set = set.With(l)
	}
	if set.Empty() {
		set = engine.Layers(engine.LayerSurface)
	}
	return set, nil
}

func randomTargets(rng *rand.Rand, s Settings) []TargetDef {
	defs := make([]TargetDef, s.TargetCount)
	for i := range defs {
		defs[i] = TargetDef{
			Lat: float64(RandomInt(rng, -90, 90)),
			Lng: float64(RandomInt(rng, -180, 180)),
		}
	}
	return defs
}

// Targets returns the capturable targets on the target layer, in scene order.
func (w *World) Targets() []*components.Capturable {
	var targets []*components.Capturable
	for _, obj := range w.Scene.FindByLayer(engine.LayerTarget) {
		if c := engine.GetComponent[*components.Capturable](obj); c != nil {
			targets = append(targets, c)
		}
	}
	return targets
}

// Twist turns the globe by degrees around the axis from its center toward
// eye, clockwise as seen from eye. Targets ride along.
func (w *World) Twist(eye rl.Vector3, degrees float32) {
	axis := rl.Vector3Subtract(eye, w.Globe.WorldPosition())
	w.Globe.RotateAround(axis, -degrees)
}

// Objects returns every object the pointer ray should test.
func (w *World) Objects() []*engine.GameObject {
	return w.Scene.GameObjects
}

func (w *World) Start() {
	w.Scene.Start()
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// Draw renders every drawable component. Must be called inside BeginMode3D.
func (w *World) Draw() {
	for _, obj := range w.Scene.GameObjects {
		if !obj.Active {
			continue
		}
		for _, c := range obj.Components() {
			if d, ok := c.(engine.Drawable); ok {
				d.Draw()
			}
		}
	}
}

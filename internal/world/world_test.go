package world

import (
	"math"
	"math/rand"
	"testing"

	"dwellglobe/internal/components"
	"dwellglobe/internal/engine"
	"dwellglobe/internal/physics"
	"dwellglobe/internal/scripts"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestNewRandomTargets(t *testing.T) {
	sf := SceneFile{Settings: DefaultSettings()}
	w, err := New(sf, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(w.Targets()) != 10 {
		t.Fatalf("Expected 10 targets, got %d", len(w.Targets()))
	}
	for _, target := range w.Targets() {
		if target.Radius < 1 || target.Radius > 2 {
			t.Errorf("Expected radius in [1, 2], got %f", target.Radius)
		}
		obj := target.GetGameObject()
		if obj.Parent != w.Globe {
			t.Errorf("Expected %s to be parented to the globe", obj.Name)
		}
		if !obj.Layers().Has(engine.LayerTarget) {
			t.Errorf("Expected %s on the target layer, got %s", obj.Name, obj.Layers())
		}
		d := rl.Vector3Length(target.Center())
		if math.Abs(float64(d-15)) > 1e-3 {
			t.Errorf("Expected %s on the surface (15), got %f", obj.Name, d)
		}
	}

	// globe + targets + marker
	if got := len(w.Objects()); got != 12 {
		t.Errorf("Expected 12 objects, got %d", got)
	}
	if !w.Globe.Layer.Has(engine.LayerSurface) {
		t.Errorf("Expected globe on the surface layer, got %s", w.Globe.Layer)
	}
}

func TestNewSameSeedSameLayout(t *testing.T) {
	sf := SceneFile{Settings: DefaultSettings()}
	a, _ := New(sf, rand.New(rand.NewSource(9)))
	b, _ := New(sf, rand.New(rand.NewSource(9)))
	for i := range a.Targets() {
		pa := a.Targets()[i].Center()
		pb := b.Targets()[i].Center()
		if !near(pa, pb) {
			t.Errorf("Expected target %d at %v, got %v", i, pa, pb)
		}
	}
}

func TestNewExplicitTargets(t *testing.T) {
	sf := SceneFile{
		Settings: DefaultSettings(),
		Targets: []TargetDef{
			{Name: "North", Lat: 90, Lng: 0, Radius: 2},
		},
	}
	w, err := New(sf, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(w.Targets()) != 1 {
		t.Fatalf("Expected 1 target, got %d", len(w.Targets()))
	}
	obj := w.Targets()[0].GetGameObject()
	if obj.Name != "North" {
		t.Errorf("Expected name North, got %s", obj.Name)
	}
	if !near(obj.WorldPosition(), rl.Vector3{Y: 15}) {
		t.Errorf("Expected (0, 15, 0), got %v", obj.WorldPosition())
	}
}

func TestNewUnknownScript(t *testing.T) {
	sf := SceneFile{
		Settings: DefaultSettings(),
		Globe:    GlobeDef{Scripts: []scriptDef{{Name: "NoSuchScript"}}},
	}
	if _, err := New(sf, nil); err == nil {
		t.Error("Expected an error for an unknown script")
	}
}

func TestGlobeSpinCarriesTargets(t *testing.T) {
	sf := DefaultSceneFile()
	sf.Targets = []TargetDef{{Lat: 0, Lng: 0, Radius: 1}}
	w, err := New(sf, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if engine.GetComponent[*scripts.Rotator](w.Globe) == nil {
		t.Fatal("Expected a Rotator on the globe")
	}
	w.Start()

	before := w.Targets()[0].Center()
	w.Update(1)
	after := w.Targets()[0].Center()
	if near(before, after) {
		t.Errorf("Expected target to move with the globe, stayed at %v", after)
	}
	if math.Abs(float64(rl.Vector3Length(after)-15)) > 1e-3 {
		t.Errorf("Expected target to stay on the surface, got %v", after)
	}
}

func TestMarkerStartsHidden(t *testing.T) {
	w, err := New(SceneFile{Settings: DefaultSettings()}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	w.Start()
	if w.Marker.Visible() {
		t.Error("Expected marker hidden after Start")
	}
	if !w.Marker.GetGameObject().Layers().Has(engine.LayerEffect) {
		t.Error("Expected marker on the effect layer")
	}
}

func TestPointerHitsTargetInFrontOfGlobe(t *testing.T) {
	sf := SceneFile{
		Settings: DefaultSettings(),
		Targets:  []TargetDef{{Lat: 0, Lng: 90, Radius: 2}},
	}
	w, _ := New(sf, nil)
	w.Start()

	// target sits at (0, 0, -15); look at it from -Z
	ray := rl.Ray{Position: rl.Vector3{Z: -50}, Direction: rl.Vector3{Z: 1}}
	hits := physics.QueryAll(ray, w.Objects(), 1000)
	if len(hits) < 2 {
		t.Fatalf("Expected target and globe hits, got %d", len(hits))
	}
	if engine.GetComponent[*components.Capturable](hits[0].GameObject) == nil {
		t.Errorf("Expected the target first, got %s", hits[0].GameObject.Name)
	}
}

func TestGlobeLayersFromSceneFile(t *testing.T) {
	sf := SceneFile{
		Settings: DefaultSettings(),
		Globe:    GlobeDef{Layers: []string{"Surface", "effect"}},
		Targets:  []TargetDef{{Lat: 0, Lng: 0, Radius: 1}},
	}
	w, err := New(sf, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := engine.Layers(engine.LayerSurface, engine.LayerEffect)
	if w.Globe.Layer != want {
		t.Errorf("Expected %s, got %s", want, w.Globe.Layer)
	}
	if len(w.Targets()) != 1 {
		t.Errorf("Expected 1 target, got %d", len(w.Targets()))
	}
}

func TestGlobeUnknownLayer(t *testing.T) {
	sf := SceneFile{
		Settings: DefaultSettings(),
		Globe:    GlobeDef{Layers: []string{"water"}},
	}
	if _, err := New(sf, nil); err == nil {
		t.Error("Expected an error for an unknown layer")
	}
}

func TestTargetsSkipsNonCapturables(t *testing.T) {
	sf := SceneFile{
		Settings: DefaultSettings(),
		Globe:    GlobeDef{Layers: []string{"surface", "target"}},
		Targets:  []TargetDef{{Name: "A", Lat: 0, Lng: 0}, {Name: "B", Lat: 10, Lng: 0}},
	}
	w, err := New(sf, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	targets := w.Targets()
	if len(targets) != 2 {
		t.Fatalf("Expected 2 targets, got %d", len(targets))
	}
	if targets[0].GetGameObject().Name != "A" || targets[1].GetGameObject().Name != "B" {
		t.Errorf("Expected A then B, got %s then %s", targets[0].GetGameObject().Name, targets[1].GetGameObject().Name)
	}
}

func TestTwistTurnsAroundViewAxis(t *testing.T) {
	sf := SceneFile{
		Settings: DefaultSettings(),
		Targets: []TargetDef{
			{Name: "Front", Lat: 0, Lng: -90, Radius: 1},
			{Name: "Upper", Lat: 30, Lng: -90, Radius: 1},
		},
	}
	w, err := New(sf, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	eye := rl.Vector3{Z: 50}
	front := w.Targets()[0]
	upper := w.Targets()[1]

	before := upper.Center()
	w.Twist(eye, 90)
	after := upper.Center()

	// clockwise from the eye: the upper target swings over to +X
	want := rl.Vector3{X: before.Y, Y: 0, Z: before.Z}
	if !near(after, want) {
		t.Errorf("Expected %v, got %v", want, after)
	}
	if !near(front.Center(), rl.Vector3{Z: 15}) {
		t.Errorf("Expected the target on the view axis to stay put, got %v", front.Center())
	}

	w.Twist(eye, -90)
	if !near(upper.Center(), before) {
		t.Errorf("Expected the opposite twist to undo it, got %v", upper.Center())
	}
}

func TestTwistAfterSpin(t *testing.T) {
	sf := SceneFile{
		Settings: DefaultSettings(),
		Targets:  []TargetDef{{Lat: 20, Lng: 40, Radius: 1}},
	}
	w, err := New(sf, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	w.Globe.RotateAround(rl.Vector3{Y: 1}, 35)
	eye := rl.Vector3{X: 10, Y: 20, Z: 40}
	axis := rl.Vector3Normalize(eye)

	target := w.Targets()[0]
	before := target.Center()
	for i := 0; i < 12; i++ {
		w.Twist(eye, 7)
	}
	after := target.Center()

	if math.Abs(float64(rl.Vector3Length(after)-15)) > 1e-3 {
		t.Errorf("Expected target to stay on the surface, got %v", after)
	}
	if math.Abs(float64(rl.Vector3DotProduct(after, axis)-rl.Vector3DotProduct(before, axis))) > 1e-3 {
		t.Errorf("Expected the component along the view axis to stay fixed, got %v then %v", before, after)
	}
	if near(before, after) {
		t.Errorf("Expected the twist to move the target, stayed at %v", after)
	}
}

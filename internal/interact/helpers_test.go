package interact

import (
	"time"

	"dwellglobe/internal/components"
	"dwellglobe/internal/engine"
	"dwellglobe/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type fixture struct {
	scene   *engine.Scene
	queue   *engine.TimerQueue
	ledger  *Ledger
	marker  *components.HoverMarker
	tracker *Tracker
	globe   *engine.GameObject
	targets []*engine.GameObject
	now     time.Duration
}

func newFixture(targetCount int) *fixture {
	f := &fixture{
		scene:  engine.NewScene("Test"),
		queue:  engine.NewTimerQueue(),
		ledger: NewLedger(),
	}

	f.globe = engine.NewGameObject("Globe")
	f.globe.Layer = engine.Layers(engine.LayerSurface)
	f.globe.AddComponent(components.NewSphereCollider(15))
	f.scene.AddGameObject(f.globe)

	for i := 0; i < targetCount; i++ {
		g := engine.NewGameObject("Target")
		g.Layer = engine.Layers(engine.LayerTarget)
		g.Transform.Position = rl.Vector3{X: float32(i * 10), Z: 16}
		g.AddComponent(components.NewMeshRenderer(2, rl.Red))
		g.AddComponent(components.NewSphereCollider(2))
		c := components.NewCapturable(2, rl.Red, rl.Green)
		g.AddComponent(c)
		f.scene.AddGameObject(g)
		f.ledger.Register(c)
		f.targets = append(f.targets, g)
	}

	markerObj := engine.NewGameObject("HoverMarker")
	markerObj.Layer = engine.Layers(engine.LayerEffect)
	markerObj.AddComponent(components.NewSphereCollider(1))
	f.marker = components.NewHoverMarker()
	markerObj.AddComponent(f.marker)
	f.scene.AddGameObject(markerObj)

	f.scene.Start()

	f.tracker = NewTracker(DefaultConfig(), QueueScheduler(f.queue), f.ledger, f.marker, f.scene)
	return f
}

// frame advances time by dt, fires due timers, then evaluates hits, the
// same order the game loop uses.
func (f *fixture) frame(dt time.Duration, hits []physics.RaycastHit) {
	f.now += dt
	f.queue.Advance(f.now)
	f.tracker.Update(f.now, hits)
}

// hold keeps the same hits for total, in 16ms frames.
func (f *fixture) hold(total time.Duration, hits []physics.RaycastHit) {
	const step = 16 * time.Millisecond
	for elapsed := time.Duration(0); elapsed < total; elapsed += step {
		dt := step
		if total-elapsed < step {
			dt = total - elapsed
		}
		f.frame(dt, hits)
	}
}

func (f *fixture) capturable(i int) *components.Capturable {
	return engine.GetComponent[*components.Capturable](f.targets[i])
}

func hitOn(g *engine.GameObject, distance float32) physics.RaycastHit {
	return physics.RaycastHit{GameObject: g, Layers: g.Layers(), Distance: distance}
}

// over simulates the pointer resting on target i in front of the globe.
func (f *fixture) over(i int) []physics.RaycastHit {
	return []physics.RaycastHit{hitOn(f.targets[i], 30), hitOn(f.globe, 35)}
}

func (f *fixture) overGlobe() []physics.RaycastHit {
	return []physics.RaycastHit{hitOn(f.globe, 35)}
}

// fakeScheduler records callbacks so tests can fire them by hand, even
// after they were stopped.
type fakeScheduler struct {
	tasks []*fakeTask
}

type fakeTask struct {
	fn       func()
	deadline time.Duration
	stopped  bool
}

func (t *fakeTask) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}

func (s *fakeScheduler) At(deadline time.Duration, fn func()) Stopper {
	t := &fakeTask{fn: fn, deadline: deadline}
	s.tasks = append(s.tasks, t)
	return t
}

func (s *fakeScheduler) live() int {
	n := 0
	for _, t := range s.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

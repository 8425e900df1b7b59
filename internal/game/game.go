package game

import (
	"fmt"
	"log"
	"math"
	"time"

	"dwellglobe/internal/audio"
	"dwellglobe/internal/camera"
	"dwellglobe/internal/components"
	"dwellglobe/internal/engine"
	"dwellglobe/internal/interact"
	"dwellglobe/internal/physics"
	"dwellglobe/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	rayDistance  = 1000

	twistKeySpeed = 90 // degrees per second while Q or E is held
)

// Game is the frame driver. It owns the window loop, feeds the pointer ray
// to the dwell tracker once per frame and handles the end of a run.
type Game struct {
	World   *world.World
	Camera  *camera.OrbitCamera
	Ledger  *interact.Ledger
	Tracker *interact.Tracker

	timers *engine.TimerQueue
	clock  time.Duration

	// pending globe twist in degrees, consumed by the next Frame
	twist      float32
	twistAngle float32
	twisting   bool

	// set when every target is captured, cleared by Acknowledge
	runComplete bool
	lastCapture string

	captureSound  uint64
	completeSound uint64
	soundsLoaded  bool

	DebugMode bool
	updateMs  float64
	drawMs    float64
}

func New(w *world.World) *Game {
	g := &Game{
		World:  w,
		Ledger: interact.NewLedger(),
		timers: engine.NewTimerQueue(),
	}

	for _, target := range w.Targets() {
		g.Ledger.Register(target)
	}

	cfg := interact.Config{
		Dwell:       w.Settings.Dwell(),
		MarkerScale: w.Settings.MarkerScale,
	}
	g.Tracker = interact.NewTracker(cfg, interact.QueueScheduler(g.timers), g.Ledger, w.Marker, w.Scene)

	g.Camera = camera.New(rl.Vector3Zero(), w.Settings.CameraDistance)
	g.Camera.MinDistance = w.Settings.MinDistance
	g.Camera.MaxDistance = w.Settings.MaxDistance
	g.Camera.SetDistance(w.Settings.CameraDistance)

	g.Tracker.OnCapture.AddListener(g.onCapture)
	g.Ledger.OnChange.AddListener(func(completed int) {
		fmt.Printf("Captured %d/%d\n", completed, g.Ledger.Total())
	})
	g.Ledger.OnComplete.AddListener(g.onComplete)

	return g
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(screenWidth, screenHeight, "Dwell Globe")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	initHUDStyle()

	audio.Init()
	defer audio.Close()
	g.loadSounds()

	g.World.Start()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

// Update reads the pointer and camera input for one rendered frame.
func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}

	if !g.runComplete {
		g.Camera.Update()
		g.readTwist(deltaTime)
	}

	width := float32(rl.GetScreenWidth())
	height := float32(rl.GetScreenHeight())
	ndc := physics.ScreenToNDC(rl.GetMousePosition(), width, height)
	ray := physics.PointerRay(ndc, g.Camera.GetRaylibCamera(), width/height)

	g.clock += time.Duration(float64(deltaTime) * float64(time.Second))
	g.Frame(g.clock, deltaTime, ray)

	cam := g.Camera.GetRaylibCamera()
	audio.SetListener(cam.Position, rl.Vector3Subtract(cam.Target, cam.Position), cam.Up)
	audio.Update()

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

// readTwist turns right-drag around the screen center and the Q/E keys into
// a pending twist.
func (g *Game) readTwist(deltaTime float32) {
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		center := rl.Vector2{X: float32(rl.GetScreenWidth()) / 2, Y: float32(rl.GetScreenHeight()) / 2}
		d := rl.Vector2Subtract(rl.GetMousePosition(), center)
		angle := float32(math.Atan2(float64(d.Y), float64(d.X)) * 180 / math.Pi)
		if g.twisting {
			g.Twist(wrapDegrees(angle - g.twistAngle))
		}
		g.twistAngle = angle
		g.twisting = true
	} else {
		g.twisting = false
	}

	if rl.IsKeyDown(rl.KeyE) {
		g.Twist(twistKeySpeed * deltaTime)
	}
	if rl.IsKeyDown(rl.KeyQ) {
		g.Twist(-twistKeySpeed * deltaTime)
	}
}

// Twist queues a turn of the globe around the camera's view axis, clockwise
// on screen for positive degrees.
func (g *Game) Twist(degrees float32) {
	g.twist += degrees
}

// wrapDegrees maps an angle difference into [-180, 180).
func wrapDegrees(d float32) float32 {
	d = float32(math.Mod(float64(d)+180, 360))
	if d < 0 {
		d += 360
	}
	return d - 180
}

// Frame runs one frame of game logic: due timers first, then any pending
// twist and the world, then the dwell tracker with this frame's hits. It
// needs no window.
func (g *Game) Frame(now time.Duration, deltaTime float32, ray rl.Ray) {
	g.timers.Advance(now)
	if g.twist != 0 {
		g.World.Twist(g.Camera.Position(), g.twist)
		g.twist = 0
	}
	g.World.Update(deltaTime)

	if g.runComplete {
		return
	}
	hits := physics.QueryAll(ray, g.World.Objects(), rayDistance)
	g.Tracker.Update(now, hits)
}

// Now returns the frame clock.
func (g *Game) Now() time.Duration {
	return g.clock
}

// RunComplete reports whether the success notification is up.
func (g *Game) RunComplete() bool {
	return g.runComplete
}

// Acknowledge dismisses the success notification and starts a new run.
func (g *Game) Acknowledge() {
	if !g.runComplete {
		return
	}
	g.runComplete = false
	g.Tracker.Cancel()
	g.Ledger.Reset()
	g.lastCapture = ""
	log.Println("Game: run reset")
}

func (g *Game) loadSounds() {
	var ok1, ok2 bool
	g.captureSound, ok1 = audio.LoadChime([]float64{880, 1320}, 0.08)
	g.completeSound, ok2 = audio.LoadChime([]float64{523.25, 659.25, 783.99, 1046.5}, 0.15)
	g.soundsLoaded = ok1 && ok2
	if !g.soundsLoaded {
		log.Println("Game: audio unavailable, playing silently")
		return
	}
	audio.SetSourceSpatial(g.completeSound, false)
}

func (g *Game) onCapture(target *components.Capturable) {
	if obj := target.GetGameObject(); obj != nil {
		g.lastCapture = obj.Name
	}
	if g.soundsLoaded {
		audio.PlayAt(g.captureSound, target.Center())
	}
}

func (g *Game) onComplete() {
	g.runComplete = true
	log.Printf("Game: all %d targets captured", g.Ledger.Total())
	if g.soundsLoaded {
		audio.PlayAt(g.completeSound, rl.Vector3Zero())
	}
}

func (g *Game) Draw() {
	cam := g.Camera.GetRaylibCamera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(cam)
	g.World.Draw()
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

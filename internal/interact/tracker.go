package interact

import (
	"log"
	"time"

	"dwellglobe/internal/components"
	"dwellglobe/internal/engine"
	"dwellglobe/internal/physics"
)

type State int

const (
	StateIdle State = iota
	StateDwelling
)

func (s State) String() string {
	if s == StateDwelling {
		return "dwelling"
	}
	return "idle"
}

type Config struct {
	Dwell       time.Duration // uninterrupted hover needed to capture
	MarkerScale float32       // marker radius as a multiple of the target radius
}

func DefaultConfig() Config {
	return Config{
		Dwell:       time.Second,
		MarkerScale: 1.1,
	}
}

// Stopper cancels a scheduled callback. After Stop returns the callback
// must never run.
type Stopper interface {
	Stop() bool
}

// Scheduler runs fn at an absolute time on the same clock and thread of
// control as Evaluate.
type Scheduler interface {
	At(deadline time.Duration, fn func()) Stopper
}

type queueScheduler struct {
	queue *engine.TimerQueue
}

func (s queueScheduler) At(deadline time.Duration, fn func()) Stopper {
	return s.queue.At(deadline, fn)
}

// QueueScheduler schedules on a frame-advanced TimerQueue.
func QueueScheduler(q *engine.TimerQueue) Scheduler {
	return queueScheduler{queue: q}
}

type session struct {
	target  engine.GameObjectRef
	started time.Duration
	timer   Stopper
	token   uint64
}

// Tracker is the hover-dwell state machine. It owns at most one session,
// and with it at most one pending timer.
type Tracker struct {
	cfg    Config
	sched  Scheduler
	ledger *Ledger
	marker *components.HoverMarker
	scene  *engine.Scene

	session *session
	tokens  uint64

	// OnCapture fires after a dwell completes and the ledger counted it.
	OnCapture engine.EventWithArg[*components.Capturable]
}

// NewTracker wires a tracker. marker and scene may be nil; without a scene
// targets are resolved through the ledger alone.
func NewTracker(cfg Config, sched Scheduler, ledger *Ledger, marker *components.HoverMarker, scene *engine.Scene) *Tracker {
	if cfg.Dwell <= 0 {
		cfg.Dwell = DefaultConfig().Dwell
	}
	if cfg.MarkerScale <= 0 {
		cfg.MarkerScale = DefaultConfig().MarkerScale
	}
	return &Tracker{
		cfg:    cfg,
		sched:  sched,
		ledger: ledger,
		marker: marker,
		scene:  scene,
	}
}

func (t *Tracker) Config() Config {
	return t.cfg
}

func (t *Tracker) State() State {
	if t.session != nil {
		return StateDwelling
	}
	return StateIdle
}

// Target returns the UID of the target being dwelt on.
func (t *Tracker) Target() (uint64, bool) {
	if t.session == nil {
		return 0, false
	}
	return t.session.target.UID, true
}

// Progress returns how far the current dwell is, in [0, 1]. Idle is 0.
func (t *Tracker) Progress(now time.Duration) float32 {
	if t.session == nil {
		return 0
	}
	p := float32(now-t.session.started) / float32(t.cfg.Dwell)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Update classifies this frame's hits and evaluates them.
func (t *Tracker) Update(now time.Duration, hits []physics.RaycastHit) {
	role, hit := Classify(hits)
	t.Evaluate(now, role, hit)
}

// Evaluate advances the state machine with one frame's classified hit.
// now is on the scheduler's clock: a session started here is due at
// exactly now + Dwell, whether or not the scheduler has been advanced.
func (t *Tracker) Evaluate(now time.Duration, role Role, hit *physics.RaycastHit) {
	target := t.eligible(role, hit)

	if t.session != nil {
		if target != nil && target.UID() == t.session.target.UID {
			// Same target: the running timer stays, the marker follows it.
			t.showMarker(target)
			return
		}
		t.cancel()
	}

	if target != nil {
		t.start(now, target)
	}
}

// Cancel drops the current session, if any, without capturing.
func (t *Tracker) Cancel() {
	if t.session != nil {
		t.cancel()
	}
}

// eligible returns the registered, uncaptured target behind hit, or nil.
func (t *Tracker) eligible(role Role, hit *physics.RaycastHit) *components.Capturable {
	if role != RoleTarget || hit == nil || hit.GameObject == nil {
		return nil
	}
	target := t.ledger.Target(hit.GameObject.UID)
	if target == nil || target.Captured() {
		return nil
	}
	return target
}

func (t *Tracker) start(now time.Duration, target *components.Capturable) {
	if t.session != nil {
		log.Printf("DwellTracker: refusing to start a second session (target %d active)", t.session.target.UID)
		return
	}

	t.tokens++
	token := t.tokens
	s := &session{
		target:  engine.RefTo(target.GetGameObject()),
		started: now,
		token:   token,
	}
	t.session = s
	t.showMarker(target)
	s.timer = t.sched.At(now+t.cfg.Dwell, func() { t.complete(token) })
}

func (t *Tracker) cancel() {
	s := t.session
	t.session = nil
	if s.timer != nil {
		s.timer.Stop()
	}
	t.hideMarker()
}

// complete runs from the scheduler when a dwell elapsed uninterrupted.
func (t *Tracker) complete(token uint64) {
	s := t.session
	if s == nil || s.token != token {
		log.Printf("DwellTracker: ignoring stale completion (token %d)", token)
		return
	}
	t.session = nil
	t.hideMarker()

	target := t.resolve(s.target)
	if target == nil {
		log.Printf("DwellTracker: target %d left the scene before its dwell completed", s.target.UID)
		return
	}
	if t.ledger.RecordCapture(target) {
		t.OnCapture.Invoke(target)
	}
}

func (t *Tracker) resolve(ref engine.GameObjectRef) *components.Capturable {
	if t.scene != nil && ref.Get(t.scene) == nil {
		return nil
	}
	return t.ledger.Target(ref.UID)
}

func (t *Tracker) showMarker(target *components.Capturable) {
	if t.marker == nil {
		return
	}
	t.marker.ShowAround(target.Center(), target.WorldRadius(), t.cfg.MarkerScale)
}

func (t *Tracker) hideMarker() {
	if t.marker == nil {
		return
	}
	t.marker.Hide()
}

package interact

import (
	"log"

	"dwellglobe/internal/components"
	"dwellglobe/internal/engine"
)

// Ledger tracks which targets have been captured during a run.
type Ledger struct {
	targets   []*components.Capturable
	byUID     map[uint64]*components.Capturable
	completed int

	// OnChange fires with the new completed count, including after Reset.
	OnChange engine.EventWithArg[int]
	// OnComplete fires once when the last target is captured.
	OnComplete engine.Event
}

func NewLedger() *Ledger {
	return &Ledger{
		byUID: make(map[uint64]*components.Capturable),
	}
}

// Register adds a target. Targets are registered at scene setup, before the
// run starts; registering the same target twice is ignored.
func (l *Ledger) Register(target *components.Capturable) {
	if target == nil {
		return
	}
	uid := target.UID()
	if _, exists := l.byUID[uid]; exists {
		return
	}
	l.byUID[uid] = target
	l.targets = append(l.targets, target)
	if target.Captured() {
		l.completed++
	}
}

// Target looks up a registered target by its object UID.
func (l *Ledger) Target(uid uint64) *components.Capturable {
	return l.byUID[uid]
}

func (l *Ledger) Targets() []*components.Capturable {
	return l.targets
}

func (l *Ledger) Total() int {
	return len(l.targets)
}

func (l *Ledger) Completed() int {
	return l.completed
}

// IsComplete reports whether every target is captured. A ledger with no
// targets is never complete.
func (l *Ledger) IsComplete() bool {
	return l.Total() > 0 && l.completed == l.Total()
}

// RecordCapture marks target captured and counts it. It returns false, and
// counts nothing, for an unregistered or already captured target.
func (l *Ledger) RecordCapture(target *components.Capturable) bool {
	if target == nil || l.byUID[target.UID()] != target {
		log.Printf("Ledger: ignoring capture of unregistered target")
		return false
	}
	if target.Captured() {
		return false
	}

	target.SetCaptured(true)
	l.completed++
	l.OnChange.Invoke(l.completed)
	if l.IsComplete() {
		l.OnComplete.Invoke()
	}
	return true
}

// Reset starts a new run: the count goes back to zero and every target is
// uncaptured again.
func (l *Ledger) Reset() {
	for _, target := range l.targets {
		target.SetCaptured(false)
	}
	l.completed = 0
	l.OnChange.Invoke(0)
}

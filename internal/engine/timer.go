package engine

import (
	"container/heap"
	"time"
)

type timerState uint8

const (
	timerPending timerState = iota
	timerFired
	timerStopped
)

// Timer is a callback scheduled on a TimerQueue.
type Timer struct {
	deadline time.Duration
	seq      uint64
	fn       func()
	state    timerState
	queue    *TimerQueue
	index    int // position in queue.timers while pending
}

// Stop prevents the timer from firing and drops it from its queue. It
// returns false if the timer already fired or was already stopped.
func (t *Timer) Stop() bool {
	if t.state != timerPending {
		return false
	}
	t.state = timerStopped
	if t.index >= 0 {
		heap.Remove(&t.queue.timers, t.index)
	}
	return true
}

// TimerQueue runs deferred callbacks on the goroutine that calls Advance.
// The frame loop advances it once per frame, so callbacks always run
// between frames and never alongside frame logic.
type TimerQueue struct {
	now    time.Duration
	seq    uint64
	timers timerHeap
}

func NewTimerQueue() *TimerQueue {
	return &TimerQueue{}
}

// Now returns the time of the last Advance.
func (q *TimerQueue) Now() time.Duration {
	return q.now
}

// At schedules fn for the absolute time deadline, on the same clock that
// Advance is given. A deadline already in the past fires on the next
// Advance.
func (q *TimerQueue) At(deadline time.Duration, fn func()) *Timer {
	q.seq++
	t := &Timer{deadline: deadline, seq: q.seq, fn: fn, queue: q}
	heap.Push(&q.timers, t)
	return t
}

// Advance moves the clock to now and runs every due timer in deadline
// order (ties in scheduling order). Time never moves backwards. Returns
// the number of callbacks run.
func (q *TimerQueue) Advance(now time.Duration) int {
	if now < q.now {
		now = q.now
	}
	fired := 0
	for q.timers.Len() > 0 && q.timers[0].deadline <= now {
		next := heap.Pop(&q.timers).(*Timer)
		// callbacks observe their own deadline as the current time
		if next.deadline > q.now {
			q.now = next.deadline
		}
		next.state = timerFired
		next.fn()
		fired++
	}
	q.now = now
	return fired
}

// Pending returns the number of timers that are still due to fire.
func (q *TimerQueue) Pending() int {
	return q.timers.Len()
}

type timerHeap []*Timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline != h[j].deadline {
		return h[i].deadline < h[j].deadline
	}
	return h[i].seq < h[j].seq
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*Timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// internal/health/tracker.go
package health

import (
	"sync"
	"time"
)

// Snapshot represents exactly what the exporter and TUI are allowed to
// see. Plain values, no memory of the past beyond current state.
type Snapshot struct {
	Health      uint16
	LinkUp      bool
	SecondsDown uint16
	Updates     uint64
	NoChanges   uint64
	PollErrors  uint64
	Resets      uint64
}

// Tracker accumulates per-tick outcomes. Safe for one writer (the
// update loop) and any number of snapshot readers.
type Tracker struct {
	mu sync.Mutex

	ticked    bool
	linkUp    bool
	downSince time.Time
	errStreak int

	updates    uint64
	noChanges  uint64
	pollErrors uint64
	resets     uint64

	now func() time.Time
}

// NewTracker starts in the unknown state.
func NewTracker() *Tracker {
	return &Tracker{now: time.Now}
}

// RecordTick records the outcome of one update cycle.
func (t *Tracker) RecordTick(updated, linkUp bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if updated {
		t.updates++
	} else {
		t.noChanges++
	}

	if !linkUp && (t.linkUp || !t.ticked) {
		t.downSince = t.now()
	}
	t.linkUp = linkUp
	t.ticked = true
}

func (t *Tracker) recordPollOK() {
	t.mu.Lock()
	t.errStreak = 0
	t.mu.Unlock()
}

func (t *Tracker) recordPollError() {
	t.mu.Lock()
	t.pollErrors++
	t.errStreak++
	t.mu.Unlock()
}

func (t *Tracker) recordReset() {
	t.mu.Lock()
	t.resets++
	t.mu.Unlock()
}

// Snapshot derives the current status block inputs.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Snapshot{
		LinkUp:     t.linkUp,
		Updates:    t.updates,
		NoChanges:  t.noChanges,
		PollErrors: t.pollErrors,
		Resets:     t.resets,
	}

	switch {
	case !t.ticked:
		s.Health = HealthUnknown
		s.LinkUp = true
	case !t.linkUp:
		s.Health = HealthLinkDown
		s.SecondsDown = clamp16(uint64(t.now().Sub(t.downSince) / time.Second))
	case t.errStreak > 0:
		s.Health = HealthDegraded
	default:
		s.Health = HealthOK
	}
	return s
}

func clamp16(v uint64) uint16 {
	if v > 65535 {
		return 65535
	}
	return uint16(v)
}

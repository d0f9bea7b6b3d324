package engine

import (
	"sync"
	"time"
)

// PausableClock provides game time that stands still while paused
type PausableClock struct {
	mu sync.RWMutex

	base      Clock
	start     time.Time // base reading at creation
	paused    bool
	pauseAt   time.Time     // base reading when the current pause started
	totalHeld time.Duration // cumulative pause duration
}

// NewPausableClock creates a running clock over base; nil base means real time
func NewPausableClock(base Clock) *PausableClock {
	if base == nil {
		base = NewTimeProvider()
	}
	return &PausableClock{
		base:  base,
		start: base.Now(),
	}
}

// Now returns current game time
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.pauseAt.Add(-pc.totalHeld)
	}
	return pc.base.Now().Add(-pc.totalHeld)
}

// RealTime returns the base clock reading, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.base.Now()
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseAt = pc.base.Now()
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.totalHeld += pc.base.Now().Sub(pc.pauseAt)
	pc.paused = false
	pc.pauseAt = time.Time{}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time, including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	total := pc.totalHeld
	if pc.paused {
		total += pc.base.Now().Sub(pc.pauseAt)
	}
	return total
}

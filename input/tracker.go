package input

import "sync"

// Tracker owns the button state between frames
// Press and Release are called from the event goroutine, Finalize from the simulation goroutine
type Tracker struct {
	mu      sync.Mutex
	last    State
	current State
}

// NewTracker creates a tracker in the Released state
func NewTracker() *Tracker {
	return &Tracker{}
}

// Press records a key-down, ignoring repeats while the key is held
func (t *Tracker) Press() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == Pressed {
		return
	}
	t.current = JustPressed
}

// Release records a key-up
func (t *Tracker) Release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = JustReleased
}

// Finalize applies decay and returns the state for the tick about to run
// The result becomes the last state for the next frame
func (t *Tracker) Finalize() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := Decay(t.last, t.current)
	t.current = s
	t.last = s
	return s
}

// Current returns the pending state without finalizing
func (t *Tracker) Current() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Last returns the most recently finalized state
func (t *Tracker) Last() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}

// Reset returns the tracker to Released
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last = Released
	t.current = Released
}

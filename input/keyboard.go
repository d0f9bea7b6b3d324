package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// KeyListener feeds terminal key events into a Tracker
// Terminals report key-down and auto-repeat only, so a release is synthesized
// once no repeat of the swing key arrives within releaseAfter
type KeyListener struct {
	mu           sync.Mutex
	tracker      *Tracker
	table        *KeyTable
	releaseAfter time.Duration
	held         bool
	lastSeen     time.Time
}

// NewKeyListener creates a listener writing to tracker
func NewKeyListener(tracker *Tracker, table *KeyTable, releaseAfter time.Duration) *KeyListener {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &KeyListener{
		tracker:      tracker,
		table:        table,
		releaseAfter: releaseAfter,
	}
}

// HandleEvent processes a tcell event and returns the non-swing intent it maps to
func (l *KeyListener) HandleEvent(ev tcell.Event) Intent {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return IntentNone
	}
	return l.HandleKey(kev.Key(), kev.Rune(), kev.When())
}

// HandleKey processes a key press observed at now
// Swing presses go to the tracker; other intents are returned to the caller
func (l *KeyListener) HandleKey(key tcell.Key, r rune, now time.Time) Intent {
	intent := l.table.Lookup(key, r)
	if intent != IntentSwing {
		return intent
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastSeen = now
	if !l.held {
		l.held = true
		l.tracker.Press()
	}
	return IntentNone
}

// Poll synthesizes a release when the swing key has gone quiet
// Called once per tick before the tracker is finalized
func (l *KeyListener) Poll(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held && now.Sub(l.lastSeen) >= l.releaseAfter {
		l.held = false
		l.tracker.Release()
	}
}

// Held reports whether the swing key is considered down
func (l *KeyListener) Held() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.held
}

// Next synthesizes any pending release and finalizes the tracker for the next tick
func (l *KeyListener) Next(now time.Time) State {
	l.Poll(now)
	return l.tracker.Finalize()
}

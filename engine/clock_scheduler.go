package engine

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/derby/core"
	"github.com/lixenwraith/derby/event"
	"github.com/lixenwraith/derby/input"
)

// maxTickDelta caps the delta handed to systems after a stall
const maxTickDelta = 250 * time.Millisecond

// InputSource produces the finalized button state for the next tick
type InputSource interface {
	Next(now time.Time) input.State
}

// ClockScheduler runs the world on a fixed tick
// Each tick: finalize input, run systems, dispatch events, signal the frame loop
type ClockScheduler struct {
	world  *World
	clock  *PausableClock
	source InputSource
	router *event.Router[*World]
	log    *zap.Logger

	tickInterval time.Duration
	lastTickTime time.Time // Last tick in game time
	nextDeadline time.Time // Next tick deadline for drift correction
	frame        uint64
	mu           sync.Mutex

	tickCount atomic.Uint64

	// Control
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Frame synchronization channels
	frameReady <-chan struct{} // Receive: frame drawn, commands drained
	updateDone chan<- struct{} // Send: tick complete, commands ready
}

// NewClockScheduler creates a scheduler over world
// Receives the frameReady channel and returns the updateDone channel
func NewClockScheduler(
	world *World,
	source InputSource,
	clock *PausableClock,
	tickInterval time.Duration,
	frameReady <-chan struct{},
) (*ClockScheduler, <-chan struct{}) {
	if clock == nil {
		clock = NewPausableClock(nil)
	}
	updateDone := make(chan struct{}, 1)

	cs := &ClockScheduler{
		world:        world,
		clock:        clock,
		source:       source,
		router:       event.NewRouter[*World](world.Resource.Events),
		log:          world.Logger().Named("clock"),
		tickInterval: tickInterval,
		lastTickTime: clock.Now(),
		frameReady:   frameReady,
		updateDone:   updateDone,
		stopChan:     make(chan struct{}),
	}
	return cs, updateDone
}

// RegisterEventHandler adds an event handler to the router, must be called before Start()
func (cs *ClockScheduler) RegisterEventHandler(handler event.Handler[*World]) {
	cs.router.Register(handler)
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for it to exit
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// Pause freezes game time; ticks are skipped until Resume
func (cs *ClockScheduler) Pause() {
	cs.clock.Pause()
	cs.log.Debug("paused", zap.Uint64("tick", cs.tickCount.Load()))
}

// Resume continues ticking
func (cs *ClockScheduler) Resume() {
	cs.clock.Resume()
	cs.mu.Lock()
	cs.nextDeadline = cs.clock.Now().Add(cs.tickInterval)
	cs.mu.Unlock()
	cs.log.Debug("resumed", zap.Uint64("tick", cs.tickCount.Load()))
}

// TogglePause flips pause state and returns true when now paused
func (cs *ClockScheduler) TogglePause() bool {
	if cs.clock.IsPaused() {
		cs.Resume()
		return false
	}
	cs.Pause()
	return true
}

// Paused reports whether ticking is suspended
func (cs *ClockScheduler) Paused() bool {
	return cs.clock.IsPaused()
}

// TickCount returns the number of ticks run
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Step runs exactly one tick advanced by delta, synchronously
// Used by tests and headless mode; must not be mixed with a running loop
func (cs *ClockScheduler) Step(delta time.Duration) error {
	cs.mu.Lock()
	now := cs.lastTickTime.Add(delta)
	cs.mu.Unlock()
	return cs.processTick(now, now)
}

// schedulerLoop runs the main scheduling loop with pause awareness
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.lastTickTime = cs.clock.Now()
	cs.nextDeadline = cs.lastTickTime.Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	// A frameReady token received but not yet spent on a tick
	frameHeld := false

	for {
		select {
		case <-cs.stopChan:
			return
		default:
		}

		var sleep time.Duration

		if cs.clock.IsPaused() {
			// Slow poll while paused
			sleep = cs.tickInterval * 2
		} else {
			gameNow := cs.clock.Now()

			cs.mu.Lock()
			deadline := cs.nextDeadline
			cs.mu.Unlock()

			if !gameNow.Before(deadline) {
				// No tick until the previous batch of commands has been drained
				if !cs.awaitFrame(&frameHeld) {
					return
				}
				if cs.clock.IsPaused() {
					continue
				}
				gameNow = cs.clock.Now()

				if err := cs.processTick(gameNow, cs.clock.RealTime()); err != nil {
					panic(fmt.Errorf("tick %d: %w", cs.frame, err))
				}
				frameHeld = false

				cs.mu.Lock()
				cs.nextDeadline = cs.nextDeadline.Add(cs.tickInterval)
				if gameNow.Sub(cs.nextDeadline) > cs.tickInterval*2 {
					cs.nextDeadline = gameNow.Add(cs.tickInterval)
				}
				deadline = cs.nextDeadline
				cs.mu.Unlock()

				select {
				case cs.updateDone <- struct{}{}:
				default:
				}

				sleep = deadline.Sub(cs.clock.Now())
			} else {
				sleep = deadline.Sub(gameNow)
			}
		}

		if sleep > 0 {
			timer.Reset(sleep)
			select {
			case <-timer.C:
			case <-cs.stopChan:
				return
			}
		}
	}
}

// awaitFrame blocks until the drawing consumer signals frameReady or the scheduler stops
// A token consumed while paused is held for the next tick
func (cs *ClockScheduler) awaitFrame(held *bool) bool {
	if cs.frameReady == nil || *held {
		return true
	}
	select {
	case <-cs.frameReady:
		*held = true
		return true
	case <-cs.stopChan:
		return false
	}
}

// processTick executes one clock cycle at game time now
// realNow timestamps input, which arrives in wall time
func (cs *ClockScheduler) processTick(now, realNow time.Time) error {
	cs.mu.Lock()
	delta := now.Sub(cs.lastTickTime)
	if delta < 0 {
		delta = 0
	}
	if delta > maxTickDelta {
		delta = maxTickDelta
	}
	cs.lastTickTime = now
	cs.frame++
	frame := cs.frame
	cs.mu.Unlock()

	state := input.Released
	if cs.source != nil {
		state = cs.source.Next(realNow)
	}

	tick := TickData{
		DeltaMs: float64(delta) / float64(time.Millisecond),
		Input:   state,
		Frame:   frame,
	}

	var err error
	cs.world.RunSafe(func() {
		if err = cs.world.TickLocked(now, tick); err != nil {
			return
		}
		cs.router.DispatchAll(cs.world)
	})
	if err != nil {
		return err
	}

	cs.tickCount.Add(1)
	return nil
}

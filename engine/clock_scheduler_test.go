package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/derby/event"
	"github.com/lixenwraith/derby/input"
	"github.com/lixenwraith/derby/render"
)

// scriptedInput replays a fixed sequence of states, then Released
type scriptedInput struct {
	states []input.State
	times  []time.Time
}

func (s *scriptedInput) Next(now time.Time) input.State {
	s.times = append(s.times, now)
	if len(s.states) == 0 {
		return input.Released
	}
	st := s.states[0]
	s.states = s.states[1:]
	return st
}

// tickRecorder captures every TickData it sees and emits one event per tick
type tickRecorder struct {
	mu    sync.Mutex
	ticks []TickData
}

func (r *tickRecorder) Name() string   { return "recorder" }
func (r *tickRecorder) Priority() int  { return 0 }
func (r *tickRecorder) Access() Access { return Access{Reads: Kinds(KindGameFlow)} }
func (r *tickRecorder) Tick(w *World, tick TickData) {
	r.mu.Lock()
	r.ticks = append(r.ticks, tick)
	r.mu.Unlock()
	w.PushEvent(event.EventWindupSampled, &event.WindupPayload{DurationMs: tick.DeltaMs})
}

func (r *tickRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ticks)
}

// eventCounter is a router handler counting windup events
type eventCounter struct {
	frames []uint64
}

func (c *eventCounter) EventTypes() []event.EventType {
	return []event.EventType{event.EventWindupSampled}
}

func (c *eventCounter) HandleEvent(w *World, ev event.GameEvent) {
	c.frames = append(c.frames, ev.Frame)
}

func TestClockSchedulerStep(t *testing.T) {
	w := NewWorld(nil)
	rec := &tickRecorder{}
	w.AddSystem(rec)

	src := &scriptedInput{states: []input.State{input.JustPressed, input.Pressed}}
	mock := NewMockTimeProvider(time.Unix(1000, 0))
	cs, _ := NewClockScheduler(w, src, NewPausableClock(mock), 16*time.Millisecond, nil)

	counter := &eventCounter{}
	cs.RegisterEventHandler(counter)

	require.NoError(t, cs.Step(16*time.Millisecond))
	require.NoError(t, cs.Step(16*time.Millisecond))
	require.NoError(t, cs.Step(time.Second)) // clamped

	require.Len(t, rec.ticks, 3)
	assert.Equal(t, TickData{DeltaMs: 16, Input: input.JustPressed, Frame: 1}, rec.ticks[0])
	assert.Equal(t, TickData{DeltaMs: 16, Input: input.Pressed, Frame: 2}, rec.ticks[1])
	assert.Equal(t, float64(maxTickDelta/time.Millisecond), rec.ticks[2].DeltaMs)
	assert.Equal(t, input.Released, rec.ticks[2].Input)

	assert.Equal(t, []uint64{1, 2, 3}, counter.frames, "events dispatched after each tick")
	assert.Equal(t, uint64(3), cs.TickCount())
	assert.Equal(t, uint64(3), w.FrameNumber())
}

func TestClockSchedulerStepZeroDelta(t *testing.T) {
	w := NewWorld(nil)
	rec := &tickRecorder{}
	w.AddSystem(rec)
	cs, _ := NewClockScheduler(w, nil, NewPausableClock(NewMockTimeProvider(time.Unix(0, 0))), time.Millisecond, nil)

	require.NoError(t, cs.Step(0))
	assert.Equal(t, 0.0, rec.ticks[0].DeltaMs)
	assert.Equal(t, input.Released, rec.ticks[0].Input, "nil source reads as released")
}

func TestClockSchedulerLoopHandshake(t *testing.T) {
	w := NewWorld(nil)
	rec := &tickRecorder{}
	w.AddSystem(rec)

	frameReady := make(chan struct{}, 1)
	cs, updateDone := NewClockScheduler(w, nil, NewPausableClock(nil), 5*time.Millisecond, frameReady)
	cs.Start()
	defer cs.Stop()

	for i := 0; i < 3; i++ {
		frameReady <- struct{}{}
		select {
		case <-updateDone:
		case <-time.After(2 * time.Second):
			t.Fatalf("no update after frame %d", i)
		}
	}
	assert.GreaterOrEqual(t, rec.count(), 3)
}

func TestClockSchedulerPause(t *testing.T) {
	w := NewWorld(nil)
	rec := &tickRecorder{}
	w.AddSystem(rec)

	frameReady := make(chan struct{}, 1)
	cs, updateDone := NewClockScheduler(w, nil, NewPausableClock(nil), 2*time.Millisecond, frameReady)

	assert.True(t, cs.TogglePause())
	assert.True(t, cs.Paused())
	cs.Start()

	frameReady <- struct{}{}
	select {
	case <-updateDone:
		t.Fatal("ticked while paused")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, 0, rec.count())

	assert.False(t, cs.TogglePause())
	select {
	case <-updateDone:
	case <-time.After(2 * time.Second):
		t.Fatal("no tick after resume")
	}
	cs.Stop()
	cs.Stop() // idempotent
	assert.Positive(t, rec.count())
}

// commandEmitter pushes one command per tick
type commandEmitter struct{}

func (commandEmitter) Name() string   { return "emitter" }
func (commandEmitter) Priority() int  { return 0 }
func (commandEmitter) Access() Access { return Access{Writes: Kinds(KindCommands)} }
func (commandEmitter) Tick(w *World, tick TickData) {
	w.Resource.Commands.Push(render.DrawTransformed{ImageID: "ball", X: float64(tick.Frame)})
}

func TestClockSchedulerWaitsForStalledConsumer(t *testing.T) {
	w := NewWorld(nil)
	w.AddSystem(commandEmitter{})

	frameReady := make(chan struct{}, 1)
	cs, updateDone := NewClockScheduler(w, nil, NewPausableClock(nil), 10*time.Millisecond, frameReady)
	cs.Start()
	defer cs.Stop()

	// One frame drawn, then the consumer stalls
	frameReady <- struct{}{}
	select {
	case <-updateDone:
	case <-time.After(2 * time.Second):
		t.Fatal("no first tick")
	}
	time.Sleep(200 * time.Millisecond)

	assert.Equal(t, uint64(1), cs.TickCount(), "no ticks without a drained frame")
	cmds := w.Resource.Commands.Drain()
	require.Len(t, cmds, 1, "queue holds a single tick's batch")

	// Consumer resumes: exactly one more batch
	frameReady <- struct{}{}
	select {
	case <-updateDone:
	case <-time.After(2 * time.Second):
		t.Fatal("no tick after the frame was drained")
	}
	time.Sleep(50 * time.Millisecond)
	cmds = w.Resource.Commands.Drain()
	require.Len(t, cmds, 1)
	assert.Equal(t, 2.0, cmds[0].(render.DrawTransformed).X)
}

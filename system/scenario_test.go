package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/derby/component"
	"github.com/lixenwraith/derby/constant"
	"github.com/lixenwraith/derby/engine"
	"github.com/lixenwraith/derby/event"
)

// transitionRecorder collects dispatched events by frame
type transitionRecorder struct {
	phases  []event.PhaseChangedPayload
	frames  []uint64
	windups []float64
	pitches []uint64
}

func (r *transitionRecorder) EventTypes() []event.EventType {
	return []event.EventType{event.EventPhaseChanged, event.EventWindupSampled, event.EventPitchReleased}
}

func (r *transitionRecorder) HandleEvent(_ *engine.World, ev event.GameEvent) {
	switch ev.Type {
	case event.EventPhaseChanged:
		r.phases = append(r.phases, *ev.Payload.(*event.PhaseChangedPayload))
		r.frames = append(r.frames, ev.Frame)
	case event.EventWindupSampled:
		r.windups = append(r.windups, ev.Payload.(*event.WindupPayload).DurationMs)
	case event.EventPitchReleased:
		r.pitches = append(r.pitches, ev.Frame)
	}
}

// A tapped swing at t=0 with a 4000ms windup sample, ticked at 16ms
func TestFullPitchScenario(t *testing.T) {
	h := newHarness(t, FixedRandom(0.4))
	rec := &transitionRecorder{}
	h.clock.RegisterEventHandler(rec)

	h.input.Press()
	h.step(t)
	assert.Equal(t, component.PhaseWaitingForPlayer, h.phase(), "JustPressed does not start the at-bat")

	h.step(t)
	h.input.Release()
	assert.Equal(t, component.PhasePlayerReady, h.phase())

	h.step(t)
	require.Equal(t, component.PhaseWindup, h.phase())
	assert.Equal(t, 4000.0, h.pitcher().ActionTTL)

	for i := 4; i <= 400; i++ {
		h.step(t)
	}
	assert.Equal(t, component.PhaseBallInFlight, h.phase())

	for i := 401; i <= 650; i++ {
		h.step(t)
	}
	assert.Equal(t, component.PhaseWaitingForPlayer, h.phase(), "no press, no new at-bat")
	assert.Equal(t, constant.ClipReady, h.pitcher().ActiveClip.Name())
	assert.Equal(t, uint64(650), h.clock.TickCount())

	want := []event.PhaseChangedPayload{
		{From: component.PhaseWaitingForPlayer, To: component.PhasePlayerReady},
		{From: component.PhasePlayerReady, To: component.PhaseWindup},
		{From: component.PhaseWindup, To: component.PhasePitching},
		{From: component.PhasePitching, To: component.PhaseBallInFlight},
		{From: component.PhaseBallInFlight, To: component.PhaseWaitingForPlayer},
	}
	require.Equal(t, want, rec.phases)

	// Pitching after the 4000ms windup, BallInFlight once the 400ms clip drains,
	// WaitingForPlayer 5000ms after the not-ready clip starts
	assert.Equal(t, []uint64{2, 3, 254, 279, 593}, rec.frames)
	windupMs := float64(rec.frames[2]-rec.frames[1]) * tickMs
	assert.GreaterOrEqual(t, windupMs, 4000.0)
	assert.Less(t, windupMs, 4000.0+2*tickMs)

	pitchMs := float64(rec.frames[3]-rec.frames[2]) * tickMs
	assert.InDelta(t, 400, pitchMs, 2*tickMs)

	flightMs := float64(rec.frames[4]-rec.frames[3]) * tickMs
	assert.InDelta(t, 5000, flightMs, 3*tickMs)

	assert.Equal(t, []float64{4000}, rec.windups)
	assert.Equal(t, []uint64{279}, rec.pitches)
}

// A held button re-arms the batter as soon as the pitcher returns to waiting
func TestHeldButtonRepeats(t *testing.T) {
	h := newHarness(t, FixedRandom(0))
	h.input.Press()

	runUntil(t, h, component.PhaseBallInFlight, 400)
	runUntil(t, h, component.PhaseWaitingForPlayer, 400)

	h.step(t)
	assert.Equal(t, component.PhasePlayerReady, h.phase())
}

func TestPausedSchedulerHoldsPhase(t *testing.T) {
	h := newHarness(t, FixedRandom(0))
	h.input.Press()
	runUntil(t, h, component.PhaseWindup, 5)
	ttl := h.pitcher().ActionTTL

	h.clock.Pause()
	assert.True(t, h.clock.Paused())
	h.clock.Resume()

	h.step(t)
	assert.Equal(t, ttl-tickMs, h.pitcher().ActionTTL)
}

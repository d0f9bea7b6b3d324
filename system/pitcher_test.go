package system

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/derby/component"
	"github.com/lixenwraith/derby/constant"
	"github.com/lixenwraith/derby/sprite"
)

func TestNewPitcherThinkRequiresClips(t *testing.T) {
	cs := sprite.NewClipStore()
	require.NoError(t, cs.Define(constant.ClipReady, []sprite.Frame{{Cell: 0, Duration: 1}}))

	_, err := NewPitcherThinkSystem(cs, DefaultPitchTiming(), FixedRandom(0))
	assert.True(t, errors.Is(err, sprite.ErrUnknownClip))

	_, err = NewPitcherThinkSystem(pitcherClips(t), DefaultPitchTiming(), nil)
	assert.Error(t, err)
}

// runUntil steps until the phase changes or limit ticks pass, returning ticks taken
func runUntil(t *testing.T, h *harness, phase component.GamePhase, limit int) int {
	t.Helper()
	for i := 1; i <= limit; i++ {
		h.step(t)
		if h.phase() == phase {
			return i
		}
	}
	t.Fatalf("phase %s not reached within %d ticks, stuck in %s", phase, limit, h.phase())
	return 0
}

func TestPhaseCycleOrder(t *testing.T) {
	h := newHarness(t, FixedRandom(0))
	h.input.Press()

	seen := []component.GamePhase{h.phase()}
	for i := 0; i < 800 && len(seen) < 6; i++ {
		h.step(t)
		if p := h.phase(); p != seen[len(seen)-1] {
			seen = append(seen, p)
		}
		if i == 2 {
			h.input.Release()
		}
	}

	assert.Equal(t, []component.GamePhase{
		component.PhaseWaitingForPlayer,
		component.PhasePlayerReady,
		component.PhaseWindup,
		component.PhasePitching,
		component.PhaseBallInFlight,
		component.PhaseWaitingForPlayer,
	}, seen)
	for _, p := range seen {
		assert.True(t, p.Reachable())
	}
}

func TestPlayerReadyLastsOneTick(t *testing.T) {
	h := newHarness(t, FixedRandom(0))
	h.input.Press()

	runUntil(t, h, component.PhasePlayerReady, 5)
	assert.Equal(t, constant.ClipReady, h.pitcher().ActiveClip.Name(), "pitcher does not act in the batter's tick")

	h.step(t)
	assert.Equal(t, component.PhaseWindup, h.phase())
	assert.Equal(t, constant.ClipWinding, h.pitcher().ActiveClip.Name())
}

func TestWindupDuration(t *testing.T) {
	for _, r := range []float64{0, 0.4, 0.999} {
		h := newHarness(t, FixedRandom(r))
		h.input.Press()

		runUntil(t, h, component.PhaseWindup, 5)
		sample := h.pitcher().ActionTTL
		assert.GreaterOrEqual(t, sample, 3000.0)
		assert.Less(t, sample, 5500.0)
		assert.InDelta(t, 3000+r*2500, sample, 1e-9)

		ticks := runUntil(t, h, component.PhasePitching, 400)
		assert.GreaterOrEqual(t, float64(ticks*tickMs), sample, "windup never cut short")
		assert.Less(t, float64(ticks*tickMs), sample+2*tickMs)
		assert.Equal(t, constant.ClipPitching, h.pitcher().ActiveClip.Name())
		assert.Equal(t, sprite.OneShot, h.pitcher().ActiveClip.Mode())
	}
}

func TestBallInFlightEntry(t *testing.T) {
	h := newHarness(t, FixedRandom(0))
	h.input.Press()

	runUntil(t, h, component.PhaseBallInFlight, 400)
	assert.True(t, h.pitcher().ActiveClip.Drained(), "entered once the pitching clip drained")

	h.step(t)
	p := h.pitcher()
	assert.Equal(t, constant.ClipNotReady, p.ActiveClip.Name())
	assert.Equal(t, sprite.Loop, p.ActiveClip.Mode())
	assert.Equal(t, 5000.0, p.ActionTTL, "no decrement on the entry tick")

	h.step(t)
	assert.Equal(t, 5000.0-tickMs, h.pitcher().ActionTTL)
}

func TestReservedPhasesAreInert(t *testing.T) {
	for _, phase := range []component.GamePhase{
		component.PhaseFoul, component.PhaseHomeRun, component.PhaseHit, component.PhaseMiss,
	} {
		h := newHarness(t, FixedRandom(0))
		h.world.Components.GameFlow.Set(h.match.Flow, component.GameFlowComponent{Active: phase})
		h.input.Press()

		for i := 0; i < 10; i++ {
			h.step(t)
		}
		assert.Equal(t, phase, h.phase())
		assert.False(t, phase.Reachable())
		assert.Equal(t, 10*float64(tickMs), h.pitcher().ActiveClip.Elapsed(), "clip still advances")
	}
}

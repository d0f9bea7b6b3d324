package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/derby/component"
	"github.com/lixenwraith/derby/constant"
	"github.com/lixenwraith/derby/engine"
	"github.com/lixenwraith/derby/input"
	"github.com/lixenwraith/derby/render"
	"github.com/lixenwraith/derby/sprite"
)

const tickMs = 16

// pitcherClips mirrors the embedded pitcher sheet: Pitching lasts 400ms
func pitcherClips(t *testing.T) *sprite.ClipStore {
	t.Helper()
	cs := sprite.NewClipStore()
	require.NoError(t, cs.Define(constant.ClipReady, []sprite.Frame{{Cell: 0, Duration: 500}}))
	require.NoError(t, cs.Define(constant.ClipWinding, []sprite.Frame{{Cell: 1, Duration: 180}, {Cell: 2, Duration: 180}}))
	require.NoError(t, cs.Define(constant.ClipPitching, []sprite.Frame{{Cell: 3, Duration: 120}, {Cell: 4, Duration: 120}, {Cell: 5, Duration: 160}}))
	require.NoError(t, cs.Define(constant.ClipNotReady, []sprite.Frame{{Cell: 6, Duration: 600}, {Cell: 0, Duration: 200}}))
	return cs
}

func meterClips(t *testing.T) *sprite.ClipStore {
	t.Helper()
	cs := sprite.NewClipStore()
	require.NoError(t, cs.Define(constant.ClipNoBar, []sprite.Frame{{Cell: sprite.BlankCell, Duration: 1000}}))
	require.NoError(t, cs.Define(constant.ClipBar, []sprite.Frame{{Cell: 0, Duration: 150}, {Cell: 1, Duration: 150}}))
	require.NoError(t, cs.Define(constant.ClipPointer, []sprite.Frame{{Cell: 2, Duration: 200}, {Cell: 3, Duration: 200}}))
	return cs
}

// harness is a fully wired world driven through the clock scheduler
type harness struct {
	world *engine.World
	clock *engine.ClockScheduler
	match engine.Match
	input *input.Tracker
}

// trackerSource adapts a tracker to the scheduler's input source
type trackerSource struct{ t *input.Tracker }

func (s trackerSource) Next(time.Time) input.State { return s.t.Finalize() }

func newHarness(t *testing.T, rng Random) *harness {
	t.Helper()

	pc, mc := pitcherClips(t), meterClips(t)
	w := engine.NewWorld(nil)
	m, err := engine.SpawnMatch(w, pc, mc)
	require.NoError(t, err)

	pitcher, err := NewPitcherThinkSystem(pc, DefaultPitchTiming(), rng)
	require.NoError(t, err)
	meter, err := NewPowerMeterSystem(mc, constant.PowerDivisor)
	require.NoError(t, err)

	w.AddSystem(NewBatterThinkSystem())
	w.AddSystem(pitcher)
	w.AddSystem(meter)
	w.AddSystem(NewRenderSystem(DefaultLayout(), constant.SheetPitcher, constant.SheetPowerMeter))

	tr := input.NewTracker()
	cs, _ := engine.NewClockScheduler(w, trackerSource{tr}, engine.NewPausableClock(engine.NewMockTimeProvider(time.Unix(0, 0))), tickMs*time.Millisecond, nil)
	cs.RegisterEventHandler(NewPhaseLogger(nil))

	return &harness{world: w, clock: cs, match: m, input: tr}
}

// step runs one 16ms tick and drains the command queue like the drawing consumer
func (h *harness) step(t *testing.T) []render.Command {
	t.Helper()
	require.NoError(t, h.clock.Step(tickMs*time.Millisecond))
	return h.world.Resource.Commands.Drain()
}

func (h *harness) phase() component.GamePhase {
	_, flow, _ := h.world.Flow()
	return flow.Active
}

func (h *harness) pitcher() component.PitcherComponent {
	p, _ := h.world.Components.Pitcher.Get(h.match.Pitcher)
	return p
}

func (h *harness) meter() component.PowerMeterComponent {
	m, _ := h.world.Components.PowerMeter.Get(h.match.Meter)
	return m
}

package system

import (
	"fmt"

	"github.com/lixenwraith/derby/component"
	"github.com/lixenwraith/derby/constant"
	"github.com/lixenwraith/derby/engine"
	"github.com/lixenwraith/derby/event"
	"github.com/lixenwraith/derby/sprite"
)

// PitchTiming holds the pitcher's timed sub-phase lengths, ms
type PitchTiming struct {
	WindupBaseMs   float64
	WindupJitterMs float64
	FlightMs       float64
}

// DefaultPitchTiming returns the stock timings
func DefaultPitchTiming() PitchTiming {
	return PitchTiming{
		WindupBaseMs:   constant.WindupBaseMs,
		WindupJitterMs: constant.WindupJitterMs,
		FlightMs:       constant.FlightMs,
	}
}

// PitcherClips lists the clips the pitcher sheet must define
var PitcherClips = []string{
	constant.ClipReady,
	constant.ClipWinding,
	constant.ClipPitching,
	constant.ClipNotReady,
}

// PitcherThinkSystem drives the phase machine from PlayerReady through BallInFlight
// and animates the pitcher
type PitcherThinkSystem struct {
	clips  *sprite.ClipStore
	timing PitchTiming
	rng    Random
}

// NewPitcherThinkSystem creates the pitcher think system
// Fails if the clip store lacks any of PitcherClips
func NewPitcherThinkSystem(clips *sprite.ClipStore, timing PitchTiming, rng Random) (*PitcherThinkSystem, error) {
	if err := clips.Require(PitcherClips...); err != nil {
		return nil, fmt.Errorf("pitcher clips: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("pitcher think: nil random source")
	}
	return &PitcherThinkSystem{clips: clips, timing: timing, rng: rng}, nil
}

func (s *PitcherThinkSystem) Name() string {
	return "pitcher_think"
}

// Priority returns the system's priority (runs after the batter)
func (s *PitcherThinkSystem) Priority() int {
	return constant.PriorityPitcherThink
}

func (s *PitcherThinkSystem) Access() engine.Access {
	return engine.Access{
		Writes: engine.Kinds(engine.KindGameFlow, engine.KindPitcher),
	}
}

// Tick applies at most one transition and then advances each pitcher's clip by the tick delta
func (s *PitcherThinkSystem) Tick(w *engine.World, tick engine.TickData) {
	flowEntity, flow, hasFlow := w.Flow()

	for _, e := range w.Components.Pitcher.All() {
		p, ok := w.Components.Pitcher.Get(e)
		if !ok {
			continue
		}

		if hasFlow && !flow.TransitionedAt(tick.Frame) {
			if from, changed := s.think(&flow, &p, tick); changed {
				w.Components.GameFlow.Set(flowEntity, flow)
				s.emit(w, from, flow.Active, p)
			}
		}

		if p.ActiveClip != nil {
			p.ActiveClip.Update(tick.DeltaMs)
		}
		w.Components.Pitcher.Set(e, p)
	}
}

// think runs the phase logic for one pitcher, returning the left phase on transition
func (s *PitcherThinkSystem) think(flow *component.GameFlowComponent, p *component.PitcherComponent, tick engine.TickData) (component.GamePhase, bool) {
	switch flow.Active {
	case component.PhasePlayerReady:
		s.play(p, constant.ClipWinding, sprite.Loop)
		p.ActionTTL = s.timing.WindupBaseMs + s.rng.Float64()*s.timing.WindupJitterMs
		return flow.Enter(component.PhaseWindup, tick.Frame), true

	case component.PhaseWindup:
		p.ActionTTL -= tick.DeltaMs
		if p.ActionTTL >= 0 {
			return 0, false
		}
		s.play(p, constant.ClipPitching, sprite.OneShot)
		return flow.Enter(component.PhasePitching, tick.Frame), true

	case component.PhasePitching:
		if !p.ActiveClip.Drained() {
			return 0, false
		}
		return flow.Enter(component.PhaseBallInFlight, tick.Frame), true

	case component.PhaseBallInFlight:
		if p.ActiveClip == nil || p.ActiveClip.Name() != constant.ClipNotReady {
			s.play(p, constant.ClipNotReady, sprite.Loop)
			p.ActionTTL = s.timing.FlightMs
			return 0, false
		}
		p.ActionTTL -= tick.DeltaMs
		if p.ActionTTL >= 0 {
			return 0, false
		}
		s.play(p, constant.ClipReady, sprite.Loop)
		return flow.Enter(component.PhaseWaitingForPlayer, tick.Frame), true
	}

	// WaitingForPlayer belongs to the batter; reserved phases are never entered
	return 0, false
}

// play replaces the active clip; names were validated at construction
func (s *PitcherThinkSystem) play(p *component.PitcherComponent, name string, mode sprite.PlayMode) {
	clip := s.clips.MustCreate(name, mode)
	p.ActiveClip = &clip
}

func (s *PitcherThinkSystem) emit(w *engine.World, from, to component.GamePhase, p component.PitcherComponent) {
	payload := &event.PhaseChangedPayload{From: from, To: to}
	w.PushEvent(event.EventPhaseChanged, payload)

	switch to {
	case component.PhaseWindup:
		w.PushEvent(event.EventWindupSampled, &event.WindupPayload{DurationMs: p.ActionTTL})
	case component.PhaseBallInFlight:
		w.PushEvent(event.EventPitchReleased, payload)
	}
}

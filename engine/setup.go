package engine

import (
	"fmt"

	"github.com/lixenwraith/derby/component"
	"github.com/lixenwraith/derby/constant"
	"github.com/lixenwraith/derby/core"
	"github.com/lixenwraith/derby/sprite"
)

// Match holds the entities of one pitcher/batter match
type Match struct {
	Flow    core.Entity
	Pitcher core.Entity
	Batter  core.Entity
	Ball    core.Entity
	Meter   core.Entity
	Field   core.Entity
}

// SpawnMatch creates the initial entity set
// Pitcher starts on the looping Ready clip, the meter on No Bar with its pointer running
func SpawnMatch(w *World, pitcherClips, meterClips *sprite.ClipStore) (Match, error) {
	ready, err := pitcherClips.Create(constant.ClipReady, sprite.Loop)
	if err != nil {
		return Match{}, fmt.Errorf("spawn pitcher: %w", err)
	}
	noBar, err := meterClips.Create(constant.ClipNoBar, sprite.Loop)
	if err != nil {
		return Match{}, fmt.Errorf("spawn power meter: %w", err)
	}
	pointer, err := meterClips.Create(constant.ClipPointer, sprite.Loop)
	if err != nil {
		return Match{}, fmt.Errorf("spawn power meter: %w", err)
	}

	m := Match{
		Flow:    w.CreateEntity(),
		Pitcher: w.CreateEntity(),
		Batter:  w.CreateEntity(),
		Ball:    w.CreateEntity(),
		Meter:   w.CreateEntity(),
		Field:   w.CreateEntity(),
	}

	w.Components.GameFlow.Set(m.Flow, component.GameFlowComponent{Active: component.PhaseWaitingForPlayer})
	w.Components.Pitcher.Set(m.Pitcher, component.PitcherComponent{ActiveClip: &ready})
	w.Components.Batter.Set(m.Batter, component.BatterComponent{})
	w.Components.Bat.Set(m.Batter, component.BatComponent{})
	w.Components.Ball.Set(m.Ball, component.BallComponent{})
	w.Components.PowerMeter.Set(m.Meter, component.PowerMeterComponent{
		ActiveClip:  &noBar,
		PointerClip: pointer,
	})
	w.Components.OuterSpace.Set(m.Field, component.OuterSpaceComponent{Y: constant.OuterSpaceY})
	w.Components.Ground.Set(m.Field, component.GroundComponent{Y: constant.GroundY})

	return m, nil
}

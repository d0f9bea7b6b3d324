package system

import (
	"github.com/lixenwraith/derby/component"
	"github.com/lixenwraith/derby/constant"
	"github.com/lixenwraith/derby/engine"
	"github.com/lixenwraith/derby/event"
	"github.com/lixenwraith/derby/input"
)

// BatterThinkSystem starts an at-bat when the player presses the swing button
type BatterThinkSystem struct{}

// NewBatterThinkSystem creates the batter think system
func NewBatterThinkSystem() *BatterThinkSystem {
	return &BatterThinkSystem{}
}

func (s *BatterThinkSystem) Name() string {
	return "batter_think"
}

// Priority returns the system's priority (runs before the pitcher)
func (s *BatterThinkSystem) Priority() int {
	return constant.PriorityBatterThink
}

func (s *BatterThinkSystem) Access() engine.Access {
	return engine.Access{
		Reads:  engine.Kinds(engine.KindBatter),
		Writes: engine.Kinds(engine.KindGameFlow),
	}
}

// Tick moves WaitingForPlayer to PlayerReady on a held or just released button
func (s *BatterThinkSystem) Tick(w *engine.World, tick engine.TickData) {
	if w.Components.Batter.Count() == 0 {
		return
	}

	flowEntity, flow, ok := w.Flow()
	if !ok || flow.Active != component.PhaseWaitingForPlayer || flow.TransitionedAt(tick.Frame) {
		return
	}

	if tick.Input != input.Pressed && tick.Input != input.JustReleased {
		return
	}

	prev := flow.Enter(component.PhasePlayerReady, tick.Frame)
	w.Components.GameFlow.Set(flowEntity, flow)
	w.PushEvent(event.EventPhaseChanged, &event.PhaseChangedPayload{From: prev, To: flow.Active})
}

package engine

import (
	"github.com/lixenwraith/derby/component"
)

// ComponentStore holds the typed component tables of a world
// Pointers remain valid for the lifetime of the world
type ComponentStore struct {
	// Match state
	GameFlow *Store[component.GameFlowComponent]

	// Actors
	Pitcher *Store[component.PitcherComponent]
	Batter  *Store[component.BatterComponent]
	Bat     *Store[component.BatComponent]
	Ball    *Store[component.BallComponent]

	// HUD
	PowerMeter *Store[component.PowerMeterComponent]

	// Field bounds
	OuterSpace *Store[component.OuterSpaceComponent]
	Ground     *Store[component.GroundComponent]
}

// newComponentStore allocates every table and returns them with their type-erased views
func newComponentStore() (ComponentStore, []AnyStore) {
	cs := ComponentStore{
		GameFlow:   NewStore[component.GameFlowComponent](),
		Pitcher:    NewStore[component.PitcherComponent](),
		Batter:     NewStore[component.BatterComponent](),
		Bat:        NewStore[component.BatComponent](),
		Ball:       NewStore[component.BallComponent](),
		PowerMeter: NewStore[component.PowerMeterComponent](),
		OuterSpace: NewStore[component.OuterSpaceComponent](),
		Ground:     NewStore[component.GroundComponent](),
	}
	all := []AnyStore{
		cs.GameFlow, cs.Pitcher, cs.Batter, cs.Bat, cs.Ball,
		cs.PowerMeter, cs.OuterSpace, cs.Ground,
	}
	return cs, all
}

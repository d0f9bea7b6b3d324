package component

import "github.com/lixenwraith/derby/sprite"

// PitcherComponent drives the pitcher's timed sub-phases and animation
// ActionTTL is only meaningful during Windup and BallInFlight and may hold a stale value otherwise
type PitcherComponent struct {
	ActionTTL  float64 // ms remaining
	ActiveClip *sprite.AnimationClip
}

// BatterComponent marks that a batter takes part in the simulation
type BatterComponent struct{}

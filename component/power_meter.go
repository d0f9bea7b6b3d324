package component

import "github.com/lixenwraith/derby/sprite"

// PowerMeterComponent is the oscillating swing gauge
// PointerClip is always present; ActiveClip switches between idle and bar
type PowerMeterComponent struct {
	Time        float64 // ms accumulated during the current windup
	PowerLevel  float64 // sin(Time/divisor), kept from the last windup outside of it
	ActiveClip  *sprite.AnimationClip
	PointerClip sprite.AnimationClip
}

package event

import "github.com/lixenwraith/derby/component"

// EventType represents the type of game event
type EventType int

const (
	// EventPhaseChanged signals a GameFlow transition
	// Trigger: BatterThink, PitcherThink
	// Consumer: CuePlayer, PhaseLogger | Payload: *PhaseChangedPayload
	EventPhaseChanged EventType = iota

	// EventPitchReleased signals the pitching clip finished and the ball is in flight
	// Trigger: PitcherThink on Pitching -> BallInFlight
	// Consumer: CuePlayer | Payload: *PhaseChangedPayload
	EventPitchReleased

	// EventWindupSampled reports the windup duration drawn for a pitch
	// Trigger: PitcherThink on PlayerReady -> Windup
	// Consumer: PhaseLogger | Payload: *WindupPayload
	EventWindupSampled
)

// String returns the event name
func (t EventType) String() string {
	switch t {
	case EventPhaseChanged:
		return "PhaseChanged"
	case EventPitchReleased:
		return "PitchReleased"
	case EventWindupSampled:
		return "WindupSampled"
	default:
		return "Unknown"
	}
}

// GameEvent is a typed message with the frame it was emitted in
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   uint64
}

// PhaseChangedPayload carries both ends of a transition
type PhaseChangedPayload struct {
	From component.GamePhase
	To   component.GamePhase
}

// WindupPayload carries the sampled windup duration in ms
type WindupPayload struct {
	DurationMs float64
}

package component

// GamePhase is the current stage of the pitch/bat cycle
type GamePhase int

const (
	PhaseWaitingForPlayer GamePhase = iota
	PhasePlayerReady
	PhaseWindup
	PhasePitching
	PhaseBallInFlight

	// Outcome phases are modeled but no transition enters them yet
	// Ball flight and bat contact resolution would be their entry points
	PhaseFoul
	PhaseHomeRun
	PhaseHit
	PhaseMiss
)

// String returns the phase name
func (p GamePhase) String() string {
	switch p {
	case PhaseWaitingForPlayer:
		return "WaitingForPlayer"
	case PhasePlayerReady:
		return "PlayerReady"
	case PhaseWindup:
		return "Windup"
	case PhasePitching:
		return "Pitching"
	case PhaseBallInFlight:
		return "BallInFlight"
	case PhaseFoul:
		return "Foul"
	case PhaseHomeRun:
		return "HomeRun"
	case PhaseHit:
		return "Hit"
	case PhaseMiss:
		return "Miss"
	default:
		return "Unknown"
	}
}

// Reachable reports whether the current transition logic can ever enter the phase
func (p GamePhase) Reachable() bool {
	return p >= PhaseWaitingForPlayer && p <= PhaseBallInFlight
}

// ShowsPointer reports whether the power meter pointer is drawn in this phase
func (p GamePhase) ShowsPointer() bool {
	return p == PhaseWindup || p == PhasePitching || p == PhaseBallInFlight
}

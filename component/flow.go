package component

// GameFlowComponent owns the authoritative phase
// Single instance per world, written only by the batter and pitcher think systems
type GameFlowComponent struct {
	Active GamePhase

	// Frame of the most recent transition; at most one transition per frame
	LastTransition uint64
	Transitioned   bool // False until the first transition
}

// TransitionedAt reports whether the phase already changed during frame
func (f *GameFlowComponent) TransitionedAt(frame uint64) bool {
	return f.Transitioned && f.LastTransition == frame
}

// Enter switches to phase and stamps the frame, returning the previous phase
func (f *GameFlowComponent) Enter(phase GamePhase, frame uint64) GamePhase {
	prev := f.Active
	f.Active = phase
	f.LastTransition = frame
	f.Transitioned = true
	return prev
}

package input

// State is the per-frame state of the single swing button
type State uint8

const (
	Released     State = iota // Idle, the zero value
	JustPressed               // Pressed during this frame
	Pressed                   // Held for at least one full frame
	JustReleased              // Released during this frame
)

// String returns the state name
func (s State) String() string {
	switch s {
	case Released:
		return "Released"
	case JustPressed:
		return "JustPressed"
	case Pressed:
		return "Pressed"
	case JustReleased:
		return "JustReleased"
	default:
		return "Unknown"
	}
}

// Down reports whether the button is physically held
func (s State) Down() bool {
	return s == JustPressed || s == Pressed
}

// Decay reconciles the previous frame's state with the state written by event callbacks
// An edge state that survived a whole frame without being overwritten settles into its level state
func Decay(last, current State) State {
	switch {
	case last == JustPressed && current == JustPressed:
		return Pressed
	case last == JustReleased && current == JustReleased:
		return Released
	default:
		return current
	}
}

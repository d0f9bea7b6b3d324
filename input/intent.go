package input

// Intent is the action a key maps to
type Intent uint8

const (
	IntentNone Intent = iota
	IntentSwing
	IntentQuit
	IntentTogglePause
	IntentToggleMute
)

// String returns the intent name
func (i Intent) String() string {
	switch i {
	case IntentSwing:
		return "swing"
	case IntentQuit:
		return "quit"
	case IntentTogglePause:
		return "toggle_pause"
	case IntentToggleMute:
		return "toggle_mute"
	default:
		return "none"
	}
}

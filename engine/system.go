package engine

// System is a unit of per-tick simulation logic
type System interface {
	// Name identifies the system in logs and borrow errors
	Name() string

	// Priority orders dispatch, lower runs first
	Priority() int

	// Access declares the kinds read and written during Tick
	Access() Access

	// Tick advances the system by one frame
	// Must not block
	Tick(w *World, tick TickData)
}

package engine

import "github.com/lixenwraith/derby/input"

// TickData is the transient per-frame context handed to every system
type TickData struct {
	DeltaMs float64 // ms since previous tick, never negative
	Input   input.State
	Frame   uint64 // Starts at 1, increments per tick
}

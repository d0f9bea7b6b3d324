package engine

import (
	"time"

	"github.com/lixenwraith/derby/event"
	"github.com/lixenwraith/derby/render"
)

// Resource holds the singleton resources of a world, accessed via World.Resource
type Resource struct {
	Time     *TimeResource
	Events   *event.Queue
	Commands *render.CommandQueue
}

// TimeResource wraps time data for systems
// Updated at the start of every tick, under the world lock
type TimeResource struct {
	// GameTime is the clock reading the tick was scheduled at (affected by pause)
	GameTime time.Time

	// DeltaMs is the game time elapsed since the previous tick
	DeltaMs float64

	// Frame is the number of the tick being run
	Frame uint64
}

// Update modifies TimeResource fields in-place
func (tr *TimeResource) Update(gameTime time.Time, tick TickData) {
	tr.GameTime = gameTime
	tr.DeltaMs = tick.DeltaMs
	tr.Frame = tick.Frame
}

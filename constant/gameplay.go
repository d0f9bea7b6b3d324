package constant

import "time"

// Pitcher timing, ms
const (
	// WindupBaseMs is the minimum windup before the pitch
	WindupBaseMs = 3000.0

	// WindupJitterMs is the random extension on top of the base
	WindupJitterMs = 2500.0

	// FlightMs is how long the ball stays in flight before the next at-bat
	FlightMs = 5000.0
)

// Power meter
const (
	// PowerDivisor scales meter time into the sine argument
	PowerDivisor = 250.0

	// PointerSwing is the horizontal travel of the pointer at full power, px
	PointerSwing = 120.0
)

// Field boundaries, px from the top
const (
	OuterSpaceY = 20.0
	GroundY     = 280.0
)

// Simulation clock
const (
	TickInterval  = 16 * time.Millisecond
	FrameInterval = 16 * time.Millisecond

	// ReleaseAfter is how long the swing key counts as held without a repeat
	// Above common terminal key-repeat delays (500-660ms)
	ReleaseAfter = 700 * time.Millisecond
)

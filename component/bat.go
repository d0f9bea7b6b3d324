package component

import "github.com/lixenwraith/derby/core"

// BatComponent holds bat collision geometry
// Not read by any system yet; bat contact is future work
type BatComponent struct {
	Swinging bool
	BBox     core.Rect
}

// BallComponent models the pitched ball
// Never mutated by a system yet; ball flight is future work
type BallComponent struct {
	BBox        core.Rect
	Pos         core.Point
	Angle       float64
	Velocity    float64
	OutOfBounds bool
}

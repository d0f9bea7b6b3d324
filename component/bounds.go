package component

// OuterSpaceComponent is the upper edge of the play field
type OuterSpaceComponent struct {
	Y float64
}

// GroundComponent is the lower edge of the play field
type GroundComponent struct {
	Y float64
}

package constant

// Sprite sheet resource names
const (
	SheetPitcher    = "pitcher"
	SheetPowerMeter = "power_meter"
)

// Pitcher clips
const (
	ClipReady    = "Ready"
	ClipWinding  = "Winding"
	ClipPitching = "Pitching"
	ClipNotReady = "Not Ready"
)

// Power meter clips
const (
	ClipNoBar   = "No Bar"
	ClipBar     = "Bar"
	ClipPointer = "Pointer"
)

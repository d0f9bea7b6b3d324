package constant

// Default sprite placement, px in window space
const (
	PitcherX = 130.0
	PitcherY = 120.0

	BarX = 30.0
	BarY = 250.0

	// PointerBaselineX is the pointer position at zero power
	PointerBaselineX = 150.0
	PointerBaselineY = 238.0

	SpriteScale = 1.0
)

// Window
const (
	WindowTitle  = "Home World Derby"
	WindowWidth  = 300
	WindowHeight = 300

	// Pixels per terminal cell
	CellWidthPx  = 4
	CellHeightPx = 12
)

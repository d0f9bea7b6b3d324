package constant

// System Execution Priorities (lower runs first)
const (
	PriorityBatterThink  = 10
	PriorityPitcherThink = 20 // After batter, sees PlayerReady on the next tick
	PriorityPowerMeter   = 30 // After think systems, reads the settled phase
	PriorityRender       = 40 // Last, reads everything
)

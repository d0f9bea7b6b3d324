package audio

import "time"

// Cue is a named tone
type Cue struct {
	Name     string
	Freq     float64 // Hz
	Duration time.Duration
}

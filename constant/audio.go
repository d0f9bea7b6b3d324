package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Phase cues, Hz and duration
const (
	CueReadyFreq     = 660.0
	CueReadyDuration = 60 * time.Millisecond

	CueWindupFreq     = 220.0
	CueWindupDuration = 120 * time.Millisecond

	CuePitchFreq     = 880.0
	CuePitchDuration = 40 * time.Millisecond

	// MinCueGap between consecutive cues
	MinCueGap = 30 * time.Millisecond
)

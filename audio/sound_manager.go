package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/derby/constant"
)

const (
	sampleRate = beep.SampleRate(constant.AudioSampleRate)
)

// SoundManager owns the speaker and mixes short tones into it
// Every operation is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	initialized bool
	lastTone    time.Time
}

// NewSoundManager creates a sound manager; volume is a base-2 gain exponent
func NewSoundManager(volume float64) *SoundManager {
	mixer := &beep.Mixer{}
	ctrl := &beep.Ctrl{Streamer: mixer}
	return &SoundManager{
		mixer: mixer,
		ctrl:  ctrl,
		volume: &effects.Volume{
			Streamer: ctrl,
			Base:     2,
			Volume:   volume,
		},
	}
}

// Initialize opens the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constant.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// Cleanup silences and detaches all queued tones
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	speaker.Lock()
	sm.ctrl.Paused = !sm.ctrl.Paused
	muted := sm.ctrl.Paused
	speaker.Unlock()
	return muted
}

// Muted reports whether output is paused
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	speaker.Lock()
	defer speaker.Unlock()
	return sm.ctrl.Paused
}

// PlayTone queues a sine tone and reports whether it was queued
// Tones closer than MinCueGap to the previous one are dropped
func (sm *SoundManager) PlayTone(freq float64, d time.Duration) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}

	now := time.Now()
	if now.Sub(sm.lastTone) < constant.MinCueGap {
		return false
	}
	sm.lastTone = now

	streamer := beep.Take(sampleRate.N(d), NewToneGenerator(sampleRate, freq, d))
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// ToneGenerator generates a sine tone with a short attack and release
type ToneGenerator struct {
	sr      beep.SampleRate
	freq    float64
	pos     int
	samples int // total length, for the release envelope
	ramp    int // attack and release length
}

// NewToneGenerator creates a tone generator for a tone of length d
func NewToneGenerator(sr beep.SampleRate, freq float64, d time.Duration) *ToneGenerator {
	samples := sr.N(d)
	ramp := sr.N(5 * time.Millisecond)
	if ramp > samples/2 {
		ramp = samples / 2
	}
	return &ToneGenerator{
		sr:      sr,
		freq:    freq,
		samples: samples,
		ramp:    ramp,
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := 0.25 * math.Sin(2*math.Pi*g.freq*t) * g.envelope()

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

// envelope ramps linearly in over the attack and out over the release
func (g *ToneGenerator) envelope() float64 {
	if g.ramp <= 0 {
		return 1
	}
	env := 1.0
	if g.pos < g.ramp {
		env = float64(g.pos) / float64(g.ramp)
	}
	if left := g.samples - g.pos; left < g.ramp {
		env = math.Min(env, math.Max(float64(left)/float64(g.ramp), 0))
	}
	return env
}

func (g *ToneGenerator) Err() error {
	return nil
}

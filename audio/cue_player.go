package audio

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/derby/component"
	"github.com/lixenwraith/derby/constant"
	"github.com/lixenwraith/derby/engine"
	"github.com/lixenwraith/derby/event"
)

// CuePlayer turns phase events into short tones
type CuePlayer struct {
	sm  *SoundManager
	log *zap.Logger
}

// NewCuePlayer creates a cue player over sm
func NewCuePlayer(sm *SoundManager, log *zap.Logger) *CuePlayer {
	if log == nil {
		log = zap.NewNop()
	}
	return &CuePlayer{sm: sm, log: log}
}

// EventTypes returns the event types CuePlayer handles
func (c *CuePlayer) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPhaseChanged,
		event.EventPitchReleased,
	}
}

// HandleEvent plays the cue for one event, if any
func (c *CuePlayer) HandleEvent(w *engine.World, ev event.GameEvent) {
	cue, ok := CueFor(ev)
	if !ok {
		return
	}
	if c.sm.PlayTone(cue.Freq, cue.Duration) {
		c.log.Debug("cue", zap.String("name", cue.Name), zap.Uint64("frame", ev.Frame))
	}
}

// CueFor maps an event to its tone
func CueFor(ev event.GameEvent) (Cue, bool) {
	switch ev.Type {
	case event.EventPitchReleased:
		return Cue{Name: "pitch", Freq: constant.CuePitchFreq, Duration: constant.CuePitchDuration}, true
	case event.EventPhaseChanged:
		p, ok := ev.Payload.(*event.PhaseChangedPayload)
		if !ok {
			return Cue{}, false
		}
		switch p.To {
		case component.PhasePlayerReady:
			return Cue{Name: "ready", Freq: constant.CueReadyFreq, Duration: constant.CueReadyDuration}, true
		case component.PhaseWindup:
			return Cue{Name: "windup", Freq: constant.CueWindupFreq, Duration: constant.CueWindupDuration}, true
		}
	}
	return Cue{}, false
}

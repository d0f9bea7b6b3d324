package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/derby/engine"
	"github.com/lixenwraith/derby/event"
)

// PhaseLogger records phase transitions and windup samples at debug level
type PhaseLogger struct {
	log *zap.Logger
}

// NewPhaseLogger creates the logger handler
func NewPhaseLogger(log *zap.Logger) *PhaseLogger {
	if log == nil {
		log = zap.NewNop()
	}
	return &PhaseLogger{log: log}
}

// EventTypes returns the event types PhaseLogger handles
func (h *PhaseLogger) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPhaseChanged,
		event.EventWindupSampled,
	}
}

// HandleEvent logs one event
func (h *PhaseLogger) HandleEvent(w *engine.World, ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.PhaseChangedPayload:
		h.log.Debug("phase changed",
			zap.Stringer("from", p.From),
			zap.Stringer("to", p.To),
			zap.Uint64("frame", ev.Frame))
	case *event.WindupPayload:
		h.log.Debug("windup sampled",
			zap.Float64("ms", p.DurationMs),
			zap.Uint64("frame", ev.Frame))
	}
}

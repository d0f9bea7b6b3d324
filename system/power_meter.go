package system

import (
	"fmt"
	"math"

	"github.com/lixenwraith/derby/component"
	"github.com/lixenwraith/derby/constant"
	"github.com/lixenwraith/derby/engine"
	"github.com/lixenwraith/derby/sprite"
)

// PowerMeterClips lists the clips the meter sheet must define
var PowerMeterClips = []string{
	constant.ClipNoBar,
	constant.ClipBar,
	constant.ClipPointer,
}

// PowerMeterSystem oscillates the swing gauge during the windup
type PowerMeterSystem struct {
	clips   *sprite.ClipStore
	divisor float64
}

// NewPowerMeterSystem creates the meter system; divisor scales time into the sine argument
func NewPowerMeterSystem(clips *sprite.ClipStore, divisor float64) (*PowerMeterSystem, error) {
	if err := clips.Require(PowerMeterClips...); err != nil {
		return nil, fmt.Errorf("power meter clips: %w", err)
	}
	if divisor == 0 {
		return nil, fmt.Errorf("power meter: zero divisor")
	}
	return &PowerMeterSystem{clips: clips, divisor: divisor}, nil
}

func (s *PowerMeterSystem) Name() string {
	return "power_meter"
}

func (s *PowerMeterSystem) Priority() int {
	return constant.PriorityPowerMeter
}

func (s *PowerMeterSystem) Access() engine.Access {
	return engine.Access{
		Reads:  engine.Kinds(engine.KindGameFlow),
		Writes: engine.Kinds(engine.KindPowerMeter),
	}
}

// Tick accumulates meter time during Windup and keeps the active clip in step with the phase
func (s *PowerMeterSystem) Tick(w *engine.World, tick engine.TickData) {
	_, flow, hasFlow := w.Flow()

	for _, e := range w.Components.PowerMeter.All() {
		m, ok := w.Components.PowerMeter.Get(e)
		if !ok {
			continue
		}

		if hasFlow {
			switch flow.Active {
			case component.PhaseWaitingForPlayer:
				s.ensure(&m, constant.ClipNoBar)
			case component.PhaseWindup:
				m.Time += tick.DeltaMs
				m.PowerLevel = math.Sin(m.Time / s.divisor)
				s.ensure(&m, constant.ClipBar)
			default:
				// PowerLevel carries the last windup's value for the pointer
				m.Time = 0
			}
		}

		if m.ActiveClip != nil {
			m.ActiveClip.Update(tick.DeltaMs)
		}
		m.PointerClip.Update(tick.DeltaMs)
		w.Components.PowerMeter.Set(e, m)
	}
}

// ensure switches the active clip only when it differs, so a running clip keeps its position
func (s *PowerMeterSystem) ensure(m *component.PowerMeterComponent, name string) {
	if m.ActiveClip != nil && m.ActiveClip.Name() == name {
		return
	}
	clip := s.clips.MustCreate(name, sprite.Loop)
	m.ActiveClip = &clip
}

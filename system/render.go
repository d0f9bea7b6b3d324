package system

import (
	"github.com/lixenwraith/derby/constant"
	"github.com/lixenwraith/derby/core"
	"github.com/lixenwraith/derby/engine"
	"github.com/lixenwraith/derby/render"
)

// Layout places sprites in window space, px
type Layout struct {
	Pitcher      core.Point
	Bar          core.Point
	Pointer      core.Point // baseline at zero power
	PointerSwing float64
	Scale        float64
}

// DefaultLayout returns the stock sprite placement
func DefaultLayout() Layout {
	return Layout{
		Pitcher:      core.Point{X: constant.PitcherX, Y: constant.PitcherY},
		Bar:          core.Point{X: constant.BarX, Y: constant.BarY},
		Pointer:      core.Point{X: constant.PointerBaselineX, Y: constant.PointerBaselineY},
		PointerSwing: constant.PointerSwing,
		Scale:        constant.SpriteScale,
	}
}

// RenderSystem converts the pitcher and meter state into draw commands
// Read-only on simulation state; the command queue is its only output
type RenderSystem struct {
	layout       Layout
	pitcherImage string
	meterImage   string
}

// NewRenderSystem creates the render system for the given sheet images
func NewRenderSystem(layout Layout, pitcherImage, meterImage string) *RenderSystem {
	return &RenderSystem{
		layout:       layout,
		pitcherImage: pitcherImage,
		meterImage:   meterImage,
	}
}

func (s *RenderSystem) Name() string {
	return "render"
}

// Priority returns the system's priority (runs last)
func (s *RenderSystem) Priority() int {
	return constant.PriorityRender
}

func (s *RenderSystem) Access() engine.Access {
	return engine.Access{
		Reads:  engine.Kinds(engine.KindGameFlow, engine.KindPitcher, engine.KindPowerMeter),
		Writes: engine.Kinds(engine.KindCommands),
	}
}

// Tick emits pitcher, bar and pointer commands in that order
func (s *RenderSystem) Tick(w *engine.World, tick engine.TickData) {
	q := w.Resource.Commands

	for _, e := range w.Components.Pitcher.All() {
		p, ok := w.Components.Pitcher.Get(e)
		if !ok {
			continue
		}
		if cell, ok := p.ActiveClip.Cell(); ok {
			q.Push(render.DrawSpriteSheetCell{
				ImageID:  s.pitcherImage,
				Cell:     cell,
				Position: s.layout.Pitcher,
				Scale:    s.layout.Scale,
			})
		}
	}

	_, flow, hasFlow := w.Flow()
	showPointer := hasFlow && flow.Active.ShowsPointer()

	for _, e := range w.Components.PowerMeter.All() {
		m, ok := w.Components.PowerMeter.Get(e)
		if !ok {
			continue
		}
		if cell, ok := m.ActiveClip.Cell(); ok {
			q.Push(render.DrawSpriteSheetCell{
				ImageID:  s.meterImage,
				Cell:     cell,
				Position: s.layout.Bar,
				Scale:    s.layout.Scale,
			})
		}
		if !showPointer {
			continue
		}
		if cell, ok := m.PointerClip.Cell(); ok {
			q.Push(render.DrawSpriteSheetCell{
				ImageID: s.meterImage,
				Cell:    cell,
				Position: core.Point{
					X: s.layout.Pointer.X + m.PowerLevel*s.layout.PointerSwing,
					Y: s.layout.Pointer.Y,
				},
				Scale: s.layout.Scale,
			})
		}
	}
}

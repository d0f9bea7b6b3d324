package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/derby/asset"
	"github.com/lixenwraith/derby/config"
	"github.com/lixenwraith/derby/constant"
	"github.com/lixenwraith/derby/engine"
	"github.com/lixenwraith/derby/input"
	"github.com/lixenwraith/derby/render"
	"github.com/lixenwraith/derby/sprite"
	"github.com/lixenwraith/derby/system"
)

// game is the wired simulation: world, match entities, loaded assets and input
type game struct {
	cfg     *config.Config
	log     *zap.Logger
	world   *engine.World
	match   engine.Match
	bundle  *asset.Bundle
	sheets  []*sprite.SheetData
	tracker *input.Tracker
}

// newGame loads assets, spawns the match and registers the systems in priority order
func newGame(cfg *config.Config, rng system.Random, log *zap.Logger) (*game, error) {
	fsys := asset.Open(cfg.Assets.Dir)

	lib := sprite.NewLibrary(fsys, log.Named("sprite"))
	pitcherSheet, err := lib.Require(constant.SheetPitcher, system.PitcherClips...)
	if err != nil {
		return nil, err
	}
	meterSheet, err := lib.Require(constant.SheetPowerMeter, system.PowerMeterClips...)
	if err != nil {
		return nil, err
	}
	for _, name := range cfg.Assets.Sheets {
		if _, err := lib.Load(name); err != nil {
			return nil, err
		}
	}

	bundle := asset.NewBundle(fsys, len(render.Palette), log.Named("asset"))
	if err := bundle.Preload(pitcherSheet.ImageID, meterSheet.ImageID); err != nil {
		return nil, fmt.Errorf("preload images: %w", err)
	}

	w := engine.NewWorld(log.Named("engine"))
	match, err := engine.SpawnMatch(w, pitcherSheet.Clips, meterSheet.Clips)
	if err != nil {
		return nil, err
	}

	sim := cfg.Simulation
	pitcher, err := system.NewPitcherThinkSystem(pitcherSheet.Clips, system.PitchTiming{
		WindupBaseMs:   sim.WindupBaseMs,
		WindupJitterMs: sim.WindupJitterMs,
		FlightMs:       sim.FlightMs,
	}, rng)
	if err != nil {
		return nil, err
	}
	meter, err := system.NewPowerMeterSystem(meterSheet.Clips, sim.PowerDivisor)
	if err != nil {
		return nil, err
	}
	layout := system.Layout{
		Pitcher:      cfg.Layout.Pitcher,
		Bar:          cfg.Layout.Bar,
		Pointer:      cfg.Layout.Pointer,
		PointerSwing: cfg.Layout.PointerSwing,
		Scale:        cfg.Layout.Scale,
	}

	w.AddSystem(system.NewBatterThinkSystem())
	w.AddSystem(pitcher)
	w.AddSystem(meter)
	w.AddSystem(system.NewRenderSystem(layout, pitcherSheet.ImageID, meterSheet.ImageID))

	return &game{
		cfg:     cfg,
		log:     log,
		world:   w,
		match:   match,
		bundle:  bundle,
		sheets:  []*sprite.SheetData{pitcherSheet, meterSheet},
		tracker: input.NewTracker(),
	}, nil
}

// scheduler creates the clock scheduler with the phase logger attached
func (g *game) scheduler(source engine.InputSource, clock *engine.PausableClock, frameReady <-chan struct{}) (*engine.ClockScheduler, <-chan struct{}) {
	cs, updateDone := engine.NewClockScheduler(g.world, source, clock, g.cfg.Simulation.TickInterval, frameReady)
	cs.RegisterEventHandler(system.NewPhaseLogger(g.log.Named("phase")))
	return cs, updateDone
}

// viewport returns the window-to-terminal mapping from config
func (g *game) viewport() render.Viewport {
	return render.Viewport{
		Width:        g.cfg.Window.Width,
		Height:       g.cfg.Window.Height,
		CellWidthPx:  g.cfg.Window.CellWidthPx,
		CellHeightPx: g.cfg.Window.CellHeightPx,
	}
}

// status snapshots the status line under the update lock
func (g *game) status() render.Status {
	var s render.Status
	g.world.RunSafe(func() {
		if _, flow, ok := g.world.Flow(); ok {
			s.Phase = flow.Active.String()
		}
		if m, ok := g.world.Components.PowerMeter.Get(g.match.Meter); ok {
			s.Power = m.PowerLevel
		}
		s.Frame = g.world.FrameNumber()
	})
	return s
}

// heldSource keeps the swing button down for unattended runs
type heldSource struct {
	tracker *input.Tracker
}

func (s heldSource) Next(time.Time) input.State {
	s.tracker.Press()
	return s.tracker.Finalize()
}

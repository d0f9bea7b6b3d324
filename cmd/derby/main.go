package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/derby/audio"
	"github.com/lixenwraith/derby/config"
	"github.com/lixenwraith/derby/core"
	"github.com/lixenwraith/derby/engine"
	"github.com/lixenwraith/derby/input"
	"github.com/lixenwraith/derby/render"
)

var (
	configFlag   = flag.String("config", "", "Path to a TOML config file (defaults when empty)")
	debugFlag    = flag.Bool("debug", false, "Enable debug logging to the log directory")
	seedFlag     = flag.Int64("seed", 0, "Windup random seed, 0 = config or time based")
	headlessFlag = flag.Bool("headless", false, "Run without a terminal, holding the swing button")
	ticksFlag    = flag.Int("ticks", 1000, "Ticks to run in headless mode")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *debugFlag {
		cfg.Logging.Enabled = true
		cfg.Logging.Level = "debug"
	}
	if *seedFlag != 0 {
		cfg.Simulation.Seed = *seedFlag
	}
	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log, closeLog, err := setupLogging(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer closeLog()
	log = log.With(zap.String("session", uuid.NewString()))
	log.Info("starting", zap.Int64("seed", seed), zap.Bool("headless", *headlessFlag))

	g, err := newGame(cfg, rand.New(rand.NewSource(seed)), log)
	if err != nil {
		return fmt.Errorf("init game: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *headlessFlag {
		return runHeadless(ctx, g, *ticksFlag)
	}
	return runInteractive(ctx, g)
}

// runHeadless steps the simulation with the swing button held and logs the drained commands
func runHeadless(ctx context.Context, g *game, ticks int) error {
	cs, _ := g.scheduler(heldSource{tracker: g.tracker}, engine.NewPausableClock(nil), nil)
	for i := 0; i < ticks && ctx.Err() == nil; i++ {
		if err := cs.Step(g.cfg.Simulation.TickInterval); err != nil {
			return fmt.Errorf("tick %d: %w", i+1, err)
		}
		for _, cmd := range g.world.Resource.Commands.Drain() {
			g.log.Debug("command", zap.Uint64("frame", g.world.FrameNumber()), zap.Stringer("cmd", cmd))
		}
	}

	s := g.status()
	fmt.Printf("ticks=%d phase=%s power=%+.3f\n", cs.TickCount(), s.Phase, s.Power)
	return nil
}

func runInteractive(ctx context.Context, g *game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashCleanup(screen.Fini)
	screen.SetTitle(g.cfg.Window.Title)

	var sound *audio.SoundManager
	frameReady := make(chan struct{}, 1)
	listener := input.NewKeyListener(g.tracker, input.DefaultKeyTable(), g.cfg.Input.ReleaseAfter)
	cs, updateDone := g.scheduler(listener, engine.NewPausableClock(nil), frameReady)

	if g.cfg.Audio.Enabled {
		sm := audio.NewSoundManager(g.cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			g.log.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			sound = sm
			defer sm.Cleanup()
			cs.RegisterEventHandler(audio.NewCuePlayer(sm, g.log.Named("audio")))
		}
	}

	drawer := render.NewTerminalDrawer(screen, g.bundle, g.viewport(), g.sheets...)

	// Signal initial frame ready
	frameReady <- struct{}{}
	cs.Start()
	defer cs.Stop()

	frameTicker := time.NewTicker(g.cfg.Simulation.FrameInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	var cmds []render.Command
	for {
		select {
		case <-ctx.Done():
			g.log.Info("interrupted", zap.Uint64("ticks", cs.TickCount()))
			return nil

		case ev := <-eventChan:
			switch listener.HandleEvent(ev) {
			case input.IntentQuit:
				g.log.Info("quit", zap.Uint64("ticks", cs.TickCount()))
				return nil
			case input.IntentTogglePause:
				cs.TogglePause()
			case input.IntentToggleMute:
				if sound != nil {
					sound.ToggleMute()
				}
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}

		case <-frameTicker.C:
			updated := false
			select {
			case <-updateDone:
				updated = true
			default:
			}
			// Keep the last frame's commands while no tick has completed
			if updated {
				if fresh := g.world.Resource.Commands.Drain(); fresh != nil {
					cmds = fresh
				}
			}

			status := g.status()
			status.Paused = cs.Paused()
			status.Muted = sound != nil && sound.Muted()
			if err := drawer.Draw(cmds, status); err != nil {
				g.log.Warn("draw", zap.Error(err))
			}

			if updated {
				select {
				case frameReady <- struct{}{}:
				default:
				}
			}
		}
	}
}

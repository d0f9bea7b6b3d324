package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/derby/constant"
	"github.com/lixenwraith/derby/core"
)

type Config struct {
	Window     WindowConfig     `toml:"window"`
	Simulation SimulationConfig `toml:"simulation"`
	Input      InputConfig      `toml:"input"`
	Layout     LayoutConfig     `toml:"layout"`
	Assets     AssetsConfig     `toml:"assets"`
	Audio      AudioConfig      `toml:"audio"`
	Logging    LoggingConfig    `toml:"logging"`
}

type WindowConfig struct {
	Title        string `toml:"title"`
	Width        int    `toml:"width"`  // px
	Height       int    `toml:"height"` // px
	CellWidthPx  int    `toml:"cell_width_px"`
	CellHeightPx int    `toml:"cell_height_px"`
}

type SimulationConfig struct {
	TickInterval   time.Duration `toml:"tick_interval"`
	FrameInterval  time.Duration `toml:"frame_interval"`
	WindupBaseMs   float64       `toml:"windup_base_ms"`
	WindupJitterMs float64       `toml:"windup_jitter_ms"`
	FlightMs       float64       `toml:"flight_ms"`
	PowerDivisor   float64       `toml:"power_divisor"`
	Seed           int64         `toml:"seed"` // 0 = time based
}

type InputConfig struct {
	ReleaseAfter time.Duration `toml:"release_after"` // synthesized key-up delay
}

type LayoutConfig struct {
	Pitcher      core.Point `toml:"pitcher"`
	Bar          core.Point `toml:"bar"`
	Pointer      core.Point `toml:"pointer"` // baseline at zero power
	PointerSwing float64    `toml:"pointer_swing"`
	Scale        float64    `toml:"scale"`
}

type AssetsConfig struct {
	Dir    string   `toml:"dir"` // empty = embedded
	Sheets []string `toml:"sheets"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // beep gain exponent, 0 = unchanged
}

type LoggingConfig struct {
	Enabled bool   `toml:"enabled"`
	Level   string `toml:"level"`
	Format  string `toml:"format"` // "json" or "console"
	Dir     string `toml:"dir"`
}

// Load reads path over the defaults; an empty path yields the defaults
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Defaults returns the built-in configuration
func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:        constant.WindowTitle,
			Width:        constant.WindowWidth,
			Height:       constant.WindowHeight,
			CellWidthPx:  constant.CellWidthPx,
			CellHeightPx: constant.CellHeightPx,
		},
		Simulation: SimulationConfig{
			TickInterval:   constant.TickInterval,
			FrameInterval:  constant.FrameInterval,
			WindupBaseMs:   constant.WindupBaseMs,
			WindupJitterMs: constant.WindupJitterMs,
			FlightMs:       constant.FlightMs,
			PowerDivisor:   constant.PowerDivisor,
		},
		Input: InputConfig{
			ReleaseAfter: constant.ReleaseAfter,
		},
		Layout: LayoutConfig{
			Pitcher:      core.Point{X: constant.PitcherX, Y: constant.PitcherY},
			Bar:          core.Point{X: constant.BarX, Y: constant.BarY},
			Pointer:      core.Point{X: constant.PointerBaselineX, Y: constant.PointerBaselineY},
			PointerSwing: constant.PointerSwing,
			Scale:        constant.SpriteScale,
		},
		Assets: AssetsConfig{
			Sheets: []string{constant.SheetPitcher, constant.SheetPowerMeter},
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
			Format:  "console",
			Dir:     "logs",
		},
	}
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.CellWidthPx <= 0 || c.Window.CellHeightPx <= 0 {
		errs = append(errs, fmt.Errorf("cell size %dx%d must be positive", c.Window.CellWidthPx, c.Window.CellHeightPx))
	}
	if c.Simulation.TickInterval <= 0 {
		errs = append(errs, errors.New("tick_interval must be positive"))
	}
	if c.Simulation.FrameInterval <= 0 {
		errs = append(errs, errors.New("frame_interval must be positive"))
	}
	if c.Simulation.WindupBaseMs < 0 || c.Simulation.WindupJitterMs < 0 || c.Simulation.FlightMs < 0 {
		errs = append(errs, errors.New("pitch timings must not be negative"))
	}
	if c.Simulation.PowerDivisor == 0 {
		errs = append(errs, errors.New("power_divisor must not be zero"))
	}
	if c.Input.ReleaseAfter <= 0 {
		errs = append(errs, errors.New("release_after must be positive"))
	}
	if c.Layout.Scale <= 0 {
		errs = append(errs, errors.New("layout scale must be positive"))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}

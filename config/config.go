// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Surface    SurfaceConfig    `yaml:"surface"`
	Population PopulationConfig `yaml:"population"`
	Disease    DiseaseConfig    `yaml:"disease"`
	Movement   MovementConfig   `yaml:"movement"`
	Clock      ClockConfig      `yaml:"clock"`
	Particle   ParticleConfig   `yaml:"particle"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Bookmarks  BookmarksConfig  `yaml:"bookmarks"`
	Sweep      SweepConfig      `yaml:"sweep"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	TargetFPS  int `yaml:"target_fps"`
	PanelWidth int `yaml:"panel_width"` // Controls column on the right of the surface
}

// SurfaceConfig holds the simulation area dimensions.
// Zero values fall back to the screen area left of the controls panel.
type SurfaceConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PopulationConfig holds population creation parameters.
type PopulationConfig struct {
	Size     int `yaml:"size"`
	SeedOdds int `yaml:"seed_odds"` // Each particle starts infected with 1-in-SeedOdds chance
}

// DiseaseConfig holds epidemiological parameters.
type DiseaseConfig struct {
	RecoveryDays     int     `yaml:"recovery_days"`
	DeathRatePercent float64 `yaml:"death_rate_percent"`
	ContactDistance  float64 `yaml:"contact_distance"` // Per-particle unsafe distance
}

// MovementConfig holds kinematics parameters.
type MovementConfig struct {
	Rate float64 `yaml:"rate"` // Per-axis speed ceiling in surface units per tick
}

// ClockConfig holds the day/frame time model.
type ClockConfig struct {
	TicksPerDay int `yaml:"ticks_per_day"`
}

// ParticleConfig holds particle geometry.
type ParticleConfig struct {
	Size float64 `yaml:"size"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	LogDays    bool `yaml:"log_days"`
	PerfWindow int  `yaml:"perf_window"` // Ticks averaged by the perf collector
	ChartDays  int  `yaml:"chart_days"`  // Minimum day span of the chart x axis
}

// BookmarksConfig holds milestone detection thresholds.
type BookmarksConfig struct {
	PeakDropPercent float64 `yaml:"peak_drop_percent"`
	ImmuneMajority  float64 `yaml:"immune_majority"` // Immune share of the living population
}

// SweepConfig holds parameters for cmd/sweep.
type SweepConfig struct {
	ContactDistances []float64 `yaml:"contact_distances"`
	Seeds            int       `yaml:"seeds"`
	MaxTicks         int       `yaml:"max_ticks"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	SurfaceW float64 // Effective surface width
	SurfaceH float64 // Effective surface height
}

// Run is the read-only snapshot the engine consumes for one simulation run.
type Run struct {
	Population       int
	SeedOdds         int
	MovementRate     float64
	RecoveryDays     int
	DeathRatePercent float64
	ContactDistance  float64
	TicksPerDay      int
	ParticleSize     float64
	Width, Height    float64
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	w := c.Surface.Width
	if w == 0 {
		w = c.Screen.Width - c.Screen.PanelWidth
	}
	h := c.Surface.Height
	if h == 0 {
		h = c.Screen.Height
	}
	c.Derived.SurfaceW = float64(w)
	c.Derived.SurfaceH = float64(h)
}

// Run returns the engine snapshot for the current configuration.
func (c *Config) Run() Run {
	return Run{
		Population:       c.Population.Size,
		SeedOdds:         c.Population.SeedOdds,
		MovementRate:     c.Movement.Rate,
		RecoveryDays:     c.Disease.RecoveryDays,
		DeathRatePercent: c.Disease.DeathRatePercent,
		ContactDistance:  c.Disease.ContactDistance,
		TicksPerDay:      c.Clock.TicksPerDay,
		ParticleSize:     c.Particle.Size,
		Width:            c.Derived.SurfaceW,
		Height:           c.Derived.SurfaceH,
	}
}

// Validate reports every invalid field of the configuration.
func (c *Config) Validate() error {
	var errs []error
	if c.Screen.TargetFPS <= 0 {
		errs = append(errs, fmt.Errorf("screen.target_fps must be positive, got %d", c.Screen.TargetFPS))
	}
	if c.Telemetry.PerfWindow < 0 {
		errs = append(errs, fmt.Errorf("telemetry.perf_window must not be negative, got %d", c.Telemetry.PerfWindow))
	}
	if c.Bookmarks.PeakDropPercent < 0 || c.Bookmarks.PeakDropPercent > 100 {
		errs = append(errs, fmt.Errorf("bookmarks.peak_drop_percent must be in [0,100], got %g", c.Bookmarks.PeakDropPercent))
	}
	if err := c.Run().Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Validate reports every field that the engine cannot run with.
func (r Run) Validate() error {
	var errs []error
	if r.Population <= 0 {
		errs = append(errs, fmt.Errorf("population size must be positive, got %d", r.Population))
	}
	if r.SeedOdds <= 0 {
		errs = append(errs, fmt.Errorf("seed odds must be positive, got %d", r.SeedOdds))
	}
	if r.MovementRate < 0 {
		errs = append(errs, fmt.Errorf("movement rate must not be negative, got %g", r.MovementRate))
	}
	if r.RecoveryDays <= 0 {
		errs = append(errs, fmt.Errorf("recovery days must be positive, got %d", r.RecoveryDays))
	}
	if r.DeathRatePercent < 0 || r.DeathRatePercent > 100 {
		errs = append(errs, fmt.Errorf("death rate must be in [0,100], got %g", r.DeathRatePercent))
	}
	if r.ContactDistance < 0 {
		errs = append(errs, fmt.Errorf("contact distance must not be negative, got %g", r.ContactDistance))
	}
	if r.TicksPerDay <= 0 {
		errs = append(errs, fmt.Errorf("ticks per day must be positive, got %d", r.TicksPerDay))
	}
	if r.ParticleSize < 0 {
		errs = append(errs, fmt.Errorf("particle size must not be negative, got %g", r.ParticleSize))
	}
	if r.Width <= 0 || r.Height <= 0 {
		errs = append(errs, fmt.Errorf("surface must have positive area, got %gx%g", r.Width, r.Height))
	}
	return errors.Join(errs...)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

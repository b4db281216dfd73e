// Package game wires the simulation to its front ends: the raylib window,
// headless runs and the telemetry sinks shared by both.
package game

import (
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/outbreak/audio"
	"github.com/pthm-cable/outbreak/camera"
	"github.com/pthm-cable/outbreak/config"
	"github.com/pthm-cable/outbreak/inspector"
	"github.com/pthm-cable/outbreak/renderer"
	"github.com/pthm-cable/outbreak/sim"
	"github.com/pthm-cable/outbreak/telemetry"
	"github.com/pthm-cable/outbreak/ui"
)

// Options configures a Game.
type Options struct {
	Seed           int64
	Headless       bool
	LogDays        bool
	OutputDir      string
	StepsPerUpdate int
	Audio          bool
	Config         *config.Config // nil = config.Cfg()
}

// Game holds the simulation and everything that observes or drives it.
type Game struct {
	cfg *config.Config
	sim *sim.Simulation
	rng *rand.Rand
	run config.Run // applied on the next reset

	// Telemetry
	collector *telemetry.Collector
	output    *telemetry.OutputManager
	perf      *telemetry.PerfCollector
	chime     *audio.Chime

	// Rendering (nil when headless)
	camera        *camera.Camera
	view          *renderer.Raylib
	inspector     *inspector.Inspector
	hud           *ui.HUD
	controls      *ui.ControlPanel
	overlaysPanel *ui.OverlaysPanel
	perfPanel     *ui.PerfPanel
	overlays      *ui.OverlayRegistry

	stepsPerUpdate int
	screenWidth    float32
	screenHeight   float32
}

// NewGameWithOptions creates a game. Graphical games require an open window.
func NewGameWithOptions(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	g := &Game{
		cfg:            cfg,
		rng:            sim.NewRandom(opts.Seed),
		run:            cfg.Run(),
		stepsPerUpdate: max(opts.StepsPerUpdate, 1),
	}

	g.setupTelemetry(opts)

	simOpts := []sim.Option{
		sim.WithReporter(g.collector),
		sim.WithPerf(g.perf),
	}
	if opts.Audio {
		chime, err := audio.New()
		if err != nil {
			// Non-fatal, the simulation runs silent
			slog.Warn("audio initialization failed", "error", err)
		} else {
			g.chime = chime
			simOpts = append(simOpts, sim.WithReporter(chime))
		}
	}
	if !opts.Headless {
		g.setupRendering()
		simOpts = append(simOpts, sim.WithRenderer(g.view))
	}

	g.sim = sim.New(g.run, g.rng, simOpts...)

	slog.Info("simulation started",
		"seed", opts.Seed,
		"population", g.run.Population,
		"seeded", g.sim.Seeded(),
		"surface_w", g.run.Width,
		"surface_h", g.run.Height,
	)
	return g
}

// setupRendering creates the camera, renderer and UI panels.
func (g *Game) setupRendering() {
	g.screenWidth = float32(rl.GetScreenWidth())
	g.screenHeight = float32(rl.GetScreenHeight())
	panelW := float32(g.cfg.Screen.PanelWidth)

	g.camera = camera.New(g.screenWidth-panelW, g.screenHeight, float32(g.run.Width), float32(g.run.Height))
	g.view = renderer.NewRaylib(ui.DefaultTheme(), g.run.Width, g.run.Height, g.cfg.Telemetry.ChartDays)
	g.inspector = inspector.NewInspector(10, 80)
	g.hud = ui.NewHUD()
	g.overlays = ui.NewOverlayRegistry()

	panelX := int32(g.screenWidth - panelW)
	g.controls = ui.NewControlPanel(panelX, 0, int32(panelW), g.run)
	g.overlaysPanel = ui.NewOverlaysPanel(panelX, 0, int32(panelW))
	g.perfPanel = ui.NewPerfPanel(10, 80)
}

// Update handles input and advances the simulation by the current speed.
func (g *Game) Update() {
	g.handleInput()
	g.perf.RecordFrame()
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.sim.Tick()
	}
}

// UpdateHeadless advances the simulation without input handling.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.sim.Tick()
	}
}

// reset starts a new run from the pending parameters.
func (g *Game) reset() {
	g.sim.Reset(g.run)
	if g.inspector != nil {
		g.inspector.Deselect()
	}
	slog.Info("simulation reset",
		"population", g.run.Population,
		"seeded", g.sim.Seeded(),
		"contact_distance", g.run.ContactDistance,
		"movement_rate", g.run.MovementRate,
	)
}

// Tick returns the number of ticks of the current run.
func (g *Game) Tick() int {
	return g.sim.Ticks()
}

// Completed reports whether the current outbreak is over.
func (g *Game) Completed() bool {
	return g.sim.Completed()
}

// Simulation returns the underlying simulation.
func (g *Game) Simulation() *sim.Simulation {
	return g.sim
}

// Collector returns the day history sink.
func (g *Game) Collector() *telemetry.Collector {
	return g.collector
}

// Unload releases output files.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

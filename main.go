package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/outbreak/audio"
	"github.com/pthm-cable/outbreak/config"
	"github.com/pthm-cable/outbreak/game"
	"github.com/pthm-cable/outbreak/sim"
	"github.com/pthm-cable/outbreak/telemetry"
	"github.com/pthm-cable/outbreak/terminal"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	tui := flag.Bool("tui", false, "Run in the terminal")
	logStats := flag.Bool("log-stats", false, "Output day reports via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = until the outbreak ends)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call (higher = faster headless runs)")
	sound := flag.Bool("audio", true, "Play tones on deaths and at the end of the outbreak")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// The terminal front end owns stdout, so logs go to stderr there
	logOut := os.Stdout
	if *tui {
		logOut = os.Stderr
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(logOut, nil)))

	opts := game.Options{
		Seed:           rngSeed,
		Headless:       *headless,
		LogDays:        *logStats,
		OutputDir:      *outputDir,
		StepsPerUpdate: *stepsPerUpdate,
		Audio:          *sound && !*headless,
	}

	switch {
	case *headless:
		runHeadless(opts, *maxTicks)
	case *tui:
		if err := runTerminal(cfg, opts); err != nil {
			slog.Error("terminal front end failed", "error", err)
			os.Exit(1)
		}
	default:
		runWindow(cfg, opts, *maxTicks)
	}
}

// runHeadless ticks as fast as possible until the outbreak ends.
func runHeadless(opts game.Options, maxTicks int) {
	g := game.NewGameWithOptions(opts)
	defer g.Unload()

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"max_ticks", maxTicks,
		"steps_per_update", opts.StepsPerUpdate,
	)

	for !g.Completed() {
		g.UpdateHeadless()

		if maxTicks > 0 && g.Tick() >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick())
			return
		}
	}
}

// runWindow runs the raylib front end on the main thread.
func runWindow(cfg *config.Config, opts game.Options, maxTicks int) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Outbreak")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := game.NewGameWithOptions(opts)
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if maxTicks > 0 && g.Tick() >= maxTicks {
			break
		}
	}
}

// runTerminal runs the tcell front end. A Driver ticks the simulation on its
// own goroutine while the main goroutine handles keys.
func runTerminal(cfg *config.Config, opts game.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	run := cfg.Run()
	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return err
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}

	collector := telemetry.NewCollector(telemetry.CollectorOptions{
		Output:    output,
		Bookmarks: telemetry.NewBookmarkDetector(cfg.Bookmarks.PeakDropPercent, cfg.Bookmarks.ImmuneMajority),
		LogDays:   opts.LogDays,
	})
	view := terminal.NewView(screen, run.Width, run.Height)
	simOpts := []sim.Option{sim.WithReporter(collector), sim.WithRenderer(view)}

	var muter terminal.Muter
	if opts.Audio {
		chime, err := audio.New()
		if err != nil {
			slog.Warn("audio initialization failed", "error", err)
		} else {
			simOpts = append(simOpts, sim.WithReporter(chime))
			muter = chime
		}
	}

	s := sim.New(run, sim.NewRandom(opts.Seed), simOpts...)
	driver := sim.NewDriver(s, time.Second/time.Duration(cfg.Screen.TargetFPS))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	driverErr := make(chan error, 1)
	go func() { driverErr <- driver.Run(ctx) }()
	driver.SetSpeed(opts.StepsPerUpdate)

	app := terminal.NewApp(screen, view, driver, run, muter)
	err = app.Run(ctx)
	cancel()
	if derr := <-driverErr; !errors.Is(derr, context.Canceled) {
		return derr
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

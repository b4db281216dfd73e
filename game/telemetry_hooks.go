package game

import (
	"log/slog"

	"github.com/pthm-cable/outbreak/telemetry"
)

// setupTelemetry creates the collector and its optional sinks.
func (g *Game) setupTelemetry(opts Options) {
	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	}
	if err := output.WriteConfig(g.cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}
	g.output = output

	g.perf = telemetry.NewPerfCollector(g.cfg.Telemetry.PerfWindow)

	g.collector = telemetry.NewCollector(telemetry.CollectorOptions{
		Output:    output,
		Bookmarks: telemetry.NewBookmarkDetector(g.cfg.Bookmarks.PeakDropPercent, g.cfg.Bookmarks.ImmuneMajority),
		Perf:      g.perf,
		LogDays:   opts.LogDays || g.cfg.Telemetry.LogDays,
	})

	if output != nil {
		slog.Info("writing output", "dir", output.Dir())
	}
}

package main

import (
	"github.com/pthm-cable/outbreak/config"
	"github.com/pthm-cable/outbreak/sim"
	"github.com/pthm-cable/outbreak/telemetry"
)

// RunResult holds the outcome of one headless run.
type RunResult struct {
	ContactDistance float64 `csv:"contact_distance"`
	MovementRate    float64 `csv:"movement_rate"`
	Seed            int64   `csv:"seed"`
	Completed       bool    `csv:"completed"`
	Ticks           int     `csv:"ticks"`
	Seeded          int     `csv:"seeded"`
	telemetry.Summary
	telemetry.CurveStats
}

// runOnce executes a single run until the outbreak ends or maxTicks pass.
func runOnce(run config.Run, seed int64, maxTicks int) RunResult {
	collector := telemetry.NewCollector(telemetry.CollectorOptions{})
	s := sim.New(run, sim.NewRandom(seed), sim.WithReporter(collector))

	for s.Ticks() < maxTicks && !s.Completed() {
		s.Tick()
	}

	result := RunResult{
		ContactDistance: run.ContactDistance,
		MovementRate:    run.MovementRate,
		Seed:            seed,
		Completed:       s.Completed(),
		Ticks:           s.Ticks(),
		Seeded:          s.Seeded(),
		CurveStats:      collector.Curve(),
	}
	if summary, ok := collector.Summary(); ok {
		result.Summary = summary
	} else if last, ok := collector.Latest(); ok {
		// Cut off by maxTicks; report where it stood
		result.Summary = telemetry.SummaryFromReport(last)
	}
	return result
}

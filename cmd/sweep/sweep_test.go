package main

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/outbreak/config"
)

func sweepRun() config.Run {
	return config.Run{
		Population:       60,
		SeedOdds:         5,
		MovementRate:     3,
		RecoveryDays:     3,
		DeathRatePercent: 10,
		ContactDistance:  3,
		TicksPerDay:      4,
		ParticleSize:     4,
		Width:            120,
		Height:           120,
	}
}

func TestSweepIndependentOfWorkers(t *testing.T) {
	distances := []float64{0, 4}
	seeds := []int64{1, 2, 3}

	serial := Sweep(sweepRun(), distances, seeds, 5000, 1)
	parallel := Sweep(sweepRun(), distances, seeds, 5000, 4)

	if len(serial) != 6 {
		t.Fatalf("got %d results, want 6", len(serial))
	}
	for i := range serial {
		if serial[i] != parallel[i] {
			t.Errorf("result %d differs:\n serial   %+v\n parallel %+v", i, serial[i], parallel[i])
		}
	}

	// Grid order: distance major, seed minor
	if serial[0].ContactDistance != 0 || serial[3].ContactDistance != 4 || serial[4].Seed != 2 {
		t.Errorf("unexpected grid order: %+v", serial)
	}
}

func TestZeroContactNeverSpreads(t *testing.T) {
	results := Sweep(sweepRun(), []float64{0}, []int64{7, 8}, 5000, 2)
	for _, r := range results {
		if !r.Completed {
			t.Errorf("seed %d did not complete", r.Seed)
		}
		if r.TotalInfections != r.Seeded {
			t.Errorf("seed %d: %d infections, want only the %d seeded", r.Seed, r.TotalInfections, r.Seeded)
		}
	}
}

func TestTickCapStopsRun(t *testing.T) {
	run := sweepRun()
	run.SeedOdds = 1
	run.RecoveryDays = 1000

	r := runOnce(run, 1, 50)
	if r.Completed {
		t.Error("run completed before its recovery period")
	}
	if r.Ticks != 50 {
		t.Errorf("ticks = %d, want 50", r.Ticks)
	}
}

func TestAggregate(t *testing.T) {
	results := []RunResult{
		{ContactDistance: 2, Completed: true},
		{ContactDistance: 1, Completed: true},
		{ContactDistance: 2},
	}
	results[0].AttackRate, results[0].PeakInfected, results[0].TotalDays = 0.2, 10, 20
	results[1].AttackRate, results[1].PeakInfected, results[1].TotalDays = 0.5, 7, 30
	results[2].AttackRate, results[2].PeakInfected, results[2].TotalDays = 0.4, 30, 40

	stats := Aggregate(results)
	if len(stats) != 2 {
		t.Fatalf("got %d groups, want 2", len(stats))
	}

	first := stats[0]
	if first.ContactDistance != 2 || first.Runs != 2 || first.Completed != 1 {
		t.Errorf("first group = %+v", first)
	}
	if math.Abs(first.MeanAttackRate-0.3) > 1e-9 {
		t.Errorf("mean attack = %v, want 0.3", first.MeanAttackRate)
	}
	if first.MaxPeak != 30 || first.MeanDays != 30 {
		t.Errorf("max peak = %v, mean days = %v, want 30 and 30", first.MaxPeak, first.MeanDays)
	}

	if single := stats[1]; single.StdAttackRate != 0 || single.StdPeak != 0 {
		t.Errorf("single-run group has deviation: %+v", single)
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.csv")
	results := Sweep(sweepRun(), []float64{2}, []int64{1}, 5000, 1)
	if err := writeCSV(path, &results); err != nil {
		t.Fatalf("writeCSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header and one row", len(lines))
	}
	for _, col := range []string{"contact_distance", "seed", "total_days", "attack_rate"} {
		if !strings.Contains(lines[0], col) {
			t.Errorf("header %q missing %q", lines[0], col)
		}
	}
}

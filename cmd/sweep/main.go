// Package main runs headless outbreak sweeps over contact distance and seeds,
// and optionally calibrates parameters toward a target attack rate.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/outbreak/config"
)

// formatDuration formats a duration as HH:MM:SS or MM:SS for shorter durations.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	outputDir := flag.String("output", "", "Output directory for results")
	seeds := flag.Int("seeds", 0, "Seeds per contact distance (0 = config)")
	maxTicks := flag.Int("max-ticks", 0, "Tick cap per run (0 = config)")
	workers := flag.Int("workers", 0, "Concurrent runs (0 = number of CPUs)")
	calibrate := flag.Float64("calibrate", 0, "Target attack rate in (0,1]; enables calibration")
	maxEvals := flag.Int("max-evals", 60, "Maximum calibration evaluations")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	// Per-run completion logs would drown the progress output
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()
	base := cfg.Run()

	if *seeds <= 0 {
		*seeds = cfg.Sweep.Seeds
	}
	if *maxTicks <= 0 {
		*maxTicks = cfg.Sweep.MaxTicks
	}
	evalSeeds := make([]int64, *seeds)
	for i := range evalSeeds {
		evalSeeds[i] = int64(i*1000 + 42)
	}

	if *calibrate > 0 {
		runCalibration(*configPath, *outputDir, base, evalSeeds, *maxTicks, *workers, *calibrate, *maxEvals)
		return
	}

	distances := cfg.Sweep.ContactDistances
	fmt.Printf("Sweeping %d contact distances x %d seeds, max %d ticks per run\n",
		len(distances), len(evalSeeds), *maxTicks)

	start := time.Now()
	results := Sweep(base, distances, evalSeeds, *maxTicks, *workers)
	fmt.Printf("%d runs in %s\n", len(results), formatDuration(time.Since(start)))

	if err := writeCSV(filepath.Join(*outputDir, "sweep.csv"), &results); err != nil {
		log.Fatalf("failed to write runs: %v", err)
	}
	stats := Aggregate(results)
	if err := writeCSV(filepath.Join(*outputDir, "aggregate.csv"), &stats); err != nil {
		log.Fatalf("failed to write aggregate: %v", err)
	}

	fmt.Println("\ncontact  attack        peak          days")
	for _, s := range stats {
		fmt.Printf("%7.2f  %.2f ± %.2f   %6.1f ± %5.1f  %6.1f\n",
			s.ContactDistance, s.MeanAttackRate, s.StdAttackRate, s.MeanPeak, s.StdPeak, s.MeanDays)
	}
}

func runCalibration(configPath, outputDir string, base config.Run, seeds []int64, maxTicks, workers int, target float64, maxEvals int) {
	params := NewParamVector()
	calibrator := NewCalibrator(params, base, seeds, maxTicks, workers, target)

	start := time.Now()
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			loss := calibrator.Evaluate(params.Denormalize(x))

			best := calibrator.Best()
			evals := len(calibrator.Records())
			elapsed := time.Since(start)
			remaining := time.Duration(maxEvals-evals) * (elapsed / time.Duration(evals))
			fmt.Printf("Eval %d/%d: loss=%.5f (best contact=%.2f rate=%.2f attack=%.2f) | elapsed: %s, ETA: %s\n",
				evals, maxEvals, loss, best.ContactDistance, best.MovementRate, best.MeanAttackRate,
				formatDuration(elapsed), formatDuration(remaining))
			return loss
		},
	}

	settings := &optimize.Settings{FuncEvaluations: maxEvals}
	method := &optimize.CmaEsChol{
		InitStepSize: 0.3,
		Population:   4 + 3*params.Dim()/2,
	}

	fmt.Printf("Calibrating toward attack rate %.2f with %d seeds per evaluation\n", target, len(seeds))
	if _, err := optimize.Minimize(problem, params.Normalize(params.Extract(base)), settings, method); err != nil {
		log.Printf("optimization ended: %v", err)
	}

	records := calibrator.Records()
	if err := writeCSV(filepath.Join(outputDir, "calibrate_log.csv"), &records); err != nil {
		log.Printf("failed to write calibration log: %v", err)
	}

	best := calibrator.Best()
	fmt.Printf("\nBest after %d evaluations: contact=%.3f rate=%.3f attack=%.3f\n",
		len(records), best.ContactDistance, best.MovementRate, best.MeanAttackRate)

	bestCfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to reload config: %v", err)
	}
	params.ApplyToConfig(bestCfg, []float64{best.ContactDistance, best.MovementRate})
	out := filepath.Join(outputDir, "best_config.yaml")
	if err := bestCfg.WriteYAML(out); err != nil {
		log.Printf("failed to write best config: %v", err)
		return
	}
	fmt.Printf("Best config saved to: %s\n", out)
}

func writeCSV(path string, records any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gocsv.MarshalFile(records, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

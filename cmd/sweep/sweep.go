package main

import (
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/outbreak/config"
)

// job is one (distance, seed) cell of the sweep grid.
type job struct {
	idx      int
	distance float64
	seed     int64
}

// Sweep runs every contact distance against every seed. Results are in grid
// order regardless of the number of workers.
func Sweep(base config.Run, distances []float64, seeds []int64, maxTicks, workers int) []RunResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]RunResult, len(distances)*len(seeds))
	jobs := make(chan job)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				run := base
				run.ContactDistance = j.distance
				results[j.idx] = runOnce(run, j.seed, maxTicks)
			}
		}()
	}

	idx := 0
	for _, d := range distances {
		for _, seed := range seeds {
			jobs <- job{idx: idx, distance: d, seed: seed}
			idx++
		}
	}
	close(jobs)
	wg.Wait()

	return results
}

// DistanceStats aggregates the runs sharing a contact distance.
type DistanceStats struct {
	ContactDistance float64 `csv:"contact_distance"`
	Runs            int     `csv:"runs"`
	Completed       int     `csv:"completed"`
	MeanAttackRate  float64 `csv:"mean_attack_rate"`
	StdAttackRate   float64 `csv:"std_attack_rate"`
	MeanPeak        float64 `csv:"mean_peak_infected"`
	StdPeak         float64 `csv:"std_peak_infected"`
	MaxPeak         float64 `csv:"max_peak_infected"`
	MeanPeakDay     float64 `csv:"mean_peak_day"`
	MeanDays        float64 `csv:"mean_days"`
	MeanDead        float64 `csv:"mean_dead"`
}

// Aggregate groups results by contact distance, in order of first
// appearance.
func Aggregate(results []RunResult) []DistanceStats {
	var order []float64
	groups := make(map[float64][]RunResult)
	for _, r := range results {
		if _, ok := groups[r.ContactDistance]; !ok {
			order = append(order, r.ContactDistance)
		}
		groups[r.ContactDistance] = append(groups[r.ContactDistance], r)
	}

	out := make([]DistanceStats, 0, len(order))
	for _, d := range order {
		out = append(out, aggregateGroup(d, groups[d]))
	}
	return out
}

func aggregateGroup(distance float64, runs []RunResult) DistanceStats {
	n := len(runs)
	attack := make([]float64, n)
	peak := make([]float64, n)
	peakDay := make([]float64, n)
	days := make([]float64, n)
	dead := make([]float64, n)

	ds := DistanceStats{ContactDistance: distance, Runs: n}
	for i, r := range runs {
		attack[i] = r.AttackRate
		peak[i] = float64(r.PeakInfected)
		peakDay[i] = float64(r.PeakDay)
		days[i] = float64(r.TotalDays)
		dead[i] = float64(r.TotalDead)
		if r.Completed {
			ds.Completed++
		}
	}

	ds.MeanAttackRate, ds.StdAttackRate = meanStd(attack)
	ds.MeanPeak, ds.StdPeak = meanStd(peak)
	ds.MaxPeak = floats.Max(peak)
	ds.MeanPeakDay = stat.Mean(peakDay, nil)
	ds.MeanDays = stat.Mean(days, nil)
	ds.MeanDead = stat.Mean(dead, nil)
	return ds
}

// meanStd returns the sample mean and standard deviation, with a zero
// deviation for a single sample.
func meanStd(x []float64) (float64, float64) {
	mean, std := stat.MeanStdDev(x, nil)
	if math.IsNaN(std) {
		std = 0
	}
	return mean, std
}

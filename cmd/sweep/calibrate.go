package main

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/outbreak/config"
)

// CalibrationRecord is one logged evaluation.
type CalibrationRecord struct {
	Eval            int     `csv:"eval"`
	Loss            float64 `csv:"loss"`
	ContactDistance float64 `csv:"contact_distance"`
	MovementRate    float64 `csv:"movement_rate"`
	MeanAttackRate  float64 `csv:"mean_attack_rate"`
}

// Calibrator searches for parameters whose mean attack rate over a fixed
// seed set matches a target.
type Calibrator struct {
	params   *ParamVector
	base     config.Run
	seeds    []int64
	maxTicks int
	workers  int
	target   float64

	mu      sync.Mutex
	records []CalibrationRecord
	best    CalibrationRecord
}

// NewCalibrator creates a calibrator for a target attack rate in [0,1].
func NewCalibrator(params *ParamVector, base config.Run, seeds []int64, maxTicks, workers int, target float64) *Calibrator {
	return &Calibrator{
		params:   params,
		base:     base,
		seeds:    seeds,
		maxTicks: maxTicks,
		workers:  workers,
		target:   target,
		best:     CalibrationRecord{Loss: math.Inf(1)},
	}
}

// Evaluate returns the squared error between the mean attack rate and the
// target (lower = better).
func (c *Calibrator) Evaluate(raw []float64) float64 {
	run := c.params.Apply(c.base, raw)
	results := Sweep(run, []float64{run.ContactDistance}, c.seeds, c.maxTicks, c.workers)

	attack := make([]float64, len(results))
	for i, r := range results {
		attack[i] = r.AttackRate
	}
	mean := stat.Mean(attack, nil)
	loss := (mean - c.target) * (mean - c.target)

	c.mu.Lock()
	defer c.mu.Unlock()
	rec := CalibrationRecord{
		Eval:            len(c.records) + 1,
		Loss:            loss,
		ContactDistance: run.ContactDistance,
		MovementRate:    run.MovementRate,
		MeanAttackRate:  mean,
	}
	c.records = append(c.records, rec)
	if loss < c.best.Loss {
		c.best = rec
	}
	return loss
}

// Best returns the best evaluation so far.
func (c *Calibrator) Best() CalibrationRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.best
}

// Records returns every evaluation in order.
func (c *Calibrator) Records() []CalibrationRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]CalibrationRecord(nil), c.records...)
}

package main

import "github.com/pthm-cable/outbreak/config"

// ParamSpec defines a single calibrated parameter.
type ParamSpec struct {
	Name string
	Min  float64
	Max  float64
}

// ParamVector holds the calibrated parameters in a fixed order.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the calibration parameters: contact distance and
// movement rate.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "contact_distance", Min: 0, Max: 15},
			{Name: "movement_rate", Min: 0.2, Max: 8},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// Extract reads the current parameter values from a run.
func (pv *ParamVector) Extract(r config.Run) []float64 {
	return []float64{r.ContactDistance, r.MovementRate}
}

// Apply returns r with the clamped values applied.
func (pv *ParamVector) Apply(r config.Run, values []float64) config.Run {
	c := pv.Clamp(values)
	r.ContactDistance = c[0]
	r.MovementRate = c[1]
	return r
}

// ApplyToConfig writes the clamped values into a full configuration.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	c := pv.Clamp(values)
	cfg.Disease.ContactDistance = c[0]
	cfg.Movement.Rate = c[1]
}

package telemetry

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// CurveStats summarizes the infected curve of a run.
type CurveStats struct {
	PeakInfected int     `csv:"peak_infected"`
	PeakDay      int     `csv:"peak_day"`
	MeanInfected float64 `csv:"mean_infected"`
	StdInfected  float64 `csv:"std_infected"`
	AttackRate   float64 `csv:"attack_rate"`   // share of the population ever infected
	CaseFatality float64 `csv:"case_fatality"` // deaths per resolved infection
}

// ComputeCurve derives curve statistics from a day series.
// Returns the zero value for an empty history.
func ComputeCurve(history []DayReport) CurveStats {
	if len(history) == 0 {
		return CurveStats{}
	}

	infected := make([]float64, len(history))
	for i, r := range history {
		infected[i] = float64(r.Infected)
	}

	peakIdx := floats.MaxIdx(infected)
	mean, std := stat.MeanStdDev(infected, nil)
	if len(infected) == 1 {
		std = 0
	}

	last := history[len(history)-1]
	var cs CurveStats
	cs.PeakInfected = history[peakIdx].Infected
	cs.PeakDay = history[peakIdx].Day
	cs.MeanInfected = mean
	cs.StdInfected = std

	if pop := last.Population(); pop > 0 {
		cs.AttackRate = float64(pop-last.Unaffected) / float64(pop)
	}
	if resolved := last.Immune + last.Dead; resolved > 0 {
		cs.CaseFatality = float64(last.Dead) / float64(resolved)
	}

	return cs
}

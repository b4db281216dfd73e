// Package telemetry provides outbreak reporting, milestone bookmarks and experiment output.
package telemetry

import "log/slog"

// DayReport holds the aggregate counts at a day boundary.
type DayReport struct {
	Day        int `csv:"day"`
	Infected   int `csv:"infected"`
	Immune     int `csv:"immune"`
	Dead       int `csv:"dead"`
	Unaffected int `csv:"unaffected"` // still susceptible

	// Transitions since the previous report
	NewInfections int `csv:"new_infections"`
	NewDeaths     int `csv:"new_deaths"`
	NewRecoveries int `csv:"new_recoveries"`
}

// Living returns the number of particles not dead.
func (r DayReport) Living() int {
	return r.Infected + r.Immune + r.Unaffected
}

// Population returns the total number of particles.
func (r DayReport) Population() int {
	return r.Living() + r.Dead
}

// LogValue implements slog.LogValuer for structured logging.
func (r DayReport) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("day", r.Day),
		slog.Int("infected", r.Infected),
		slog.Int("immune", r.Immune),
		slog.Int("dead", r.Dead),
		slog.Int("unaffected", r.Unaffected),
		slog.Int("new_infections", r.NewInfections),
		slog.Int("new_deaths", r.NewDeaths),
		slog.Int("new_recoveries", r.NewRecoveries),
	)
}

// Summary is the completion record of one run.
type Summary struct {
	TotalDays       int `csv:"total_days"`
	TotalInfections int `csv:"total_infections"` // immune + dead
	TotalDead       int `csv:"total_dead"`
	TotalUnaffected int `csv:"total_unaffected"`
}

// SummaryFromReport builds the completion summary from the final day report.
func SummaryFromReport(r DayReport) Summary {
	return Summary{
		TotalDays:       r.Day,
		TotalInfections: r.Immune + r.Dead,
		TotalDead:       r.Dead,
		TotalUnaffected: r.Unaffected,
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("total_days", s.TotalDays),
		slog.Int("total_infections", s.TotalInfections),
		slog.Int("total_dead", s.TotalDead),
		slog.Int("total_unaffected", s.TotalUnaffected),
	)
}

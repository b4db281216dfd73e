package sim

import (
	"github.com/pthm-cable/outbreak/components"
	"github.com/pthm-cable/outbreak/systems"
	"github.com/pthm-cable/outbreak/telemetry"
)

// ParticleView is the read-only drawing state of one particle.
type ParticleView struct {
	X, Y  float64
	Size  float64
	State components.HealthState
}

// Frame is handed to the renderer once per tick. Particles is reused on the
// next tick; a renderer that keeps the frame must copy it.
type Frame struct {
	Day       int
	Tick      int
	Census    systems.Census
	Particles []ParticleView
}

// Renderer draws frames. It must not mutate them.
type Renderer interface {
	Render(Frame)
}

// Reporter receives day reports and the completion summary.
type Reporter interface {
	ReportDay(telemetry.DayReport)
	ReportSummary(telemetry.Summary)
}

// resetter is implemented by reporters that keep per-run state.
type resetter interface {
	Reset()
}

// Reporters fans reports out to several reporters in order.
type Reporters []Reporter

// ReportDay forwards the report to every reporter.
func (rs Reporters) ReportDay(r telemetry.DayReport) {
	for _, rep := range rs {
		rep.ReportDay(r)
	}
}

// ReportSummary forwards the summary to every reporter.
func (rs Reporters) ReportSummary(s telemetry.Summary) {
	for _, rep := range rs {
		rep.ReportSummary(s)
	}
}

// Reset resets every reporter that keeps per-run state.
func (rs Reporters) Reset() {
	for _, rep := range rs {
		if r, ok := rep.(resetter); ok {
			r.Reset()
		}
	}
}

package sim

import (
	"testing"

	"github.com/pthm-cable/outbreak/config"
	"github.com/pthm-cable/outbreak/telemetry"
)

// scriptedRandom replays fixed draws and records the bounds passed to Intn.
type scriptedRandom struct {
	t      *testing.T
	floats []float64
	ints   []int
	bounds []int
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		r.t.Fatal("scriptedRandom: out of Float64 draws")
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		r.t.Fatal("scriptedRandom: out of Intn draws")
	}
	r.bounds = append(r.bounds, n)
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v
}

// recorder captures everything reported and rendered.
type recorder struct {
	days      []telemetry.DayReport
	summaries []telemetry.Summary
	frames    int
	last      Frame
	resets    int
}

func (r *recorder) ReportDay(d telemetry.DayReport)   { r.days = append(r.days, d) }
func (r *recorder) ReportSummary(s telemetry.Summary) { r.summaries = append(r.summaries, s) }
func (r *recorder) Reset()                            { r.resets++ }

func (r *recorder) Render(f Frame) {
	r.frames++
	r.last = f
}

func testRun() config.Run {
	return config.Run{
		Population:       120,
		SeedOdds:         10,
		MovementRate:     3,
		RecoveryDays:     4,
		DeathRatePercent: 10,
		ContactDistance:  3,
		TicksPerDay:      5,
		ParticleSize:     6,
		Width:            300,
		Height:           300,
	}
}

// runToCompletion ticks until the run completes, checking invariants on
// every tick.
func runToCompletion(t *testing.T, s *Simulation, maxTicks int) {
	t.Helper()
	for i := 0; i < maxTicks && !s.Completed(); i++ {
		s.Tick()
		if err := s.CheckInvariants(); err != nil {
			t.Fatalf("tick %d: %v", s.Ticks(), err)
		}
	}
	if !s.Completed() {
		t.Fatalf("not completed after %d ticks", maxTicks)
	}
}

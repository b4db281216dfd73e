package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseMotion)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseInfection)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}
	for _, phase := range []string{PhaseMotion, PhaseInfection} {
		if _, ok := stats.PhaseAvg[phase]; !ok {
			t.Errorf("expected %s phase to be tracked", phase)
		}
	}
	if _, ok := stats.PhaseAvg[PhaseHealth]; ok {
		t.Error("health phase was never started but is tracked")
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(3)

	for i := 0; i < 7; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseMotion)
		time.Sleep(50 * time.Microsecond)
		pc.EndTick()
	}

	if pc.sampleCount != 3 {
		t.Errorf("sample count = %d, want window size 3", pc.sampleCount)
	}
	if stats := pc.Stats(); stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseMotion)
		time.Sleep(10 * time.Microsecond)
		pc.StartPhase(PhaseInfection)
		time.Sleep(500 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.PhasePct[PhaseInfection] <= stats.PhasePct[PhaseMotion] {
		t.Errorf("expected infection (%v%%) > motion (%v%%)",
			stats.PhasePct[PhaseInfection], stats.PhasePct[PhaseMotion])
	}

	row := stats.ToCSV(4)
	if row.Day != 4 {
		t.Errorf("csv day = %d, want 4", row.Day)
	}
	if row.InfectionPct != stats.PhasePct[PhaseInfection] {
		t.Errorf("csv infection pct = %v, want %v", row.InfectionPct, stats.PhasePct[PhaseInfection])
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	stats := NewPerfCollector(0).Stats()

	if stats.AvgTickDuration != 0 {
		t.Error("expected zero avg tick duration for empty collector")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}

func TestPerfCollector_UnknownPhaseClosesOpenPhase(t *testing.T) {
	pc := NewPerfCollector(4)

	pc.StartTick()
	pc.StartPhase(PhaseMotion)
	time.Sleep(50 * time.Microsecond)
	pc.StartPhase("unknown")
	time.Sleep(50 * time.Microsecond)
	pc.EndTick()

	stats := pc.Stats()
	if len(stats.PhaseAvg) != 1 {
		t.Errorf("tracked phases = %v, want only %s", stats.PhaseAvg, PhaseMotion)
	}
	if stats.MinTickDuration > stats.AvgTickDuration || stats.AvgTickDuration > stats.MaxTickDuration {
		t.Errorf("min/avg/max out of order: %v %v %v",
			stats.MinTickDuration, stats.AvgTickDuration, stats.MaxTickDuration)
	}
}

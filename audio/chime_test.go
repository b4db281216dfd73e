package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/pthm-cable/outbreak/telemetry"
)

// streamLen drains a streamer and returns the number of samples produced.
func streamLen(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestChimePlaysOnNewDeaths(t *testing.T) {
	var played []beep.Streamer
	c := newChime(func(s beep.Streamer) { played = append(played, s) })

	days := []telemetry.DayReport{
		{Day: 1, Infected: 10, Dead: 0},
		{Day: 2, Infected: 9, Dead: 1},
		{Day: 3, Infected: 8, Dead: 1},
		{Day: 4, Infected: 5, Dead: 3},
	}
	for _, d := range days {
		c.ReportDay(d)
	}

	if len(played) != 2 {
		t.Fatalf("played %d tones, want 2", len(played))
	}
	if got, want := streamLen(played[0]), sampleRate.N(80*time.Millisecond); got != want {
		t.Errorf("death tone length = %d samples, want %d", got, want)
	}
}

func TestChimeSummaryPlaysPair(t *testing.T) {
	var played []beep.Streamer
	c := newChime(func(s beep.Streamer) { played = append(played, s) })

	c.ReportSummary(telemetry.Summary{TotalDays: 40})

	if len(played) != 1 {
		t.Fatalf("played %d streams, want 1", len(played))
	}
	want := sampleRate.N(120*time.Millisecond) + sampleRate.N(200*time.Millisecond)
	if got := streamLen(played[0]); got != want {
		t.Errorf("summary length = %d samples, want %d", got, want)
	}
}

func TestChimeMutedAndReset(t *testing.T) {
	count := 0
	c := newChime(func(beep.Streamer) { count++ })

	c.SetMuted(true)
	c.ReportDay(telemetry.DayReport{Day: 1, Dead: 2})
	c.ReportSummary(telemetry.Summary{})
	if count != 0 {
		t.Fatalf("muted chime played %d times", count)
	}

	// Deaths seen while muted still count toward the baseline
	c.SetMuted(false)
	c.ReportDay(telemetry.DayReport{Day: 2, Dead: 2})
	if count != 0 {
		t.Errorf("played on unchanged death count")
	}

	c.Reset()
	c.ReportDay(telemetry.DayReport{Day: 1, Dead: 1})
	if count != 1 {
		t.Errorf("after reset played %d times, want 1", count)
	}
}

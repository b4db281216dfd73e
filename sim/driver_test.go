package sim

import (
	"context"
	"errors"
	"testing"
	"time"
)

// startDriver runs a driver until the test ends.
func startDriver(t *testing.T, s *Simulation) *Driver {
	t.Helper()
	d := NewDriver(s, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- d.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		if err := <-errCh; !errors.Is(err, context.Canceled) {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	})
	return d
}

func ticks(d *Driver) int {
	var n int
	d.Do(func(s *Simulation) { n = s.Ticks() })
	return n
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(2 * time.Millisecond)
	}
}

func TestDriverTicksUntilStopped(t *testing.T) {
	cfg := testRun()
	cfg.SeedOdds = 1
	cfg.RecoveryDays = 1000 // outlasts the test
	d := startDriver(t, New(cfg, NewRandom(1)))

	waitFor(t, "ticks", func() bool { return ticks(d) > 3 })

	d.Stop()
	stopped := ticks(d)
	time.Sleep(20 * time.Millisecond)
	if got := ticks(d); got != stopped {
		t.Errorf("ticks advanced from %d to %d while stopped", stopped, got)
	}

	d.Step()
	if got := ticks(d); got != stopped+1 {
		t.Errorf("ticks after Step = %d, want %d", got, stopped+1)
	}

	d.Resume()
	waitFor(t, "ticks after resume", func() bool { return ticks(d) > stopped+3 })
}

func TestDriverReset(t *testing.T) {
	cfg := testRun()
	cfg.SeedOdds = 1
	cfg.RecoveryDays = 1000
	d := startDriver(t, New(cfg, NewRandom(2)))

	waitFor(t, "a day", func() bool {
		var day int
		d.Do(func(s *Simulation) { day = s.Day() })
		return day > 0
	})

	next := cfg
	next.Population = 15
	d.Reset(next)

	var got int
	var completed bool
	d.Do(func(s *Simulation) {
		got = s.Census().Total()
		completed = s.Completed()
	})
	if got != 15 || completed {
		t.Errorf("after reset population=%d completed=%v", got, completed)
	}
}

func TestDriverSpeed(t *testing.T) {
	d := startDriver(t, New(testRun(), NewRandom(3)))

	d.SetSpeed(4)
	if got := d.Speed(); got != 4 {
		t.Errorf("speed = %d, want 4", got)
	}
	d.SetSpeed(50)
	if got := d.Speed(); got != 10 {
		t.Errorf("speed = %d, want clamp to 10", got)
	}
	d.SetSpeed(0)
	if got := d.Speed(); got != 1 {
		t.Errorf("speed = %d, want clamp to 1", got)
	}
}

func TestDriverDoAfterExit(t *testing.T) {
	d := NewDriver(New(testRun(), NewRandom(4)), time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := d.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}
	if d.Do(func(*Simulation) {}) {
		t.Error("Do reported success on a stopped driver")
	}
}

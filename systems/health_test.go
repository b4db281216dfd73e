package systems

import (
	"testing"

	"github.com/pthm-cable/outbreak/components"
)

func TestHealthDeathBeforeImmunity(t *testing.T) {
	// recoveryDays=5, deathDay=0: the countdown reaches 0 on the fifth day
	// and death wins over immunity.
	tw := newTestWorld()
	e := tw.spawn(
		components.Position{},
		components.Velocity{X: 1, Y: 1},
		components.Body{},
		components.Health{State: components.Infected, DaysLeft: 5, WillDie: true, DeathDay: 0},
	)
	sys := NewHealthSystem(tw.world)

	for day := 1; day <= 4; day++ {
		out := sys.Update()
		if out.Deaths != 0 || out.Recoveries != 0 {
			t.Fatalf("day %d: unexpected outcome %+v", day, out)
		}
	}

	out := sys.Update()
	if out.Deaths != 1 || out.Recoveries != 0 {
		t.Errorf("day 5 outcome = %+v, want one death", out)
	}
	if s := tw.health.Get(e).State; s != components.Dead {
		t.Errorf("state = %s, want dead", s)
	}
	if v := tw.vel.Get(e); !v.IsZero() {
		t.Errorf("dead particle velocity = %+v, want zero", *v)
	}
}

func TestHealthRecoveryTiming(t *testing.T) {
	// Infected with recoveryDays=3: infected on days +1 and +2, immune on +3.
	tw := newTestWorld()
	e := tw.at(0, 0, 0, infected(3))
	sys := NewHealthSystem(tw.world)

	sys.Update()
	if s := tw.health.Get(e).State; s != components.Infected {
		t.Fatalf("day 1 state = %s, want infected", s)
	}
	sys.Update()
	if s := tw.health.Get(e).State; s != components.Infected {
		t.Fatalf("day 2 state = %s, want infected", s)
	}
	out := sys.Update()
	if s := tw.health.Get(e).State; s != components.Immune {
		t.Fatalf("day 3 state = %s, want immune", s)
	}
	if out.Recoveries != 1 {
		t.Errorf("recoveries = %d, want 1", out.Recoveries)
	}
}

func TestHealthDeathMidCountdown(t *testing.T) {
	tw := newTestWorld()
	e := tw.spawn(
		components.Position{},
		components.Velocity{X: 2},
		components.Body{},
		components.Health{State: components.Infected, DaysLeft: 10, WillDie: true, DeathDay: 7},
	)
	sys := NewHealthSystem(tw.world)

	for day := 1; day <= 2; day++ {
		sys.Update()
	}
	if s := tw.health.Get(e).State; s != components.Infected {
		t.Fatalf("state after 2 days = %s, want infected", s)
	}

	out := sys.Update()
	if out.Deaths != 1 {
		t.Errorf("deaths on day 3 = %d, want 1", out.Deaths)
	}
	if s := tw.health.Get(e).State; s != components.Dead {
		t.Errorf("state = %s, want dead", s)
	}
}

func TestHealthSkippedDeathDayNeverDies(t *testing.T) {
	// The countdown already sits below the death day, so the exact-equality
	// check never matches and the particle recovers.
	tw := newTestWorld()
	e := tw.at(0, 0, 0, components.Health{State: components.Infected, DaysLeft: 2, WillDie: true, DeathDay: 4})
	sys := NewHealthSystem(tw.world)

	sys.Update()
	sys.Update()

	h := tw.health.Get(e)
	if h.State != components.Immune {
		t.Errorf("state = %s, want immune", h.State)
	}
	if h.WillDie {
		t.Error("immune particle kept death eligibility")
	}
}

func TestHealthIgnoresNonInfected(t *testing.T) {
	tw := newTestWorld()
	s := tw.at(0, 0, 0, components.Health{})
	im := tw.at(0, 0, 0, components.Health{State: components.Immune})

	out := NewHealthSystem(tw.world).Update()

	if out != (DayOutcome{}) {
		t.Errorf("outcome = %+v, want none", out)
	}
	if st := tw.health.Get(s).State; st != components.Susceptible {
		t.Errorf("susceptible became %s", st)
	}
	if st := tw.health.Get(im).State; st != components.Immune {
		t.Errorf("immune became %s", st)
	}
}

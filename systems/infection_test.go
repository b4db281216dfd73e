package systems

import (
	"testing"

	"github.com/pthm-cable/outbreak/components"
)

func TestInContactBoundaryInclusive(t *testing.T) {
	a := components.Position{X: 0, Y: 0}
	ab := components.Body{ContactRadius: 2}
	bb := components.Body{ContactRadius: 3}

	tests := []struct {
		name string
		dx   float64
		want bool
	}{
		{"overlapping", 4, true},
		{"exactly touching", 5, true},
		{"apart", 5.0001, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := components.Position{X: tt.dx, Y: 0}
			if got := InContact(a, ab, b, bb); got != tt.want {
				t.Errorf("InContact at distance %v = %v, want %v", tt.dx, got, tt.want)
			}
		})
	}
}

func TestInfectionAtExactContactDistance(t *testing.T) {
	tw := newTestWorld()
	tw.at(10, 10, 2, infected(5))
	target := tw.at(10, 15, 3, components.Health{})

	sys := NewInfectionSystem(tw.world, 7)
	if n := sys.Update(); n != 1 {
		t.Errorf("new infections = %d, want 1", n)
	}

	h := tw.health.Get(target)
	if h.State != components.Infected {
		t.Fatalf("target state = %s, want infected", h.State)
	}
	if h.DaysLeft != 7 {
		t.Errorf("target countdown = %d, want 7", h.DaysLeft)
	}
}

func TestInfectionSkipsImmuneAndDead(t *testing.T) {
	tw := newTestWorld()
	tw.at(50, 50, 5, infected(5))
	immune := tw.at(50, 50, 5, components.Health{State: components.Immune})
	dead := tw.at(51, 50, 5, components.Health{State: components.Dead})

	sys := NewInfectionSystem(tw.world, 5)
	if n := sys.Update(); n != 0 {
		t.Errorf("new infections = %d, want 0", n)
	}
	if s := tw.health.Get(immune).State; s != components.Immune {
		t.Errorf("immune particle became %s", s)
	}
	if s := tw.health.Get(dead).State; s != components.Dead {
		t.Errorf("dead particle became %s", s)
	}
}

func TestDeadDoNotTransmit(t *testing.T) {
	tw := newTestWorld()
	tw.at(50, 50, 5, components.Health{State: components.Dead})
	target := tw.at(50, 50, 5, components.Health{})

	NewInfectionSystem(tw.world, 5).Update()

	if s := tw.health.Get(target).State; s != components.Susceptible {
		t.Errorf("dead particle infected a neighbor: state %s", s)
	}
}

func TestInfectionOutOfRange(t *testing.T) {
	tw := newTestWorld()
	tw.at(0, 0, 1, infected(5))
	target := tw.at(30, 40, 1, components.Health{})

	NewInfectionSystem(tw.world, 5).Update()

	if s := tw.health.Get(target).State; s != components.Susceptible {
		t.Errorf("distant particle became %s", s)
	}
}

func TestInfectionBothInfectedNoChange(t *testing.T) {
	tw := newTestWorld()
	a := tw.at(0, 0, 3, infected(4))
	b := tw.at(1, 0, 3, infected(2))

	if n := NewInfectionSystem(tw.world, 9).Update(); n != 0 {
		t.Errorf("new infections = %d, want 0", n)
	}
	if d := tw.health.Get(a).DaysLeft; d != 4 {
		t.Errorf("countdown of a reset to %d", d)
	}
	if d := tw.health.Get(b).DaysLeft; d != 2 {
		t.Errorf("countdown of b reset to %d", d)
	}
}

func TestInfectionIsDirectional(t *testing.T) {
	// The susceptible particle comes first in storage order; it must still
	// be reached from the infected particle's row of the scan.
	tw := newTestWorld()
	target := tw.at(0, 0, 3, components.Health{})
	tw.at(4, 0, 3, infected(4))

	NewInfectionSystem(tw.world, 4).Update()

	if s := tw.health.Get(target).State; s != components.Infected {
		t.Errorf("target state = %s, want infected", s)
	}
}

func TestInfectionChainsWithinScan(t *testing.T) {
	// 0 infects 1 while visiting row 0; row 1 is visited later and infects 2.
	tw := newTestWorld()
	tw.at(0, 0, 1, infected(3))
	mid := tw.at(2, 0, 1, components.Health{})
	far := tw.at(4, 0, 1, components.Health{})

	n := NewInfectionSystem(tw.world, 3).Update()

	if n != 2 {
		t.Errorf("new infections = %d, want 2", n)
	}
	if s := tw.health.Get(mid).State; s != components.Infected {
		t.Errorf("mid state = %s, want infected", s)
	}
	if s := tw.health.Get(far).State; s != components.Infected {
		t.Errorf("far state = %s, want infected", s)
	}
}

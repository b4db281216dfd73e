package systems

import (
	"testing"

	"github.com/pthm-cable/outbreak/components"
)

func TestMoveEulerStep(t *testing.T) {
	pos := components.Position{X: 50, Y: 50}
	vel := components.Velocity{X: 1.5, Y: -2}

	Move(&pos, &vel, 6, Bounds{Width: 100, Height: 100})

	if pos.X != 51.5 || pos.Y != 48 {
		t.Errorf("position = (%v, %v), want (51.5, 48)", pos.X, pos.Y)
	}
	if vel.X != 1.5 || vel.Y != -2 {
		t.Errorf("velocity changed away from walls: %+v", vel)
	}
}

func TestMoveReflection(t *testing.T) {
	bounds := Bounds{Width: 100, Height: 80}

	tests := []struct {
		name    string
		pos     components.Position
		vel     components.Velocity
		wantVel components.Velocity
	}{
		{"left wall heading in", components.Position{X: 3, Y: 40}, components.Velocity{X: -1, Y: 0}, components.Velocity{X: 1, Y: 0}},
		{"left wall heading away", components.Position{X: 1, Y: 40}, components.Velocity{X: 1, Y: 0}, components.Velocity{X: 1, Y: 0}},
		{"right wall heading in", components.Position{X: 97, Y: 40}, components.Velocity{X: 1, Y: 0}, components.Velocity{X: -1, Y: 0}},
		{"right wall heading away", components.Position{X: 99, Y: 40}, components.Velocity{X: -1, Y: 0}, components.Velocity{X: -1, Y: 0}},
		{"top wall heading in", components.Position{X: 50, Y: 3}, components.Velocity{X: 0, Y: -1}, components.Velocity{X: 0, Y: 1}},
		{"bottom wall heading in", components.Position{X: 50, Y: 77}, components.Velocity{X: 0, Y: 1}, components.Velocity{X: 0, Y: -1}},
		{"bottom wall heading away", components.Position{X: 50, Y: 79}, components.Velocity{X: 0, Y: -1}, components.Velocity{X: 0, Y: -1}},
		{"corner flips both", components.Position{X: 3, Y: 3}, components.Velocity{X: -1, Y: -1}, components.Velocity{X: 1, Y: 1}},
		{"edge exactly on wall", components.Position{X: 4, Y: 40}, components.Velocity{X: -1, Y: 0}, components.Velocity{X: -1, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, vel := tt.pos, tt.vel
			Move(&pos, &vel, 6, bounds)
			if vel != tt.wantVel {
				t.Errorf("velocity = %+v, want %+v", vel, tt.wantVel)
			}
		})
	}
}

func TestMotionSystemDeadStayPut(t *testing.T) {
	tw := newTestWorld()
	moving := tw.spawn(
		components.Position{X: 10, Y: 10},
		components.Velocity{X: 2, Y: 1},
		components.Body{Size: 6},
		components.Health{},
	)
	dead := tw.spawn(
		components.Position{X: 20, Y: 20},
		components.Velocity{},
		components.Body{Size: 6},
		components.Health{State: components.Dead},
	)

	sys := NewMotionSystem(tw.world, Bounds{Width: 100, Height: 100})
	for i := 0; i < 5; i++ {
		sys.Update()
	}

	if p := tw.pos.Get(moving); p.X != 20 || p.Y != 15 {
		t.Errorf("moving particle at (%v, %v), want (20, 15)", p.X, p.Y)
	}
	if p := tw.pos.Get(dead); p.X != 20 || p.Y != 20 {
		t.Errorf("dead particle moved to (%v, %v)", p.X, p.Y)
	}
}

func TestMotionSystemStaysInside(t *testing.T) {
	tw := newTestWorld()
	e := tw.spawn(
		components.Position{X: 50, Y: 50},
		components.Velocity{X: 3.3, Y: -2.7},
		components.Body{Size: 6},
		components.Health{},
	)
	bounds := Bounds{Width: 100, Height: 60}
	sys := NewMotionSystem(tw.world, bounds)

	for i := 0; i < 1000; i++ {
		sys.Update()
		p := tw.pos.Get(e)
		// One step of overshoot past the edge is possible before reflecting
		if p.X < -3.3 || p.X > bounds.Width+3.3 || p.Y < -2.7 || p.Y > bounds.Height+2.7 {
			t.Fatalf("tick %d: particle escaped to (%v, %v)", i, p.X, p.Y)
		}
	}
}

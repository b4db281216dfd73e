// Package systems contains ECS systems for the simulation.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/outbreak/components"
)

// Bounds represents the simulation surface.
type Bounds struct {
	Width, Height float64
}

// MotionSystem integrates positions and bounces particles off the walls.
type MotionSystem struct {
	filter *ecs.Filter3[components.Position, components.Velocity, components.Body]
	bounds Bounds
}

// NewMotionSystem creates a new motion system.
func NewMotionSystem(w *ecs.World, bounds Bounds) *MotionSystem {
	return &MotionSystem{
		filter: ecs.NewFilter3[components.Position, components.Velocity, components.Body](w),
		bounds: bounds,
	}
}

// Update moves every particle by one tick.
func (s *MotionSystem) Update() {
	query := s.filter.Query()
	for query.Next() {
		pos, vel, body := query.Get()
		Move(pos, vel, body.Size, s.bounds)
	}
}

// Move advances a particle by its velocity, then reflects each velocity
// component whose leading edge is past a wall while still heading into it.
// Both axes are checked independently, so corners flip both components.
func Move(pos *components.Position, vel *components.Velocity, size float64, b Bounds) {
	pos.X += vel.X
	pos.Y += vel.Y

	half := size / 2
	if pos.X-half < 0 && vel.X < 0 {
		vel.X = -vel.X
	}
	if pos.X+half > b.Width && vel.X > 0 {
		vel.X = -vel.X
	}
	if pos.Y-half < 0 && vel.Y < 0 {
		vel.Y = -vel.Y
	}
	if pos.Y+half > b.Height && vel.Y > 0 {
		vel.Y = -vel.Y
	}
}

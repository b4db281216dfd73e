// Package components defines the ECS components that make up a particle.
package components

// Position represents a particle's center on the surface.
type Position struct {
	X float64 `inspect:"label,fmt:%.1f"`
	Y float64 `inspect:"label,fmt:%.1f"`
}

// Velocity represents a particle's displacement per tick.
type Velocity struct {
	X float64 `inspect:"label,fmt:%+.2f"`
	Y float64 `inspect:"label,fmt:%+.2f"`
}

// IsZero reports whether the particle is stationary.
func (v Velocity) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

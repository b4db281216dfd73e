package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/outbreak/components"
)

// DayOutcome counts the transitions applied by one day pass.
type DayOutcome struct {
	Deaths     int
	Recoveries int
}

// HealthSystem applies the once-per-day health transitions.
type HealthSystem struct {
	filter *ecs.Filter2[components.Velocity, components.Health]
}

// NewHealthSystem creates a new health system.
func NewHealthSystem(w *ecs.World) *HealthSystem {
	return &HealthSystem{
		filter: ecs.NewFilter2[components.Velocity, components.Health](w),
	}
}

// Update runs the day pass. Each step covers the whole population before
// the next starts: countdown, then deaths, then immunity. Death must be
// resolved first so a particle with DeathDay 0 dies instead of recovering.
func (s *HealthSystem) Update() DayOutcome {
	var out DayOutcome

	query := s.filter.Query()
	for query.Next() {
		_, health := query.Get()
		health.DecrementDay()
	}

	query = s.filter.Query()
	for query.Next() {
		vel, health := query.Get()
		if health.ShouldDie() {
			health.Kill(vel)
			out.Deaths++
		}
	}

	query = s.filter.Query()
	for query.Next() {
		_, health := query.Get()
		if health.State == components.Infected && health.DaysLeft == 0 {
			health.Immunize()
			out.Recoveries++
		}
	}

	return out
}

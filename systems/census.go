package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/outbreak/components"
)

// Census holds the population count per health state.
type Census struct {
	Susceptible int
	Infected    int
	Immune      int
	Dead        int
}

// Total returns the population size.
func (c Census) Total() int {
	return c.Susceptible + c.Infected + c.Immune + c.Dead
}

// Add counts one particle in the given state.
func (c *Census) Add(state components.HealthState) {
	switch state {
	case components.Susceptible:
		c.Susceptible++
	case components.Infected:
		c.Infected++
	case components.Immune:
		c.Immune++
	case components.Dead:
		c.Dead++
	}
}

// CensusSystem counts particles by health state.
type CensusSystem struct {
	filter *ecs.Filter1[components.Health]
}

// NewCensusSystem creates a new census system.
func NewCensusSystem(w *ecs.World) *CensusSystem {
	return &CensusSystem{
		filter: ecs.NewFilter1[components.Health](w),
	}
}

// Count tallies the current population.
func (s *CensusSystem) Count() Census {
	var c Census
	query := s.filter.Query()
	for query.Next() {
		health := query.Get()
		c.Add(health.State)
	}
	return c
}

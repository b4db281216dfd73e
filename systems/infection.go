package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/outbreak/components"
)

// carrier caches component pointers for the pairwise scan.
// Pointers stay valid because no entity is created or removed mid-run.
type carrier struct {
	pos    *components.Position
	body   *components.Body
	health *components.Health
}

// InfectionSystem spreads infection between particles in contact.
type InfectionSystem struct {
	filter       *ecs.Filter3[components.Position, components.Body, components.Health]
	recoveryDays int

	// Reusable buffer to avoid allocations
	carriers []carrier
}

// NewInfectionSystem creates a new infection system. Newly infected
// particles start their countdown at recoveryDays.
func NewInfectionSystem(w *ecs.World, recoveryDays int) *InfectionSystem {
	return &InfectionSystem{
		filter:       ecs.NewFilter3[components.Position, components.Body, components.Health](w),
		recoveryDays: recoveryDays,
		carriers:     make([]carrier, 0, 256),
	}
}

// Update scans every ordered pair once and returns the number of new infections.
// A particle infected earlier in the scan transmits when visited later as a source.
func (s *InfectionSystem) Update() int {
	s.carriers = s.carriers[:0]

	query := s.filter.Query()
	for query.Next() {
		pos, body, health := query.Get()
		s.carriers = append(s.carriers, carrier{pos: pos, body: body, health: health})
	}

	infections := 0
	for i := range s.carriers {
		src := &s.carriers[i]
		if !src.health.CanTransmit() {
			continue
		}
		for j := range s.carriers {
			if i == j {
				continue
			}
			dst := &s.carriers[j]
			if dst.health.State != components.Susceptible {
				continue
			}
			if !InContact(*src.pos, *src.body, *dst.pos, *dst.body) {
				continue
			}
			if dst.health.Infect(s.recoveryDays) {
				infections++
			}
		}
	}

	return infections
}

// InContact reports whether the gap between two contact radii is closed.
// Touching exactly (gap == 0) counts as contact.
func InContact(a components.Position, ab components.Body, b components.Position, bb components.Body) bool {
	gap := distance(a.X, a.Y, b.X, b.Y) - (ab.ContactRadius + bb.ContactRadius)
	return gap <= 0
}

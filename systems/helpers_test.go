package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/outbreak/components"
)

// testWorld wraps a world with the particle mapper used by the tests.
type testWorld struct {
	world  *ecs.World
	mapper *ecs.Map4[components.Position, components.Velocity, components.Body, components.Health]
	pos    *ecs.Map[components.Position]
	vel    *ecs.Map[components.Velocity]
	health *ecs.Map[components.Health]
}

func newTestWorld() *testWorld {
	w := ecs.NewWorld()
	return &testWorld{
		world:  w,
		mapper: ecs.NewMap4[components.Position, components.Velocity, components.Body, components.Health](w),
		pos:    ecs.NewMap[components.Position](w),
		vel:    ecs.NewMap[components.Velocity](w),
		health: ecs.NewMap[components.Health](w),
	}
}

func (tw *testWorld) spawn(pos components.Position, vel components.Velocity, body components.Body, health components.Health) ecs.Entity {
	return tw.mapper.NewEntity(&pos, &vel, &body, &health)
}

// at spawns a stationary particle with the given contact radius and health.
func (tw *testWorld) at(x, y, contact float64, health components.Health) ecs.Entity {
	return tw.spawn(
		components.Position{X: x, Y: y},
		components.Velocity{},
		components.Body{Size: 6, ContactRadius: contact},
		health,
	)
}

func infected(days int) components.Health {
	return components.Health{State: components.Infected, DaysLeft: days}
}

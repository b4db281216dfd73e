package sim

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/outbreak/components"
	"github.com/pthm-cable/outbreak/config"
)

// particleMapper creates particle entities with their four components.
type particleMapper = ecs.Map4[components.Position, components.Velocity, components.Body, components.Health]

// Spawner creates the initial population of a run.
type Spawner struct {
	cfg    config.Run
	rng    Random
	deathN int // odds of dying are 1 in deathN; 0 means nobody dies
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg config.Run, rng Random) *Spawner {
	s := &Spawner{cfg: cfg, rng: rng}
	if cfg.DeathRatePercent > 0 {
		s.deathN = oneIn(cfg.DeathRatePercent)
	}
	return s
}

// oneIn converts a percentage into "1 in n" odds.
func oneIn(percent float64) int {
	return max(1, int(math.Round(100/percent)))
}

// Next draws one particle. The draw order is fixed so that a seeded source
// always produces the same population.
func (s *Spawner) Next() (components.Position, components.Velocity, components.Body, components.Health) {
	pos := components.Position{
		X: s.rng.Float64() * s.cfg.Width,
		Y: s.rng.Float64() * s.cfg.Height,
	}

	var vel components.Velocity
	vel.X = s.rng.Float64() * s.cfg.MovementRate
	if s.rng.Intn(2) == 0 {
		vel.X = -vel.X
	}
	vel.Y = s.rng.Float64() * s.cfg.MovementRate
	if s.rng.Intn(2) == 0 {
		vel.Y = -vel.Y
	}

	body := components.Body{
		Size:          s.cfg.ParticleSize,
		ContactRadius: s.cfg.ContactDistance,
	}

	var health components.Health
	if s.rng.Intn(s.cfg.SeedOdds) == 0 {
		health.Infect(s.cfg.RecoveryDays)
	}
	if s.deathN > 0 {
		health.WillDie = s.rng.Intn(s.deathN) == 0
	}
	health.DeathDay = s.rng.Intn(s.cfg.RecoveryDays)

	return pos, vel, body, health
}

// Populate creates the configured number of particles and returns how many
// start infected.
func (s *Spawner) Populate(mapper *particleMapper) int {
	infected := 0
	for i := 0; i < s.cfg.Population; i++ {
		pos, vel, body, health := s.Next()
		if health.State == components.Infected {
			infected++
		}
		mapper.NewEntity(&pos, &vel, &body, &health)
	}
	return infected
}

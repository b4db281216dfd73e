// Package sim runs the outbreak: it owns the particle world, steps the
// systems in order and hands frames and reports to its collaborators.
package sim

import (
	"errors"
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/outbreak/components"
	"github.com/pthm-cable/outbreak/config"
	"github.com/pthm-cable/outbreak/systems"
	"github.com/pthm-cable/outbreak/telemetry"
)

// Option configures a Simulation.
type Option func(*Simulation)

// WithReporter adds a reporter. Reporters are called in the order added.
func WithReporter(r Reporter) Option {
	return func(s *Simulation) {
		s.reporters = append(s.reporters, r)
	}
}

// WithRenderer sets the renderer called at the end of every tick.
func WithRenderer(r Renderer) Option {
	return func(s *Simulation) {
		s.renderer = r
	}
}

// WithPerf records per-phase tick timing into p.
func WithPerf(p *telemetry.PerfCollector) Option {
	return func(s *Simulation) {
		s.perf = p
	}
}

// Simulation holds the complete state of one run.
type Simulation struct {
	cfg config.Run
	rng Random

	world     *ecs.World
	mapper    *particleMapper
	particles *ecs.Filter4[components.Position, components.Velocity, components.Body, components.Health]

	motion    *systems.MotionSystem
	infection *systems.InfectionSystem
	health    *systems.HealthSystem
	census    *systems.CensusSystem

	reporters Reporters
	renderer  Renderer
	perf      *telemetry.PerfCollector

	// State
	clock         Clock
	tick          int
	running       bool
	completed     bool
	newInfections int // since the last day report
	seeded        int // infected at creation

	// Reusable frame buffer
	views []ParticleView
}

// New creates a simulation and its initial population. The configuration
// must be valid; see config.Run.Validate.
func New(cfg config.Run, rng Random, opts ...Option) *Simulation {
	s := &Simulation{rng: rng}
	for _, opt := range opts {
		opt(s)
	}
	s.build(cfg)
	return s
}

// build creates a fresh world populated from cfg.
func (s *Simulation) build(cfg config.Run) {
	s.cfg = cfg
	s.world = ecs.NewWorld()
	s.mapper = ecs.NewMap4[components.Position, components.Velocity, components.Body, components.Health](s.world)
	s.particles = ecs.NewFilter4[components.Position, components.Velocity, components.Body, components.Health](s.world)

	s.motion = systems.NewMotionSystem(s.world, systems.Bounds{Width: cfg.Width, Height: cfg.Height})
	s.infection = systems.NewInfectionSystem(s.world, cfg.RecoveryDays)
	s.health = systems.NewHealthSystem(s.world)
	s.census = systems.NewCensusSystem(s.world)

	s.clock.TicksPerDay = cfg.TicksPerDay
	s.clock.Reset()
	s.tick = 0
	s.running = true
	s.completed = false
	s.newInfections = 0

	s.seeded = NewSpawner(cfg, s.rng).Populate(s.mapper)
	s.views = make([]ParticleView, 0, cfg.Population)
}

// Reset discards the current run and starts a new one from cfg. The random
// source keeps its position, so consecutive runs differ.
func (s *Simulation) Reset(cfg config.Run) {
	s.build(cfg)
	s.reporters.Reset()
	s.render()
}

// Tick advances the simulation by one frame. Does nothing while stopped or
// after completion.
func (s *Simulation) Tick() {
	if !s.running {
		return
	}
	s.step()
}

// Step advances one frame even while stopped.
func (s *Simulation) Step() {
	s.step()
}

func (s *Simulation) step() {
	if s.completed {
		return
	}

	if s.perf != nil {
		s.perf.StartTick()
		defer s.perf.EndTick()
	}
	s.tick++

	if s.clock.Advance() {
		s.startPhase(telemetry.PhaseHealth)
		if s.endDay() {
			// Particles stop on the completing tick; nothing is left to infect.
			s.startPhase(telemetry.PhaseRender)
			s.render()
			return
		}
	}

	s.startPhase(telemetry.PhaseMotion)
	s.motion.Update()

	s.startPhase(telemetry.PhaseInfection)
	s.newInfections += s.infection.Update()

	s.startPhase(telemetry.PhaseRender)
	s.render()
}

// endDay applies the day transitions and reports. Returns true if the
// outbreak is over.
func (s *Simulation) endDay() bool {
	out := s.health.Update()
	c := s.census.Count()

	report := telemetry.DayReport{
		Day:           s.clock.Day,
		Infected:      c.Infected,
		Immune:        c.Immune,
		Dead:          c.Dead,
		Unaffected:    c.Susceptible,
		NewInfections: s.newInfections,
		NewDeaths:     out.Deaths,
		NewRecoveries: out.Recoveries,
	}
	s.newInfections = 0
	s.reporters.ReportDay(report)

	if c.Infected > 0 {
		return false
	}
	s.completed = true
	s.reporters.ReportSummary(telemetry.SummaryFromReport(report))
	return true
}

func (s *Simulation) startPhase(phase string) {
	if s.perf != nil {
		s.perf.StartPhase(phase)
	}
}

// render hands the current state to the renderer.
func (s *Simulation) render() {
	if s.renderer == nil {
		return
	}
	s.renderer.Render(s.frame())
}

// frame builds a frame in the reusable buffer.
func (s *Simulation) frame() Frame {
	s.views = s.views[:0]
	var c systems.Census

	query := s.particles.Query()
	for query.Next() {
		pos, _, body, health := query.Get()
		s.views = append(s.views, ParticleView{
			X:     pos.X,
			Y:     pos.Y,
			Size:  body.Size,
			State: health.State,
		})
		c.Add(health.State)
	}

	return Frame{
		Day:       s.clock.Day,
		Tick:      s.tick,
		Census:    c,
		Particles: s.views,
	}
}

// Stop pauses ticking.
func (s *Simulation) Stop() {
	s.running = false
}

// Resume continues ticking after Stop.
func (s *Simulation) Resume() {
	s.running = true
}

// Running reports whether Tick advances the simulation.
func (s *Simulation) Running() bool {
	return s.running && !s.completed
}

// Completed reports whether the outbreak is over.
func (s *Simulation) Completed() bool {
	return s.completed
}

// Day returns the number of completed days.
func (s *Simulation) Day() int {
	return s.clock.Day
}

// Ticks returns the number of ticks since the last reset.
func (s *Simulation) Ticks() int {
	return s.tick
}

// Seeded returns the number of particles infected at creation.
func (s *Simulation) Seeded() int {
	return s.seeded
}

// Census counts the population by health state.
func (s *Simulation) Census() systems.Census {
	return s.census.Count()
}

// Particles returns a copy of the drawing state of every particle, in
// creation order.
func (s *Simulation) Particles() []ParticleView {
	f := s.frame()
	views := make([]ParticleView, len(f.Particles))
	copy(views, f.Particles)
	return views
}

// Config returns the configuration of the current run.
func (s *Simulation) Config() config.Run {
	return s.cfg
}

// CheckInvariants validates every particle and the population size.
func (s *Simulation) CheckInvariants() error {
	var errs []error
	n := 0

	query := s.particles.Query()
	for query.Next() {
		pos, vel, _, health := query.Get()
		if err := health.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("particle %d at (%.1f, %.1f): %w", n, pos.X, pos.Y, err))
		}
		if health.State == components.Dead && !vel.IsZero() {
			errs = append(errs, fmt.Errorf("particle %d: dead with velocity (%g, %g)", n, vel.X, vel.Y))
		}
		n++
	}

	if n != s.cfg.Population {
		errs = append(errs, fmt.Errorf("population is %d, want %d", n, s.cfg.Population))
	}
	return errors.Join(errs...)
}

// Particle is a copy of every component of one particle.
type Particle struct {
	Position components.Position
	Velocity components.Velocity
	Body     components.Body
	Health   components.Health
}

// Particle returns a copy of the i-th particle in creation order.
func (s *Simulation) Particle(i int) (Particle, bool) {
	if i < 0 || i >= s.cfg.Population {
		return Particle{}, false
	}

	var p Particle
	found := false
	n := 0
	query := s.particles.Query()
	for query.Next() {
		if n == i {
			pos, vel, body, health := query.Get()
			p = Particle{Position: *pos, Velocity: *vel, Body: *body, Health: *health}
			found = true
		}
		n++
	}
	return p, found
}

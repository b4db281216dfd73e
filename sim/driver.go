package sim

import (
	"context"
	"time"

	"github.com/pthm-cable/outbreak/config"
)

// command is applied to the simulation between ticks.
type command struct {
	apply func(*Simulation)
	rearm bool // restart the tick period after applying
	done  chan struct{}
}

// Driver ticks a Simulation in real time. Run owns the only goroutine that
// touches the simulation; every other access goes through a command.
type Driver struct {
	sim      *Simulation
	interval time.Duration
	steps    int // ticks per period

	cmds chan command
	quit chan struct{}
}

// NewDriver creates a driver ticking every interval.
func NewDriver(s *Simulation, interval time.Duration) *Driver {
	if interval <= 0 {
		interval = time.Second / 30
	}
	return &Driver{
		sim:      s,
		interval: interval,
		steps:    1,
		cmds:     make(chan command),
		quit:     make(chan struct{}),
	}
}

// Run ticks until ctx is cancelled.
func (d *Driver) Run(ctx context.Context) error {
	defer close(d.quit)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-d.cmds:
			if cmd.rearm {
				ticker.Stop()
			}
			cmd.apply(d.sim)
			if cmd.rearm {
				ticker.Reset(d.interval)
			}
			close(cmd.done)
		case <-ticker.C:
			for i := 0; i < d.steps; i++ {
				d.sim.Tick()
			}
		}
	}
}

// send queues a command and waits until it is applied. Returns false if the
// driver is not running anymore.
func (d *Driver) send(cmd command) bool {
	cmd.done = make(chan struct{})
	select {
	case d.cmds <- cmd:
	case <-d.quit:
		return false
	}
	<-cmd.done
	return true
}

// Do runs fn on the driver goroutine between ticks.
func (d *Driver) Do(fn func(*Simulation)) bool {
	return d.send(command{apply: fn})
}

// Stop pauses the simulation.
func (d *Driver) Stop() {
	d.Do((*Simulation).Stop)
}

// Resume continues a paused simulation.
func (d *Driver) Resume() {
	d.Do((*Simulation).Resume)
}

// Step advances a single tick, running or not.
func (d *Driver) Step() {
	d.Do((*Simulation).Step)
}

// Reset starts a new run from cfg. No tick is delivered while rebuilding.
func (d *Driver) Reset(cfg config.Run) {
	d.send(command{
		apply: func(s *Simulation) { s.Reset(cfg) },
		rearm: true,
	})
}

// SetSpeed sets the number of ticks per period, clamped to [1, 10].
func (d *Driver) SetSpeed(steps int) {
	steps = min(max(steps, 1), 10)
	d.Do(func(*Simulation) { d.steps = steps })
}

// Speed returns the number of ticks per period.
func (d *Driver) Speed() int {
	var steps int
	if !d.Do(func(*Simulation) { steps = d.steps }) {
		return d.steps
	}
	return steps
}

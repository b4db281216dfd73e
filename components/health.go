package components

import "fmt"

// HealthState is the epidemiological classification of a particle.
type HealthState uint8

const (
	Susceptible HealthState = iota
	Infected
	Immune
	Dead
)

// String returns the display name for a HealthState.
func (s HealthState) String() string {
	switch s {
	case Susceptible:
		return "susceptible"
	case Infected:
		return "infected"
	case Immune:
		return "immune"
	case Dead:
		return "dead"
	default:
		return fmt.Sprintf("HealthState(%d)", uint8(s))
	}
}

// Terminal reports whether no further transition can leave this state.
func (s HealthState) Terminal() bool {
	return s == Immune || s == Dead
}

// Health is the per-particle state machine.
//
//	Susceptible -> Infected -> Immune
//	                        -> Dead
//
// WillDie and DeathDay are rolled once at creation. DaysLeft counts down
// while Infected and is zero in every other state.
type Health struct {
	State    HealthState `inspect:"label"`
	DaysLeft int         `inspect:"label"`
	WillDie  bool        `inspect:"bool"`
	DeathDay int         `inspect:"label"` // countdown value at which a WillDie particle dies
}

// Infect moves a susceptible particle to Infected with a full countdown.
// Returns false if the particle was not susceptible.
func (h *Health) Infect(recoveryDays int) bool {
	if h.State != Susceptible {
		return false
	}
	h.State = Infected
	h.DaysLeft = recoveryDays
	return true
}

// DecrementDay counts down one day of infection.
func (h *Health) DecrementDay() {
	if h.State != Infected {
		return
	}
	h.DaysLeft--
}

// ShouldDie reports whether the countdown sits exactly on the death day.
// A countdown that skips DeathDay never triggers death.
func (h *Health) ShouldDie() bool {
	return h.State == Infected && h.WillDie && h.DaysLeft == h.DeathDay
}

// Kill marks the particle dead and stops it.
func (h *Health) Kill(vel *Velocity) {
	if h.State.Terminal() {
		return
	}
	h.State = Dead
	h.DaysLeft = 0
	vel.X = 0
	vel.Y = 0
}

// Immunize ends the infection for good and clears death eligibility.
func (h *Health) Immunize() {
	if h.State.Terminal() {
		return
	}
	h.State = Immune
	h.WillDie = false
	h.DaysLeft = 0
}

// CanTransmit reports whether the particle is an active infection source.
func (h *Health) CanTransmit() bool {
	return h.State == Infected
}

// Validate checks the state machine invariants.
func (h *Health) Validate() error {
	if h.State > Dead {
		return fmt.Errorf("unknown health state %d", h.State)
	}
	if h.State == Infected && h.DaysLeft < 0 {
		return fmt.Errorf("infected with negative countdown %d", h.DaysLeft)
	}
	if h.State != Infected && h.DaysLeft != 0 {
		return fmt.Errorf("%s particle carries countdown %d", h.State, h.DaysLeft)
	}
	if h.State == Immune && h.WillDie {
		return fmt.Errorf("immune particle still marked to die")
	}
	return nil
}

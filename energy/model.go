package energy

import "errors"

// ErrUnknownDroneClass is returned by NewModel when Config.Class does not
// match any of the three known variants. Fatal: it surfaces as a
// user-visible ConfigError at the caller's boundary.
var ErrUnknownDroneClass = errors.New("energy: unknown drone class")

// Phase tags one leg of drone flight. Energy and time are always summed
// per-phase.
type Phase int

const (
	PhaseTakeoff Phase = iota
	PhaseCruise
	PhaseLanding
	PhaseHover
)

// Model is the capability surface every drone energy variant implements.
// PhaseTime and PhaseEnergy take the phase's horizontal distance (Cruise)
// or vertical altitude (Takeoff/Landing/Hover) together with the payload
// mass carried during that phase.
type Model interface {
	// PhaseTime returns the duration of phase in seconds. Always >= 0.
	PhaseTime(phase Phase, distanceOrAltitude, payload float64) float64
	// PhaseEnergy returns the energy consumed by phase in joules. Always
	// >= 0. Endurance always returns 0.
	PhaseEnergy(phase Phase, distanceOrAltitude, payload float64) float64
	// BatteryCapacity returns the usable battery energy in joules. Endurance
	// returns 0 (unused; Feasible governs its constraint instead).
	BatteryCapacity() float64
	// Capacity returns the maximum payload mass the drone may carry, in kg.
	Capacity() float64
	// Feasible reports whether a route with the given total flight time and
	// total flown distance respects this model's constraints. Linear and
	// Nonlinear always return true here (their constraint is energy, judged
	// separately against BatteryCapacity); Endurance is the only variant
	// where this method carries meaning.
	Feasible(routeTime, routeDistance float64) bool
}

// NewModel dispatches on cfg.Class and returns the matching Model
// implementation. An unrecognized Class is a ConfigError (ErrUnknownDroneClass).
func NewModel(cfg Config) (Model, error) {
	switch cfg.Class {
	case DroneLinear:
		return newLinearModel(cfg), nil
	case DroneNonlinear:
		return newNonlinearModel(cfg), nil
	case DroneEndurance:
		return newEnduranceModel(cfg), nil
	default:
		return nil, ErrUnknownDroneClass
	}
}

// phaseTimeKinematic resolves the kinematic speed to use for a given phase
// from the three-speed model shared by Linear and Nonlinear
// (takeoff/cruise/landing) and converts distance to duration.
func phaseTimeKinematic(phase Phase, distanceOrAltitude float64, takeoff, cruise, landing float64) float64 {
	var v float64
	switch phase {
	case PhaseTakeoff:
		v = takeoff
	case PhaseCruise:
		v = cruise
	case PhaseLanding:
		v = landing
	default:
		return 0
	}
	if v <= 0 {
		return 0
	}
	return distanceOrAltitude / v
}

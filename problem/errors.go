package problem

import (
	"errors"

	"github.com/khoint5304/soict-2024/energy"
)

// ErrUnknownDroneClass re-exports energy.ErrUnknownDroneClass so that
// errors.Is(err, problem.ErrUnknownDroneClass) works regardless of whether
// the failure originated in energy.NewModel or deeper in this package.
var ErrUnknownDroneClass = energy.ErrUnknownDroneClass

// Sentinel errors for the problem package. These surface as ConfigError in
// spec terms: malformed or unrecognized input is always fatal to the caller
// that's assembling a Context, never used for in-loop control flow.
var (
	// ErrNoCustomers indicates a Context was built with fewer than one
	// customer (the depot alone is not a valid instance).
	ErrNoCustomers = errors.New("problem: no customers besides the depot")

	// ErrDimensionMismatch indicates the supplied per-customer slices
	// (coordinates, demand, dronable, service times) disagree in length.
	ErrDimensionMismatch = errors.New("problem: per-customer slice length mismatch")

	// ErrNegativeValue indicates a demand, capacity, velocity, or service
	// time field was negative.
	ErrNegativeValue = errors.New("problem: negative value where non-negative required")

	// ErrInvalidFleetSize indicates trucks_count or drones_count was negative.
	ErrInvalidFleetSize = errors.New("problem: invalid fleet size")
)

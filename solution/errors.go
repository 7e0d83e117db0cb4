package solution

import "errors"

// Sentinel errors for the solution package. ErrInvariant is fatal when
// raised while constructing a Solution directly; the neighborhood operators
// in this module discard every candidate that triggers it, so a Solution
// they return never violates an invariant.
var (
	// ErrInvariant wraps every invariant failure New reports; the more
	// specific sentinels below remain reachable through errors.Is.
	ErrInvariant = errors.New("solution: invariant violation")

	// ErrFleetSize indicates the number of truck or drone trip-lists does
	// not match the Context's TrucksCount/DronesCount.
	ErrFleetSize = errors.New("solution: route list count does not match fleet size")

	// ErrBadEndpoints indicates a route does not start and end at the depot.
	ErrBadEndpoints = errors.New("solution: route does not start and end at the depot")

	// ErrDuplicateCustomer indicates a non-depot customer is visited a
	// second time, whether within the same route or in another route.
	ErrDuplicateCustomer = errors.New("solution: customer visited more than once")

	// ErrCoverage indicates a route names a customer index outside
	// [1, N-1], or a non-depot customer is not visited at all.
	ErrCoverage = errors.New("solution: every customer must be visited exactly once")

	// ErrUndronableOnDrone indicates an undronable customer was placed on a
	// drone route.
	ErrUndronableOnDrone = errors.New("solution: undronable customer on a drone route")
)

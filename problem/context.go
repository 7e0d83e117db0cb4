package problem

import "github.com/khoint5304/soict-2024/energy"

// DroneConfig and its companion enums are aliased from the energy package,
// which owns the tagged union that its own Model dispatch switches on.
// Keeping the alias here lets callers write problem.DroneConfig and
// problem.DroneLinear without an extra import.
type (
	DroneConfig = energy.Config
	DroneClass  = energy.DroneClass
	SpeedType   = energy.SpeedType
	RangeType   = energy.RangeType
)

const (
	DroneLinear    = energy.DroneLinear
	DroneNonlinear = energy.DroneNonlinear
	DroneEndurance = energy.DroneEndurance
	SpeedLow       = energy.SpeedLow
	SpeedHigh      = energy.SpeedHigh
	RangeLow       = energy.RangeLow
	RangeHigh      = energy.RangeHigh
)

// MaxWaitingTime caps how long a drone may hover at a customer waiting for
// a synchronized truck rendezvous. No route evaluator in this module models
// rendezvous synchronization yet; the constant is carried through Context
// for a future evaluator that takes on that behavior.
//
// TODO(rendezvous): wire MaxWaitingTime into route.DroneRoute once the
// synchronized-launch model is specified.
const MaxWaitingTime = 3600

// Context is the immutable, process-wide problem instance: customers, the
// precomputed distance matrix, fleet sizes, vehicle configurations, and
// search parameters. It is constructed exactly once (New) and never mutated
// afterward; every other package in this module takes a *Context by
// reference and only reads from it.
type Context struct {
	Customers   []Customer
	Distances   DistanceMatrix
	TrucksCount int
	DronesCount int
	Truck       TruckConfig
	Drone       DroneConfig

	// EnergyModel is derived once from Drone and cached; it never changes
	// after construction. Route evaluators consult it for every drone leg.
	EnergyModel energy.Model

	MaxWaitingTime float64
}

// New builds a Context from its constituent parts, computing the distance
// matrix and resolving the drone energy model. It is the single
// construction point for a Context; callers (typically ioformat.ParseStream)
// must not mutate the returned value afterward.
//
// Errors: ErrNoCustomers, ErrInvalidFleetSize, ErrNegativeValue, or
// ErrUnknownDroneClass (surfaced by energy.NewModel) via ConfigError
// semantics at the caller's boundary.
func New(customers []Customer, trucksCount, dronesCount int, truck TruckConfig, drone DroneConfig) (*Context, error) {
	if len(customers) < 2 {
		return nil, ErrNoCustomers
	}
	if trucksCount < 0 || dronesCount < 0 {
		return nil, ErrInvalidFleetSize
	}
	if truck.Capacity < 0 || truck.MaxVelocity < 0 {
		return nil, ErrNegativeValue
	}
	for _, c := range customers {
		if c.Demand < 0 || c.TruckServiceTime < 0 || c.DroneServiceTime < 0 {
			return nil, ErrNegativeValue
		}
	}

	model, err := energy.NewModel(drone)
	if err != nil {
		return nil, err
	}

	return &Context{
		Customers:      customers,
		Distances:      NewDistanceMatrix(customers),
		TrucksCount:    trucksCount,
		DronesCount:    dronesCount,
		Truck:          truck,
		Drone:          drone,
		EnergyModel:    model,
		MaxWaitingTime: MaxWaitingTime,
	}, nil
}

// N returns the total number of customers including the depot.
func (c *Context) N() int {
	return len(c.Customers)
}

// Distance is a convenience accessor equivalent to c.Distances.At(i, j).
func (c *Context) Distance(i, j int) float64 {
	return c.Distances.At(i, j)
}

// Dronable reports whether customer i may be served by a drone.
func (c *Context) Dronable(i int) bool {
	return c.Customers[i].Dronable
}

// Demand returns customer i's demand.
func (c *Context) Demand(i int) float64 {
	return c.Customers[i].Demand
}

package solution

import (
	"fmt"

	"github.com/khoint5304/soict-2024/problem"
	"github.com/khoint5304/soict-2024/route"
)

// Solution is the immutable composite of every truck's and every drone's
// trip sequences, plus its derived scalars. Once New returns successfully,
// no field of Solution changes; neighborhood operators build a new Solution
// rather than mutate an existing one.
type Solution struct {
	ctx *problem.Context

	TruckRoutes [][]route.TruckRoute
	DroneRoutes [][]route.DroneRoute

	workingTime          float64
	capacityViolation    float64
	droneEnergyViolation float64
}

// New validates truckRoutes/droneRoutes against CheckInvariants and, if they
// hold, evaluates and returns the resulting Solution. truckRoutes must have
// exactly ctx.TrucksCount entries (one trip list per truck, possibly empty);
// droneRoutes must have exactly ctx.DronesCount entries, symmetrically.
//
// Complexity: O(total customers visited) for invariant checking, plus O(total
// route length) for evaluation.
func New(ctx *problem.Context, truckRoutes [][]route.TruckRoute, droneRoutes [][]route.DroneRoute) (*Solution, error) {
	if err := CheckInvariants(ctx, truckRoutes, droneRoutes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvariant, err)
	}

	s := &Solution{ctx: ctx, TruckRoutes: truckRoutes, DroneRoutes: droneRoutes}
	s.evaluate()
	return s, nil
}

// evaluate computes the three derived aggregates in one pass over every
// route. working_time is the makespan: the maximum, over every vehicle, of
// the sum of that vehicle's trip working times.
func (s *Solution) evaluate() {
	var makespan float64
	for _, trips := range s.TruckRoutes {
		var total float64
		for _, tr := range trips {
			total += tr.WorkingTime(s.ctx)
			s.capacityViolation += tr.CapacityViolation(s.ctx)
		}
		if total > makespan {
			makespan = total
		}
	}
	for _, trips := range s.DroneRoutes {
		var total float64
		for _, dr := range trips {
			total += dr.WorkingTime(s.ctx)
			s.capacityViolation += dr.CapacityViolation(s.ctx)
			s.droneEnergyViolation += dr.EnergyViolation(s.ctx)
		}
		if total > makespan {
			makespan = total
		}
	}
	s.workingTime = makespan
}

// WorkingTime returns the makespan: the maximum per-vehicle total working
// time across the whole solution.
func (s *Solution) WorkingTime() float64 { return s.workingTime }

// CapacityViolation returns the sum of every route's capacity violation.
func (s *Solution) CapacityViolation() float64 { return s.capacityViolation }

// DroneEnergyViolation returns the sum of every drone route's energy
// violation.
func (s *Solution) DroneEnergyViolation() float64 { return s.droneEnergyViolation }

// Cost returns the scalar objective the tabu search minimizes. The base
// penalty model returns only the makespan.
func (s *Solution) Cost() float64 { return s.workingTime }

// PenalizedCost returns a penalty-weighted variant of Cost: makespan plus
// alpha times total capacity violation plus beta times total drone energy
// violation. The base Cost (alpha=beta=0) is what the driver uses by
// default; PenalizedCost is an extension point for callers that want to
// admit temporarily-infeasible candidates under a soft penalty.
func (s *Solution) PenalizedCost(alpha, beta float64) float64 {
	return s.workingTime + alpha*s.capacityViolation + beta*s.droneEnergyViolation
}

// IdleVehicles returns how many trucks and drones have zero trips. Purely a
// reporting accessor; it does not affect Cost.
func (s *Solution) IdleVehicles() (idleTrucks, idleDrones int) {
	for _, trips := range s.TruckRoutes {
		if len(trips) == 0 {
			idleTrucks++
		}
	}
	for _, trips := range s.DroneRoutes {
		if len(trips) == 0 {
			idleDrones++
		}
	}
	return idleTrucks, idleDrones
}

// Context returns the problem.Context this Solution was built against.
func (s *Solution) Context() *problem.Context { return s.ctx }

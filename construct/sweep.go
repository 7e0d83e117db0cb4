package construct

import (
	"math"
	"sort"

	"github.com/khoint5304/soict-2024/problem"
	"github.com/khoint5304/soict-2024/route"
	"github.com/khoint5304/soict-2024/solution"
)

// initial12 is a sweep construction: customers are ordered (by polar angle
// around the depot when sorted, or left in input order otherwise), then
// partitioned into a drone-eligible pool (dronable customers, when
// ctx.DronesCount > 0) and a truck pool (everyone else), each packed into
// capacity-bounded trips in that order and distributed round-robin across
// the fleet.
func initial12(ctx *problem.Context, sorted bool) (*solution.Solution, error) {
	order := make([]int, 0, ctx.N()-1)
	for c := 1; c < ctx.N(); c++ {
		order = append(order, c)
	}
	if sorted {
		sort.Slice(order, func(i, j int) bool {
			ci, cj := ctx.Customers[order[i]], ctx.Customers[order[j]]
			return math.Atan2(ci.Y, ci.X) < math.Atan2(cj.Y, cj.X)
		})
	}

	var droneCustomers, truckCustomers []int
	for _, c := range order {
		if ctx.DronesCount > 0 && ctx.Dronable(c) {
			droneCustomers = append(droneCustomers, c)
		} else {
			truckCustomers = append(truckCustomers, c)
		}
	}

	truckTrips := splitByCapacity(ctx, truckCustomers, ctx.Truck.Capacity)
	droneTrips := splitByCapacity(ctx, droneCustomers, ctx.EnergyModel.Capacity())

	return assemble(ctx, truckTrips, droneTrips)
}

// assemble distributes per-type trip lists across the fleet and builds the
// resulting Solution via solution.New (which re-validates every invariant).
func assemble(ctx *problem.Context, truckTrips, droneTrips [][]int) (*solution.Solution, error) {
	truckByVehicle := distributeTrips(truckTrips, ctx.TrucksCount)
	droneByVehicle := distributeTrips(droneTrips, ctx.DronesCount)

	truckRoutes := make([][]route.TruckRoute, ctx.TrucksCount)
	for t, trips := range truckByVehicle {
		for _, trip := range trips {
			truckRoutes[t] = append(truckRoutes[t], route.NewTruckRoute(problem.DepotIndex, trip))
		}
	}
	droneRoutes := make([][]route.DroneRoute, ctx.DronesCount)
	for d, trips := range droneByVehicle {
		for _, trip := range trips {
			droneRoutes[d] = append(droneRoutes[d], route.NewDroneRoute(problem.DepotIndex, trip))
		}
	}

	return solution.New(ctx, truckRoutes, droneRoutes)
}

package construct

import (
	"github.com/khoint5304/soict-2024/problem"
	"github.com/khoint5304/soict-2024/solution"
)

// initial3 orders customers by greedy nearest-neighbor chaining from the
// depot (ignoring dronability while building the order, exactly like
// initial12 ignores it while sweeping), then partitions, packs and
// distributes exactly as initial12 does. It differs from initial12 only in
// how the visiting order is produced: geographic chaining instead of an
// angular sweep, giving the "best of three" selection in Best a genuinely
// different seed to compare against.
//
// Complexity: O(n^2) for the nearest-neighbor chaining.
func initial3(ctx *problem.Context) (*solution.Solution, error) {
	n := ctx.N()
	visited := make([]bool, n)
	visited[problem.DepotIndex] = true

	order := make([]int, 0, n-1)
	current := problem.DepotIndex
	for len(order) < n-1 {
		best := -1
		var bestDist float64
		for c := 1; c < n; c++ {
			if visited[c] {
				continue
			}
			d := ctx.Distance(current, c)
			if best == -1 || d < bestDist {
				best, bestDist = c, d
			}
		}
		visited[best] = true
		order = append(order, best)
		current = best
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

package construct

import "github.com/khoint5304/soict-2024/problem"

// splitByCapacity greedily packs customers (already in a caller-chosen
// visiting order) into trips, starting a new trip whenever adding the next
// customer would exceed capacity. A single customer whose demand alone
// exceeds capacity still gets its own trip (capacity violation is reported,
// not avoided, by the route evaluators).
//
// Complexity: O(len(customers)).
func splitByCapacity(ctx *problem.Context, customers []int, capacity float64) [][]int {
	var trips [][]int
	var current []int
	var load float64

	for _, c := range customers {
		d := ctx.Demand(c)
		if len(current) > 0 && load+d > capacity {
			trips = append(trips, current)
			current = nil
			load = 0
		}
		current = append(current, c)
		load += d
	}
	if len(current) > 0 {
		trips = append(trips, current)
	}
	return trips
}

// distributeTrips spreads trips round-robin across vehicleCount vehicles,
// returning a slice of exactly vehicleCount trip lists (possibly empty).
// vehicleCount==0 with a non-empty trips is a caller error (guard: only
// call with customers that were routed to this vehicle type in the first
// place).
func distributeTrips(trips [][]int, vehicleCount int) [][][]int {
	out := make([][][]int, vehicleCount)
	if vehicleCount == 0 {
		return out
	}
	for i, trip := range trips {
		v := i % vehicleCount
		out[v] = append(out[v], trip)
	}
	return out
}

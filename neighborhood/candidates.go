package neighborhood

import (
	"github.com/khoint5304/soict-2024/problem"
	"github.com/khoint5304/soict-2024/route"
	"github.com/khoint5304/soict-2024/solution"
)

// vehicleKind distinguishes which fleet a routeRef points into.
type vehicleKind int

const (
	kindTruck vehicleKind = iota
	kindDrone
)

// routeRef addresses a single trip inside a Solution's nested route lists.
type routeRef struct {
	kind    vehicleKind
	vehicle int
	trip    int
}

// flattenRoutes lists every trip in sol, truck trips first, in a stable
// order, so operators can enumerate unordered pairs by flattened index.
func flattenRoutes(sol *solution.Solution) []routeRef {
	var refs []routeRef
	for v, trips := range sol.TruckRoutes {
		for t := range trips {
			refs = append(refs, routeRef{kind: kindTruck, vehicle: v, trip: t})
		}
	}
	for v, trips := range sol.DroneRoutes {
		for t := range trips {
			refs = append(refs, routeRef{kind: kindDrone, vehicle: v, trip: t})
		}
	}
	return refs
}

// customers returns a copy of the interior customer sequence at ref.
func customers(sol *solution.Solution, ref routeRef) []int {
	var seq []int
	if ref.kind == kindTruck {
		seq = sol.TruckRoutes[ref.vehicle][ref.trip].Customers()
	} else {
		seq = sol.DroneRoutes[ref.vehicle][ref.trip].Customers()
	}
	cp := make([]int, len(seq))
	copy(cp, seq)
	return cp
}

// rebuild clones sol's route lists, replaces the interior sequence at every
// ref named in edits with the supplied customer list, and re-validates the
// result through solution.New. A non-nil error means the edit violates an
// invariant (most commonly an undronable customer landing on a drone route)
// and the candidate must be discarded, not treated as a fatal error.
func rebuild(sol *solution.Solution, edits map[routeRef][]int) (*solution.Solution, error) {
	truckRoutes := make([][]route.TruckRoute, len(sol.TruckRoutes))
	for v, trips := range sol.TruckRoutes {
		truckRoutes[v] = append([]route.TruckRoute(nil), trips...)
	}
	droneRoutes := make([][]route.DroneRoute, len(sol.DroneRoutes))
	for v, trips := range sol.DroneRoutes {
		droneRoutes[v] = append([]route.DroneRoute(nil), trips...)
	}

	for ref, cust := range edits {
		if ref.kind == kindTruck {
			truckRoutes[ref.vehicle][ref.trip] = route.NewTruckRoute(problem.DepotIndex, cust)
		} else {
			droneRoutes[ref.vehicle][ref.trip] = route.NewDroneRoute(problem.DepotIndex, cust)
		}
	}

	return solution.New(sol.Context(), truckRoutes, droneRoutes)
}

// spliceReplace returns seq with the length-sized window starting at pos
// replaced by replacement, preserving everything outside the window.
func spliceReplace(seq []int, pos, length int, replacement []int) []int {
	out := make([]int, 0, len(seq)-length+len(replacement))
	out = append(out, seq[:pos]...)
	out = append(out, replacement...)
	out = append(out, seq[pos+length:]...)
	return out
}

// swapWithinSingleRoute exchanges the contents of two disjoint windows of a
// single customer sequence: the window at posLeft (length lenLeft) trades
// places with the window at posRight (length lenRight). Callers must ensure
// posLeft < posRight and posLeft+lenLeft <= posRight (the windows do not
// overlap) - which window is nominally "A" or "B" does not matter, the
// result is symmetric.
func swapWithinSingleRoute(seq []int, posLeft, lenLeft, posRight, lenRight int) []int {
	left := append([]int(nil), seq[posLeft:posLeft+lenLeft]...)
	right := append([]int(nil), seq[posRight:posRight+lenRight]...)

	out := make([]int, 0, len(seq))
	out = append(out, seq[:posLeft]...)
	out = append(out, right...)
	out = append(out, seq[posLeft+lenLeft:posRight]...)
	out = append(out, left...)
	out = append(out, seq[posRight+lenRight:]...)
	return out
}

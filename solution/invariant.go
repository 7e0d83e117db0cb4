package solution

import (
	"fmt"

	"github.com/khoint5304/soict-2024/problem"
	"github.com/khoint5304/soict-2024/route"
)

// CheckInvariants verifies the universal solution invariants - full
// coverage, no duplicates, depot endpoints, dronability, fleet sizes -
// against a candidate route assignment, without building a Solution. New
// calls this
// on every construction; neighborhood operators may call it directly to
// validate a candidate before paying for a full cost evaluation.
//
// Complexity: O(total customers visited across all routes).
func CheckInvariants(ctx *problem.Context, truckRoutes [][]route.TruckRoute, droneRoutes [][]route.DroneRoute) error {
	if len(truckRoutes) != ctx.TrucksCount || len(droneRoutes) != ctx.DronesCount {
		return fmt.Errorf("%w: trucks=%d/%d drones=%d/%d", ErrFleetSize,
			len(truckRoutes), ctx.TrucksCount, len(droneRoutes), ctx.DronesCount)
	}

	seen := make([]int, ctx.N())

	checkEndpoints := func(seq []int) error {
		if len(seq) < 2 || seq[0] != problem.DepotIndex || seq[len(seq)-1] != problem.DepotIndex {
			return ErrBadEndpoints
		}
		return nil
	}

	visit := func(c int) error {
		if c <= problem.DepotIndex || c >= ctx.N() {
			return fmt.Errorf("%w: customer index %d out of range", ErrCoverage, c)
		}
		seen[c]++
		if seen[c] > 1 {
			return fmt.Errorf("%w: customer %d", ErrDuplicateCustomer, c)
		}
		return nil
	}

	for _, trips := range truckRoutes {
		for _, tr := range trips {
			if err := checkEndpoints(tr.Sequence); err != nil {
				return err
			}
			for _, c := range tr.Customers() {
				if err := visit(c); err != nil {
					return err
				}
			}
		}
	}
	for _, trips := range droneRoutes {
		for _, dr := range trips {
			if err := checkEndpoints(dr.Sequence); err != nil {
				return err
			}
			for _, c := range dr.Customers() {
				if !ctx.Dronable(c) {
					return fmt.Errorf("%w: customer %d", ErrUndronableOnDrone, c)
				}
				if err := visit(c); err != nil {
					return err
				}
			}
		}
	}

	for c := 1; c < ctx.N(); c++ {
		if seen[c] != 1 {
			return fmt.Errorf("%w: customer %d visited %d times", ErrCoverage, c, seen[c])
		}
	}
	return nil
}

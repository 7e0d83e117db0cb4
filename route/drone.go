package route

import (
	"github.com/khoint5304/soict-2024/energy"
	"github.com/khoint5304/soict-2024/problem"
)

// legs walks r's sequence leg by leg (depot->c1, c1->c2, ..., ck->depot),
// tracking the payload remaining to be delivered on each outbound leg: it
// starts at the sum of every customer's demand in the route and drops by
// that customer's demand immediately after it is visited.
// fn is called once per leg with (from, to, legDistance, payloadDuringLeg).
func (r DroneRoute) legs(ctx *problem.Context, fn func(from, to int, dist, payload float64)) {
	seq := r.Sequence
	if len(seq) < 2 {
		return
	}
	var remaining float64
	for _, c := range r.Customers() {
		remaining += ctx.Demand(c)
	}
	for i := 0; i+1 < len(seq); i++ {
		from, to := seq[i], seq[i+1]
		dist := ctx.Distance(from, to)
		fn(from, to, dist, remaining)
		if to != problem.DepotIndex {
			remaining -= ctx.Demand(to)
		}
	}
}

// WorkingTime returns the total drone working time for r: for every leg,
// takeoff + cruise + landing durations at that leg's payload, plus drone
// service time at every interior customer.
func (r DroneRoute) WorkingTime(ctx *problem.Context) float64 {
	model := ctx.EnergyModel
	altitude := ctx.Drone.Altitude

	var total float64
	r.legs(ctx, func(_, _ int, dist, payload float64) {
		total += model.PhaseTime(energy.PhaseTakeoff, altitude, payload)
		total += model.PhaseTime(energy.PhaseCruise, dist, payload)
		total += model.PhaseTime(energy.PhaseLanding, altitude, payload)
	})
	for _, c := range r.Customers() {
		total += ctx.Customers[c].DroneServiceTime
	}
	return total
}

// CapacityViolation returns max(0, total demand delivered - drone capacity).
func (r DroneRoute) CapacityViolation(ctx *problem.Context) float64 {
	var demand float64
	for _, c := range r.Customers() {
		demand += ctx.Demand(c)
	}
	if v := demand - ctx.EnergyModel.Capacity(); v > 0 {
		return v
	}
	return 0
}

// EnergyViolation returns the Linear/Nonlinear energy excess over battery
// capacity, or - for Endurance - the sum of the route's time and distance
// excesses over FixedTime/FixedDistance.
func (r DroneRoute) EnergyViolation(ctx *problem.Context) float64 {
	if ctx.Drone.Class == problem.DroneEndurance {
		workingTime := r.WorkingTime(ctx)
		var totalDistance float64
		r.legs(ctx, func(_, _ int, dist, _ float64) { totalDistance += dist })

		var violation float64
		if v := workingTime - ctx.Drone.FixedTime; v > 0 {
			violation += v
		}
		if v := totalDistance - ctx.Drone.FixedDistance; v > 0 {
			violation += v
		}
		return violation
	}

	model := ctx.EnergyModel
	altitude := ctx.Drone.Altitude
	var totalEnergy float64
	r.legs(ctx, func(_, _ int, dist, payload float64) {
		totalEnergy += model.PhaseEnergy(energy.PhaseTakeoff, altitude, payload)
		totalEnergy += model.PhaseEnergy(energy.PhaseCruise, dist, payload)
		totalEnergy += model.PhaseEnergy(energy.PhaseLanding, altitude, payload)
	})
	if v := totalEnergy - model.BatteryCapacity(); v > 0 {
		return v
	}
	return 0
}

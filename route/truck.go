package route

import "github.com/khoint5304/soict-2024/problem"

// WorkingTime returns the total truck working time for r: travel time over
// every leg plus truck service time at every interior customer. TravelTime
// applies ctx.Truck's velocity model.
//
// Complexity: O(len(r.Sequence)).
func (r TruckRoute) WorkingTime(ctx *problem.Context) float64 {
	if len(r.Sequence) < 2 {
		return 0
	}
	var total float64
	for i := 0; i+1 < len(r.Sequence); i++ {
		d := ctx.Distance(r.Sequence[i], r.Sequence[i+1])
		total += ctx.Truck.TravelTime(d)
	}
	for _, c := range r.Customers() {
		total += ctx.Customers[c].TruckServiceTime
	}
	return total
}

// CapacityViolation returns max(0, total demand delivered - truck capacity).
func (r TruckRoute) CapacityViolation(ctx *problem.Context) float64 {
	var demand float64
	for _, c := range r.Customers() {
		demand += ctx.Demand(c)
	}
	if v := demand - ctx.Truck.Capacity; v > 0 {
		return v
	}
	return 0
}

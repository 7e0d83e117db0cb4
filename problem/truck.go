package problem

// TruckConfig describes the single homogeneous truck model used by every
// truck in the fleet: its top speed, its capacity, and the coefficients of
// a velocity model applied on top of MaxVelocity.
//
// An empty Coefficients vector means the truck cruises at a flat
// MaxVelocity; a non-empty vector's non-zero first entry scales that
// cruising speed (a zero first entry leaves it at MaxVelocity).
// Only Coefficients[0] is consulted; further entries are carried through
// from the input format for a richer polynomial-in-velocity model that
// nothing here consumes yet.
type TruckConfig struct {
	MaxVelocity  float64
	Capacity     float64
	Coefficients []float64
}

// TravelTime returns the time needed to cover distance d.
func (t TruckConfig) TravelTime(d float64) float64 {
	v := t.MaxVelocity
	if len(t.Coefficients) > 0 && t.Coefficients[0] != 0 {
		v *= t.Coefficients[0]
	}
	if v <= 0 {
		return 0
	}
	return d / v
}

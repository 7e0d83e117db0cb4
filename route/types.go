package route

import "errors"

// ErrEmptySequence indicates a route sequence shorter than the minimal
// closed depot-to-depot form [0, 0].
var ErrEmptySequence = errors.New("route: sequence must start and end at the depot")

// TruckRoute is a single truck trip: a closed sequence starting and ending
// at the depot. Sequence[0] == Sequence[len(Sequence)-1] == depot.
type TruckRoute struct {
	Sequence []int
}

// NewTruckRoute wraps the interior customer sequence (excluding the depot)
// into a closed TruckRoute. An empty customers slice yields the trivial
// empty trip [0, 0].
func NewTruckRoute(depot int, customers []int) TruckRoute {
	seq := make([]int, 0, len(customers)+2)
	seq = append(seq, depot)
	seq = append(seq, customers...)
	seq = append(seq, depot)
	return TruckRoute{Sequence: seq}
}

// Customers returns the interior customer indices, excluding both depot
// endpoints.
func (r TruckRoute) Customers() []int {
	if len(r.Sequence) <= 2 {
		return nil
	}
	return r.Sequence[1 : len(r.Sequence)-1]
}

// Empty reports whether the trip visits no customers at all.
func (r TruckRoute) Empty() bool { return len(r.Customers()) == 0 }

// DroneRoute is a single drone sortie: a closed sequence starting and
// ending at the depot, containing only dronable customers plus depots.
type DroneRoute struct {
	Sequence []int
}

// NewDroneRoute wraps the interior customer sequence into a closed
// DroneRoute, mirroring NewTruckRoute.
func NewDroneRoute(depot int, customers []int) DroneRoute {
	seq := make([]int, 0, len(customers)+2)
	seq = append(seq, depot)
	seq = append(seq, customers...)
	seq = append(seq, depot)
	return DroneRoute{Sequence: seq}
}

// Customers returns the interior customer indices, excluding both depot
// endpoints.
func (r DroneRoute) Customers() []int {
	if len(r.Sequence) <= 2 {
		return nil
	}
	return r.Sequence[1 : len(r.Sequence)-1]
}

// Empty reports whether the sortie visits no customers at all.
func (r DroneRoute) Empty() bool { return len(r.Customers()) == 0 }

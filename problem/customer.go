package problem

import "math"

// DepotIndex is the fixed index of the depot within a Context's Customers
// slice. The depot has coordinates (0,0), zero demand, is dronable, and has
// zero service times, per spec.
const DepotIndex = 0

// Customer is an immutable planar delivery point. Index DepotIndex is the
// depot and must satisfy Customer{X:0,Y:0,Demand:0,Dronable:true}.
type Customer struct {
	X, Y             float64
	Demand           float64
	Dronable         bool
	TruckServiceTime float64
	DroneServiceTime float64
}

// IsDepot reports whether c is positioned and shaped like the depot. It does
// not check the index; callers that need the canonical depot should compare
// against DepotIndex directly.
func (c Customer) IsDepot() bool {
	return c.X == 0 && c.Y == 0 && c.Demand == 0
}

// DistanceMatrix is a symmetric, non-negative, square matrix of Euclidean
// distances between customers (including the depot). D[i][i] == 0 and
// D[i][j] == D[j][i] always hold for a matrix built by NewDistanceMatrix.
type DistanceMatrix [][]float64

// NewDistanceMatrix computes the full Euclidean distance matrix for customers.
// Complexity: O(n^2) time, O(n^2) space.
func NewDistanceMatrix(customers []Customer) DistanceMatrix {
	n := len(customers)
	d := make(DistanceMatrix, n)
	for i := range d {
		d[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := customers[i].X - customers[j].X
			dy := customers[i].Y - customers[j].Y
			v := math.Sqrt(dx*dx + dy*dy)
			d[i][j] = v
			d[j][i] = v
		}
	}
	return d
}

// At returns the precomputed distance between i and j. Out-of-range indices
// are a programmer error and are not guarded against here; callers stay
// within [0, len(Customers)).
func (d DistanceMatrix) At(i, j int) float64 {
	return d[i][j]
}

package problem_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/khoint5304/soict-2024/problem"
)

func depotAnd(customers ...problem.Customer) []problem.Customer {
	depot := problem.Customer{Dronable: true}
	return append([]problem.Customer{depot}, customers...)
}

func TestNew_SingleCustomerDistanceMatrix(t *testing.T) {
	// Single customer at (3,4): this only checks the Context builds a
	// correct distance matrix; route_test covers the round-trip working
	// time on the same geometry.
	customers := depotAnd(problem.Customer{X: 3, Y: 4, Dronable: true})
	truck := problem.TruckConfig{MaxVelocity: 1, Capacity: 10}

	ctx, err := problem.New(customers, 1, 0, truck, problem.DroneConfig{Class: problem.DroneEndurance})
	require.NoError(t, err)
	require.Equal(t, 2, ctx.N())
	require.Equal(t, 5.0, ctx.Distance(0, 1))
}

func TestDistanceMatrix_SymmetricWithZeroDiagonal(t *testing.T) {
	customers := depotAnd(
		problem.Customer{X: 3, Y: 4, Dronable: true},
		problem.Customer{X: -2, Y: 7},
		problem.Customer{X: 5, Y: -1, Dronable: true},
	)
	d := problem.NewDistanceMatrix(customers)
	for i := range customers {
		require.Zero(t, d.At(i, i))
		for j := range customers {
			require.Equal(t, d.At(i, j), d.At(j, i))
			require.GreaterOrEqual(t, d.At(i, j), 0.0)
		}
	}
}

func TestNew_RejectsTooFewCustomers(t *testing.T) {
	_, err := problem.New(nil, 1, 0, problem.TruckConfig{}, problem.DroneConfig{})
	require.ErrorIs(t, err, problem.ErrNoCustomers)
}

func TestNew_RejectsNegativeFleetSize(t *testing.T) {
	customers := depotAnd(problem.Customer{X: 1, Y: 0})
	_, err := problem.New(customers, -1, 0, problem.TruckConfig{}, problem.DroneConfig{})
	require.ErrorIs(t, err, problem.ErrInvalidFleetSize)
}

func TestNew_RejectsNegativeDemand(t *testing.T) {
	customers := depotAnd(problem.Customer{X: 1, Demand: -5})
	_, err := problem.New(customers, 1, 0, problem.TruckConfig{Capacity: 10, MaxVelocity: 1}, problem.DroneConfig{})
	require.ErrorIs(t, err, problem.ErrNegativeValue)
}

func TestNew_UnknownDroneClassPropagates(t *testing.T) {
	customers := depotAnd(problem.Customer{X: 1, Dronable: true})
	truck := problem.TruckConfig{MaxVelocity: 1, Capacity: 10}
	_, err := problem.New(customers, 1, 1, truck, problem.DroneConfig{Class: problem.DroneClass(99)})
	var target error = problem.ErrUnknownDroneClass
	require.True(t, errors.Is(err, target))
}

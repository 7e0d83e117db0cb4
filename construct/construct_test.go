package construct_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/khoint5304/soict-2024/construct"
	"github.com/khoint5304/soict-2024/problem"
)

func sampleCtx(t *testing.T) *problem.Context {
	t.Helper()
	customers := []problem.Customer{
		{Dronable: true},
		{X: 1, Y: 0, Demand: 1, Dronable: true},
		{X: 0, Y: 1, Demand: 1, Dronable: false},
		{X: -1, Y: 0, Demand: 1, Dronable: true},
		{X: 0, Y: -1, Demand: 1, Dronable: false},
	}
	truck := problem.TruckConfig{MaxVelocity: 1, Capacity: 3}
	drone := problem.DroneConfig{Class: problem.DroneEndurance, FixedTime: 1e9, FixedDistance: 1e9, DroneSpeed: 1, Capacity: 3}
	ctx, err := problem.New(customers, 2, 2, truck, drone)
	require.NoError(t, err)
	return ctx
}

func TestBest_ReturnsValidSolution(t *testing.T) {
	ctx := sampleCtx(t)
	sol, err := construct.Best(ctx)
	require.NoError(t, err)
	require.NotNil(t, sol)
	require.GreaterOrEqual(t, sol.Cost(), 0.0)
}

func TestBest_NoDrones_StillAssignsEveryCustomer(t *testing.T) {
	customers := []problem.Customer{
		{Dronable: true},
		{X: 1, Demand: 1, Dronable: false},
	}
	truck := problem.TruckConfig{MaxVelocity: 1, Capacity: 5}
	ctx, err := problem.New(customers, 1, 0, truck, problem.DroneConfig{Class: problem.DroneEndurance})
	require.NoError(t, err)

	sol, err := construct.Best(ctx)
	require.NoError(t, err)
	require.Len(t, sol.TruckRoutes, 1)
	require.Empty(t, sol.DroneRoutes)
}

package route_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/khoint5304/soict-2024/problem"
	"github.com/khoint5304/soict-2024/route"
)

func ctxWithCustomer(t *testing.T, c problem.Customer, truck problem.TruckConfig, drone problem.DroneConfig) *problem.Context {
	t.Helper()
	depot := problem.Customer{Dronable: true}
	ctx, err := problem.New([]problem.Customer{depot, c}, 1, 1, truck, drone)
	require.NoError(t, err)
	return ctx
}

func TestTruckRoute_WorkingTime_SingleCustomer(t *testing.T) {
	// Customer at (3,4), truck velocity 1 => round-trip distance 10, zero
	// service time => working_time == 10.
	ctx := ctxWithCustomer(t,
		problem.Customer{X: 3, Y: 4, Dronable: true},
		problem.TruckConfig{MaxVelocity: 1, Capacity: 100},
		problem.DroneConfig{Class: problem.DroneEndurance, FixedTime: 1, FixedDistance: 1},
	)
	r := route.NewTruckRoute(problem.DepotIndex, []int{1})
	require.Equal(t, 10.0, r.WorkingTime(ctx))
}

func TestTruckRoute_CapacityViolation(t *testing.T) {
	ctx := ctxWithCustomer(t,
		problem.Customer{X: 1, Demand: 20, Dronable: true},
		problem.TruckConfig{MaxVelocity: 1, Capacity: 10},
		problem.DroneConfig{Class: problem.DroneEndurance},
	)
	r := route.NewTruckRoute(problem.DepotIndex, []int{1})
	require.Equal(t, 10.0, r.CapacityViolation(ctx))
}

func TestDroneRoute_EnergyViolation_Endurance(t *testing.T) {
	// Endurance: customer at distance 100 from depot, fixed_distance 50 =>
	// round-trip distance 200 => violation 150.
	ctx := ctxWithCustomer(t,
		problem.Customer{X: 100, Dronable: true},
		problem.TruckConfig{MaxVelocity: 1, Capacity: 100},
		problem.DroneConfig{Class: problem.DroneEndurance, FixedTime: 1e9, FixedDistance: 50, DroneSpeed: 1},
	)
	r := route.NewDroneRoute(problem.DepotIndex, []int{1})
	require.InDelta(t, 150.0, r.EnergyViolation(ctx), 1e-9)
}

func TestDroneRoute_EnergyViolation_Linear(t *testing.T) {
	ctx := ctxWithCustomer(t,
		problem.Customer{X: 10, Demand: 2, Dronable: true},
		problem.TruckConfig{MaxVelocity: 1, Capacity: 100},
		problem.DroneConfig{
			Class: problem.DroneLinear, CruiseSpeed: 1, TakeoffSpeed: 1, LandingSpeed: 1,
			Beta: 1, Gamma: 0, Battery: 1,
		},
	)
	r := route.NewDroneRoute(problem.DepotIndex, []int{1})
	require.Greater(t, r.EnergyViolation(ctx), 0.0)
}

func TestDroneRoute_Empty(t *testing.T) {
	r := route.NewDroneRoute(problem.DepotIndex, nil)
	require.True(t, r.Empty())
	require.Empty(t, r.Customers())
}

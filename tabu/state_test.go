package tabu

import (
	"testing"

	"github.com/khoint5304/soict-2024/construct"
	"github.com/khoint5304/soict-2024/problem"
)

func twoCustomerCtx(t *testing.T) *problem.Context {
	t.Helper()
	customers := []problem.Customer{
		{Dronable: true},
		{X: 3, Y: 4, Dronable: true},
		{X: -3, Y: -4, Dronable: true},
	}
	truck := problem.TruckConfig{MaxVelocity: 1, Capacity: 10}
	drone := problem.DroneConfig{Class: problem.DroneEndurance, FixedTime: 1e9, FixedDistance: 1e9, DroneSpeed: 1}
	ctx, err := problem.New(customers, 1, 0, truck, drone)
	if err != nil {
		t.Fatalf("problem.New: %v", err)
	}
	return ctx
}

func TestState_ConsiderBestOnlyAcceptsImprovements(t *testing.T) {
	ctx := twoCustomerCtx(t)
	start, err := construct.Best(ctx)
	if err != nil {
		t.Fatalf("construct.Best: %v", err)
	}

	s := &State{Current: start, Best: start}
	s.considerBest(start)
	if s.Best != start {
		t.Fatalf("considerBest replaced Best with a non-improving candidate")
	}
}

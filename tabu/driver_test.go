package tabu_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/khoint5304/soict-2024/construct"
	"github.com/khoint5304/soict-2024/internal/xrand"
	"github.com/khoint5304/soict-2024/problem"
	"github.com/khoint5304/soict-2024/tabu"
)

func ringCtx(t *testing.T) *problem.Context {
	t.Helper()
	customers := []problem.Customer{
		{Dronable: true},
		{X: 10, Y: 0, Demand: 1, Dronable: true},
		{X: 0, Y: 10, Demand: 1, Dronable: true},
		{X: -10, Y: 0, Demand: 1, Dronable: true},
		{X: 0, Y: -10, Demand: 1, Dronable: true},
		{X: 7, Y: 7, Demand: 1, Dronable: true},
	}
	truck := problem.TruckConfig{MaxVelocity: 1, Capacity: 10}
	drone := problem.DroneConfig{Class: problem.DroneEndurance, FixedTime: 1e9, FixedDistance: 1e9, DroneSpeed: 1, Capacity: 10}
	ctx, err := problem.New(customers, 1, 0, truck, drone)
	require.NoError(t, err)
	return ctx
}

func TestRun_RejectsNonPositiveIterations(t *testing.T) {
	ctx := ringCtx(t)
	_, err := tabu.Run(ctx, 0, 10, xrand.New(1), nil)
	require.ErrorIs(t, err, tabu.ErrNoIterations)
}

func TestRun_BestNoWorseThanInitial(t *testing.T) {
	ctx := ringCtx(t)
	rng := xrand.New(42)

	report, err := tabu.Run(ctx, 100, 20, rng, tabu.NoopProgressSink{})
	require.NoError(t, err)
	require.Equal(t, 100, report.Iterations)
	require.NotEqual(t, report.RunID.String(), "")
	require.LessOrEqual(t, report.Best.Cost(), mustInitialCost(t, ctx))
}

// mustInitialCost recomputes construct.Best's cost independently, so the
// comparison in TestRun_BestNoWorseThanInitial does not just
// compare Run's own output against itself.
func mustInitialCost(t *testing.T, ctx *problem.Context) float64 {
	t.Helper()
	start, err := construct.Best(ctx)
	require.NoError(t, err)
	return start.Cost()
}

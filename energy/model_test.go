package energy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/khoint5304/soict-2024/energy"
)

func TestNewModel_UnknownClass(t *testing.T) {
	_, err := energy.NewModel(energy.Config{Class: energy.DroneClass(7)})
	require.ErrorIs(t, err, energy.ErrUnknownDroneClass)
}

func TestLinearModel_PhaseEnergy(t *testing.T) {
	m, err := energy.NewModel(energy.Config{
		Class:       energy.DroneLinear,
		CruiseSpeed: 2,
		Beta:        1,
		Gamma:       0.5,
	})
	require.NoError(t, err)

	// distance 10 at cruise speed 2 => duration 5; power = 1*3+0.5 = 3.5;
	// energy = 17.5.
	got := m.PhaseEnergy(energy.PhaseCruise, 10, 3)
	require.InDelta(t, 17.5, got, 1e-9)
	require.True(t, m.Feasible(1e9, 1e9))
}

func TestNonlinearModel_HoverIsZero(t *testing.T) {
	m, err := energy.NewModel(energy.Config{Class: energy.DroneNonlinear, C1: 5, C2: 2})
	require.NoError(t, err)
	require.Zero(t, m.PhaseEnergy(energy.PhaseHover, 0, 0))
}

func TestEnduranceModel_Feasible(t *testing.T) {
	m, err := energy.NewModel(energy.Config{
		Class:         energy.DroneEndurance,
		FixedTime:     100,
		FixedDistance: 50,
	})
	require.NoError(t, err)

	require.True(t, m.Feasible(90, 40))
	require.False(t, m.Feasible(90, 200))
	require.Zero(t, m.PhaseEnergy(energy.PhaseCruise, 10, 1))
}

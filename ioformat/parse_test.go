package ioformat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/khoint5304/soict-2024/ioformat"
)

// linearStream describes two real customers; the parser synthesizes the
// depot at index 0, so the resulting Context has three entries.
func linearStream() string {
	return strings.Join([]string{
		"2 1 1",
		"3 -3",
		"4 -4",
		"1 1",
		"1 1",
		"1 1",
		"1 1",
		"50 10 0",
		"1 10",
		"0",
		"DroneLinearConfig",
		"5 low low",
		"1 1 1 10 100 0.5 0.1",
	}, "\n")
}

func TestParseStream_Linear(t *testing.T) {
	cfg, err := ioformat.ParseStream(strings.NewReader(linearStream()))
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Context.N())
	require.True(t, cfg.Context.Customers[0].IsDepot())
	require.Equal(t, 5.0, cfg.Context.Distance(0, 1))
	require.Equal(t, 1, cfg.Context.TrucksCount)
	require.Equal(t, 1, cfg.Context.DronesCount)
	require.Equal(t, 50, cfg.Iterations)
	require.Equal(t, 10, cfg.TabuSize)
	require.False(t, cfg.Verbose)
}

func TestParseStream_UnknownDroneClass(t *testing.T) {
	stream := strings.Replace(linearStream(), "DroneLinearConfig", "DroneMysteryConfig", 1)
	_, err := ioformat.ParseStream(strings.NewReader(stream))
	var cfgErr *ioformat.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.ErrorIs(t, err, ioformat.ErrUnknownDroneClass)
}

func TestParseStream_TruncatedStream(t *testing.T) {
	_, err := ioformat.ParseStream(strings.NewReader("3 1 1\n0 3"))
	var cfgErr *ioformat.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestOverrides_ApplyOnlySetsProvidedFields(t *testing.T) {
	cfg, err := ioformat.ParseStream(strings.NewReader(linearStream()))
	require.NoError(t, err)

	iterations := 999
	ioformat.Overrides{Iterations: &iterations}.Apply(cfg)
	require.Equal(t, 999, cfg.Iterations)
	require.Equal(t, 10, cfg.TabuSize)
}

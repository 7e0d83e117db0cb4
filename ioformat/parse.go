package ioformat

import (
	"io"

	"github.com/khoint5304/soict-2024/energy"
	"github.com/khoint5304/soict-2024/problem"
)

// StreamConfig bundles the problem.Context parsed from an input stream with
// the run-time search parameters the same stream interleaves (iterations,
// tabu_size, verbose), which problem.Context has no field for since they
// govern tabu.Run rather than the problem instance itself.
type StreamConfig struct {
	Context    *problem.Context
	Iterations int
	TabuSize   int
	Verbose    bool
}

// ParseStream reads the whitespace-delimited instance format, in its fixed
// field order, and builds a StreamConfig. The stream's
// customers_count covers only real customers; the depot (index 0, origin,
// zero demand, dronable) is synthesized here and prepended, so the resulting
// Context has customers_count+1 entries. Any malformed or truncated field
// surfaces as a *ConfigError naming the field.
//
// Complexity: O(N) for the customer arrays, O(1) for everything else.
func ParseStream(r io.Reader) (*StreamConfig, error) {
	t := newTokenScanner(r)

	n, err := t.int("customers_count")
	if err != nil {
		return nil, err
	}
	trucksCount, err := t.int("trucks_count")
	if err != nil {
		return nil, err
	}
	dronesCount, err := t.int("drones_count")
	if err != nil {
		return nil, err
	}

	xs, err := t.floats("x", n)
	if err != nil {
		return nil, err
	}
	ys, err := t.floats("y", n)
	if err != nil {
		return nil, err
	}
	demands, err := t.floats("demand", n)
	if err != nil {
		return nil, err
	}

	dronable := make([]bool, n)
	for i := range dronable {
		dronable[i], err = t.bool01("dronable")
		if err != nil {
			return nil, err
		}
	}

	truckServiceTimes, err := t.floats("truck_service_time", n)
	if err != nil {
		return nil, err
	}
	droneServiceTimes, err := t.floats("drone_service_time", n)
	if err != nil {
		return nil, err
	}

	iterations, err := t.int("iterations")
	if err != nil {
		return nil, err
	}
	tabuSize, err := t.int("tabu_size")
	if err != nil {
		return nil, err
	}
	verbose, err := t.bool01("verbose")
	if err != nil {
		return nil, err
	}

	truckMaxVelocity, err := t.float("truck_max_velocity")
	if err != nil {
		return nil, err
	}
	truckCapacity, err := t.float("truck_capacity")
	if err != nil {
		return nil, err
	}
	coefCount, err := t.int("truck_coefficients_count")
	if err != nil {
		return nil, err
	}
	coefficients, err := t.floats("truck_coefficients", coefCount)
	if err != nil {
		return nil, err
	}

	drone, err := parseDroneConfig(t)
	if err != nil {
		return nil, err
	}

	customers := make([]problem.Customer, 0, n+1)
	customers = append(customers, problem.Customer{Dronable: true})
	for i := 0; i < n; i++ {
		customers = append(customers, problem.Customer{
			X:                xs[i],
			Y:                ys[i],
			Demand:           demands[i],
			Dronable:         dronable[i],
			TruckServiceTime: truckServiceTimes[i],
			DroneServiceTime: droneServiceTimes[i],
		})
	}

	truck := problem.TruckConfig{
		MaxVelocity:  truckMaxVelocity,
		Capacity:     truckCapacity,
		Coefficients: coefficients,
	}

	ctx, err := problem.New(customers, trucksCount, dronesCount, truck, drone)
	if err != nil {
		return nil, &ConfigError{Field: "problem context", Err: err}
	}

	return &StreamConfig{
		Context:    ctx,
		Iterations: iterations,
		TabuSize:   tabuSize,
		Verbose:    verbose,
	}, nil
}

// parseDroneConfig reads the drone block off the stream: the class tag, the
// fields common to every variant, then the class-specific tail.
func parseDroneConfig(t *tokenScanner) (problem.DroneConfig, error) {
	classTok, err := t.token("drone_class")
	if err != nil {
		return problem.DroneConfig{}, err
	}

	var class problem.DroneClass
	switch classTok {
	case "DroneLinearConfig":
		class = problem.DroneLinear
	case "DroneNonlinearConfig":
		class = problem.DroneNonlinear
	case "DroneEnduranceConfig":
		class = problem.DroneEndurance
	default:
		return problem.DroneConfig{}, &ConfigError{Field: "drone_class", Err: ErrUnknownDroneClass}
	}

	capacity, err := t.float("drone_capacity")
	if err != nil {
		return problem.DroneConfig{}, err
	}
	speedTok, err := t.token("speed_type")
	if err != nil {
		return problem.DroneConfig{}, err
	}
	rangeTok, err := t.token("range_type")
	if err != nil {
		return problem.DroneConfig{}, err
	}

	cfg := problem.DroneConfig{
		Class:     class,
		Capacity:  capacity,
		SpeedType: parseSpeedType(speedTok),
		RangeType: parseRangeType(rangeTok),
	}

	switch class {
	case problem.DroneLinear:
		vals, err := t.floats("linear_tail", 7)
		if err != nil {
			return problem.DroneConfig{}, err
		}
		cfg.TakeoffSpeed, cfg.CruiseSpeed, cfg.LandingSpeed = vals[0], vals[1], vals[2]
		cfg.Altitude, cfg.Battery = vals[3], vals[4]
		cfg.Beta, cfg.Gamma = vals[5], vals[6]
	case problem.DroneNonlinear:
		vals, err := t.floats("nonlinear_tail", 11)
		if err != nil {
			return problem.DroneConfig{}, err
		}
		cfg.TakeoffSpeed, cfg.CruiseSpeed, cfg.LandingSpeed = vals[0], vals[1], vals[2]
		cfg.Altitude, cfg.Battery = vals[3], vals[4]
		cfg.K1, cfg.K2, cfg.C1, cfg.C2, cfg.C4, cfg.C5 = vals[5], vals[6], vals[7], vals[8], vals[9], vals[10]
	case problem.DroneEndurance:
		vals, err := t.floats("endurance_tail", 3)
		if err != nil {
			return problem.DroneConfig{}, err
		}
		cfg.FixedTime, cfg.FixedDistance, cfg.DroneSpeed = vals[0], vals[1], vals[2]
	}

	return cfg, nil
}

func parseSpeedType(tok string) energy.SpeedType {
	if tok == "high" {
		return problem.SpeedHigh
	}
	return problem.SpeedLow
}

func parseRangeType(tok string) energy.RangeType {
	if tok == "high" {
		return problem.RangeHigh
	}
	return problem.RangeLow
}

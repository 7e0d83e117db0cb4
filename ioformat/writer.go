package ioformat

import (
	"fmt"
	"io"

	"github.com/khoint5304/soict-2024/tabu"
)

// WriteReport prints a human-readable rendering of a tabu.Report: the run
// summary line by line, then every vehicle's trips.
func WriteReport(w io.Writer, report tabu.Report) error {
	best := report.Best
	idleTrucks, idleDrones := best.IdleVehicles()

	_, err := fmt.Fprintf(w,
		"run %s\niterations: %d\nelapsed: %s\nmakespan: %.4f\ncapacity_violation: %.4f\ndrone_energy_violation: %.4f\nidle_trucks: %d\nidle_drones: %d\n",
		report.RunID, report.Iterations, report.Elapsed,
		best.WorkingTime(), best.CapacityViolation(), best.DroneEnergyViolation(),
		idleTrucks, idleDrones,
	)
	if err != nil {
		return err
	}

	for v, trips := range best.TruckRoutes {
		for ti, tr := range trips {
			if _, err := fmt.Fprintf(w, "truck %d trip %d: %v\n", v, ti, tr.Sequence); err != nil {
				return err
			}
		}
	}
	for v, trips := range best.DroneRoutes {
		for ti, dr := range trips {
			if _, err := fmt.Fprintf(w, "drone %d trip %d: %v\n", v, ti, dr.Sequence); err != nil {
				return err
			}
		}
	}
	return nil
}

// Package route computes per-route working time, capacity violation, and
// (for drones) energy violation, given a problem.Context. A Route is an
// ordered sequence of customer indices beginning and ending at the depot
// (problem.DepotIndex); TruckRoute and DroneRoute are pure functions of that
// sequence plus the Context - re-evaluating either on its own sequence
// always yields the same aggregates.
package route

// Package energy implements the polymorphic drone energy model: given a
// payload mass and a phase-tagged flight segment (takeoff, cruise, landing,
// hover), it answers how long that phase takes and how much energy it
// consumes. Three variants exist - Linear, Nonlinear and Endurance - chosen
// by Config.Class and dispatched through the small Model capability
// surface rather than any deeper type hierarchy.
//
// The Endurance variant does not model energy at all: PhaseEnergy always
// returns 0 for it, and its constraint is expressed by Feasible against the
// route's total flight time and distance. route.DroneRoute.EnergyViolation
// does not call Feasible; it measures the excess over FixedTime and
// FixedDistance directly from the drone configuration.
package energy

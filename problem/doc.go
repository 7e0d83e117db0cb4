// Package problem defines the immutable, process-wide problem instance for
// the drone-truck combined delivery (D2D) tabu search: customers, the
// precomputed distance matrix, fleet sizes, and the truck/drone vehicle
// configurations.
//
// A Context is built exactly once (typically by ioformat.ParseStream) and is
// thereafter read-only; it is shared by value-free reference across the
// route evaluators, the Solution constructor, the neighborhood operators and
// the tabu-search driver. No package in this module mutates a Context after
// construction.
package problem

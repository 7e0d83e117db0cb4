// Package neighborhood implements the two candidate-generating operators of
// the search: MoveXY (relocate a segment of A customers with a segment
// of B customers between two routes, or within one) and TwoOpt (edge
// reversal within a single route). Both share the same move contract:
//
//	Move(current, aspiration) -> (next, ok)
//
// Each operator owns a single TabuList (no global tabu state); it enumerates
// every reachable candidate, discards any that violate a Solution invariant
// (most commonly: an undronable customer crossing into a drone route) or
// that are tabu without satisfying aspiration, and returns the cheapest
// survivor - ties broken by first-found scan order.
package neighborhood

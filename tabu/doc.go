// Package tabu drives the tabu search loop: starting from
// construct.Best, it repeatedly applies one of the neighborhood operators,
// tracks the best Solution seen, and reports progress through a ProgressSink.
//
// Design:
//   - One Driver owns exactly two operators: a MoveXY[2,1] and a TwoOpt, each
//     with its own TabuList. Which operator runs on a given iteration is
//     chosen uniformly at random from internal/xrand, so the RNG that seeds
//     the whole run also determines this.
//   - Aspiration is global: a candidate overrides tabu status whenever its
//     Cost is strictly better than the best Solution found so far.
//   - The loop is monotone on Best: Current may worsen between iterations
//     (that is the point of tabu search - escaping local optima -), Best
//     never does.
package tabu

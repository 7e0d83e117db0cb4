// Package construct implements the three deterministic initial-solution
// seedings - initial_12(sorted=true), initial_12(sorted=false) and
// initial_3 - plus Best, which builds all three and returns the cheapest by
// Cost(). Every constructor here only needs to produce a structurally valid
// Solution; the search quality of any one seeding is immaterial to the tabu
// loop, which treats Best's result as nothing more than a starting point.
package construct

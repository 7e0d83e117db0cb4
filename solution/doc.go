// Package solution defines the composite Solution type: per-truck and
// per-drone route lists, and the derived scalars - makespan (working time),
// total drone energy violation, total capacity violation, and the scalar
// cost() the tabu search optimizes. A Solution is immutable once built;
// neighborhood operators produce new Solutions rather than mutating
// existing ones.
package solution

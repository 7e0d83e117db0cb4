package neighborhood

import (
	"github.com/khoint5304/soict-2024/solution"
)

// MoveXY exchanges a contiguous segment of A customers with a contiguous
// segment of B customers, either between two different routes or between two
// disjoint positions of the same route. A and B are plain
// struct fields rather than generic type parameters: the driver configures
// MoveXY{A: 2, B: 1}, and nothing about the operator needs to be known at
// compile time.
type MoveXY struct {
	A, B int
	Tabu *TabuList
}

// NewMoveXY returns a MoveXY operator with its own TabuList of the given
// capacity.
func NewMoveXY(a, b, tabuCapacity int) *MoveXY {
	return &MoveXY{A: a, B: b, Tabu: NewTabuList(tabuCapacity)}
}

type candidate struct {
	sol *solution.Solution
	sig Signature
}

// Move scans every reachable A/B segment exchange, discards candidates that
// violate an invariant, and returns the cheapest candidate that is either
// non-tabu or satisfies aspiration - whichever a move's resulting Solution
// makes true. The accepted move's signature is recorded as tabu before
// returning. Returns ok=false if no feasible exchange exists, or if every
// feasible exchange is tabu and fails aspiration.
func (m *MoveXY) Move(current *solution.Solution, aspiration func(*solution.Solution) bool) (*solution.Solution, bool) {
	refs := flattenRoutes(current)
	var best *candidate

	consider := func(edits map[routeRef][]int, touched []int) {
		cand, err := rebuild(current, edits)
		if err != nil {
			return
		}
		sig := makeSignature(touched)
		if m.Tabu.Contains(sig) && !aspiration(cand) {
			return
		}
		if best == nil || cand.Cost() < best.sol.Cost() {
			best = &candidate{sol: cand, sig: sig}
		}
	}

	for i := 0; i < len(refs); i++ {
		for j := i; j < len(refs); j++ {
			ref1, ref2 := refs[i], refs[j]

			if i == j {
				cust := customers(current, ref1)
				for p1 := 0; p1+m.A <= len(cust); p1++ {
					for p2 := 0; p2+m.B <= len(cust); p2++ {
						var newCust []int
						switch {
						case p1+m.A <= p2:
							newCust = swapWithinSingleRoute(cust, p1, m.A, p2, m.B)
						case p2+m.B <= p1:
							newCust = swapWithinSingleRoute(cust, p2, m.B, p1, m.A)
						default:
							continue
						}
						segA := cust[p1 : p1+m.A]
						segB := cust[p2 : p2+m.B]
						touched := append(append([]int{}, segA...), segB...)
						consider(map[routeRef][]int{ref1: newCust}, touched)
					}
				}
				continue
			}

			cust1 := customers(current, ref1)
			cust2 := customers(current, ref2)
			for p1 := 0; p1+m.A <= len(cust1); p1++ {
				for p2 := 0; p2+m.B <= len(cust2); p2++ {
					segA := cust1[p1 : p1+m.A]
					segB := cust2[p2 : p2+m.B]
					newCust1 := spliceReplace(cust1, p1, m.A, segB)
					newCust2 := spliceReplace(cust2, p2, m.B, segA)
					touched := append(append([]int{}, segA...), segB...)
					consider(map[routeRef][]int{ref1: newCust1, ref2: newCust2}, touched)
				}
			}
		}
	}

	if best == nil {
		return nil, false
	}
	m.Tabu.Add(best.sig)
	return best.sol, true
}

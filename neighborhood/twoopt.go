package neighborhood

import "github.com/khoint5304/soict-2024/solution"

// TwoOpt reverses a contiguous interior segment of a single route, the
// classic edge-exchange move: removing two edges and reconnecting the tour
// with their reversed counterparts. It never changes which
// customers belong to which route, so it can never trigger the undronable-
// on-drone invariant - every candidate it builds is structurally valid.
type TwoOpt struct {
	Tabu *TabuList
}

// NewTwoOpt returns a TwoOpt operator with its own TabuList of the given
// capacity.
func NewTwoOpt(tabuCapacity int) *TwoOpt {
	return &TwoOpt{Tabu: NewTabuList(tabuCapacity)}
}

// Move scans every interior segment reversal across every route, discards
// nothing on invariant grounds (there is nothing to violate), and returns
// the cheapest candidate that is non-tabu or satisfies aspiration. Returns
// ok=false when every route is too short to admit a reversal, or when every
// reversal is tabu and fails aspiration.
func (o *TwoOpt) Move(current *solution.Solution, aspiration func(*solution.Solution) bool) (*solution.Solution, bool) {
	refs := flattenRoutes(current)
	var best *candidate

	for _, ref := range refs {
		cust := customers(current, ref)
		for i := 0; i < len(cust)-1; i++ {
			for j := i + 1; j < len(cust); j++ {
				reversed := make([]int, len(cust))
				copy(reversed, cust)
				for l, r := i, j; l < r; l, r = l+1, r-1 {
					reversed[l], reversed[r] = reversed[r], reversed[l]
				}

				cand, err := rebuild(current, map[routeRef][]int{ref: reversed})
				if err != nil {
					continue
				}
				sig := makeSignature([]int{cust[i], cust[j]})
				if o.Tabu.Contains(sig) && !aspiration(cand) {
					continue
				}
				if best == nil || cand.Cost() < best.sol.Cost() {
					best = &candidate{sol: cand, sig: sig}
				}
			}
		}
	}

	if best == nil {
		return nil, false
	}
	o.Tabu.Add(best.sig)
	return best.sol, true
}

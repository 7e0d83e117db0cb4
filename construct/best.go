package construct

import (
	"github.com/khoint5304/soict-2024/problem"
	"github.com/khoint5304/soict-2024/solution"
)

// Best builds initial_12(sorted=true), initial_12(sorted=false) and
// initial_3, and returns whichever has the lowest Cost(). This is the sole
// entry point tabu.Run needs from this package.
func Best(ctx *problem.Context) (*solution.Solution, error) {
	sorted, err := initial12(ctx, true)
	if err != nil {
		return nil, err
	}
	unsorted, err := initial12(ctx, false)
	if err != nil {
		return nil, err
	}
	nn, err := initial3(ctx)
	if err != nil {
		return nil, err
	}

	best := sorted
	for _, candidate := range []*solution.Solution{unsorted, nn} {
		if candidate.Cost() < best.Cost() {
			best = candidate
		}
	}
	return best, nil
}

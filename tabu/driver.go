package tabu

import (
	"math/rand"
	"time"

	"github.com/khoint5304/soict-2024/construct"
	"github.com/khoint5304/soict-2024/neighborhood"
	"github.com/khoint5304/soict-2024/problem"
	"github.com/khoint5304/soict-2024/solution"
)

// Default segment sizes for the MoveXY operator. Nothing else in this
// module depends on these specific values.
const (
	defaultMoveXYA = 2
	defaultMoveXYB = 1
)

// Driver holds the two neighborhood operators the search loop alternates
// between, each with its own TabuList, plus the RNG stream that decides
// which operator runs on a given iteration.
type Driver struct {
	moveXY *neighborhood.MoveXY
	twoOpt *neighborhood.TwoOpt
	rng    *rand.Rand
}

// NewDriver builds a Driver with tabuSize-capacity lists for both operators.
func NewDriver(tabuSize int, rng *rand.Rand) *Driver {
	return &Driver{
		moveXY: neighborhood.NewMoveXY(defaultMoveXYA, defaultMoveXYB, tabuSize),
		twoOpt: neighborhood.NewTwoOpt(tabuSize),
		rng:    rng,
	}
}

// Run builds the initial Solution via construct.Best, then iterates the
// tabu search loop up to iterations times, alternating uniformly at random
// between MoveXY and TwoOpt, reporting progress to sink after every
// iteration. A nil sink is replaced with NoopProgressSink.
//
// Complexity: O(iterations * candidates-per-move); each move is itself
// O(routes^2 * positions^2) in the worst case (see package neighborhood).
func Run(ctx *problem.Context, iterations, tabuSize int, rng *rand.Rand, sink ProgressSink) (Report, error) {
	if iterations <= 0 {
		return Report{}, ErrNoIterations
	}
	if sink == nil {
		sink = NoopProgressSink{}
	}

	start, err := construct.Best(ctx)
	if err != nil {
		return Report{}, err
	}

	d := NewDriver(tabuSize, rng)
	state := &State{Current: start, Best: start}

	begin := time.Now()
	sink.Start(iterations)
	for i := 0; i < iterations; i++ {
		var next *solution.Solution
		var ok bool
		if d.rng.Intn(2) == 0 {
			next, ok = d.moveXY.Move(state.Current, state.aspiration)
		} else {
			next, ok = d.twoOpt.Move(state.Current, state.aspiration)
		}
		if ok {
			state.Current = next
			state.considerBest(next)
		}
		sink.Update(i+1, state.Current.Cost(), state.Best.Cost())
	}

	report := newReport(state.Best, iterations, time.Since(begin))
	sink.Finish(report)
	return report, nil
}

package tabu

import "github.com/khoint5304/soict-2024/solution"

// State is the loop's working memory: Current is wherever the walk is right
// now (may be worse than last iteration), Best is the best Solution ever
// produced (monotone non-increasing Cost across the whole run).
type State struct {
	Current *solution.Solution
	Best    *solution.Solution
}

// aspiration is true when candidate strictly improves on the best Solution
// found so far - the one global override every operator's tabu check
// consults.
func (s *State) aspiration(candidate *solution.Solution) bool {
	return candidate.Cost() < s.Best.Cost()
}

// considerBest updates Best if candidate improves on it.
func (s *State) considerBest(candidate *solution.Solution) {
	if candidate.Cost() < s.Best.Cost() {
		s.Best = candidate
	}
}

package tabu

import (
	"time"

	"github.com/google/uuid"

	"github.com/khoint5304/soict-2024/solution"
)

// Report is what Run returns: the best Solution found, stamped with a
// UUIDv7 run identifier (sortable by creation time, unlike v4) so repeated
// runs can be told apart in logs and saved output.
type Report struct {
	RunID      uuid.UUID
	Best       *solution.Solution
	Iterations int
	Elapsed    time.Duration
}

// newReport allocates a Report's RunID. uuid.NewV7 only fails if the
// system's entropy source is broken; that is unrecoverable, so Run panics
// rather than threading the error through every caller.
func newReport(best *solution.Solution, iterations int, elapsed time.Duration) Report {
	return Report{
		RunID:      uuid.Must(uuid.NewV7()),
		Best:       best,
		Iterations: iterations,
		Elapsed:    elapsed,
	}
}

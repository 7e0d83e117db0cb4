package neighborhood

import (
	"sort"
	"strconv"
	"strings"
)

// Signature identifies a move for tabu-list purposes. It is built from the
// customer indices the move touches, sorted so that a move and its exact
// reverse (which touches the same customers) hash to the same Signature -
// the property the tabu list relies on to forbid immediately undoing a move
// it just made.
type Signature string

// makeSignature sorts a copy of ids and joins them into a stable key.
func makeSignature(ids []int) Signature {
	cp := make([]int, len(ids))
	copy(cp, ids)
	sort.Ints(cp)

	b := make([]string, len(cp))
	for i, id := range cp {
		b[i] = strconv.Itoa(id)
	}
	return Signature(strings.Join(b, ","))
}

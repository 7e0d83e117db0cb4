package neighborhood

// TabuList is a bounded FIFO of move Signatures: insertion evicts the oldest
// entry once the list is at capacity, and membership is an O(1) map lookup.
// A Signature may be queued more than once (two different moves can touch
// the same customers); refcount tracks that so eviction of one occurrence
// does not erase membership still held by another.
type TabuList struct {
	capacity int
	queue    []Signature
	refcount map[Signature]int
}

// NewTabuList returns an empty TabuList holding at most capacity entries. A
// non-positive capacity disables the tabu list entirely: every move is
// permitted and Add is a no-op.
func NewTabuList(capacity int) *TabuList {
	return &TabuList{
		capacity: capacity,
		refcount: make(map[Signature]int),
	}
}

// Contains reports whether sig is currently tabu.
func (t *TabuList) Contains(sig Signature) bool {
	return t.refcount[sig] > 0
}

// Add records sig as tabu, evicting the oldest entry first if the list is
// already at capacity.
func (t *TabuList) Add(sig Signature) {
	if t.capacity <= 0 {
		return
	}
	t.queue = append(t.queue, sig)
	t.refcount[sig]++

	if len(t.queue) > t.capacity {
		evicted := t.queue[0]
		t.queue = t.queue[1:]
		t.refcount[evicted]--
		if t.refcount[evicted] <= 0 {
			delete(t.refcount, evicted)
		}
	}
}

// Len returns the number of entries currently queued.
func (t *TabuList) Len() int { return len(t.queue) }

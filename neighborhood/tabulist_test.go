package neighborhood

import "testing"

func TestTabuList_EvictsOldestOnOverflow(t *testing.T) {
	tl := NewTabuList(2)
	a := Signature("a")
	b := Signature("b")
	c := Signature("c")

	tl.Add(a)
	tl.Add(b)
	if !tl.Contains(a) || !tl.Contains(b) {
		t.Fatalf("expected a and b tabu, got len=%d", tl.Len())
	}

	tl.Add(c)
	if tl.Contains(a) {
		t.Fatalf("expected a evicted after exceeding capacity")
	}
	if !tl.Contains(b) || !tl.Contains(c) {
		t.Fatalf("expected b and c still tabu")
	}
}

func TestTabuList_RefcountSurvivesDuplicateEviction(t *testing.T) {
	tl := NewTabuList(2)
	a := Signature("a")
	tl.Add(a)
	tl.Add(a)
	tl.Add(Signature("b"))
	// "a" was queued twice; evicting the first occurrence must not clear
	// membership while the second is still queued.
	if !tl.Contains(a) {
		t.Fatalf("expected a still tabu after one eviction of two occurrences")
	}
}

func TestTabuList_ZeroCapacityDisabled(t *testing.T) {
	tl := NewTabuList(0)
	tl.Add(Signature("x"))
	if tl.Contains("x") {
		t.Fatalf("zero-capacity tabu list must never report a member")
	}
}

func TestMakeSignature_OrderIndependent(t *testing.T) {
	s1 := makeSignature([]int{3, 1, 2})
	s2 := makeSignature([]int{1, 2, 3})
	if s1 != s2 {
		t.Fatalf("expected order-independent signatures, got %q vs %q", s1, s2)
	}
}

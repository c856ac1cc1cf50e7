package cbtree

import "testing"

func TestU64BasicOrdering(t *testing.T) {
	tr := NewU64()
	keys := []uint64{0, 1, 1 << 40, 1 << 63, ^uint64(0)}
	for _, k := range keys {
		tr.Insert(NewU64Node(k))
	}
	if err := tr.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if tr.Lookup(1 << 63) == nil {
		t.Fatalf("expected to find the high-bit key")
	}
	if got := tr.LookupGT(1).Key(); got != 1<<40 {
		t.Fatalf("LookupGT(1) = %d, want %d", got, uint64(1)<<40)
	}
}

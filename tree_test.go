package cbtree

import (
	"testing"
)

func TestEmptyTree(t *testing.T) {
	tr := NewU32()
	if tr.Lookup(0) != nil {
		t.Fatalf("expected nil lookup on empty tree")
	}
	if tr.First() != nil || tr.Last() != nil {
		t.Fatalf("expected nil First/Last on empty tree")
	}
	if err := tr.Check(); err != nil {
		t.Fatalf("expected empty tree to be valid, got %v", err)
	}
	if tr.Delete(0) != nil {
		t.Fatalf("expected Delete on empty tree to be a no-op")
	}
}

func TestSingletonInsertAndLookup(t *testing.T) {
	tr := NewU32()
	n := NewU32Node(42)
	ret := tr.Insert(n)
	if ret != n {
		t.Fatalf("expected the inserted node back")
	}
	if !n.Nodeless() {
		t.Fatalf("expected the sole entry to be the nodeless leaf")
	}
	if got := tr.Lookup(42); got != n {
		t.Fatalf("Lookup(42) = %v, want %v", got, n)
	}
	if tr.First() != n || tr.Last() != n {
		t.Fatalf("First/Last should both be the sole entry")
	}
	if err := tr.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
}

func TestInsertDuplicateReturnsExisting(t *testing.T) {
	tr := NewU32()
	first := NewU32Node(7)
	tr.Insert(first)
	second := NewU32Node(7)
	ret := tr.Insert(second)
	if ret != first {
		t.Fatalf("expected duplicate insert to return the original node")
	}
}

// TestCanonical2464 exercises the "2 4 6 4" sequence, a known corner case
// for split-bit descent that the divergence metric must classify
// correctly at every insertion.
func TestCanonical2464(t *testing.T) {
	tr := NewU32()
	for _, k := range []uint32{2, 4, 6} {
		tr.Insert(NewU32Node(k))
	}
	if err := tr.Check(); err != nil {
		t.Fatalf("Check after 2,4,6: %v", err)
	}

	dup := NewU32Node(4)
	ret := tr.Insert(dup)
	if ret == dup {
		t.Fatalf("re-inserting 4 should return the existing node")
	}
	if err := tr.Check(); err != nil {
		t.Fatalf("Check after re-insert of 4: %v", err)
	}

	var got []uint32
	for n := tr.First(); n != nil; n = tr.Next(n.Key()) {
		got = append(got, n.Key())
	}
	want := []uint32{2, 4, 6}
	if len(got) != len(want) {
		t.Fatalf("in-order walk = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("in-order walk = %v, want %v", got, want)
		}
	}
}

func TestOrderedTraversal(t *testing.T) {
	tr := NewU32()
	keys := []uint32{50, 10, 90, 30, 70, 20, 60, 80, 40, 1}
	for _, k := range keys {
		tr.Insert(NewU32Node(k))
	}
	if err := tr.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}

	var got []uint32
	for n := tr.First(); n != nil; n = tr.Next(n.Key()) {
		got = append(got, n.Key())
	}
	if len(got) != len(keys) {
		t.Fatalf("got %d entries, want %d", len(got), len(keys))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("traversal not strictly ascending at %d: %v", i, got)
		}
	}

	// walking backwards from Last should retrace the same sequence
	var back []uint32
	for n := tr.Last(); n != nil; n = tr.Prev(n.Key()) {
		back = append(back, n.Key())
	}
	if len(back) != len(got) {
		t.Fatalf("Prev walk length mismatch: %d vs %d", len(back), len(got))
	}
	for i := range got {
		if got[i] != back[len(back)-1-i] {
			t.Fatalf("Prev walk is not the reverse of the Next walk")
		}
	}
}

func TestLookupRangeOperators(t *testing.T) {
	tr := NewU32()
	for _, k := range []uint32{10, 20, 30, 40} {
		tr.Insert(NewU32Node(k))
	}

	if got := tr.LookupGE(25).Key(); got != 30 {
		t.Fatalf("LookupGE(25) = %d, want 30", got)
	}
	if got := tr.LookupGE(20).Key(); got != 20 {
		t.Fatalf("LookupGE(20) = %d, want 20", got)
	}
	if tr.LookupGE(41) != nil {
		t.Fatalf("LookupGE(41) should be nil, nothing greater exists")
	}
	if got := tr.LookupGT(20).Key(); got != 30 {
		t.Fatalf("LookupGT(20) = %d, want 30", got)
	}
	if got := tr.LookupLE(25).Key(); got != 20 {
		t.Fatalf("LookupLE(25) = %d, want 20", got)
	}
	if got := tr.LookupLE(20).Key(); got != 20 {
		t.Fatalf("LookupLE(20) = %d, want 20", got)
	}
	if tr.LookupLE(9) != nil {
		t.Fatalf("LookupLE(9) should be nil, nothing smaller exists")
	}
	if got := tr.LookupLT(30).Key(); got != 20 {
		t.Fatalf("LookupLT(30) = %d, want 20", got)
	}
}

func TestDeleteSingleton(t *testing.T) {
	tr := NewU32()
	n := NewU32Node(1)
	tr.Insert(n)
	ret := tr.Delete(1)
	if ret != n {
		t.Fatalf("expected the deleted node back")
	}
	if !n.Detached() {
		t.Fatalf("expected node to be detached after delete")
	}
	if tr.Root() != nil {
		t.Fatalf("expected empty tree after deleting the sole entry")
	}
	if tr.Delete(1) != nil {
		t.Fatalf("Delete should be idempotent")
	}
}

// TestDeleteSplitNodeThenReinsert covers the case where the physical
// allocation holding a key's node role and the one holding its leaf role
// have already split apart, so deletion has to fold the two roles back
// together and hand the freed leafParent allocation to another node.
func TestDeleteSplitNodeThenReinsert(t *testing.T) {
	tr := NewU32()
	keys := []uint32{100, 4, 200, 300, 2}
	nodes := map[uint32]*Node[uint32]{}
	for _, k := range keys {
		n := NewU32Node(k)
		tr.Insert(n)
		nodes[k] = n
	}
	if err := tr.Check(); err != nil {
		t.Fatalf("Check before delete: %v", err)
	}

	ret := tr.Delete(4)
	if ret != nodes[4] {
		t.Fatalf("expected to delete node for key 4")
	}
	if err := tr.Check(); err != nil {
		t.Fatalf("Check after delete: %v", err)
	}
	if tr.Lookup(4) != nil {
		t.Fatalf("key 4 should be gone")
	}
	for _, k := range []uint32{100, 200, 300, 2} {
		if tr.Lookup(k) == nil {
			t.Fatalf("key %d should still be present", k)
		}
	}

	// reinsert and make sure the tree is still consistent
	reinserted := NewU32Node(4)
	tr.Insert(reinserted)
	if err := tr.Check(); err != nil {
		t.Fatalf("Check after reinsert: %v", err)
	}
	if tr.Lookup(4) != reinserted {
		t.Fatalf("expected reinserted node to be found")
	}
}

func TestPickRequiresIdentity(t *testing.T) {
	tr := NewU32()
	a := NewU32Node(5)
	tr.Insert(a)

	imposter := NewU32Node(5)
	// link the imposter into another tree so it is not detached and Pick
	// has to compare it against the node this tree holds at key 5.
	NewU32().Insert(imposter)
	ret, err := tr.Pick(imposter)
	if err != nil {
		t.Fatalf("unexpected error with Strict off: %v", err)
	}
	if ret != nil {
		t.Fatalf("Pick with a mismatched node should be a no-op when not Strict")
	}
	if tr.Lookup(5) != a {
		t.Fatalf("the real node should still be present")
	}

	tr.Strict = true
	_, err = tr.Pick(imposter)
	if err == nil {
		t.Fatalf("expected ErrKeyMismatch with Strict on")
	}

	ret, err = tr.Pick(a)
	if err != nil || ret != a {
		t.Fatalf("Pick(a) = %v, %v, want %v, nil", ret, err, a)
	}
	if !a.Detached() {
		t.Fatalf("expected a to be detached after Pick")
	}
}

func TestPickOnDetachedNodeIsNoop(t *testing.T) {
	tr := NewU32()
	n := NewU32Node(1)
	ret, err := tr.Pick(n)
	if err != nil || ret != nil {
		t.Fatalf("Pick on a never-inserted node should be a silent no-op")
	}
}

func TestStringKeysAndPrefixes(t *testing.T) {
	tr := NewString()
	words := []string{"a", "ab", "abc", "abd", "b", "ba"}
	for _, w := range words {
		tr.Insert(NewStringNode(w))
	}
	if err := tr.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}

	var got []string
	for n := tr.First(); n != nil; n = tr.Next(n.Key()) {
		got = append(got, n.Key())
	}
	if len(got) != len(words) {
		t.Fatalf("got %d entries, want %d: %v", len(got), len(words), got)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("string traversal not ascending at %d: %v", i, got)
		}
	}

	if tr.Lookup("ab") == nil {
		t.Fatalf("expected to find exact prefix key \"ab\"")
	}
	if tr.Lookup("abcd") != nil {
		t.Fatalf("\"abcd\" was never inserted")
	}
}

func TestStringLookupFindsKeyThatIsAPrefixOfALaterSibling(t *testing.T) {
	tr := NewString()
	for _, w := range []string{"1", "10", "100"} {
		tr.Insert(NewStringNode(w))
	}
	if err := tr.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
	for _, w := range []string{"1", "10", "100"} {
		if got := tr.Lookup(w); got == nil || got.Key() != w {
			t.Fatalf("Lookup(%q) = %v, want a node keyed %q", w, got, w)
		}
	}
}

func TestStringInsertOfExistingPrefixKeyReturnsExistingNode(t *testing.T) {
	tr := NewString()
	words := []string{"a", "ab", "abc", "abd", "b", "ba"}
	nodes := make(map[string]*Node[string], len(words))
	for _, w := range words {
		n := NewStringNode(w)
		nodes[w] = n
		tr.Insert(n)
	}

	dup := NewStringNode("ab")
	got := tr.Insert(dup)
	if got != nodes["ab"] {
		t.Fatalf("Insert of duplicate key \"ab\" returned %v, want the original node %v", got, nodes["ab"])
	}
	if got == dup {
		t.Fatalf("Insert of duplicate key \"ab\" linked the new node instead of returning the existing one")
	}

	if err := tr.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}

	count := 0
	for n := tr.First(); n != nil; n = tr.Next(n.Key()) {
		count++
	}
	if count != len(words) {
		t.Fatalf("tree has %d entries after duplicate insert, want %d (no duplicate node)", count, len(words))
	}
}

func TestRandomizedStress(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping randomized stress in -short mode")
	}
	tr := NewU32()
	const n = 20000
	present := map[uint32]*Node[uint32]{}

	seed := uint64(0x2545F4914F6CDD1D)
	next := func() uint32 {
		seed ^= seed << 13
		seed ^= seed >> 7
		seed ^= seed << 17
		return uint32(seed)
	}

	for i := 0; i < n; i++ {
		k := next() % (n / 2)
		if node, ok := present[k]; ok {
			if tr.Delete(k) != node {
				t.Fatalf("failed to delete present key %d", k)
			}
			delete(present, k)
		} else {
			node := NewU32Node(k)
			ret := tr.Insert(node)
			if ret != node {
				t.Fatalf("expected fresh insert for key %d not in present map", k)
			}
			present[k] = node
		}
		if i%997 == 0 {
			if err := tr.Check(); err != nil {
				t.Fatalf("Check failed at iteration %d: %v", i, err)
			}
		}
	}

	if err := tr.Check(); err != nil {
		t.Fatalf("final Check: %v", err)
	}
	for k, node := range present {
		if tr.Lookup(k) != node {
			t.Fatalf("key %d missing after stress run", k)
		}
	}
}

package cbtree

import "testing"

func TestBytesMBNodeOwnsACopy(t *testing.T) {
	key := []byte("hello")
	n := NewMBNode(key)
	key[0] = 'H'
	if n.Key()[0] != 'h' {
		t.Fatalf("NewMBNode should have copied the key, mutation leaked through")
	}
}

func TestBytesIMNodeAliasesCaller(t *testing.T) {
	key := []byte("hello")
	n := NewIMNode(key)
	key[0] = 'H'
	if n.Key()[0] != 'H' {
		t.Fatalf("NewIMNode should alias the caller's slice")
	}
}

func TestBytesTraversalIdenticalAcrossFlavors(t *testing.T) {
	words := [][]byte{[]byte("aa"), []byte("ab"), []byte("ba"), []byte("bb")}

	mb := NewBytes()
	for _, w := range words {
		mb.Insert(NewMBNode(w))
	}
	im := NewBytes()
	for _, w := range words {
		im.Insert(NewIMNode(w))
	}

	if err := mb.Check(); err != nil {
		t.Fatalf("mb Check: %v", err)
	}
	if err := im.Check(); err != nil {
		t.Fatalf("im Check: %v", err)
	}

	var mbOrder, imOrder [][]byte
	for n := mb.First(); n != nil; n = mb.Next(n.Key()) {
		mbOrder = append(mbOrder, n.Key())
	}
	for n := im.First(); n != nil; n = im.Next(n.Key()) {
		imOrder = append(imOrder, n.Key())
	}
	if len(mbOrder) != len(imOrder) {
		t.Fatalf("order length mismatch: %d vs %d", len(mbOrder), len(imOrder))
	}
	for i := range mbOrder {
		if string(mbOrder[i]) != string(imOrder[i]) {
			t.Fatalf("order mismatch at %d: %q vs %q", i, mbOrder[i], imOrder[i])
		}
	}
}

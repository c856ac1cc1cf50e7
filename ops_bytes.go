package cbtree

import "bytes"

// bytesOps implements Ops for byte-block keys, covering both of the
// original C sources' CEB_KT_MB and CEB_KT_IM: the traversal is identical
// either way, since both flavors compare the same bytes the same way.
// They differ only in who owns the storage those bytes live in, which is
// a property of how a node is built, not of how the tree walks it — see
// NewMBNode and NewIMNode.
type bytesOps struct{}

func (bytesOps) Diverge(l, r *Node[[]byte]) Metric {
	return commonPrefixBits(l.key, r.key)
}

func (bytesOps) DivergeKey(key []byte, n *Node[[]byte]) Metric {
	return commonPrefixBits(key, n.key)
}

func (bytesOps) IsEarlier(cur, prev Metric) bool {
	return cur < prev
}

func (bytesOps) Sentinel() Metric {
	return 0
}

func (bytesOps) Side(dl, dr Metric) int {
	if dl <= dr {
		return 1
	}
	return 0
}

func (bytesOps) CompareKey(key []byte, n *Node[[]byte]) int {
	return bytes.Compare(key, n.key)
}

func (bytesOps) KeyOf(n *Node[[]byte]) []byte {
	return n.key
}

// NewBytes returns an empty tree keyed by byte blocks. Callers are
// expected to give every key inserted into one tree the same length,
// mirroring the fixed-width block the original CEB_KT_MB/CEB_KT_IM key
// types were built around; nothing here enforces it.
func NewBytes() *Tree[[]byte] {
	return &Tree[[]byte]{ops: bytesOps{}}
}

// NewMBNode allocates a node holding its own private copy of key (the
// CEB_KT_MB, "direct storage" flavor). The caller's slice can be reused
// or mutated immediately afterward without affecting the tree.
func NewMBNode(key []byte) *Node[[]byte] {
	cp := make([]byte, len(key))
	copy(cp, key)
	return &Node[[]byte]{key: cp}
}

// NewIMNode allocates a node that aliases key directly (the CEB_KT_IM,
// "indirect storage" flavor). The caller must not mutate key for as long
// as the node stays linked into a tree.
func NewIMNode(key []byte) *Node[[]byte] {
	return &Node[[]byte]{key: key}
}

package cbtree

// Node is the intrusive two-branch node every compact binary tree is built
// from. Callers embed Node by value inside their own payload struct; the
// tree never allocates one.
//
// A Node plays two roles on any root-to-leaf path: first as an internal
// router (its "node role", picking a branch by one bit of the key), later
// as the key-bearing terminus (its "leaf role"). Both roles share this same
// allocation — there is no separate leaf type, and no flag distinguishes
// them. Which role a visit is in falls out structurally from the descent
// (see engine.go); adding a flag here would change the zero-overhead
// contract these trees exist for.
//
// The key itself lives in K, attached directly to the node. For the
// address flavor, K is never populated (the node's own address is the
// key); see ops_addr.go.
type Node[K any] struct {
	b   [2]*Node[K]
	key K
}

// Key returns the node's key.
func (n *Node[K]) Key() K {
	return n.key
}

// Left returns n's branch 0: nil once n is detached, otherwise the node
// its node role routes to on the left, which is n itself when that side
// leads straight to its own leaf role.
func (n *Node[K]) Left() *Node[K] {
	return n.b[0]
}

// Right returns n's branch 1.
func (n *Node[K]) Right() *Node[K] {
	return n.b[1]
}

// Detached reports whether n has been removed from its tree, or was
// never inserted into one.
func (n *Node[K]) Detached() bool {
	return n.detached()
}

// detached reports whether n has been removed from its tree. Deletion
// clears b[0] to nil, which makes delete idempotent.
func (n *Node[K]) detached() bool {
	return n.b[0] == nil
}

// Nodeless reports whether n is the singleton "nodeless leaf": both
// branches point back at itself. A non-empty tree holds exactly one such
// node: the first key inserted, which keeps the role as later keys are
// added, or the node that inherited the role when a deletion removed it.
func (n *Node[K]) Nodeless() bool {
	return n.b[0] == n && n.b[1] == n
}

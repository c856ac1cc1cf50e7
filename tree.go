package cbtree

// Tree is an ordered, intrusive container over Nodes of one key flavor. The
// zero value is not usable; construct one with NewU32, NewU64, NewAddr,
// NewBytes, or NewString.
//
// A Tree never allocates: Insert links a Node the caller already owns, and
// Delete only unlinks it. Every method assumes root, when non-nil, points
// at a structurally valid tree — the mutators here perform no defensive
// validation of their own (see Check for an explicit integrity pass).
type Tree[K any] struct {
	root *Node[K]
	ops  Ops[K]

	// Strict makes Pick return ErrKeyMismatch instead of silently doing
	// nothing when the supplied node's key does not match what the
	// tree actually holds at that key. Off by default, since most
	// callers only ever pass back a node they got from a lookup on
	// this same tree, where a mismatch can only mean a bug elsewhere.
	Strict bool
}

func otherSide(s int) int { return 1 - s }

// Root returns the tree's root node, or nil if it is empty. It exists
// for external traversal (the dump package uses it); ordinary callers
// have no reason to reach for it.
func (t *Tree[K]) Root() *Node[K] {
	return t.root
}

// Ops returns the flavor-specific comparison strategy backing this tree,
// for the same external-traversal use case as Root.
func (t *Tree[K]) Ops() Ops[K] {
	return t.ops
}

// Insert links node into the tree under its own key, unless a node with an
// equal key is already present, in which case that existing node is
// returned unchanged and node is left untouched by the tree (it is up to
// the caller to notice ret != node).
func (t *Tree[K]) Insert(node *Node[K]) *Node[K] {
	if t.root == nil {
		node.b[0], node.b[1] = node, node
		t.root = node
		return node
	}

	key := t.ops.KeyOf(node)
	res := descend(&t.root, wmKEQ, t.ops, key)
	if res.node != nil {
		return res.node
	}

	if res.nside == 1 {
		node.b[1] = node
		node.b[0] = *res.target
	} else {
		node.b[0] = node
		node.b[1] = *res.target
	}
	*res.target = node
	return node
}

// Lookup returns the node whose key equals key, or nil.
func (t *Tree[K]) Lookup(key K) *Node[K] {
	if t.root == nil {
		return nil
	}
	return descend(&t.root, wmKEQ, t.ops, key).node
}

// LookupGE returns the node whose key equals key, or failing that the one
// holding the smallest key strictly greater than key.
func (t *Tree[K]) LookupGE(key K) *Node[K] {
	return t.lookupThenResume(key, wmKGE, wmNXT)
}

// LookupGT returns the node holding the smallest key strictly greater than
// key, whether or not key itself is present.
func (t *Tree[K]) LookupGT(key K) *Node[K] {
	return t.lookupThenResume(key, wmKGT, wmNXT)
}

// LookupLE returns the node whose key equals key, or failing that the one
// holding the greatest key strictly less than key.
func (t *Tree[K]) LookupLE(key K) *Node[K] {
	return t.lookupThenResume(key, wmKLE, wmPRV)
}

// LookupLT returns the node holding the greatest key strictly less than
// key, whether or not key itself is present.
func (t *Tree[K]) LookupLT(key K) *Node[K] {
	return t.lookupThenResume(key, wmKLT, wmPRV)
}

func (t *Tree[K]) lookupThenResume(key K, primary, resume walkMethod) *Node[K] {
	if t.root == nil {
		return nil
	}
	res := descend(&t.root, primary, t.ops, key)
	if res.node != nil {
		return res.node
	}
	if res.fork == nil {
		return nil
	}
	restart := res.fork
	var zero K
	return descend(&restart, resume, t.ops, zero).node
}

// First returns the node holding the smallest key in the tree, or nil if
// the tree is empty.
func (t *Tree[K]) First() *Node[K] {
	if t.root == nil {
		return nil
	}
	var zero K
	return descend(&t.root, wmFST, t.ops, zero).node
}

// Last returns the node holding the largest key in the tree, or nil if the
// tree is empty.
func (t *Tree[K]) Last() *Node[K] {
	if t.root == nil {
		return nil
	}
	var zero K
	return descend(&t.root, wmLST, t.ops, zero).node
}

// Next returns the node whose key immediately follows key, which must
// itself be present in the tree; it returns nil both when key is absent
// and when key names the last entry.
func (t *Tree[K]) Next(key K) *Node[K] {
	return t.stepFrom(key, wmKNX, wmNXT)
}

// Prev returns the node whose key immediately precedes key, which must
// itself be present in the tree; it returns nil both when key is absent
// and when key names the first entry.
func (t *Tree[K]) Prev(key K) *Node[K] {
	return t.stepFrom(key, wmKPR, wmPRV)
}

func (t *Tree[K]) stepFrom(key K, primary, resume walkMethod) *Node[K] {
	if t.root == nil {
		return nil
	}
	res := descend(&t.root, primary, t.ops, key)
	if res.node == nil || res.fork == nil {
		return nil
	}
	restart := res.fork
	var zero K
	return descend(&restart, resume, t.ops, zero).node
}

// Delete removes the node holding key, if any, and returns it. Delete is
// idempotent: deleting an already-removed key, or a key never present, is
// a safe no-op returning nil.
func (t *Tree[K]) Delete(key K) *Node[K] {
	ret, _ := t.remove(key, nil)
	return ret
}

// Pick removes node from the tree, verifying first that node is actually
// linked (Pick on an already-detached node is a no-op returning nil, nil).
// When Strict is set, Pick additionally verifies that node is the very
// allocation the tree holds at its key, returning ErrKeyMismatch if some
// other node occupies that key instead — this can only happen if node was
// mutated or relinked outside of this Tree.
func (t *Tree[K]) Pick(node *Node[K]) (*Node[K], error) {
	if node.detached() {
		return nil, nil
	}
	return t.remove(t.ops.KeyOf(node), node)
}

func (t *Tree[K]) remove(key K, node *Node[K]) (*Node[K], error) {
	if t.root == nil {
		return nil, nil
	}

	res := descend(&t.root, wmKEQ, t.ops, key)
	ret := res.node
	if ret == nil {
		return nil, nil
	}
	if node != nil && ret != node {
		if t.Strict {
			return nil, ErrKeyMismatch
		}
		return nil, nil
	}

	if res.leafParent == nil {
		// the descent never shifted past the root: a single entry,
		// the nodeless leaf, is being removed.
		t.root = nil
		ret.b[0] = nil
		return ret, nil
	}

	lp, ls := res.leafParent, res.leafSide
	if res.gParent == nil {
		t.root = lp.b[otherSide(ls)]
	} else {
		res.gParent.b[res.gSide] = lp.b[otherSide(ls)]
	}

	if lp == ret {
		// leaf and node role coincided at the same allocation.
		ret.b[0] = nil
		return ret, nil
	}

	if ret.b[0] == ret.b[1] {
		// removing the node-less item; its parent inherits the role.
		lp.b[0], lp.b[1] = lp, lp
		ret.b[0] = nil
		return ret, nil
	}

	// the node and leaf roles were split apart; leafParent is no longer
	// needed as a router, so it's reused as ret's structural replacement.
	lp.b[0], lp.b[1] = ret.b[0], ret.b[1]
	if res.nodeParent == nil {
		// ret's node role was the root itself.
		t.root = lp
	} else {
		res.nodeParent.b[res.nodeSide] = lp
	}

	ret.b[0] = nil
	return ret, nil
}

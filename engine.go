package cbtree

// descentResult carries every side-output the descent engine can produce.
// The nine C out-parameters of _cebu_descend become one struct returned by
// value: callers that only need `node` simply ignore the rest, and the Go
// compiler needs no help eliminating dead stores the way the
// always-inlined C function did.
type descentResult[K any] struct {
	node *Node[K] // the matching node, or nil if the method's match failed

	// insertion side-outputs
	nside  int       // side a new leaf would occupy at its own node
	target **Node[K] // address of the pointer slot a new leaf would occupy

	// deletion side-outputs: a sliding window of the last two distinct
	// physical positions visited, split into the position where p is
	// referenced in its leaf role and the position where it is
	// referenced in its node role (they coincide only when p is the
	// nodeless leaf).
	leafParent *Node[K]
	leafSide   int
	nodeParent *Node[K]
	nodeSide   int
	gParent    *Node[K]
	gSide      int

	// fork is the last node where the descent went opposite to the
	// direction a subsequent next/prev would need, letting range
	// queries resume from it.
	fork *Node[K]
}

// descend is the single shared traversal every operation in this package
// is built from. It must not be called against an empty tree; callers
// check that first.
//
// root is the address of the pointer slot to start from — either a
// Tree's root field, or, for the NXT/PRV restart step, the address of a
// local variable holding a previously captured fork node.
func descend[K any](root **Node[K], meth walkMethod, ops Ops[K], key K) descentResult[K] {
	var lparent, nparent, gparent, fork *Node[K]
	var lpside, npside, gpside int
	var brside int
	var mismatch bool

	switch meth {
	case wmNXT, wmLST:
		brside = 1
	default:
		brside = 0
	}

	pdiv := ops.Sentinel()

	var p *Node[K]
	for {
		p = *root
		l, r := p.b[0], p.b[1]

		if l == r {
			// two equal pointers identify the nodeless leaf.
			traceDescend("l==r", meth, 0, pdiv)
			break
		}

		var dl, dr Metric
		if meth.keyed() {
			// computed early, before the leaf-role test, so a real
			// implementation can start acting on the branch choice
			// while the divergence test is still in flight.
			dl = ops.DivergeKey(key, l)
			dr = ops.DivergeKey(key, r)
			brside = ops.Side(dl, dr)
		}

		cur := ops.Diverge(l, r)
		if ops.IsEarlier(cur, pdiv) {
			// p's inter-branch divergence is earlier than the one we
			// saw one level up: p can only be a leaf, since split
			// bits strictly decrease downward on any real path.
			traceDescend("xor>", meth, cur, pdiv)
			break
		}

		if meth.keyed() {
			if ops.IsEarlier(dl, cur) && ops.IsEarlier(dr, cur) {
				// the key differs from both branches above their
				// split bit: it cannot be present below p.
				traceDescend("mismatch", meth, cur, pdiv)
				mismatch = true
				break
			}
			if ops.CompareKey(key, p) == 0 {
				nparent, npside = lparent, lpside
			}
		}
		pdiv = cur

		// shift the sliding window down one level.
		gparent, gpside = lparent, lpside
		lparent, lpside = p, brside

		if brside == 1 {
			if meth == wmKPR || meth == wmKLE || meth == wmKLT {
				fork = p
			}
			root = &p.b[1]
			if meth == wmNXT {
				brside = 0
			}
		} else {
			if meth == wmKNX || meth == wmKGE || meth == wmKGT {
				fork = p
			}
			root = &p.b[0]
			if meth == wmPRV {
				brside = 1
			}
		}

		if p == *root {
			// the branch we just followed loops back to p itself:
			// p is being visited in its leaf role right now.
			traceDescend("loop", meth, cur, pdiv)
			break
		}
	}

	res := descentResult[K]{
		target:     root,
		leafParent: lparent,
		leafSide:   lpside,
		nodeParent: nparent,
		nodeSide:   npside,
		gParent:    gparent,
		gSide:      gpside,
		fork:       fork,
	}

	if meth.keyed() {
		c := ops.CompareKey(key, p)
		if c >= 0 {
			res.nside = 1
		}
		switch meth {
		case wmKEQ, wmKNX, wmKPR:
			if c == 0 {
				res.node = p
			}
		case wmKGE:
			if c <= 0 {
				res.node = p
			}
		case wmKGT:
			if c < 0 {
				res.node = p
			}
		case wmKLE:
			if c >= 0 {
				res.node = p
			}
		case wmKLT:
			if c > 0 {
				res.node = p
			}
		}
		if mismatch {
			// the key lies outside p's whole subtree: below all of it
			// when c < 0, above all of it when c > 0. The nearest key
			// on the requested side is then the subtree's first or last.
			switch {
			case c < 0 && (meth == wmKGE || meth == wmKGT):
				res.node = descend(root, wmFST, ops, key).node
			case c > 0 && (meth == wmKLE || meth == wmKLT):
				res.node = descend(root, wmLST, ops, key).node
			}
		}
	} else {
		// FST, LST, NXT, PRV always return whatever they reached.
		res.node = p
	}

	return res
}

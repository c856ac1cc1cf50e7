package cbtree

import "fmt"

// maxCheckDepth bounds the recursion Check performs. A correctly built
// tree can never nest anywhere near this deep, since the divergence
// metric strictly decreases on every step down a real node chain; this
// exists only to turn a genuinely corrupt structure (say, a node linked
// into two trees) into an error instead of a stack overflow.
const maxCheckDepth = 4096

// Check walks the tree and validates its structural invariants: every
// node visited in its node role diverges later than its parent, a visit
// whose divergence is earlier than its parent's is accepted only as the
// leaf role of a node whose node role lies above it on the same path, and
// an in-order walk of the leaves yields strictly ascending keys. It costs
// O(n) and is meant for tests and diagnostics, not the hot path — the
// mutators themselves never call it.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrCorrupt)
	}
	if t.root == nil {
		return nil
	}
	var prev *Node[K]
	_, err := t.checkNode(t.root, t.ops.Sentinel(), map[*Node[K]]bool{}, &prev, 0)
	return err
}

func (t *Tree[K]) checkNode(p *Node[K], pdiv Metric, above map[*Node[K]]bool, prev **Node[K], depth int) (leaves int, err error) {
	if depth > maxCheckDepth {
		return 0, fmt.Errorf("%w: recursion exceeded %d levels, tree likely cyclic", ErrCorrupt, maxCheckDepth)
	}

	l, r := p.b[0], p.b[1]
	if l == r {
		if err := t.checkOrder(p, prev); err != nil {
			return 0, err
		}
		return 1, nil
	}

	cur := t.ops.Diverge(l, r)
	if t.ops.IsEarlier(cur, pdiv) {
		// an earlier divergence than the parent's is only legitimate
		// when p is being revisited in its leaf role, below its own
		// node role.
		if !above[p] {
			return 0, fmt.Errorf("%w: divergence does not decrease going down", ErrCorrupt)
		}
		if err := t.checkOrder(p, prev); err != nil {
			return 0, err
		}
		return 1, nil
	}

	above[p] = true
	defer delete(above, p)
	total := 0
	for _, child := range [2]*Node[K]{l, r} {
		if child == p {
			// p is visited in its leaf role on this branch.
			if err := t.checkOrder(p, prev); err != nil {
				return 0, err
			}
			total++
			continue
		}
		n, err := t.checkNode(child, cur, above, prev, depth+1)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

func (t *Tree[K]) checkOrder(leaf *Node[K], prev **Node[K]) error {
	if *prev != nil && t.ops.CompareKey(t.ops.KeyOf(leaf), *prev) <= 0 {
		return fmt.Errorf("%w: keys out of order in in-order walk", ErrCorrupt)
	}
	*prev = leaf
	return nil
}

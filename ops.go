package cbtree

// Metric is a divergence value returned by Ops.Diverge and Ops.DivergeKey.
// Its numeric value carries no meaning on its own; the engine only ever
// compares two Metrics through Ops.IsEarlier and Ops.Side, which is what
// lets scalar (XOR) and prefix-length key flavors share one descent.
type Metric uint64

// Ops supplies everything the descent engine needs to know about a key
// flavor. One implementation exists per flavor: u32Ops, u64Ops, addrOps,
// bytesOps, stringOps. Each is grounded on the corresponding
// key_type == CEB_KT_* branch of _cebu_descend in the original C sources.
type Ops[K any] interface {
	// Diverge returns a metric for the pair (l, r), monotonic with the
	// bit position at which their keys first differ.
	Diverge(l, r *Node[K]) Metric

	// DivergeKey is Diverge with an unattached search key standing in
	// for one side.
	DivergeKey(key K, n *Node[K]) Metric

	// IsEarlier reports whether metric cur corresponds to a
	// higher-order (earlier) differing bit than metric prev. Scalar
	// flavors answer cur > prev; prefix-length flavors answer the
	// opposite, cur < prev, since a longer shared prefix means a later
	// divergence.
	IsEarlier(cur, prev Metric) bool

	// Sentinel returns a metric no real divergence can ever be earlier
	// than, used to seed the loop so the root can never look like a
	// leaf on the first iteration.
	Sentinel() Metric

	// Side picks the branch (0 or 1) a key-directed descent should take
	// when dl and dr are the metrics between the search key and the
	// left/right branch respectively: the side whose metric is
	// later-diverging, ties going right.
	Side(dl, dr Metric) int

	// CompareKey is the three-way ordering used once at descent exit to
	// resolve the final fork and classify range-query matches.
	CompareKey(key K, n *Node[K]) int

	// KeyOf extracts the search key carried by an already-linked node.
	// For every flavor but addr this is just n.key; the addr flavor's
	// key is the node's own identity, so it has no key field to read.
	KeyOf(n *Node[K]) K
}

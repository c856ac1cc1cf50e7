// Package dump renders a compact binary tree as a Graphviz DOT graph, for
// visual debugging. It is grounded on the original C sources'
// cebu_default_dump_tree/cebu_default_dump_node/cebu_default_dump_leaf
// callbacks and a companion cord-visualization dumper from the same
// lineage: internal nodes are drawn as filled circles, leaves as boxes,
// exactly as those C callbacks colored them.
package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"

	"github.com/gostorage/cbtree"
)

// Option configures a dump.
type Option func(*config)

type config struct {
	maxKeyRunes int
	highlight   any
}

// MaxKeyRunes truncates displayed keys — grapheme-cluster safe for string
// and byte-block keys, so a multi-byte rune is never split mid-cluster —
// to at most n. The default is 40.
func MaxKeyRunes(n int) Option {
	return func(c *config) { c.maxKeyRunes = n }
}

// Highlight draws node in red, the way the original callbacks colored
// whatever node their ctx argument pointed to.
func Highlight[K any](n *cbtree.Node[K]) Option {
	return func(c *config) { c.highlight = n }
}

// WriteDOT writes t's structure to w as a DOT graph. The tree is walked
// exactly once per edge, so a node visited in both its node role and its
// leaf role (an ordinary, non-degenerate tree of more than one entry) is
// declared twice, once as a circle and once as a box. Both declarations
// use the same DOT node id, so Graphviz draws that node once, with the
// attributes of whichever declaration comes last.
func WriteDOT[K any](w io.Writer, t *cbtree.Tree[K], opts ...Option) error {
	cfg := config{maxKeyRunes: 40}
	for _, o := range opts {
		o(&cfg)
	}

	io.WriteString(w, "digraph cbtree {\n")
	io.WriteString(w, "  node [fontname=Helvetica,fontsize=10];\n")
	io.WriteString(w, "  root [shape=point];\n")

	root := t.Root()
	if root == nil {
		io.WriteString(w, "}\n")
		return nil
	}
	fmt.Fprintf(w, "  root -> %s;\n", id(root))

	if err := writeNode(w, t, root, t.Ops().Sentinel(), 0, cfg); err != nil {
		return err
	}
	io.WriteString(w, "}\n")
	return nil
}

func writeNode[K any](w io.Writer, t *cbtree.Tree[K], n *cbtree.Node[K], pdiv cbtree.Metric, depth int, cfg config) error {
	ops := t.Ops()
	l, r := n.Left(), n.Right()

	if l == r {
		writeLeaf(w, n, depth, cfg)
		return nil
	}

	cur := ops.Diverge(l, r)
	if ops.IsEarlier(cur, pdiv) {
		writeLeaf(w, n, depth, cfg)
		return nil
	}

	writeInternal(w, n, depth, cfg)

	for side, child := range [2]*cbtree.Node[K]{l, r} {
		label := "L"
		if side == 1 {
			label = "R"
		}
		fmt.Fprintf(w, "  %s -> %s [label=%q];\n", id(n), id(child), label)
		if child == n {
			writeLeaf(w, n, depth+1, cfg)
			continue
		}
		if err := writeNode(w, t, child, cur, depth+1, cfg); err != nil {
			return err
		}
	}
	return nil
}

func writeLeaf[K any](w io.Writer, n *cbtree.Node[K], depth int, cfg config) {
	color := "lightgoldenrod1"
	if cfg.highlight == any(n) {
		color = "red"
	}
	fmt.Fprintf(w, "  %s [label=%q shape=box style=filled fillcolor=%s];\n",
		id(n), fmt.Sprintf("%s\\nlev=%d", formatKey(n.Key(), cfg), depth), color)
}

func writeInternal[K any](w io.Writer, n *cbtree.Node[K], depth int, cfg config) {
	color := "lightskyblue1"
	if cfg.highlight == any(n) {
		color = "red"
	}
	fmt.Fprintf(w, "  %s [label=%q shape=circle style=filled fillcolor=%s];\n",
		id(n), fmt.Sprintf("lev=%d", depth), color)
}

func id[K any](n *cbtree.Node[K]) string {
	return fmt.Sprintf("\"n%p\"", n)
}

func formatKey[K any](key K, cfg config) string {
	switch v := any(key).(type) {
	case string:
		return truncate(v, cfg.maxKeyRunes)
	case []byte:
		return truncate(string(v), cfg.maxKeyRunes)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// truncate cuts s to at most n grapheme clusters, never splitting one, so
// combining marks and multi-rune emoji in a key never render as garbage
// in the graph.
func truncate(s string, n int) string {
	grapheme.SetupGraphemeClasses()
	seg := segment.NewSegmenter(grapheme.NewBreaker(0))
	seg.Init(strings.NewReader(s))

	var b strings.Builder
	count := 0
	for seg.Next() {
		if count >= n {
			b.WriteString("…")
			break
		}
		b.Write(seg.Bytes())
		count++
	}
	return b.String()
}

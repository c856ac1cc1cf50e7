package cbtree

import "errors"

// The library's error taxonomy is deliberately narrow: most outcomes are
// expressed by a nil return, never an error. These sentinels exist for
// the few cases that need one: the optional strict integrity check on
// delete, and the invariant validator.
var (
	// ErrKeyMismatch is returned by Pick when Tree.Strict is set and the
	// caller passed a linked node that is not the one the descent
	// actually reached at its key. The original C string-delete path
	// aborted the process unconditionally on this condition; here it is
	// an opt-in check instead of a forced termination.
	ErrKeyMismatch = errors.New("cbtree: node key does not match tree contents")

	// ErrKeyExists is not returned by anything in this module: Insert
	// returns the pre-existing node directly, and the CLI harness
	// (cmd/cbtreectl) reports a collision as plain text.
	ErrKeyExists = errors.New("cbtree: key already present")

	// ErrNotFound mirrors ErrKeyExists: not returned by anything in this
	// module, since lookups report absence with a nil node.
	ErrNotFound = errors.New("cbtree: key not found")

	// ErrInvalidConfig names a malformed byte-block or string flavor
	// configuration. No constructor in this module takes a
	// configuration, so nothing returns it.
	ErrInvalidConfig = errors.New("cbtree: invalid configuration")

	// ErrCorrupt is returned by Check when the tree structure violates
	// one of its structural invariants. It never arises from correct
	// use of the public API, since the mutators perform no runtime
	// validation of their own; this only fires on external corruption
	// such as a node linked into two trees at once.
	ErrCorrupt = errors.New("cbtree: structural invariant violated")
)

/*
Package slottree offers an ordered key/payload container backed by an
unbalanced binary search tree.

Nodes do not live as individually owned heap objects. They are stored in the
slots of an arena (package `arena`), and every parent/left/right link is a
plain slot index. The tree asks the arena for a slot on insert and hands it
back on removal; freed slots are reused by subsequent insertions.

In-order iteration needs no auxiliary stack. An iterator falls to the minimum
of a subtree, and when a subtree is exhausted it climbs the parent links to the
next ancestor not yet visited:

	for it := tree.Iterate(); it.Valid(); it.Next() {
	    fmt.Println(it.Key(), it.Payload())
	}

Trees are not balanced. Insertion, lookup and removal cost O(depth).

A tree must not be mutated while an iterator is in use. Iterators detect this
and panic if used after a mutation. Trees are not safe for concurrent use.

Lookups may use a query type different from the key type, see `Probe` and
`ProbeOf`.

__________________________________________________________________________

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package slottree

import (
	"github.com/cockroachdb/errors"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'slottree'
func tracer() tracing.Trace {
	return tracing.Select("slottree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(errors.AssertionFailedf("slottree: %s", msg))
	}
}

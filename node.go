package slottree

import "github.com/npillmayer/slottree/arena"

// Content is a key/payload pair stored in a tree. The key of a node never
// changes after insertion.
type Content[K, P any] struct {
	Key     K
	Payload P
}

type node[K, P any] struct {
	content Content[K, P]
	parent  arena.Index
	left    arena.Index
	right   arena.Index
}

func newNode[K, P any](key K, payload P, parent arena.Index) node[K, P] {
	return node[K, P]{
		content: Content[K, P]{Key: key, Payload: payload},
		parent:  parent,
		left:    arena.NoIndex,
		right:   arena.NoIndex,
	}
}

type stepKind uint8

const (
	stepNext        stepKind = iota // descend to step.next
	stepInsertLeft                  // query belongs in the empty left child
	stepInsertRight                 // query belongs in the empty right child
	stepCurrent                     // this node matches the query
)

type step struct {
	kind stepKind
	next arena.Index
}

// traverseTowards compares the query against the node's key and tells where
// a search has to go next.
func (n *node[K, P]) traverseTowards(probe Probe[K]) step {
	c := probe(n.content.Key)
	switch {
	case c > 0:
		if !n.right.IsNone() {
			return step{kind: stepNext, next: n.right}
		}
		return step{kind: stepInsertRight}
	case c < 0:
		if !n.left.IsNone() {
			return step{kind: stepNext, next: n.left}
		}
		return step{kind: stepInsertLeft}
	}
	return step{kind: stepCurrent}
}

package slottree

import (
	"iter"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/slottree/arena"
)

// fallMin descends left child links to the minimum of the subtree at index.
func (t *Tree[K, P]) fallMin(at arena.Index) arena.Index {
	for {
		left := t.nodes.View(at).left
		if left.IsNone() {
			return at
		}
		at = left
	}
}

// fallMax descends right child links to the maximum of the subtree at index.
func (t *Tree[K, P]) fallMax(at arena.Index) arena.Index {
	for {
		right := t.nodes.View(at).right
		if right.IsNone() {
			return at
		}
		at = right
	}
}

// climb ascends parent links to the in-order successor of a node without a
// right subtree. Parents reached from their right child have already been
// visited and are climbed past. Returns NoIndex once the root is passed.
func (t *Tree[K, P]) climb(from arena.Index) arena.Index {
	for {
		parent := t.nodes.View(from).parent
		if parent.IsNone() {
			return arena.NoIndex
		}
		if t.nodes.View(parent).right == from {
			from = parent
			continue
		}
		return parent
	}
}

// successor returns the next node in key order, or NoIndex.
func (t *Tree[K, P]) successor(at arena.Index) arena.Index {
	if right := t.nodes.View(at).right; !right.IsNone() {
		return t.fallMin(right)
	}
	return t.climb(at)
}

// Iterator walks nodes of a tree in ascending key order.
//
// An iterator is valid until the next mutation of its tree. Using it after a
// mutation panics. It cannot be restarted; request a new one from the tree.
type Iterator[K, P any] struct {
	tree  *Tree[K, P]
	at    arena.Index
	epoch uint64
}

// Iterate returns an iterator positioned on the smallest key.
func (t *Tree[K, P]) Iterate() *Iterator[K, P] {
	if t.IsEmpty() {
		return t.iteratorAt(arena.NoIndex)
	}
	return t.iteratorAt(t.fallMin(t.root))
}

// All returns a sequence of all key/payload pairs in ascending key order.
func (t *Tree[K, P]) All() iter.Seq2[K, P] {
	return func(yield func(K, P) bool) {
		for it := t.Iterate(); it.Valid(); it.Next() {
			c := it.Content()
			if !yield(c.Key, c.Payload) {
				return
			}
		}
	}
}

// Keys returns a sequence of all keys in ascending order.
func (t *Tree[K, P]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (t *Tree[K, P]) iteratorAt(at arena.Index) *Iterator[K, P] {
	it := &Iterator[K, P]{tree: t, at: at}
	if t != nil {
		it.epoch = t.epoch
	}
	return it
}

// Valid reports whether the iterator is positioned on a node.
func (it *Iterator[K, P]) Valid() bool {
	if it == nil || it.at.IsNone() {
		return false
	}
	it.checkEpoch()
	return true
}

// Content returns key and payload of the current node.
func (it *Iterator[K, P]) Content() Content[K, P] {
	assert(it.Valid(), "content of exhausted iterator")
	return it.tree.nodes.View(it.at).content
}

// Key returns the key of the current node.
func (it *Iterator[K, P]) Key() K {
	return it.Content().Key
}

// Payload returns the payload of the current node.
func (it *Iterator[K, P]) Payload() P {
	return it.Content().Payload
}

// Next advances to the node with the next larger key. After the largest key
// the iterator is exhausted.
func (it *Iterator[K, P]) Next() {
	if !it.Valid() {
		return
	}
	it.at = it.tree.successor(it.at)
}

func (it *Iterator[K, P]) checkEpoch() {
	if it.epoch != it.tree.epoch {
		panic(errors.AssertionFailedf("slottree: iterator used after tree mutation"))
	}
}

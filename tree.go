package slottree

import (
	"cmp"

	"github.com/npillmayer/slottree/arena"
)

// Tree is an ordered key/payload container. Nodes are kept in an arena and
// linked by slot index.
//
// K is the key type, ordered by the configured compare function. P is the
// payload type, which is carried without interpretation.
//
// Trees must be created with New or NewOrdered.
type Tree[K, P any] struct {
	cfg   Config[K]
	nodes *arena.Arena[node[K, P]]
	root  arena.Index
	count int
	epoch uint64 // incremented on every mutation, checked by iterators
}

// New creates an empty tree with validated configuration.
func New[K, P any](cfg Config[K]) (*Tree[K, P], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K, P]{
		cfg:   cfg,
		nodes: arena.New[node[K, P]](cfg.SizeHint),
		root:  arena.NoIndex,
	}, nil
}

// NewOrdered creates an empty tree for keys which support the '<' operator.
func NewOrdered[K cmp.Ordered, P any]() *Tree[K, P] {
	tree, err := New[K, P](OrderedConfig[K]())
	assert(err == nil, "ordered configuration rejected")
	return tree
}

// Config returns a copy of the tree configuration.
func (t *Tree[K, P]) Config() Config[K] {
	return t.cfg
}

// IsEmpty reports whether the tree has no nodes. A zero Tree, not created by
// New, is empty.
func (t *Tree[K, P]) IsEmpty() bool {
	return t == nil || t.nodes == nil || t.root.IsNone()
}

// Len returns the number of nodes in the tree.
func (t *Tree[K, P]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Stats returns slot usage of the tree's arena.
func (t *Tree[K, P]) Stats() arena.Stats {
	if t == nil {
		return arena.Stats{}
	}
	return t.nodes.Stats()
}

// Root returns the content of the root node, or false for an empty tree.
func (t *Tree[K, P]) Root() (Content[K, P], bool) {
	if t.IsEmpty() {
		return Content[K, P]{}, false
	}
	return t.nodes.View(t.root).content, true
}

// Min returns the content with the smallest key, or false for an empty tree.
func (t *Tree[K, P]) Min() (Content[K, P], bool) {
	if t.IsEmpty() {
		return Content[K, P]{}, false
	}
	return t.nodes.View(t.fallMin(t.root)).content, true
}

// Max returns the content with the largest key, or false for an empty tree.
func (t *Tree[K, P]) Max() (Content[K, P], bool) {
	if t.IsEmpty() {
		return Content[K, P]{}, false
	}
	return t.nodes.View(t.fallMax(t.root)).content, true
}

// Insert adds key with payload to the tree.
//
// If the key is new, Insert returns true and an iterator positioned on the new
// node. If a node with an equal key exists, the tree is left unchanged and
// Insert returns false with an iterator positioned on the existing node.
func (t *Tree[K, P]) Insert(key K, payload P) (bool, *Iterator[K, P]) {
	assert(t != nil, "insert into nil tree")
	assert(t.nodes != nil, "insert into tree not created by New")
	if t.root.IsNone() {
		t.root = t.nodes.Alloc(newNode(key, payload, arena.NoIndex))
		t.count++
		t.mutated()
		tracer().Debugf("slottree: new root %s", t.root)
		return true, t.iteratorAt(t.root)
	}
	probe := t.probeFor(key)
	at := t.root
	for {
		n := t.nodes.View(at)
		s := n.traverseTowards(probe)
		switch s.kind {
		case stepNext:
			at = s.next
		case stepInsertLeft, stepInsertRight:
			child := t.nodes.Alloc(newNode(key, payload, at))
			parent := t.nodes.Modify(at)
			if s.kind == stepInsertLeft {
				parent.left = child
			} else {
				parent.right = child
			}
			t.count++
			t.mutated()
			return true, t.iteratorAt(child)
		case stepCurrent:
			return false, t.iteratorAt(at)
		}
	}
}

// Get returns the payload stored for key.
func (t *Tree[K, P]) Get(key K) (P, bool) {
	var zero P
	if t.IsEmpty() {
		return zero, false
	}
	at, found := t.locate(t.probeFor(key))
	if !found {
		return zero, false
	}
	return t.nodes.View(at).content.Payload, true
}

// Contains reports whether the tree holds a node for key.
func (t *Tree[K, P]) Contains(key K) bool {
	_, found := t.Get(key)
	return found
}

// Find searches for the node matching probe and returns an iterator
// positioned on it. If no node matches, Find returns false and an exhausted
// iterator.
func (t *Tree[K, P]) Find(probe Probe[K]) (*Iterator[K, P], bool) {
	if t.IsEmpty() {
		return t.iteratorAt(arena.NoIndex), false
	}
	at, found := t.locate(probe)
	if !found {
		return t.iteratorAt(arena.NoIndex), false
	}
	return t.iteratorAt(at), true
}

// Remove deletes the node for key. It returns false if key is not present,
// in which case the tree is unchanged.
func (t *Tree[K, P]) Remove(key K) bool {
	if t.IsEmpty() {
		return false
	}
	return t.RemoveProbe(t.probeFor(key))
}

// RemoveProbe deletes the node matching probe. It returns false if no node
// matches, in which case the tree is unchanged.
func (t *Tree[K, P]) RemoveProbe(probe Probe[K]) bool {
	if t.IsEmpty() {
		return false
	}
	at, found := t.locate(probe)
	if !found {
		return false
	}
	t.removeNode(at)
	t.count--
	t.mutated()
	return true
}

// locate walks from the root towards probe. It returns the matching node, or
// false if the walk ends at an empty child link.
func (t *Tree[K, P]) locate(probe Probe[K]) (arena.Index, bool) {
	at := t.root
	for {
		n := t.nodes.View(at)
		s := n.traverseTowards(probe)
		switch s.kind {
		case stepNext:
			at = s.next
		case stepCurrent:
			return at, true
		default:
			return arena.NoIndex, false
		}
	}
}

func (t *Tree[K, P]) probeFor(key K) Probe[K] {
	compare := t.cfg.Compare
	return func(other K) int {
		return compare(key, other)
	}
}

func (t *Tree[K, P]) mutated() {
	t.epoch++
}

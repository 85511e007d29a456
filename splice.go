package slottree

import (
	"github.com/cockroachdb/errors"
	"github.com/npillmayer/slottree/arena"
)

// removeNode splices the node at index out of the tree and frees its slot.
//
// The parent link is verified before anything is modified; a parent not
// pointing to the node means the tree is corrupt and removeNode panics.
func (t *Tree[K, P]) removeNode(at arena.Index) {
	n := t.nodes.View(at)
	isLeft := false
	if n.parent.IsNone() {
		assert(t.root == at, "parentless node is not the root")
	} else {
		parent := t.nodes.View(n.parent)
		switch at {
		case parent.left:
			isLeft = true
		case parent.right:
		default:
			panic(errors.AssertionFailedf(
				"slottree: broken tree, parent %s does not link to child %s (left=%s, right=%s)",
				n.parent, at, parent.left, parent.right))
		}
	}
	assert(t.nodes.Free(at), "removed node was not live")
	replacement := t.rebuildTree(n.left, n.right, n.parent)
	if n.parent.IsNone() {
		tracer().Debugf("slottree: root %s replaced by %s", at, replacement)
		t.root = replacement
		return
	}
	parent := t.nodes.Modify(n.parent)
	if isLeft {
		parent.left = replacement
	} else {
		parent.right = replacement
	}
}

// rebuildTree joins the orphaned subtrees left and right of a removed node
// into a single subtree hanging from newParent, and returns its root.
//
// With two subtrees, left becomes the replacement and right is attached as the
// right child of the maximum of left. Every key in right is greater than every
// key in left, so ordering is preserved.
func (t *Tree[K, P]) rebuildTree(left, right, newParent arena.Index) arena.Index {
	switch {
	case left.IsNone() && right.IsNone():
		return arena.NoIndex
	case right.IsNone():
		t.nodes.Modify(left).parent = newParent
		return left
	case left.IsNone():
		t.nodes.Modify(right).parent = newParent
		return right
	}
	t.nodes.Modify(left).parent = newParent
	rightmost := t.fallMax(left)
	t.nodes.Modify(rightmost).right = right
	t.nodes.Modify(right).parent = rightmost
	tracer().Debugf("slottree: splice, right subtree %s moved below %s", right, rightmost)
	return left
}

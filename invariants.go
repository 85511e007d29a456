package slottree

import (
	"github.com/cockroachdb/errors"
	"github.com/npillmayer/slottree/arena"
)

// Check validates the structural invariants of the tree: key ordering,
// parent/child consistency, absence of cycles, liveness of every linked slot,
// and agreement of the node count with the arena.
//
// Check is meant for tests and debugging. It visits every node.
func (t *Tree[K, P]) Check() error {
	if t == nil {
		return errors.Wrap(ErrInvalidConfig, "nil tree")
	}
	if t.nodes == nil {
		return errors.Wrap(ErrInvalidConfig, "tree not created by New")
	}
	if live := t.nodes.Len(); live != t.count {
		return errors.Wrapf(ErrCorrupted, "tree counts %d nodes, arena holds %d", t.count, live)
	}
	if t.root.IsNone() {
		if t.count != 0 {
			return errors.Wrapf(ErrCorrupted, "empty tree with count %d", t.count)
		}
		return nil
	}
	if !t.nodes.Live(t.root) {
		return errors.Wrapf(ErrCorrupted, "root %s is a dead slot", t.root)
	}
	if parent := t.nodes.View(t.root).parent; !parent.IsNone() {
		return errors.Wrapf(ErrCorrupted, "root %s has parent %s", t.root, parent)
	}
	// lo and hi are the nearest ancestors bounding a subtree's keys.
	type frame struct {
		at, lo, hi arena.Index
	}
	seen := make(map[arena.Index]bool, t.count)
	stack := []frame{{at: t.root, lo: arena.NoIndex, hi: arena.NoIndex}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[f.at] {
			return errors.Wrapf(ErrCorrupted, "node %s reached twice", f.at)
		}
		seen[f.at] = true
		n := t.nodes.View(f.at)
		key := n.content.Key
		if !f.lo.IsNone() && t.cfg.Compare(t.nodes.View(f.lo).content.Key, key) >= 0 {
			return errors.Wrapf(ErrCorrupted, "node %s not greater than ancestor %s", f.at, f.lo)
		}
		if !f.hi.IsNone() && t.cfg.Compare(key, t.nodes.View(f.hi).content.Key) >= 0 {
			return errors.Wrapf(ErrCorrupted, "node %s not less than ancestor %s", f.at, f.hi)
		}
		for _, child := range []frame{
			{at: n.left, lo: f.lo, hi: f.at},
			{at: n.right, lo: f.at, hi: f.hi},
		} {
			if child.at.IsNone() {
				continue
			}
			if !t.nodes.Live(child.at) {
				return errors.Wrapf(ErrCorrupted, "node %s links to dead slot %s", f.at, child.at)
			}
			if p := t.nodes.View(child.at).parent; p != f.at {
				return errors.Wrapf(ErrCorrupted, "child %s of %s records parent %s", child.at, f.at, p)
			}
			stack = append(stack, child)
		}
	}
	if len(seen) != t.count {
		return errors.Wrapf(ErrCorrupted, "reached %d of %d nodes", len(seen), t.count)
	}
	return nil
}

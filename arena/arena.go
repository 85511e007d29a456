package arena

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Index addresses a slot of an arena.
type Index int

// NoIndex is the null link. It never addresses a slot.
const NoIndex Index = -1

// IsNone reports whether i is the null link.
func (i Index) IsNone() bool {
	return i < 0
}

func (i Index) String() string {
	if i.IsNone() {
		return "none"
	}
	return fmt.Sprintf("#%d", int(i))
}

type slot[N any] struct {
	node N
	live bool
}

// Arena is a pool of optional node slots with a free-list for reuse.
//
// The zero value is an empty arena ready to use.
type Arena[N any] struct {
	slots []slot[N]
	free  []Index // stack of reusable slot indices
}

// Stats reports slot usage of an arena.
type Stats struct {
	Slots int // total slots allocated so far
	Live  int // occupied slots
	Free  int // slots waiting for reuse
}

func (s Stats) String() string {
	return fmt.Sprintf("slots=%d live=%d free=%d", s.Slots, s.Live, s.Free)
}

// New creates an empty arena with room for hint nodes before growing.
func New[N any](hint int) *Arena[N] {
	if hint < 0 {
		hint = 0
	}
	return &Arena[N]{slots: make([]slot[N], 0, hint)}
}

// Alloc stores node in a slot and returns its index. The most recently freed
// slot is reused first; otherwise a new slot is appended.
//
// Pointers obtained from Modify may be invalidated by Alloc.
func (a *Arena[N]) Alloc(node N) Index {
	if n := len(a.free); n > 0 {
		index := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[index] = slot[N]{node: node, live: true}
		tracer().Debugf("arena: reusing slot %s", index)
		return index
	}
	a.slots = append(a.slots, slot[N]{node: node, live: true})
	return Index(len(a.slots) - 1)
}

// Free drops the content of a slot and puts its index on the free-list.
// Free returns false if the slot is already empty.
func (a *Arena[N]) Free(index Index) bool {
	a.checkBounds(index)
	s := &a.slots[index]
	if !s.live {
		return false
	}
	var zero N
	s.node, s.live = zero, false
	a.free = append(a.free, index)
	tracer().Debugf("arena: freed slot %s", index)
	return true
}

// View returns a copy of the node stored at index. The slot must be occupied.
func (a *Arena[N]) View(index Index) N {
	a.checkBounds(index)
	if !a.slots[index].live {
		panic(errors.AssertionFailedf("arena: requested access to a dead node: %d", int(index)))
	}
	return a.slots[index].node
}

// Modify returns a pointer to the node stored at index. The slot must be
// occupied. The pointer is valid until the next call to Alloc.
func (a *Arena[N]) Modify(index Index) *N {
	a.checkBounds(index)
	if !a.slots[index].live {
		panic(errors.AssertionFailedf("arena: requested mutable access to a dead node: %d", int(index)))
	}
	return &a.slots[index].node
}

// Live reports whether index addresses an occupied slot.
func (a *Arena[N]) Live(index Index) bool {
	if a == nil || index < 0 || int(index) >= len(a.slots) {
		return false
	}
	return a.slots[index].live
}

// Len returns the number of occupied slots.
func (a *Arena[N]) Len() int {
	if a == nil {
		return 0
	}
	return len(a.slots) - len(a.free)
}

// Cap returns the number of slots, occupied or not.
func (a *Arena[N]) Cap() int {
	if a == nil {
		return 0
	}
	return len(a.slots)
}

// Stats returns the current slot usage.
func (a *Arena[N]) Stats() Stats {
	if a == nil {
		return Stats{}
	}
	return Stats{
		Slots: len(a.slots),
		Live:  a.Len(),
		Free:  len(a.free),
	}
}

func (a *Arena[N]) checkBounds(index Index) {
	if index < 0 || int(index) >= len(a.slots) {
		panic(errors.AssertionFailedf("arena: slot index %d out of range [0,%d)", int(index), len(a.slots)))
	}
}

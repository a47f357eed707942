// Package multiset implements an ordered multiset of int64 values backed by a
// treap (randomized BST). It is the storage behind both the min/max mirror and
// the two median halves.
//
// Duplicates are stored as a per-node count rather than as separate nodes, so
// a run of equal values costs one node regardless of its length. Subtree sizes
// aggregate counts, which keeps Len O(1) and leaves room for rank queries if
// they are ever needed.
//
// Expected costs: Insert/Delete O(log n), Min/Max O(log n) (a walk down one
// spine), Len O(1). The random priorities keep the tree balanced with high
// probability without any explicit rebalancing bookkeeping.
package multiset

import "math/rand/v2"

// node is one distinct value with its occurrence count.
type node struct {
	value    int64
	priority uint64 // max-heap property shapes the tree
	count    int    // occurrences of value
	size     int    // total occurrences in subtree, counts included
	left     *node
	right    *node
}

// nodeSize tolerates nil so recursive paths skip nil checks.
func nodeSize(n *node) int {
	if n == nil {
		return 0
	}
	return n.size
}

// pull recomputes the subtree occurrence total after any child change.
func pull(n *node) {
	if n != nil {
		n.size = n.count + nodeSize(n.left) + nodeSize(n.right)
	}
}

// rotateRight lifts the left child; BST order is preserved, heap property
// restored. Returns the new subtree root.
func rotateRight(n *node) *node {
	l := n.left
	n.left = l.right
	l.right = n
	pull(n)
	pull(l)
	return l
}

// rotateLeft is the mirror of rotateRight.
func rotateLeft(n *node) *node {
	r := n.right
	n.right = r.left
	r.left = n
	pull(n)
	pull(r)
	return r
}

// insert descends to the value's position, then rotates up while the new
// node's priority beats its parent's. An existing value just bumps its count.
func insert(n *node, v int64, prio uint64) *node {
	if n == nil {
		return &node{value: v, priority: prio, count: 1, size: 1}
	}
	switch {
	case v == n.value:
		n.count++
	case v < n.value:
		n.left = insert(n.left, v, prio)
		if n.left.priority > n.priority {
			n = rotateRight(n)
		}
	default:
		n.right = insert(n.right, v, prio)
		if n.right.priority > n.priority {
			n = rotateLeft(n)
		}
	}
	pull(n)
	return n
}

// remove drops one occurrence of v. When the last occurrence goes, the node
// is rotated down to a leaf position and unlinked, preserving the heap
// property among its children. Reports whether an occurrence existed.
func remove(n *node, v int64) (*node, bool) {
	if n == nil {
		return nil, false
	}
	var ok bool
	switch {
	case v < n.value:
		n.left, ok = remove(n.left, v)
	case v > n.value:
		n.right, ok = remove(n.right, v)
	default:
		ok = true
		if n.count > 1 {
			n.count--
			pull(n)
			return n, true
		}
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}
		if n.left.priority > n.right.priority {
			n = rotateRight(n)
			n.right, _ = remove(n.right, v)
		} else {
			n = rotateLeft(n)
			n.left, _ = remove(n.left, v)
		}
	}
	pull(n)
	return n, ok
}

// Multiset is an ordered collection of int64 values with duplicates.
// The zero value is ready to use.
type Multiset struct {
	root *node
}

// New returns an empty multiset.
func New() *Multiset {
	return new(Multiset)
}

// Len returns the total number of occurrences (duplicates counted).
func (m *Multiset) Len() int {
	return nodeSize(m.root)
}

// Insert adds one occurrence of v.
func (m *Multiset) Insert(v int64) {
	m.root = insert(m.root, v, rand.Uint64())
}

// Delete removes one occurrence of v, reporting whether one existed.
// Absent values are a no-op.
func (m *Multiset) Delete(v int64) bool {
	var ok bool
	m.root, ok = remove(m.root, v)
	return ok
}

// Contains reports whether at least one occurrence of v is present.
func (m *Multiset) Contains(v int64) bool {
	n := m.root
	for n != nil {
		switch {
		case v < n.value:
			n = n.left
		case v > n.value:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Min returns the smallest value, or false when the multiset is empty.
func (m *Multiset) Min() (int64, bool) {
	n := m.root
	if n == nil {
		return 0, false
	}
	for n.left != nil {
		n = n.left
	}
	return n.value, true
}

// Max returns the largest value, or false when the multiset is empty.
func (m *Multiset) Max() (int64, bool) {
	n := m.root
	if n == nil {
		return 0, false
	}
	for n.right != nil {
		n = n.right
	}
	return n.value, true
}

// Clear empties the multiset.
func (m *Multiset) Clear() {
	m.root = nil
}

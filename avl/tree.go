// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl

import "cmp"

// Tree is an AVL tree of values of type T. Use New or NewFunc; the zero
// value has no comparator and is not usable.
type Tree[T any] struct {
	root   *node[T]
	cmp    func(a, b T) int
	opts   options
	size   int
	nextID NodeID
	rot    RotationCounts
}

// New returns an empty tree ordered by the natural order of T.
func New[T cmp.Ordered](opts ...Option) *Tree[T] {
	return NewFunc(cmp.Compare[T], opts...)
}

// NewFunc returns an empty tree ordered by compare, which must return a
// negative number, zero or a positive number when a is less than, equal to
// or greater than b, and must describe a total order.
func NewFunc[T any](compare func(a, b T) int, opts ...Option) *Tree[T] {
	t := &Tree[T]{cmp: compare}
	for _, opt := range opts {
		opt(&t.opts)
	}
	return t
}

// Duplicates reports the duplicate policy the tree was built with.
func (t *Tree[T]) Duplicates() DuplicatePolicy {
	return t.opts.duplicates
}

// Insert adds v to the tree. It reports whether a node was allocated, which
// is always the case unless the tree rejects duplicates and v is present.
func (t *Tree[T]) Insert(v T) bool {
	var added bool
	t.root, added = t.insert(t.root, v)
	if added {
		t.size++
	}
	return added
}

func (t *Tree[T]) insert(n *node[T], v T) (*node[T], bool) {
	if n == nil {
		t.nextID++
		return &node[T]{id: t.nextID, value: v, height: 1}, true
	}

	c := t.cmp(v, n.value)
	if c == 0 && t.opts.duplicates == DuplicatesReject {
		return n, false
	}

	var added bool
	if c < 0 {
		n.left, added = t.insert(n.left, v)
	} else {
		// equal values go right
		n.right, added = t.insert(n.right, v)
	}

	n.updateHeight()
	return t.rebalance(n), added
}

// Remove deletes one node holding a value equal to v and reports whether
// such a node existed. Removing from an empty tree, or removing an absent
// value, leaves the tree unchanged.
func (t *Tree[T]) Remove(v T) bool {
	if t.root == nil {
		return false
	}
	var found bool
	t.root, found = t.remove(t.root, v)
	if found {
		t.size--
	}
	return found
}

func (t *Tree[T]) remove(n *node[T], v T) (*node[T], bool) {
	if n == nil {
		return nil, false
	}

	var found bool
	switch c := t.cmp(v, n.value); {
	case c < 0:
		n.left, found = t.remove(n.left, v)
	case c > 0:
		n.right, found = t.remove(n.right, v)
	default:
		found = true
		switch {
		case n.left == nil && n.right == nil:
			return nil, true
		case n.left == nil:
			// A lone right child is a leaf: its height can't exceed 1.
			n.value = n.right.value
			n.right = nil
		default:
			var pred *node[T]
			n.left, pred = t.detachMax(n.left)
			n.value = pred.value
		}
	}

	n.updateHeight()
	return t.rebalance(n), found
}

// detachMax unlinks the rightmost node of the subtree rooted at n. It returns
// the rebalanced remainder of the subtree and the detached node. The
// detached node's left child takes its place.
func (t *Tree[T]) detachMax(n *node[T]) (rest, top *node[T]) {
	if n.right == nil {
		rest, n.left = n.left, nil
		return rest, n
	}
	n.right, top = t.detachMax(n.right)
	n.updateHeight()
	return t.rebalance(n), top
}

// Contains reports whether a value equal to v is stored.
func (t *Tree[T]) Contains(v T) bool {
	n := t.root
	for n != nil {
		c := t.cmp(v, n.value)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Min returns the smallest value, or false when the tree is empty.
func (t *Tree[T]) Min() (T, bool) {
	var zero T
	if t.root == nil {
		return zero, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.value, true
}

// Max returns the largest value, or false when the tree is empty.
func (t *Tree[T]) Max() (T, bool) {
	var zero T
	if t.root == nil {
		return zero, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.value, true
}

// Len returns the number of nodes.
func (t *Tree[T]) Len() int {
	return t.size
}

// IsEmpty reports whether the tree holds no nodes.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Height returns the cached height of the root, 0 for an empty tree.
func (t *Tree[T]) Height() int {
	return heightOf(t.root)
}

// Clear drops every node and resets the rotation counters.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
	t.rot = RotationCounts{}
}

// Stats is a snapshot of the tree's shape and rebalancing history.
type Stats struct {
	Nodes     int
	Height    int
	Rotations RotationCounts
}

// Stats returns the current statistics.
func (t *Tree[T]) Stats() Stats {
	return Stats{
		Nodes:     t.size,
		Height:    t.Height(),
		Rotations: t.rot,
	}
}

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

import "iter"

// NodeInfo is a read-only view of one node handed to Walk callbacks.
// Left and Right are NoNode when the child is absent.
type NodeInfo[T any] struct {
	ID     NodeID
	Value  T
	Height int
	Diff   int
	Left   NodeID
	Right  NodeID
}

// IsLeaf reports whether the node has no children.
func (ni NodeInfo[T]) IsLeaf() bool {
	return ni.Left == NoNode && ni.Right == NoNode
}

// Walk calls fn for every node in pre-order (node, left subtree, right
// subtree). Returning false from fn stops the walk. fn must not modify the
// tree.
func (t *Tree[T]) Walk(fn func(NodeInfo[T]) bool) {
	walk(t.root, fn)
}

func walk[T any](n *node[T], fn func(NodeInfo[T]) bool) bool {
	if n == nil {
		return true
	}
	info := NodeInfo[T]{
		ID:     n.id,
		Value:  n.value,
		Height: n.height,
		Diff:   n.diff(),
		Left:   idOf(n.left),
		Right:  idOf(n.right),
	}
	if !fn(info) {
		return false
	}
	return walk(n.left, fn) && walk(n.right, fn)
}

// InOrder returns every stored value in ascending order. Duplicates appear
// once per node.
func (t *Tree[T]) InOrder() []T {
	out := make([]T, 0, t.size)
	for v := range t.All() {
		out = append(out, v)
	}
	return out
}

// All returns an iterator over the stored values in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		inOrder(t.root, yield)
	}
}

func inOrder[T any](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.left, yield) && yield(n.value) && inOrder(n.right, yield)
}

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

// RotationCounts tallies the rebalancing steps taken since the tree was
// created or last cleared. A double rotation counts once, under its own kind.
type RotationCounts struct {
	Left      uint64
	Right     uint64
	RightLeft uint64
	LeftRight uint64
}

// Total returns the number of rebalancing steps of any kind.
func (r RotationCounts) Total() uint64 {
	return r.Left + r.Right + r.RightLeft + r.LeftRight
}

// rebalance restores the balance of n, whose children are balanced and whose
// height is up to date, and returns the root of the resulting subtree.
func (t *Tree[T]) rebalance(n *node[T]) *node[T] {
	switch d := n.diff(); {
	case d > 1:
		if n.right.diff() >= 0 {
			t.rot.Left++
			return rotateLeft(n)
		}
		t.rot.RightLeft++
		return rotateRightLeft(n)
	case d < -1:
		if n.left.diff() <= 0 {
			t.rot.Right++
			return rotateRight(n)
		}
		t.rot.LeftRight++
		return rotateLeftRight(n)
	}
	return n
}

// rotateLeft
//
//	  Y              X
//	 / \            / \
//	a   X    ->    Y   c
//	   / \        / \
//	  b   c      a   b
func rotateLeft[T any](y *node[T]) *node[T] {
	x := y.right
	y.right = x.left
	x.left = y

	y.updateHeight()
	x.updateHeight()
	return x
}

// rotateRight
//
//	    Y          X
//	   / \        / \
//	  X   c  ->  a   Y
//	 / \            / \
//	a   b          b   c
func rotateRight[T any](y *node[T]) *node[T] {
	x := y.left
	y.left = x.right
	x.right = y

	y.updateHeight()
	x.updateHeight()
	return x
}

// rotateRightLeft
//
//	  Z                X
//	 / \             /   \
//	a   Y           Z     Y
//	   / \    ->   / \   / \
//	  X   d       a   b c   d
//	 / \
//	b   c
func rotateRightLeft[T any](z *node[T]) *node[T] {
	z.right = rotateRight(z.right)
	return rotateLeft(z)
}

// rotateLeftRight
//
//	    Z              X
//	   / \           /   \
//	  Y   d         Y     Z
//	 / \      ->   / \   / \
//	a   X         a   b c   d
//	   / \
//	  b   c
func rotateLeftRight[T any](z *node[T]) *node[T] {
	z.left = rotateLeft(z.left)
	return rotateRight(z)
}

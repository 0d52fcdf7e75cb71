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

// NodeID identifies a node for the lifetime of the tree that allocated it.
// IDs are never reused by the same tree.
type NodeID uint64

// NoNode stands for an absent child in NodeInfo.
const NoNode NodeID = 0

type node[T any] struct {
	id     NodeID
	value  T
	height int
	left   *node[T]
	right  *node[T]
}

func heightOf[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// updateHeight refreshes the cached height from the children. Not recursive.
func (n *node[T]) updateHeight() {
	n.height = max(heightOf(n.left), heightOf(n.right)) + 1
}

// diff is the balance factor: height(right) - height(left).
func (n *node[T]) diff() int {
	if n == nil {
		return 0
	}
	return heightOf(n.right) - heightOf(n.left)
}

func idOf[T any](n *node[T]) NodeID {
	if n == nil {
		return NoNode
	}
	return n.id
}

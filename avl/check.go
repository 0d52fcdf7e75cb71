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

import (
	"errors"
	"fmt"
	"math"
)

// Kinds of structural damage reported by Verify.
var (
	ErrUnbalanced   = errors.New("balance factor out of range")
	ErrStaleHeight  = errors.New("stale cached height")
	ErrOutOfOrder   = errors.New("values out of order")
	ErrSizeMismatch = errors.New("node count mismatch")
)

// InvariantError describes the first violation found by Verify.
// errors.Is matches it against its Kind.
type InvariantError struct {
	Kind   error
	Node   NodeID
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("avl: %v at node %d: %s", e.Kind, e.Node, e.Detail)
}

func (e *InvariantError) Unwrap() error {
	return e.Kind
}

// CheckInvariant walks the whole tree and returns how many nodes have a
// balance factor of magnitude 2 or more. It is 0 for a healthy tree.
func (t *Tree[T]) CheckInvariant() int {
	return countUnbalanced(t.root)
}

func countUnbalanced[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	count := countUnbalanced(n.left) + countUnbalanced(n.right)
	if d := n.diff(); d >= 2 || d <= -2 {
		count++
	}
	return count
}

// Verify audits ordering, cached heights, balance and the node count, and
// returns an *InvariantError for the first problem met in in-order position.
func (t *Tree[T]) Verify() error {
	var (
		prev  *node[T]
		count int
	)

	var visit func(n *node[T]) error
	visit = func(n *node[T]) error {
		if n == nil {
			return nil
		}
		if err := visit(n.left); err != nil {
			return err
		}

		if want := max(heightOf(n.left), heightOf(n.right)) + 1; n.height != want {
			return &InvariantError{
				Kind:   ErrStaleHeight,
				Node:   n.id,
				Detail: fmt.Sprintf("cached height %d, children give %d", n.height, want),
			}
		}
		if d := n.diff(); d < -1 || d > 1 {
			return &InvariantError{
				Kind:   ErrUnbalanced,
				Node:   n.id,
				Detail: fmt.Sprintf("diff %d", d),
			}
		}
		if prev != nil && t.cmp(prev.value, n.value) > 0 {
			return &InvariantError{
				Kind:   ErrOutOfOrder,
				Node:   n.id,
				Detail: fmt.Sprintf("%v follows %v", n.value, prev.value),
			}
		}
		prev = n
		count++

		return visit(n.right)
	}

	if err := visit(t.root); err != nil {
		return err
	}
	if count != t.size {
		return &InvariantError{
			Kind:   ErrSizeMismatch,
			Node:   idOf(t.root),
			Detail: fmt.Sprintf("walked %d nodes, tree reports %d", count, t.size),
		}
	}
	return nil
}

// HeightBound is the AVL worst-case height ceil(1.44 * log2(n+2)) for a tree
// of n nodes.
func HeightBound(n int) int {
	if n < 0 {
		n = 0
	}
	return int(math.Ceil(1.44 * math.Log2(float64(n+2))))
}

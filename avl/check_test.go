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
	"testing"

	"github.com/stretchr/testify/require"
)

// chain links values into a right-leaning list with correct heights, which
// the public API would never produce.
func chain(t *Tree[int], values ...int) {
	var build func(i int) *node[int]
	build = func(i int) *node[int] {
		if i == len(values) {
			return nil
		}
		t.nextID++
		n := &node[int]{id: t.nextID, value: values[i]}
		n.right = build(i + 1)
		n.updateHeight()
		return n
	}
	t.root = build(0)
	t.size = len(values)
}

func TestCheckInvariantCountsViolations(t *testing.T) {
	tree := New[int]()
	chain(tree, 1, 2, 3, 4)

	// diffs along the chain are +3, +2, +1, 0
	require.Equal(t, 2, tree.CheckInvariant())

	err := tree.Verify()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnbalanced))
}

func TestVerifyDetectsStaleHeight(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{2, 1, 3} {
		tree.Insert(v)
	}
	tree.root.left.height = 5

	var ie *InvariantError
	err := tree.Verify()
	require.ErrorAs(t, err, &ie)
	require.ErrorIs(t, err, ErrStaleHeight)
	require.Equal(t, tree.root.left.id, ie.Node)
}

func TestVerifyDetectsOrderAndSize(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{2, 1, 3} {
		tree.Insert(v)
	}
	tree.root.left.value = 10
	require.ErrorIs(t, tree.Verify(), ErrOutOfOrder)

	tree.root.left.value = 1
	tree.size = 7
	require.ErrorIs(t, tree.Verify(), ErrSizeMismatch)
}

func TestRebalanceFixesEveryCase(t *testing.T) {
	tests := []struct {
		name  string
		build func() *node[int]
	}{
		{"right-right", func() *node[int] { return shape(1, nil, shape(2, nil, leaf(3))) }},
		{"right-left", func() *node[int] { return shape(1, nil, shape(3, leaf(2), nil)) }},
		{"left-left", func() *node[int] { return shape(3, shape(2, leaf(1), nil), nil) }},
		{"left-right", func() *node[int] { return shape(3, shape(1, nil, leaf(2)), nil) }},
		{"right-balanced child", func() *node[int] {
			return shape(1, nil, shape(3, leaf(2), leaf(4)))
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tree := New[int]()
			n := tree.rebalance(tc.build())
			require.LessOrEqual(t, n.diff(), 1)
			require.GreaterOrEqual(t, n.diff(), -1)
			require.Zero(t, countUnbalanced(n))
		})
	}
}

func leaf(v int) *node[int] {
	return &node[int]{value: v, height: 1}
}

func shape(v int, l, r *node[int]) *node[int] {
	n := &node[int]{value: v, left: l, right: r}
	n.updateHeight()
	return n
}

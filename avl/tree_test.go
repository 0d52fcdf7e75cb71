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

package avl_test

import (
	"cmp"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cybrota/sapling/avl"
)

type treeTestCase struct {
	Name          string
	InitialKeys   []int
	KeysToInsert  []int
	KeysToDelete  []int
	ExpectedOrder []int
}

func TestTreeOperations(t *testing.T) {
	testCases := []treeTestCase{
		{
			Name:          "Simple Insertion",
			KeysToInsert:  []int{1, 2, 3},
			ExpectedOrder: []int{1, 2, 3},
		},
		{
			Name:          "Insertion with Balancing (Right-Heavy)",
			InitialKeys:   []int{10},
			KeysToInsert:  []int{20, 30, 40, 50},
			ExpectedOrder: []int{10, 20, 30, 40, 50},
		},
		{
			Name:          "Deletion with Balancing (Left-Heavy)",
			InitialKeys:   []int{30, 20, 10, 40},
			KeysToDelete:  []int{40, 30},
			ExpectedOrder: []int{10, 20},
		},
		{
			Name:          "Mixed Operations",
			InitialKeys:   []int{4, 3},
			KeysToInsert:  []int{5, 2},
			KeysToDelete:  []int{3},
			ExpectedOrder: []int{2, 4, 5},
		},
		{
			Name:          "Delete Everything",
			InitialKeys:   []int{8, 4, 12, 2, 6, 10, 14},
			KeysToDelete:  []int{8, 4, 12, 2, 6, 10, 14},
			ExpectedOrder: []int{},
		},
		{
			Name:          "Delete Absent Values",
			InitialKeys:   []int{1, 2, 3},
			KeysToDelete:  []int{0, 4, 100},
			ExpectedOrder: []int{1, 2, 3},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := avl.New[int]()
			for _, key := range tc.InitialKeys {
				tree.Insert(key)
			}
			for _, key := range tc.KeysToInsert {
				tree.Insert(key)
			}
			for _, key := range tc.KeysToDelete {
				tree.Remove(key)
				require.Zero(t, tree.CheckInvariant(), "after removing %d", key)
			}

			require.Equal(t, tc.ExpectedOrder, tree.InOrder())
			require.Equal(t, len(tc.ExpectedOrder), tree.Len())
			require.NoError(t, tree.Verify())
		})
	}
}

func TestRoundTripScenario(t *testing.T) {
	tree := avl.New[int]()
	for _, v := range []int{50, 30, 60, 10, 70, 40, 50, 45, 0, 14, 18} {
		tree.Insert(v)
		require.Zero(t, tree.CheckInvariant())
	}

	require.Equal(t, []int{0, 10, 14, 18, 30, 40, 45, 50, 50, 60, 70}, tree.InOrder())
	require.Zero(t, tree.CheckInvariant())
	require.NoError(t, tree.Verify())
	require.Equal(t, 11, tree.Len())
}

func TestRotationCases(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   avl.RotationCounts
	}{
		{"left", []int{1, 2, 3}, avl.RotationCounts{Left: 1}},
		{"right", []int{3, 2, 1}, avl.RotationCounts{Right: 1}},
		{"right-left", []int{1, 3, 2}, avl.RotationCounts{RightLeft: 1}},
		{"left-right", []int{3, 1, 2}, avl.RotationCounts{LeftRight: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tree := avl.New[int]()
			for _, v := range tc.values {
				tree.Insert(v)
			}

			root := rootInfo(t, tree)
			require.Equal(t, 2, root.Value, "middle value becomes the sub-root")
			require.Equal(t, 2, root.Height)
			require.Zero(t, root.Diff)
			require.Equal(t, tc.want, tree.Stats().Rotations)
			require.EqualValues(t, 1, tree.Stats().Rotations.Total())
		})
	}
}

func TestRemoveCases(t *testing.T) {
	t.Run("leaf", func(t *testing.T) {
		tree := buildTree(20, 10, 30)
		require.True(t, tree.Remove(30))
		require.Equal(t, []int{10, 20}, tree.InOrder())
		require.Equal(t, 2, tree.Height())
	})

	t.Run("right child only", func(t *testing.T) {
		tree := buildTree(10, 20)
		rootBefore := rootInfo(t, tree)

		require.True(t, tree.Remove(10))

		root := rootInfo(t, tree)
		require.Equal(t, rootBefore.ID, root.ID, "child value is copied into the surviving node")
		require.Equal(t, 20, root.Value)
		require.True(t, root.IsLeaf())
		require.Equal(t, 1, tree.Len())
	})

	t.Run("left child only", func(t *testing.T) {
		tree := buildTree(20, 10)
		require.True(t, tree.Remove(20))

		root := rootInfo(t, tree)
		require.Equal(t, 10, root.Value)
		require.True(t, root.IsLeaf())
	})

	t.Run("two children promotes predecessor", func(t *testing.T) {
		tree := buildTree(20, 10, 30, 5, 15)
		require.True(t, tree.Remove(20))

		root := rootInfo(t, tree)
		require.Equal(t, 15, root.Value)
		require.Equal(t, []int{5, 10, 15, 30}, tree.InOrder())
		require.NoError(t, tree.Verify())
	})

	t.Run("predecessor detach rebalances its ancestors", func(t *testing.T) {
		tree := buildTree(50, 25, 75, 10, 30, 60, 80, 5, 27, 35, 90, 26)
		for _, v := range []int{50, 30, 27, 35} {
			require.True(t, tree.Remove(v))
			require.Zero(t, tree.CheckInvariant(), "after removing %d", v)
			require.NoError(t, tree.Verify())
		}
		require.Equal(t, []int{5, 10, 25, 26, 60, 75, 80, 90}, tree.InOrder())
	})
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	empty := avl.New[int]()
	require.False(t, empty.Remove(42))
	require.True(t, empty.IsEmpty())
	require.Zero(t, empty.Height())

	tree := buildTree(5, 3, 8, 1, 4)
	before := tree.InOrder()
	beforeStats := tree.Stats()

	require.False(t, tree.Remove(7))
	require.False(t, tree.Remove(-1))

	require.Equal(t, before, tree.InOrder())
	require.Equal(t, beforeStats, tree.Stats())
}

func TestDuplicatesAreDistinctNodes(t *testing.T) {
	tree := avl.New[int]()
	for _, v := range []int{7, 7, 3, 7, 9, 3} {
		require.True(t, tree.Insert(v))
	}
	require.Equal(t, []int{3, 3, 7, 7, 7, 9}, tree.InOrder())
	require.Equal(t, avl.DuplicatesRight, tree.Duplicates())

	require.True(t, tree.Remove(7))
	require.Equal(t, []int{3, 3, 7, 7, 9}, tree.InOrder())
	require.True(t, tree.Remove(7))
	require.True(t, tree.Remove(7))
	require.False(t, tree.Remove(7))
	require.Equal(t, []int{3, 3, 9}, tree.InOrder())
	require.NoError(t, tree.Verify())
}

func TestDuplicatesReject(t *testing.T) {
	tree := avl.New[string](avl.WithDuplicates(avl.DuplicatesReject))

	require.True(t, tree.Insert("kiwi"))
	require.True(t, tree.Insert("apple"))
	require.False(t, tree.Insert("kiwi"))

	require.Equal(t, []string{"apple", "kiwi"}, tree.InOrder())
	require.Equal(t, 2, tree.Len())
}

func TestDeletionScenario(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	tree := avl.New[int]()
	for i := 0; i < 100; i++ {
		tree.Insert(rng.Intn(500))
	}
	require.Zero(t, tree.CheckInvariant())

	for _, v := range []int{250, 239, 254, 229, 236, 226, 211, 229, 198, 178, 263, 190} {
		tree.Remove(v)
		require.Zero(t, tree.CheckInvariant(), "after removing %d", v)
		require.NoError(t, tree.Verify())
	}
}

func TestExhaustiveDrain(t *testing.T) {
	tree := avl.New[int]()
	for v := 0; v < 500; v++ {
		tree.Insert(v)
	}
	require.Equal(t, 500, tree.Len())

	for v := 0; v < 500; v++ {
		require.True(t, tree.Remove(v), "value %d", v)
		require.Zero(t, tree.CheckInvariant(), "after removing %d", v)
	}

	require.True(t, tree.IsEmpty())
	require.Zero(t, tree.Len())
	require.Zero(t, tree.Height())
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 2025} {
		rng := rand.New(rand.NewSource(seed))
		tree := avl.New[int]()
		var ref []int

		for op := 0; op < 3000; op++ {
			v := rng.Intn(300)
			if rng.Intn(3) == 0 {
				removed := tree.Remove(v)
				idx, found := slices.BinarySearch(ref, v)
				require.Equal(t, found, removed, "seed %d op %d remove %d", seed, op, v)
				if found {
					ref = slices.Delete(ref, idx, idx+1)
				}
			} else {
				tree.Insert(v)
				idx, _ := slices.BinarySearch(ref, v)
				ref = slices.Insert(ref, idx, v)
			}
			require.Zero(t, tree.CheckInvariant(), "seed %d op %d", seed, op)
			require.LessOrEqual(t, tree.Height(), avl.HeightBound(tree.Len()))
		}

		require.Equal(t, ref, tree.InOrder())
		require.NoError(t, tree.Verify())
	}
}

func TestHeightBoundOnLargeBatches(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	tree := avl.New[int]()
	for i := 0; i < 20000; i++ {
		tree.Insert(rng.Int())
	}
	require.LessOrEqual(t, tree.Height(), avl.HeightBound(tree.Len()))

	sorted := avl.New[int]()
	for i := 0; i < 20000; i++ {
		sorted.Insert(i)
	}
	require.LessOrEqual(t, sorted.Height(), avl.HeightBound(sorted.Len()))
}

func TestWalkReportsShape(t *testing.T) {
	tree := buildTree(2, 1, 3, 4)

	infos := map[int]avl.NodeInfo[int]{}
	var order []int
	tree.Walk(func(ni avl.NodeInfo[int]) bool {
		infos[ni.Value] = ni
		order = append(order, ni.Value)
		return true
	})

	require.Equal(t, []int{2, 1, 3, 4}, order, "pre-order")
	require.Equal(t, 3, infos[2].Height)
	require.Equal(t, 1, infos[2].Diff)
	require.Equal(t, infos[1].ID, infos[2].Left)
	require.Equal(t, infos[3].ID, infos[2].Right)
	require.Equal(t, avl.NoNode, infos[3].Left)
	require.Equal(t, infos[4].ID, infos[3].Right)
	require.True(t, infos[4].IsLeaf())

	visited := 0
	tree.Walk(func(avl.NodeInfo[int]) bool {
		visited++
		return visited < 2
	})
	require.Equal(t, 2, visited)
}

func TestNewFuncOrdering(t *testing.T) {
	byLength := func(a, b string) int {
		if c := cmp.Compare(len(a), len(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	}
	tree := avl.NewFunc(byLength)
	for _, w := range []string{"banana", "fig", "apple", "kiwi", "cherry"} {
		tree.Insert(w)
	}
	require.Equal(t, []string{"fig", "kiwi", "apple", "banana", "cherry"}, tree.InOrder())

	descending := avl.NewFunc(func(a, b int) int { return cmp.Compare(b, a) })
	for _, v := range []int{1, 5, 3} {
		descending.Insert(v)
	}
	require.Equal(t, []int{5, 3, 1}, descending.InOrder())
}

func TestReadAccessors(t *testing.T) {
	tree := avl.New[int]()
	_, ok := tree.Min()
	require.False(t, ok)
	_, ok = tree.Max()
	require.False(t, ok)

	for _, v := range []int{40, 10, 90, 20, 70} {
		tree.Insert(v)
	}

	lo, ok := tree.Min()
	require.True(t, ok)
	require.Equal(t, 10, lo)
	hi, ok := tree.Max()
	require.True(t, ok)
	require.Equal(t, 90, hi)

	require.True(t, tree.Contains(70))
	require.False(t, tree.Contains(71))

	var firstTwo []int
	for v := range tree.All() {
		firstTwo = append(firstTwo, v)
		if len(firstTwo) == 2 {
			break
		}
	}
	require.Equal(t, []int{10, 20}, firstTwo)

	tree.Clear()
	require.True(t, tree.IsEmpty())
	require.Zero(t, tree.Stats().Rotations.Total())
	require.Empty(t, tree.InOrder())
}

func TestHeightBound(t *testing.T) {
	require.Equal(t, 2, avl.HeightBound(0))
	require.Equal(t, 3, avl.HeightBound(1))
	require.Equal(t, 3, avl.HeightBound(2))
	require.Equal(t, 13, avl.HeightBound(500))
	require.Equal(t, 2, avl.HeightBound(-5))
}

func TestParseDuplicatePolicy(t *testing.T) {
	p, err := avl.ParseDuplicatePolicy("Reject")
	require.NoError(t, err)
	require.Equal(t, avl.DuplicatesReject, p)

	p, err = avl.ParseDuplicatePolicy("")
	require.NoError(t, err)
	require.Equal(t, avl.DuplicatesRight, p)

	_, err = avl.ParseDuplicatePolicy("left")
	require.Error(t, err)
	require.Equal(t, "reject", avl.DuplicatesReject.String())
}

func buildTree(values ...int) *avl.Tree[int] {
	tree := avl.New[int]()
	for _, v := range values {
		tree.Insert(v)
	}
	return tree
}

func rootInfo(t *testing.T, tree *avl.Tree[int]) avl.NodeInfo[int] {
	t.Helper()
	var root avl.NodeInfo[int]
	seen := false
	tree.Walk(func(ni avl.NodeInfo[int]) bool {
		root, seen = ni, true
		return false
	})
	require.True(t, seen, "tree is empty")
	return root
}

// Copyright 2022 Sogang University
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

package ordmap

import (
	"math"
	"testing"

	"github.com/9rum/ordmap/internal/bst"
	"github.com/stretchr/testify/require"
)

func newAVL(keys ...int) *Tree[int, int] {
	tr := NewAVL[int, int](Ordered[int]())
	for _, key := range keys {
		if err := tr.Insert(key, key); err != nil {
			panic(err)
		}
	}
	return tr
}

func requireNode(t *testing.T, n *bst.Node[int, int], key int) {
	t.Helper()
	require.NotNil(t, n)
	require.Equal(t, key, n.Key)
	require.Equal(t, key, n.Value)
}

func TestAVLAscending(t *testing.T) {
	tr := newAVL(1, 2, 3, 4, 5, 6, 7)
	require.Equal(t, 2, tr.Height())
	require.Zero(t, tr.Balance())
	requireNode(t, tr.root, 4)
	requireNode(t, tr.root.Left, 2)
	requireNode(t, tr.root.Right, 6)
	requireValid(t, tr)

	require.NoError(t, tr.Remove(4))
	requireValid(t, tr)
	require.Equal(t, []int{1, 2, 3, 5, 6, 7}, all(tr))
	// the in-order successor takes the place of the removed root
	requireNode(t, tr.root, 5)
	require.Equal(t, 2, tr.Height())
}

func TestAVLRotateLeft(t *testing.T) {
	tr := newAVL(1, 2, 3)
	requireNode(t, tr.root, 2)
	requireNode(t, tr.root.Left, 1)
	requireNode(t, tr.root.Right, 3)
}

func TestAVLRotateRight(t *testing.T) {
	tr := newAVL(3, 2, 1)
	requireNode(t, tr.root, 2)
	requireNode(t, tr.root.Left, 1)
	requireNode(t, tr.root.Right, 3)
}

func TestAVLRotateLeftRight(t *testing.T) {
	tr := newAVL(3, 1, 2)
	requireNode(t, tr.root, 2)
	requireNode(t, tr.root.Left, 1)
	requireNode(t, tr.root.Right, 3)
}

func TestAVLRotateRightLeft(t *testing.T) {
	tr := newAVL(1, 3, 2)
	requireNode(t, tr.root, 2)
	requireNode(t, tr.root.Left, 1)
	requireNode(t, tr.root.Right, 3)
}

func TestAVLRotateBelowRoot(t *testing.T) {
	tr := newAVL(10, 5, 20, 25, 30)
	requireNode(t, tr.root, 10)
	requireNode(t, tr.root.Left, 5)
	requireNode(t, tr.root.Right, 25)
	requireNode(t, tr.root.Right.Left, 20)
	requireNode(t, tr.root.Right.Right, 30)
	requireValid(t, tr)
}

func TestAVLRemoveRotateLeft(t *testing.T) {
	tr := newAVL(2, 1, 4, 3, 5)
	require.NoError(t, tr.Remove(1))
	// balanced heavy child takes the single rotation
	requireNode(t, tr.root, 4)
	requireNode(t, tr.root.Left, 2)
	requireNode(t, tr.root.Left.Right, 3)
	requireNode(t, tr.root.Right, 5)
	requireValid(t, tr)
}

func TestAVLRemoveRotateRight(t *testing.T) {
	tr := newAVL(4, 2, 5, 1, 3)
	require.NoError(t, tr.Remove(5))
	requireNode(t, tr.root, 2)
	requireNode(t, tr.root.Left, 1)
	requireNode(t, tr.root.Right, 4)
	requireNode(t, tr.root.Right.Left, 3)
	requireValid(t, tr)
}

func TestAVLRemoveRotateLeftRight(t *testing.T) {
	tr := newAVL(5, 2, 6, 3)
	require.NoError(t, tr.Remove(6))
	requireNode(t, tr.root, 3)
	requireNode(t, tr.root.Left, 2)
	requireNode(t, tr.root.Right, 5)
	requireValid(t, tr)
}

func TestAVLRemoveRotateRightLeft(t *testing.T) {
	tr := newAVL(2, 1, 5, 4)
	require.NoError(t, tr.Remove(1))
	requireNode(t, tr.root, 4)
	requireNode(t, tr.root.Left, 2)
	requireNode(t, tr.root.Right, 5)
	requireValid(t, tr)
}

func TestAVLRemoveWithTwoChildren(t *testing.T) {
	tr := newAVL(50, 30, 70, 20, 40, 60, 80, 65)
	require.NoError(t, tr.Remove(50))
	requireNode(t, tr.root, 60)
	require.Equal(t, []int{20, 30, 40, 60, 65, 70, 80}, all(tr))
	requireValid(t, tr)

	require.NoError(t, tr.Remove(70))
	require.Equal(t, []int{20, 30, 40, 60, 65, 80}, all(tr))
	requireValid(t, tr)
}

// TestAVLHeightBound checks that the depth of the tree stays within the AVL
// bound of 1.44 log2(n+2) for both ascending and random insertion orders.
func TestAVLHeightBound(t *testing.T) {
	const treeSize = 10000
	bound := func(n int) int {
		return int(1.4405 * math.Log2(float64(n+2)))
	}

	for _, keys := range [][]int{rang(treeSize), perm(treeSize)} {
		tr := newAVL(keys...)
		require.LessOrEqual(t, tr.Height(), bound(treeSize))
		requireValid(t, tr)

		for i, key := range perm(treeSize) {
			require.NoError(t, tr.Remove(key))
			if i%1000 == 0 {
				require.LessOrEqual(t, tr.Height(), bound(tr.Size()))
				requireValid(t, tr)
			}
		}
		require.True(t, tr.IsEmpty())
	}
}

func TestAVLBalance(t *testing.T) {
	tr := newAVL(2, 1, 3, 4)
	require.Equal(t, -1, tr.Balance())
	require.NoError(t, tr.Insert(0, 0))
	require.Zero(t, tr.Balance())
	requireValid(t, tr)

	tr = newAVL(2, 1, 3, 0)
	require.Equal(t, 1, tr.Balance())
	requireValid(t, tr)
}

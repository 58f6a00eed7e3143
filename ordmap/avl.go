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

import "github.com/9rum/ordmap/internal/bst"

// heightBalanced keeps the tree AVL balanced: the heights of the two subtrees
// of every node differ by at most one.  After each insertion or deletion, the
// balance factor of every node on the search path is checked on the way back
// up and the minimal single or double rotation is applied where it is out of
// range.
type heightBalanced[K, V any] struct {
	cmp Comparator[K]
}

func (p heightBalanced[K, V]) insert(root *bst.Node[K, V], _ int, key K, value V) (*bst.Node[K, V], error) {
	return insertAtLeaf(root, key, value, p.cmp, func(n *bst.Node[K, V]) *bst.Node[K, V] {
		return p.fixInsert(n, key)
	})
}

// fixInsert rebalances n after key has been inserted below it.  The direction
// of the rotation is decided by comparing key against the heavy child rather
// than by recomputing the balance factor of the child; since the tree was
// balanced before the insertion, the new key lies in the taller grandchild.
func (p heightBalanced[K, V]) fixInsert(n *bst.Node[K, V], key K) *bst.Node[K, V] {
	bst.Update(n)
	switch bf := bst.Balance(n); {
	case 1 < bf:
		// left-right case
		if p.cmp.Less(n.Left.Key, key) {
			n.Left = bst.RotateLeft(n.Left)
		}
		return bst.RotateRight(n)
	case bf < -1:
		// right-left case
		if p.cmp.Less(key, n.Right.Key) {
			n.Right = bst.RotateRight(n.Right)
		}
		return bst.RotateLeft(n)
	}
	return n
}

func (p heightBalanced[K, V]) remove(root *bst.Node[K, V], key K) *bst.Node[K, V] {
	return splice(root, key, p.cmp, fixRemove[K, V])
}

// fixRemove rebalances n after a node has been removed below it.  Unlike
// insertion, the removed key says nothing about the shape of the heavy side,
// so the balance factor of the heavy child decides between a single and a
// double rotation.  A balanced heavy child takes the single rotation.
func fixRemove[K, V any](n *bst.Node[K, V]) *bst.Node[K, V] {
	bst.Update(n)
	switch bf := bst.Balance(n); {
	case 1 < bf:
		if bst.Balance(n.Left) < 0 {
			n.Left = bst.RotateLeft(n.Left)
		}
		return bst.RotateRight(n)
	case bf < -1:
		if 0 < bst.Balance(n.Right) {
			n.Right = bst.RotateRight(n.Right)
		}
		return bst.RotateLeft(n)
	}
	return n
}

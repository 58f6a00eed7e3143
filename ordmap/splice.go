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

// fixer restores the invariants of a policy at a node whose subtree has just
// changed, returning the new root of that subtree.
type fixer[K, V any] func(n *bst.Node[K, V]) *bst.Node[K, V]

// refresh only recomputes the cached height; it is the fixer of the
// unbalanced policies.
func refresh[K, V any](n *bst.Node[K, V]) *bst.Node[K, V] {
	bst.Update(n)
	return n
}

// splice removes the given key from the subtree rooted at n and returns the
// new root of the subtree.  On the way back up, fix is applied to every node
// on the search path.
//
// A node with two children is not unlinked itself: the key and value of its
// in-order successor are copied into it, and the successor, which has no left
// child, is then removed from the right subtree instead.
func splice[K, V any](n *bst.Node[K, V], key K, cmp Comparator[K], fix fixer[K, V]) *bst.Node[K, V] {
	if n == nil {
		return nil
	}

	switch {
	case cmp.Equal(key, n.Key):
		switch {
		case n.Left == nil && n.Right == nil:
			bst.Release(n)
			return nil
		case n.Left == nil:
			child := n.Right
			bst.Release(n)
			return child
		case n.Right == nil:
			child := n.Left
			bst.Release(n)
			return child
		default:
			successor := bst.Min(n.Right)
			n.Key, n.Value = successor.Key, successor.Value
			n.Right = splice(n.Right, n.Key, cmp, fix)
		}
	case cmp.Less(key, n.Key):
		n.Left = splice(n.Left, key, cmp, fix)
	default:
		n.Right = splice(n.Right, key, cmp, fix)
	}

	return fix(n)
}

// insertAtLeaf adds the given key-value pair as a new leaf of the subtree
// rooted at n, applying fix to every node on the search path on the way back
// up.  An equal key anywhere on the path fails the insertion before any node
// is modified.
func insertAtLeaf[K, V any](n *bst.Node[K, V], key K, value V, cmp Comparator[K], fix fixer[K, V]) (*bst.Node[K, V], error) {
	if n == nil {
		return bst.New(key, value), nil
	}

	var err error
	switch {
	case cmp.Equal(key, n.Key):
		return n, duplicate(key)
	case cmp.Less(key, n.Key):
		if n.Left, err = insertAtLeaf(n.Left, key, value, cmp, fix); err != nil {
			return n, err
		}
	default:
		if n.Right, err = insertAtLeaf(n.Right, key, value, cmp, fix); err != nil {
			return n, err
		}
	}

	return fix(n), nil
}

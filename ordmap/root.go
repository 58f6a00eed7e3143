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

// rootInsertion inserts every key at the root.  No balance invariant is
// maintained; deletion is a plain unbalanced splice.
type rootInsertion[K, V any] struct {
	cmp Comparator[K]
}

func (p rootInsertion[K, V]) insert(root *bst.Node[K, V], _ int, key K, value V) (*bst.Node[K, V], error) {
	return insertAtRoot(root, key, value, p.cmp)
}

func (p rootInsertion[K, V]) remove(root *bst.Node[K, V], key K) *bst.Node[K, V] {
	return splice(root, key, p.cmp, refresh[K, V])
}

// insertAtRoot adds the given key-value pair as a new leaf of the subtree
// rooted at n and then rotates it up one level per unwound call, so that it
// ends up as the root of the subtree.
func insertAtRoot[K, V any](n *bst.Node[K, V], key K, value V, cmp Comparator[K]) (*bst.Node[K, V], error) {
	if n == nil {
		return bst.New(key, value), nil
	}

	var err error
	switch {
	case cmp.Equal(key, n.Key):
		return n, duplicate(key)
	case cmp.Less(key, n.Key):
		if n.Left, err = insertAtRoot(n.Left, key, value, cmp); err != nil {
			return n, err
		}
		return bst.RotateRight(n), nil
	default:
		if n.Right, err = insertAtRoot(n.Right, key, value, cmp); err != nil {
			return n, err
		}
		return bst.RotateLeft(n), nil
	}
}

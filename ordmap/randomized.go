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

// randomized inserts a new key at the root with probability 1/n, where n is
// the number of entries already in the map, and at a leaf otherwise.
// Deletion is a plain unbalanced splice.
type randomized[K, V any] struct {
	cmp  Comparator[K]
	intn func(n int) int
}

func (p randomized[K, V]) insert(root *bst.Node[K, V], size int, key K, value V) (*bst.Node[K, V], error) {
	if size < 1 || p.intn(size) == 0 {
		return insertAtRoot(root, key, value, p.cmp)
	}
	return insertAtLeaf(root, key, value, p.cmp, refresh[K, V])
}

func (p randomized[K, V]) remove(root *bst.Node[K, V], key K) *bst.Node[K, V] {
	return splice(root, key, p.cmp, refresh[K, V])
}

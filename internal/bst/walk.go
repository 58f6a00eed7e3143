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

package bst

import "fmt"

// Visitor is called for each node during a traversal.  When it returns false,
// the traversal stops and the associated function immediately returns.
type Visitor[K, V any] func(*Node[K, V]) bool

// Walk visits the given subtree in order, until visit returns false.
// It reports whether the traversal ran to completion.
func Walk[K, V any](n *Node[K, V], visit Visitor[K, V]) bool {
	if n == nil {
		return true
	}
	return Walk(n.Left, visit) && visit(n) && Walk(n.Right, visit)
}

// PreOrder visits the given subtree parents first, until visit returns false.
// Re-inserting keys in this order into an empty unbalanced tree reproduces the
// original shape.
func PreOrder[K, V any](n *Node[K, V], visit Visitor[K, V]) bool {
	if n == nil {
		return true
	}
	return visit(n) && PreOrder(n.Left, visit) && PreOrder(n.Right, visit)
}

// Check verifies the structural invariants of the given subtree: keys are in
// strictly increasing order with respect to less, and every cached height
// matches the recursive definition.  It returns an error describing the first
// violation found.
func Check[K, V any](n *Node[K, V], less func(a, b K) bool) error {
	var (
		prev    *Node[K, V]
		ordered error
	)
	Walk(n, func(curr *Node[K, V]) bool {
		if prev != nil && !less(prev.Key, curr.Key) {
			ordered = fmt.Errorf("key %v is not less than its successor %v", prev.Key, curr.Key)
			return false
		}
		prev = curr
		return true
	})
	if ordered != nil {
		return ordered
	}
	_, err := recount(n, false)
	return err
}

// CheckBalanced verifies the invariants checked by Check and additionally that
// every node in the given subtree is height-balanced, i.e., the heights of its
// two subtrees differ by at most one.
func CheckBalanced[K, V any](n *Node[K, V], less func(a, b K) bool) error {
	if err := Check(n, less); err != nil {
		return err
	}
	_, err := recount(n, true)
	return err
}

// recount recomputes the height of the given subtree without trusting the
// cache, comparing the result against it on the way back up.
func recount[K, V any](n *Node[K, V], balanced bool) (int, error) {
	if n == nil {
		return 0, nil
	}
	left, err := recount(n.Left, balanced)
	if err != nil {
		return 0, err
	}
	right, err := recount(n.Right, balanced)
	if err != nil {
		return 0, err
	}
	height := max(left, right) + 1
	if height != n.height {
		return 0, fmt.Errorf("node %v caches height %d, want %d", n.Key, n.height, height)
	}
	if balanced && (1 < left-right || 1 < right-left) {
		return 0, fmt.Errorf("node %v is unbalanced: left height %d right height %d", n.Key, left, right)
	}
	return height, nil
}

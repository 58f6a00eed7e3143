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

// Package bst provides the node representation and the structural primitives
// shared by every rebalancing policy of the ordered map: height and size
// measurement, single rotations, successor lookup, traversal and teardown.
//
// A subtree is identified by its root node; a nil node is the empty subtree.
// Nodes are exclusively owned by their parent, so a node is never reachable
// from two places and rotations only relink whole subtrees.
package bst

// Node is a single key-value pair in the tree.
//
// Each node caches the height of the subtree rooted at it.  The cache must be
// refreshed with Update whenever one of its children changes; the rotations
// in this package do so for the nodes they move.
type Node[K, V any] struct {
	Key    K
	Value  V
	Left   *Node[K, V]
	Right  *Node[K, V]
	height int
}

// New creates a new leaf node with the given key and value.
func New[K, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{
		Key:    key,
		Value:  value,
		height: 1,
	}
}

// Height returns the height of the given subtree.  The empty subtree has
// height 0 and a leaf has height 1.
func Height[K, V any](n *Node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// Size returns the number of nodes in the given subtree.
func Size[K, V any](n *Node[K, V]) int {
	if n == nil {
		return 0
	}
	return Size(n.Left) + Size(n.Right) + 1
}

// Balance returns the balance factor of the given subtree, i.e., the height of
// its left subtree minus the height of its right subtree.  The empty subtree is
// perfectly balanced.
func Balance[K, V any](n *Node[K, V]) int {
	if n == nil {
		return 0
	}
	return Height(n.Left) - Height(n.Right)
}

// Update recomputes the cached height of n from its children.
func Update[K, V any](n *Node[K, V]) {
	n.height = max(Height(n.Left), Height(n.Right)) + 1
}

// RotateLeft rotates the given subtree counterclockwise and returns the new
// root of the subtree, which is the former right child of n.
func RotateLeft[K, V any](n *Node[K, V]) *Node[K, V] {
	pivot := n.Right
	n.Right = pivot.Left
	pivot.Left = n
	Update(n)
	Update(pivot)
	return pivot
}

// RotateRight rotates the given subtree clockwise and returns the new root of
// the subtree, which is the former left child of n.
func RotateRight[K, V any](n *Node[K, V]) *Node[K, V] {
	pivot := n.Left
	n.Left = pivot.Right
	pivot.Right = n
	Update(n)
	Update(pivot)
	return pivot
}

// Min returns the leftmost node in the given subtree, or nil if the subtree is
// empty.  Called on the right child of a node, it yields the in-order
// successor of that node.
func Min[K, V any](n *Node[K, V]) *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// Teardown releases every node in the given subtree exactly once, children
// before their parent.  Released nodes are unlinked and zeroed so that no
// stale reference keeps the rest of the tree reachable.
func Teardown[K, V any](n *Node[K, V]) {
	if n == nil {
		return
	}
	Teardown(n.Left)
	Teardown(n.Right)
	Release(n)
}

// Release zeroes a single node that has already been detached from the tree.
// The caller must have moved its children elsewhere beforehand.
func Release[K, V any](n *Node[K, V]) {
	*n = Node[K, V]{}
}

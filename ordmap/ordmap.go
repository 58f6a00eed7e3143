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

// Package ordmap implements in-memory ordered maps on binary search trees.
//
// Three rebalancing policies share an identical contract and node shape:
//   - HeightBalanced keeps the tree AVL balanced through rotations chosen from
//     the balance factor, guaranteeing logarithmic depth.
//   - RootInsertion rotates every inserted key all the way up to the root, so
//     the most recently inserted key is always the cheapest to reach.
//   - Randomized performs a root insertion with probability 1/n when the map
//     holds n entries and a plain leaf insertion otherwise, which keeps the
//     expected depth logarithmic without any balance metadata.
//
// Keys are ordered by a Comparator supplied at construction.
package ordmap

import (
	"fmt"

	"github.com/9rum/ordmap/internal/bst"
)

// Policy identifies the rebalancing policy of a map.
type Policy int32

const (
	HeightBalanced Policy = iota
	RootInsertion
	Randomized
)

var policyNames = map[Policy]string{
	HeightBalanced: "avl",
	RootInsertion:  "root",
	Randomized:     "random",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Policy(%d)", int32(p))
}

// ParsePolicy returns the policy with the given name as reported by String.
func ParsePolicy(name string) (Policy, error) {
	for p, n := range policyNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown policy %q", name)
}

// Map represents an ordered key-value map.
type Map[K, V any] interface {
	// Insert adds the given key-value pair to the map.  It fails with
	// ErrDuplicateKey if the key is already present.
	Insert(key K, value V) error

	// Remove removes the entry with the given key.  It fails with ErrEmptyMap
	// if the map is empty and with ErrMissingKey if the key is absent.
	Remove(key K) error

	// Lookup returns a reference to the value associated with the given key.
	// The reference aliases the storage of the map and remains valid only
	// until the next Insert, Remove or Clear.
	Lookup(key K) (*V, error)

	// Contains tests whether the given key is present.
	Contains(key K) bool

	// Size returns the number of entries currently in the map.
	Size() int

	// IsEmpty tests whether the map has no entries.
	IsEmpty() bool

	// IsFull tests whether no more entries can be added.
	IsFull() bool

	// Height returns the height of the tree, counting edges: an empty map
	// reports -1 and a single entry reports 0.
	Height() int

	// Balance returns the balance factor at the root of the tree.
	Balance() int

	// Clear removes all entries.
	Clear()
}

// rebalancer is the insertion and deletion discipline of a policy.  Both
// operations take ownership of the given subtree and return its new root.
type rebalancer[K, V any] interface {
	// insert adds the key-value pair to the subtree of size nodes.  On error,
	// the subtree must be returned unmodified.
	insert(root *bst.Node[K, V], size int, key K, value V) (*bst.Node[K, V], error)

	// remove deletes the key from the subtree.  The key must be present.
	remove(root *bst.Node[K, V], key K) *bst.Node[K, V]
}

// Tree is an ordered map on a binary search tree.
//
// This implementation is not safe for concurrent use by multiple goroutines.
// If multiple goroutines access a tree concurrently, and at least one of them
// modifies the tree, it must be synchronized externally.
type Tree[K, V any] struct {
	root   *bst.Node[K, V]
	length int
	cmp    Comparator[K]
	policy Policy
	opts   options
	rb     rebalancer[K, V]
}

var _ Map[int, int] = (*Tree[int, int])(nil)

// New creates a new empty map with the given policy and comparator.
func New[K, V any](policy Policy, cmp Comparator[K], opts ...Option) *Tree[K, V] {
	if cmp == nil {
		panic("nil comparator")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newTree[K, V](policy, cmp, o)
}

func newTree[K, V any](policy Policy, cmp Comparator[K], opts options) *Tree[K, V] {
	t := &Tree[K, V]{
		cmp:    cmp,
		policy: policy,
		opts:   opts,
	}
	switch policy {
	case HeightBalanced:
		t.rb = heightBalanced[K, V]{cmp: cmp}
	case RootInsertion:
		t.rb = rootInsertion[K, V]{cmp: cmp}
	case Randomized:
		t.rb = randomized[K, V]{cmp: cmp, intn: opts.intn}
	default:
		panic("invalid policy")
	}
	return t
}

// NewAVL creates a new empty height-balanced map.
func NewAVL[K, V any](cmp Comparator[K]) *Tree[K, V] {
	return New[K, V](HeightBalanced, cmp)
}

// NewRootInsertion creates a new empty map that inserts every key at the root.
func NewRootInsertion[K, V any](cmp Comparator[K]) *Tree[K, V] {
	return New[K, V](RootInsertion, cmp)
}

// NewRandomized creates a new empty map that randomly inserts keys at the
// root or at a leaf.
func NewRandomized[K, V any](cmp Comparator[K], opts ...Option) *Tree[K, V] {
	return New[K, V](Randomized, cmp, opts...)
}

// Policy returns the rebalancing policy of the map.
func (t *Tree[K, V]) Policy() Policy {
	return t.policy
}

// Insert adds the given key-value pair to the map.  It fails with
// ErrDuplicateKey, leaving the map unchanged, if the key is already present.
func (t *Tree[K, V]) Insert(key K, value V) error {
	if t.root == nil {
		t.root = bst.New(key, value)
		t.length = 1
		return nil
	}
	root, err := t.rb.insert(t.root, t.length, key, value)
	if err != nil {
		return err
	}
	t.root = root
	t.length++
	return nil
}

// Remove removes the entry with the given key from the map.
func (t *Tree[K, V]) Remove(key K) error {
	if t.root == nil {
		return empty(key)
	}
	if t.find(key) == nil {
		return missing(key)
	}
	t.root = t.rb.remove(t.root, key)
	t.length--
	return nil
}

// Lookup returns a reference to the value associated with the given key.
func (t *Tree[K, V]) Lookup(key K) (*V, error) {
	if t.root == nil {
		return nil, empty(key)
	}
	n := t.find(key)
	if n == nil {
		return nil, missing(key)
	}
	return &n.Value, nil
}

// Contains tests whether the given key is present in the map.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.find(key) != nil
}

// find descends from the root following the comparator and returns the node
// holding the given key, or nil if there is none.
func (t *Tree[K, V]) find(key K) *bst.Node[K, V] {
	n := t.root
	for n != nil {
		switch {
		case t.cmp.Equal(key, n.Key):
			return n
		case t.cmp.Less(key, n.Key):
			n = n.Left
		default:
			n = n.Right
		}
	}
	return nil
}

// Size returns the number of entries currently in the map.
func (t *Tree[K, V]) Size() int {
	return t.length
}

// IsEmpty tests whether the map has no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// IsFull always returns false since the map is unbounded.
func (t *Tree[K, V]) IsFull() bool {
	return false
}

// Height returns the height of the tree minus one.
func (t *Tree[K, V]) Height() int {
	return bst.Height(t.root) - 1
}

// Balance returns the height of the left subtree of the root minus the height
// of its right subtree, or 0 if the map has at most one entry.
func (t *Tree[K, V]) Balance() int {
	return bst.Balance(t.root)
}

// Clear removes all entries from the map.
func (t *Tree[K, V]) Clear() {
	bst.Teardown(t.root)
	t.root, t.length = nil, 0
}

// Clone returns a deep copy of the map.  Entries are re-inserted through the
// policy of the map, so the copy satisfies the same invariants but need not
// share the shape of the original.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	out := newTree[K, V](t.policy, t.cmp, t.opts)
	bst.PreOrder(t.root, func(n *bst.Node[K, V]) bool {
		// keys are distinct, so this never fails
		_ = out.Insert(n.Key, n.Value)
		return true
	})
	return out
}

// Move transfers all entries to a new map in constant time, leaving t empty.
func (t *Tree[K, V]) Move() *Tree[K, V] {
	out := newTree[K, V](t.policy, t.cmp, t.opts)
	out.root, out.length = t.root, t.length
	t.root, t.length = nil, 0
	return out
}

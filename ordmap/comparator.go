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

import "golang.org/x/exp/constraints"

// Comparator represents the total order over the keys in a map.
type Comparator[K any] interface {
	// Less tests whether a is less than b.
	//
	// This must provide a strict weak ordering consistent with Equal; if
	// !Less(a, b) && !Less(b, a), then Equal(a, b) must hold, and vice versa.
	// Otherwise the ordering of the tree silently breaks.
	Less(a, b K) bool

	// Equal tests whether a and b identify the same entry.
	Equal(a, b K) bool
}

// ordered is the natural ordering of ordered types.
type ordered[K constraints.Ordered] struct{}

// Ordered returns a comparator that orders keys with the built-in < and ==
// operators.
func Ordered[K constraints.Ordered]() Comparator[K] {
	return ordered[K]{}
}

func (ordered[K]) Less(a, b K) bool {
	return a < b
}

func (ordered[K]) Equal(a, b K) bool {
	return a == b
}

// funcs adapts a pair of ordinary functions to the Comparator interface.
type funcs[K any] struct {
	less  func(a, b K) bool
	equal func(a, b K) bool
}

// ComparatorFuncs creates a comparator from the given less and equal
// functions.
func ComparatorFuncs[K any](less, equal func(a, b K) bool) Comparator[K] {
	if less == nil || equal == nil {
		panic("nil comparator function")
	}
	return funcs[K]{
		less:  less,
		equal: equal,
	}
}

func (f funcs[K]) Less(a, b K) bool {
	return f.less(a, b)
}

func (f funcs[K]) Equal(a, b K) bool {
	return f.equal(a, b)
}

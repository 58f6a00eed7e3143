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
	"fmt"
	"strings"

	"github.com/9rum/ordmap/internal/bst"
)

// String renders the tree sideways, right subtree on top.
// Should not be used to print out large trees.
func (t *Tree[K, V]) String() string {
	if t == nil || t.root == nil {
		return "────┤ empty"
	}
	var b strings.Builder
	render(&b, t.root, "", false, true)
	return b.String()
}

func render[K, V any](b *strings.Builder, n *bst.Node[K, V], prefix string, tail, isRoot bool) {
	if n.Right != nil {
		next := prefix + "\t"
		if tail {
			next = prefix + "│\t"
		}
		render(b, n.Right, next, false, false)
	}

	switch {
	case isRoot:
		b.WriteString(prefix + "───")
	case tail:
		b.WriteString(prefix + "└──")
	default:
		b.WriteString(prefix + "┌──")
	}
	fmt.Fprintf(b, "─┤ %v\n", n.Key)

	if n.Left != nil {
		next := prefix + "│\t"
		if tail || isRoot {
			next = prefix + "\t"
		}
		render(b, n.Left, next, true, false)
	}
}

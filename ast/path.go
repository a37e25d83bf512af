// Copyright 2020-2026 The Bracepress Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast

import (
	"strconv"
	"strings"
)

// Path is an ascending sequence of child indices from the root to some
// node, e.g. Path{2, 0} means "root's 3rd child's 1st child". Unlike a
// parent pointer, a Path is a value: it survives a rewrite that produces a
// structurally different tree, as long as the position it names is still
// in range.
//
// This is the only navigation-from-below the tree exposes; it exists for
// the Rule collaborator boundary, which reports diagnostics against a
// position rather than a live node reference.
type Path []int

// String renders p as dot-separated indices, e.g. "2.0".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ".")
}

// At walks p from root and returns the node it names. ok is false if any
// index along the way is out of range.
func (p Path) At(root Node) (n Node, ok bool) {
	n = root
	for _, idx := range p {
		if idx < 0 || idx >= len(n.Children) {
			return Node{}, false
		}
		n = n.Children[idx]
	}
	return n, true
}

// Walk visits root and every descendant in depth-first, pre-order,
// left-to-right order, calling visit with each node's Path. Walk stops
// early if visit returns false.
func Walk(root Node, visit func(Path, Node) bool) {
	walk(nil, root, visit)
}

func walk(path Path, n Node, visit func(Path, Node) bool) bool {
	if !visit(path, n) {
		return false
	}
	for i, child := range n.Children {
		if !walk(append(path[:len(path):len(path)], i), child, visit) {
			return false
		}
	}
	return true
}

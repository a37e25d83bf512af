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

// Package ast models the shape a syntactic parser (out of scope here) is
// expected to deliver: a tree of [Leaf]s carrying textual content and
// trivia, grouped into declaration, expression, type, attribute, and
// conditional-compilation [Node]s.
//
// The tree is intentionally not a dozen bespoke node types with dynamic
// dispatch; it is a single tagged [Node] over a closed [Kind] enum, plus
// [Leaf] for terminals, so a builder can exhaustively switch on Kind
// rather than call through an interface.
package ast

import "github.com/bracepress/bracepress/internal/arena"

// LeafID is the stable identity of a [Leaf] within a [Context], used to
// key the before/after decoration registries a TokenStreamBuilder attaches
// to leaves. It is comparable and safe to use as a map key.
type LeafID = arena.Pointer[Leaf]

// Leaf is a terminal symbol of the tree: an identifier, keyword, operator,
// or punctuation mark, together with the trivia surrounding it in the
// original source.
type Leaf struct {
	// Text is the leaf's literal source text, e.g. "protocol", "(", "x".
	Text string
	// Leading is the trivia between the previous leaf and this one.
	Leading []Trivia
	// Trailing is trivia on the same physical line after this leaf, before
	// the next newline; ordinarily only ever non-empty for an end-of-line
	// comment. The one exception is the last leaf of the whole tree, whose
	// Trailing may carry a single Newlines item recording whether the
	// source ended with a trailing newline, since there is no following
	// leaf for that newline to be Leading trivia of.
	Trailing []Trivia
}

// Context owns the arena backing every [Leaf] produced while building one
// file's tree; [Node]s are plain values and are not stored in it. A zero
// Context is ready to use.
type Context struct {
	leaves arena.Arena[Leaf]
}

// NewLeaf allocates and returns the ID of a new leaf.
func (c *Context) NewLeaf(text string, leading, trailing []Trivia) LeafID {
	return c.leaves.New(Leaf{Text: text, Leading: leading, Trailing: trailing})
}

// Leaf dereferences id against c.
func (c *Context) Leaf(id LeafID) *Leaf {
	return id.In(&c.leaves)
}

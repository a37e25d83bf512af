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

package build

import (
	"github.com/bracepress/bracepress/ast"
	"github.com/bracepress/bracepress/token"
)

// braceBlock implements the shared shape of every brace-delimited body in
// the grammar (declaration bodies, accessor blocks): it visits left, the
// items, then right.
//
//	left after(break(1,+2), open(consistent,0))
//	item0 sep item1 sep ... itemN
//	before(break(1,-2), close()) right
//
// When it fits on one line, both surrounding breaks render as a single
// space and the whole thing reads as "{ item0 item1 }". An empty body
// skips the group machinery entirely and collapses left and right
// directly together as "{}". As with [Builder.commaList], the decorations
// are registered on left and right's leaves before they are visited.
func (b *Builder) braceBlock(left, right ast.Node, items []ast.Node, sep func()) error {
	if len(items) == 0 {
		if err := b.visit(left); err != nil {
			return err
		}
		return b.visit(right)
	}

	b.registerAfter(left.LeafID, token.NewBreak(1, 2), token.NewOpen(token.Consistent, 0))
	if err := b.visit(left); err != nil {
		return err
	}

	for i, item := range items {
		if i > 0 {
			sep()
		}
		if err := b.visit(item); err != nil {
			return err
		}
	}

	b.registerBefore(right.LeafID, token.NewBreak(1, -2), token.NewClose())
	return b.visit(right)
}

func (b *Builder) visitBody(n ast.Node) error {
	// Children: leftBrace leaf, N member/statement nodes, rightBrace leaf.
	if len(n.Children) < 2 {
		return nil
	}
	left := n.Children[0]
	right := n.Children[len(n.Children)-1]
	members := n.Children[1 : len(n.Children)-1]

	// Members are declarations or statements, not words in a phrase: two
	// short ones packed onto one line with only a space between them would
	// not re-parse as two members, so the separator is an unconditional
	// newline rather than a fit-dependent break.
	sep := func() { b.emit(token.NewNewline(1, 0)) }
	return b.braceBlock(left, right, members, sep)
}

func (b *Builder) visitAccessorBlock(n ast.Node) error {
	// Children: leftBrace leaf, N accessor keyword leaves ("get"/"set"),
	// rightBrace leaf. Accessors have no comma between them, just
	// whitespace, so they reuse braceBlock's group with a break(1,0)
	// separator rather than a comma.
	if len(n.Children) < 2 {
		return nil
	}
	left := n.Children[0]
	right := n.Children[len(n.Children)-1]
	accessors := n.Children[1 : len(n.Children)-1]

	sep := func() { b.emit(token.NewBreak(1, 0)) }
	return b.braceBlock(left, right, accessors, sep)
}

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

// commaList visits left, wraps items in an inconsistent group that packs
// as many entries per line as fit (breaking after each comma when it
// doesn't), then visits right:
//
//	left open(inconsistent, +2)
//	item0 , break(1,0) item1 , break(1,0) ... itemN
//	break(0,-2)
//	close() right
//
// left and right are the delimiter nodes surrounding items (the
// parentheses of a param or argument list, or an angle bracket pair); the
// open/close decorations are registered on their leaves before left and
// right are visited, since a leaf's decorations must be in place by the
// time [Builder.emitLeaf] reaches it.
//
// With forceBreakEach the group is consistent instead, so once the list
// does not fit, the break after every comma fires.
func (b *Builder) commaList(left, right ast.Node, items []ast.Node, forceBreakEach bool) error {
	if len(items) == 0 {
		if err := b.visit(left); err != nil {
			return err
		}
		return b.visit(right)
	}

	style := token.Inconsistent
	if forceBreakEach {
		style = token.Consistent
	}
	open := token.NewOpen(style, 2)
	if left.Kind == ast.KindLeaf {
		b.registerAfter(left.LeafID, open)
	} else {
		b.emit(open)
	}
	if err := b.visit(left); err != nil {
		return err
	}

	for i, item := range items {
		if i > 0 {
			b.emit(token.NewSyntax(","), token.NewBreak(1, 0))
		}
		if err := b.visit(item); err != nil {
			return err
		}
	}

	closeToks := []token.Token{token.NewBreak(0, -2), token.NewClose()}
	if right.Kind == ast.KindLeaf {
		b.registerBefore(right.LeafID, closeToks...)
	} else {
		b.emit(closeToks...)
	}
	return b.visit(right)
}

// consistentList wraps items in a consistent group whose breaks all fire
// together, used for clauses like `: A, B, C` where partial wrapping would
// read worse than either "all on one line" or "one per line":
//
//	open(consistent, +2)
//	item0 , break(1,0) item1 , break(1,0) ... itemN
//	close()
func (b *Builder) consistentList(items []ast.Node, sep string) error {
	if len(items) == 0 {
		return nil
	}

	b.emit(token.NewOpen(token.Consistent, 2))
	for i, item := range items {
		if i > 0 {
			b.emit(token.NewSyntax(sep), token.NewBreak(1, 0))
		}
		if err := b.visit(item); err != nil {
			return err
		}
	}
	b.emit(token.NewClose())
	return nil
}

func (b *Builder) visitParamList(n ast.Node) error {
	// Children: leftParen leaf, N Param nodes, rightParen leaf.
	if len(n.Children) < 2 {
		return nil
	}
	left := n.Children[0]
	right := n.Children[len(n.Children)-1]
	params := n.Children[1 : len(n.Children)-1]

	return b.commaList(left, right, params, b.cfg.LineBreakBeforeEachArgument)
}

func (b *Builder) visitArgList(n ast.Node) error {
	if len(n.Children) < 2 {
		return nil
	}
	left := n.Children[0]
	right := n.Children[len(n.Children)-1]
	args := n.Children[1 : len(n.Children)-1]

	return b.commaList(left, right, args, b.cfg.LineBreakBeforeEachArgument)
}

func (b *Builder) visitConformanceClause(n ast.Node) error {
	// Children: colon leaf, N type-name nodes. Two or fewer conformances
	// read fine packed; three or more get one-per-line-if-needed via a
	// consistent group so partial wrapping never happens. A clause with no
	// type names emits nothing, not even its colon.
	if len(n.Children) < 2 {
		return nil
	}
	colon := n.Children[0]
	names := n.Children[1:]

	if err := b.visit(colon); err != nil {
		return err
	}
	b.emit(token.NewSpace(1))
	return b.consistentList(names, ",")
}

func (b *Builder) visitGenericParamList(n ast.Node) error {
	// Children: leftAngle leaf, N GenericParam nodes, rightAngle leaf.
	if len(n.Children) < 2 {
		return nil
	}
	left := n.Children[0]
	right := n.Children[len(n.Children)-1]
	params := n.Children[1 : len(n.Children)-1]

	return b.commaList(left, right, params, false)
}

func (b *Builder) visitWhereClause(n ast.Node) error {
	// Children: where leaf, N constraint nodes, wrapped independently of
	// whatever generic parameter list or conformance clause precedes it.
	if len(n.Children) < 1 {
		return nil
	}
	where := n.Children[0]
	constraints := n.Children[1:]

	if err := b.visit(where); err != nil {
		return err
	}
	b.emit(token.NewSpace(1))
	return b.consistentList(constraints, ",")
}

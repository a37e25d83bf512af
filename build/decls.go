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

// visitProtocolDecl handles `[attrs] protocol Name[: Conformances] { body }`.
//
// Children: [0] AttributeList, [1] "protocol" leaf, [2] name leaf,
// [3] ConformanceClause, [4] Body. [0] and [3] may be empty.
func (b *Builder) visitProtocolDecl(n ast.Node) error {
	if len(n.Children) != 5 {
		return nil
	}
	attrs, keyword, name, conformances, body := n.Children[0], n.Children[1], n.Children[2], n.Children[3], n.Children[4]

	if err := b.visit(attrs); err != nil {
		return err
	}
	if err := b.visit(keyword); err != nil {
		return err
	}
	b.emit(token.NewSpace(1))
	if err := b.visit(name); err != nil {
		return err
	}
	if !b.isEmpty(conformances) {
		if err := b.visit(conformances); err != nil {
			return err
		}
	}
	b.emit(token.NewSpace(1))
	return b.visit(body)
}

// visitStructDecl handles
// `[attrs] struct Name[<Generics>][: Conformances] [where W] { body }`.
//
// Children: [0] AttributeList, [1] "struct" leaf, [2] name leaf,
// [3] GenericParamList, [4] ConformanceClause, [5] WhereClause, [6] Body.
// [0], [3], [4], [5] may be empty.
func (b *Builder) visitStructDecl(n ast.Node) error {
	if len(n.Children) != 7 {
		return nil
	}
	attrs, keyword, name := n.Children[0], n.Children[1], n.Children[2]
	generics, conformances, where, body := n.Children[3], n.Children[4], n.Children[5], n.Children[6]

	if err := b.visit(attrs); err != nil {
		return err
	}
	if err := b.visit(keyword); err != nil {
		return err
	}
	b.emit(token.NewSpace(1))
	if err := b.visit(name); err != nil {
		return err
	}
	if !b.isEmpty(generics) {
		if err := b.visit(generics); err != nil {
			return err
		}
	}
	if !b.isEmpty(conformances) {
		if err := b.visit(conformances); err != nil {
			return err
		}
	}
	if !b.isEmpty(where) {
		b.emit(token.NewSpace(1))
		if err := b.visit(where); err != nil {
			return err
		}
	}
	b.emit(token.NewSpace(1))
	return b.visit(body)
}

// visitVarDecl handles `[attrs] var|let name: Type { accessors }` or
// `[attrs] var|let name: Type = expr`.
//
// Children: [0] AttributeList, [1] keyword leaf, [2] name leaf,
// [3] colon leaf, [4] type leaf (its text is the whole type annotation,
// opaque to this Builder), [5] AccessorBlock, [6] initializer leaf (empty
// sentinel, or a leaf whose text is "= expr"). Exactly one of [5]/[6] is
// non-empty for a var with a computed or default value; both may be empty
// for a plain stored property declaration.
func (b *Builder) visitVarDecl(n ast.Node) error {
	if len(n.Children) != 7 {
		return nil
	}
	attrs, keyword, name, colon, typ := n.Children[0], n.Children[1], n.Children[2], n.Children[3], n.Children[4]
	accessors, initializer := n.Children[5], n.Children[6]

	if err := b.visit(attrs); err != nil {
		return err
	}
	if err := b.visit(keyword); err != nil {
		return err
	}
	b.emit(token.NewSpace(1))
	if err := b.visit(name); err != nil {
		return err
	}
	if err := b.visit(colon); err != nil {
		return err
	}
	b.emit(token.NewSpace(1))
	if err := b.visit(typ); err != nil {
		return err
	}

	switch {
	case !b.isEmpty(accessors):
		b.emit(token.NewSpace(1))
		return b.visit(accessors)
	case !b.isEmpty(initializer):
		b.emit(token.NewSpace(1))
		return b.visit(initializer)
	default:
		return nil
	}
}

// visitInitDecl handles `[attrs] init[?][<Generics>](params) [where W] { body }`.
//
// Children: [0] AttributeList, [1] "init" leaf (already carrying any "?"
// or "!"), [2] GenericParamList, [3] ParamList, [4] WhereClause, [5] Body.
func (b *Builder) visitInitDecl(n ast.Node) error {
	if len(n.Children) != 6 {
		return nil
	}
	attrs, keyword, generics, params, where, body := n.Children[0], n.Children[1], n.Children[2], n.Children[3], n.Children[4], n.Children[5]

	if err := b.visit(attrs); err != nil {
		return err
	}
	if err := b.visit(keyword); err != nil {
		return err
	}
	if !b.isEmpty(generics) {
		if err := b.visit(generics); err != nil {
			return err
		}
	}
	if err := b.visit(params); err != nil {
		return err
	}
	if !b.isEmpty(where) {
		b.emit(token.NewSpace(1))
		if err := b.visit(where); err != nil {
			return err
		}
	}
	b.emit(token.NewSpace(1))
	return b.visit(body)
}

// visitFuncDecl handles
// `[attrs] func name[<Generics>](params) [-> Return] [where W] { body }`.
//
// Children: [0] AttributeList, [1] "func" leaf, [2] name leaf,
// [3] GenericParamList, [4] ParamList, [5] return-type leaf (empty
// sentinel for a void function; otherwise "-> Type"), [6] WhereClause,
// [7] Body.
func (b *Builder) visitFuncDecl(n ast.Node) error {
	if len(n.Children) != 8 {
		return nil
	}
	attrs, keyword, name := n.Children[0], n.Children[1], n.Children[2]
	generics, params, ret, where, body := n.Children[3], n.Children[4], n.Children[5], n.Children[6], n.Children[7]

	if err := b.visit(attrs); err != nil {
		return err
	}
	if err := b.visit(keyword); err != nil {
		return err
	}
	b.emit(token.NewSpace(1))
	if err := b.visit(name); err != nil {
		return err
	}
	if !b.isEmpty(generics) {
		if err := b.visit(generics); err != nil {
			return err
		}
	}
	if err := b.visit(params); err != nil {
		return err
	}
	if !b.isEmpty(ret) {
		b.emit(token.NewSpace(1))
		if err := b.visit(ret); err != nil {
			return err
		}
	}
	if !b.isEmpty(where) {
		b.emit(token.NewSpace(1))
		if err := b.visit(where); err != nil {
			return err
		}
	}
	if b.isEmpty(body) {
		return nil
	}
	b.emit(token.NewSpace(1))
	return b.visit(body)
}

// visitParam handles one ParamList entry: `[label] name: Type[ = default]`.
//
// Children: [0] name-and-label leaf (already combined, e.g. "x" or
// "for label"), [1] colon leaf, [2] type-and-default leaf (opaque, e.g.
// "Int" or "Int = 0").
func (b *Builder) visitParam(n ast.Node) error {
	if len(n.Children) != 3 {
		return b.visitChildren(n)
	}
	if err := b.visit(n.Children[0]); err != nil {
		return err
	}
	if err := b.visit(n.Children[1]); err != nil {
		return err
	}
	b.emit(token.NewSpace(1))
	return b.visit(n.Children[2])
}

// visitGenericParam handles one GenericParamList entry: `T[: Constraint]`.
//
// Children: [0] name leaf, [1] colon leaf (empty sentinel if unconstrained),
// [2] constraint leaf.
func (b *Builder) visitGenericParam(n ast.Node) error {
	if len(n.Children) != 3 {
		return b.visitChildren(n)
	}
	name, colon, constraint := n.Children[0], n.Children[1], n.Children[2]
	if err := b.visit(name); err != nil {
		return err
	}
	if b.isEmpty(colon) {
		return nil
	}
	if err := b.visit(colon); err != nil {
		return err
	}
	b.emit(token.NewSpace(1))
	return b.visit(constraint)
}

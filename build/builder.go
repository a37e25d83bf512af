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

// Package build implements the TokenStreamBuilder: it walks an [ast.Node]
// tree depth-first and emits a [token.Stream] by attaching formatting
// tokens to individual leaves through before/after decoration registries.
//
// A Builder does not itself decide whether anything fits on a line; that
// is the Printer's job. It only decides where breaks and groups are
// syntactically permissible.
package build

import (
	"fmt"

	"github.com/bracepress/bracepress/ast"
	"github.com/bracepress/bracepress/printer"
	"github.com/bracepress/bracepress/token"
)

// Builder accumulates decorations while walking a tree and produces the
// resulting [token.Stream]. It reads its tree-shape options
// (RespectsExistingLineBreaks, LineBreakBeforeControlFlowKeywords,
// LineBreakBeforeEachArgument) from the same [printer.Config] the Printer
// itself reads its line-fitting options from, since both come from one
// declarative, user-facing configuration; the LineBreakBefore* fields are
// not otherwise consulted by the Printer.
//
// LineBreakBeforeControlFlowKeywords is accepted for configuration
// compatibility but currently has no effect: the declaration grammar this
// Builder supports has no control-flow statement node to apply it to.
type Builder struct {
	cfg printer.Config
	ctx *ast.Context

	before map[ast.LeafID][]token.Token
	after  map[ast.LeafID][]token.Token

	// condDepth is the current nesting depth of #if/#elseif/#else regions,
	// used to compute each branch's fixed 2-space-per-level indent. It is
	// threaded as builder state rather than a visit() parameter because the
	// generic dispatch in visit has no per-kind argument list.
	condDepth int

	out token.Stream
}

// New returns a Builder that reads leaves from ctx under cfg.
func New(ctx *ast.Context, cfg printer.Config) *Builder {
	return &Builder{
		cfg:    cfg,
		ctx:    ctx,
		before: make(map[ast.LeafID][]token.Token),
		after:  make(map[ast.LeafID][]token.Token),
	}
}

// Build walks root and returns the token stream for it, or an error if the
// tree contains a node this Builder does not know how to handle.
func Build(ctx *ast.Context, root ast.Node, cfg printer.Config) (token.Stream, error) {
	b := New(ctx, cfg)
	if err := b.visit(root); err != nil {
		return nil, err
	}
	return b.out, nil
}

// registerBefore registers toks to be flushed immediately before id's
// syntax token.
// Callers must register before descending into id's subtree, so the
// registry is populated by the time emitLeaf reaches it.
func (b *Builder) registerBefore(id ast.LeafID, toks ...token.Token) {
	b.before[id] = append(b.before[id], toks...)
}

// registerAfter registers toks to be flushed immediately after id's syntax token
// (and any trailing comment). When two productions decorate the same
// leaf, the outer one's tokens play first, which falls out naturally from
// registration order: an outer node always registers before recursing
// into whatever inner node reaches the same leaf.
func (b *Builder) registerAfter(id ast.LeafID, toks ...token.Token) {
	b.after[id] = append(b.after[id], toks...)
}

// emit appends tokens directly to the output stream, bypassing the
// registries. Used for tokens that surround a subtree rather than
// attaching to one specific leaf inside it (for example, wrapping a list
// with an [token.Open] before its first child is visited).
func (b *Builder) emit(toks ...token.Token) {
	b.out.Append(toks...)
}

// visit dispatches n by its Kind. This is the single exhaustive switch the
// tree's tagged-variant shape calls for; each case either emits directly
// (composite nodes) or, for a leaf, flushes its decorations.
func (b *Builder) visit(n ast.Node) error {
	switch n.Kind {
	case ast.KindLeaf:
		b.emitLeaf(n.LeafID)
		return nil
	case ast.KindVerbatim:
		b.emitVerbatimLeaf(n.LeafID)
		return nil

	case ast.KindFile:
		return b.visitFile(n)
	case ast.KindProtocolDecl:
		return b.visitProtocolDecl(n)
	case ast.KindStructDecl:
		return b.visitStructDecl(n)
	case ast.KindVarDecl:
		return b.visitVarDecl(n)
	case ast.KindAccessorBlock:
		return b.visitAccessorBlock(n)
	case ast.KindInitDecl:
		return b.visitInitDecl(n)
	case ast.KindFuncDecl:
		return b.visitFuncDecl(n)
	case ast.KindParamList:
		return b.visitParamList(n)
	case ast.KindParam:
		return b.visitParam(n)
	case ast.KindConformanceClause:
		return b.visitConformanceClause(n)
	case ast.KindGenericParamList:
		return b.visitGenericParamList(n)
	case ast.KindGenericParam:
		return b.visitGenericParam(n)
	case ast.KindWhereClause:
		return b.visitWhereClause(n)
	case ast.KindAttribute:
		return b.visitAttribute(n)
	case ast.KindAttributeList:
		return b.visitAttributeList(n)
	case ast.KindArgList:
		return b.visitArgList(n)
	case ast.KindCondCompile:
		return b.visitCondCompile(n)
	case ast.KindCondBranch:
		return b.visitCondBranch(n)
	case ast.KindBody:
		return b.visitBody(n)

	default:
		return fmt.Errorf("build: no visitor for %v", n.Kind)
	}
}

// visitChildren visits each of n's children in order, stopping at the
// first error.
func (b *Builder) visitChildren(n ast.Node) error {
	for _, c := range n.Children {
		if err := b.visit(c); err != nil {
			return err
		}
	}
	return nil
}

// emitLeaf implements the leaf emission order: leading trivia, then
// before[id], then the leaf's own text, then trailing trivia (an
// end-of-line comment, or, for the tree's final leaf, a closing newline),
// then after[id]. The AST provider contract already splits a leaf's
// surrounding trivia into Leading and Trailing, so there is no separate
// "is this the next leaf's leading trivia" case to handle here.
func (b *Builder) emitLeaf(id ast.LeafID) {
	leaf := b.ctx.Leaf(id)

	b.emitLeadingTrivia(leaf.Leading)
	b.out.Append(b.before[id]...)
	b.out.Append(token.NewSyntax(leaf.Text))
	b.emitTrailingTrivia(leaf.Trailing)
	b.out.Append(b.after[id]...)
}

// emitVerbatimLeaf mirrors emitLeaf for a [ast.KindVerbatim] node: the
// leaf's text is passed through as a [token.Verbatim] rather than measured
// as ordinary syntax, so the Printer reindents it relative to whatever line
// it lands on instead of folding it into a group's fit calculation.
func (b *Builder) emitVerbatimLeaf(id ast.LeafID) {
	leaf := b.ctx.Leaf(id)

	b.emitLeadingTrivia(leaf.Leading)
	b.out.Append(b.before[id]...)
	b.out.Append(token.NewVerbatim(leaf.Text))
	b.emitTrailingTrivia(leaf.Trailing)
	b.out.Append(b.after[id]...)
}

// emitLeadingTrivia emits a leaf's leading blank-line runs and comments in
// order. A blank-line run of count 1 (no blank line, just the newline
// ending the previous line) produces no token: whatever unconditional
// separator called into this leaf (visitFile's or visitBody's forced
// newline between members) already accounts for moving to a new line. A
// run of count 2 or more is one or more blank lines in the source, and
// contributes exactly one further newline on top of that separator's,
// collapsing any run of several source blank lines down to the single
// blank line this formatter preserves. Consecutive DocLineComment items
// with nothing but a single-newline gap between them are a single doc
// comment split across "///" lines in the source, and are coalesced into
// one [token.DocLine] token with the lines joined by "\n" rather than
// emitted as separate comment tokens.
func (b *Builder) emitLeadingTrivia(items []ast.Trivia) {
	for i := 0; i < len(items); i++ {
		t := items[i]
		if t.Kind == ast.Newlines {
			if !b.cfg.RespectsExistingLineBreaks || t.Count < 2 {
				continue
			}
			b.out.Append(token.NewNewline(1, 0))
			continue
		}

		if t.Kind != ast.DocLineComment {
			b.out.Append(token.NewComment(commentKind(t.Kind), t.Text))
			b.out.Append(token.NewNewline(1, 0))
			continue
		}

		text := t.Text
		for i+2 < len(items) && items[i+1].Kind == ast.Newlines && items[i+1].Count < 2 && items[i+2].Kind == ast.DocLineComment {
			text += "\n" + items[i+2].Text
			i += 2
		}
		b.out.Append(token.NewComment(token.DocLine, text))
		b.out.Append(token.NewNewline(1, 0))
	}
}

// emitTrailingTrivia emits a leaf's same-line trailing comment, if any, and,
// for the tree's final leaf, a closing newline if the source had one. Unlike
// the blank-line runs emitLeadingTrivia elides, this isn't gated on
// RespectsExistingLineBreaks: it isn't a style choice, it's the exact last
// byte of the file.
func (b *Builder) emitTrailingTrivia(items []ast.Trivia) {
	for _, t := range items {
		if t.Kind == ast.Newlines {
			b.out.Append(token.NewNewline(1, 0))
			continue
		}
		b.out.Append(token.NewSpace(1), token.NewComment(commentKind(t.Kind), t.Text))
	}
}

func commentKind(k ast.TriviaKind) token.CommentKind {
	switch k {
	case ast.DocLineComment:
		return token.DocLine
	case ast.BlockComment:
		return token.Block
	case ast.DocBlockComment:
		return token.DocBlock
	default:
		return token.Line
	}
}

// visitFile visits each top-level declaration or conditional-compilation
// region in order, forcing each onto its own line.
func (b *Builder) visitFile(n ast.Node) error {
	for i, c := range n.Children {
		if i > 0 {
			b.emit(token.NewNewline(1, 0))
		}
		if err := b.visit(c); err != nil {
			return err
		}
	}
	return nil
}

// isEmptyLeaf reports whether n is a sentinel KindLeaf wrapping an
// empty-text leaf, this Builder's convention for "this optional grammar
// slot is absent" (a colon with no type, an initializer with no
// expression, and so on).
func (b *Builder) isEmptyLeaf(n ast.Node) bool {
	return n.Kind == ast.KindLeaf && b.ctx.Leaf(n.LeafID).Text == ""
}

// isEmpty reports whether n is an absent optional slot: either the empty
// leaf sentinel isEmptyLeaf recognizes, or a composite node with no
// children (an omitted AttributeList, ConformanceClause, and so on).
func (b *Builder) isEmpty(n ast.Node) bool {
	if b.isEmptyLeaf(n) {
		return true
	}
	return n.Kind != ast.KindLeaf && len(n.Children) == 0
}

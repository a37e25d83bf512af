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

package build_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bracepress/bracepress/ast"
	"github.com/bracepress/bracepress/build"
	"github.com/bracepress/bracepress/indent"
	"github.com/bracepress/bracepress/printer"
	"github.com/bracepress/bracepress/scanner"
)

// render builds toks from root, scans, and prints at maxWidth, returning the
// formatted text. It fails the test on any error along the way.
func render(t *testing.T, ctx *ast.Context, root ast.Node, cfg printer.Config, maxWidth int) string {
	t.Helper()

	stream, err := build.Build(ctx, root, cfg)
	require.NoError(t, err)

	pcfg := printer.Default()
	pcfg.MaxLineLength = maxWidth
	pcfg.Indent = printer.IndentConfig{Kind: indent.Spaces, Count: 2}

	lengths, err := scanner.Scan(stream, pcfg.MaxLineLength, pcfg.TabWidth)
	require.NoError(t, err)

	out, err := printer.Print(stream, lengths, pcfg)
	require.NoError(t, err)
	return out
}

func leaf(ctx *ast.Context, text string) ast.Node {
	return ast.NewLeaf(ctx.NewLeaf(text, nil, nil))
}

func empty() ast.Node {
	return ast.New(ast.KindAttributeList)
}

func emptyLeaf(ctx *ast.Context) ast.Node {
	return leaf(ctx, "")
}

// protocolTree builds `protocol Name { var propN: Int { get set } ... }`
// with n properties, each rendered as a VarDecl with an AccessorBlock.
func protocolTree(ctx *ast.Context, name string, propNames ...string) ast.Node {
	var members []ast.Node
	for _, p := range propNames {
		accessors := ast.New(ast.KindAccessorBlock,
			leaf(ctx, "{"),
			leaf(ctx, "get"),
			leaf(ctx, "set"),
			leaf(ctx, "}"),
		)
		members = append(members, ast.New(ast.KindVarDecl,
			empty(),
			leaf(ctx, "var"),
			leaf(ctx, p),
			leaf(ctx, ":"),
			leaf(ctx, "Int"),
			accessors,
			emptyLeaf(ctx),
		))
	}
	body := ast.New(ast.KindBody, append(append([]ast.Node{leaf(ctx, "{")}, members...), leaf(ctx, "}"))...)
	return ast.New(ast.KindProtocolDecl, empty(), leaf(ctx, "protocol"), leaf(ctx, name), empty(), body)
}

func TestProtocolWithSinglePropertyFitsOnOneLine(t *testing.T) {
	t.Parallel()

	var ctx ast.Context
	root := protocolTree(&ctx, "Sized", "count")

	out := render(t, &ctx, root, printer.Config{}, 80)
	require.Equal(t, "protocol Sized { var count: Int { get set } }", out)
}

func TestProtocolWithTwoPropertiesNeverSquashesThemOntoOneLine(t *testing.T) {
	t.Parallel()

	var ctx ast.Context
	root := protocolTree(&ctx, "Sized", "count", "total")

	out := render(t, &ctx, root, printer.Config{}, 80)
	require.Regexp(t, `get set \}\n\s*var total`, out)
}

func TestProtocolWithPropertyWrapsAtNarrowWidth(t *testing.T) {
	t.Parallel()

	var ctx ast.Context
	root := protocolTree(&ctx, "Sized", "count")

	out := render(t, &ctx, root, printer.Config{}, 30)
	require.Contains(t, out, "protocol Sized {\n  var count: Int {\n    get\n    set\n  }\n}")
}

func TestEmptyBodyCollapsesWithNoSpace(t *testing.T) {
	t.Parallel()

	var ctx ast.Context
	body := ast.New(ast.KindBody, leaf(&ctx, "{"), leaf(&ctx, "}"))
	root := ast.New(ast.KindProtocolDecl, empty(), leaf(&ctx, "protocol"), leaf(&ctx, "Empty"), empty(), body)

	out := render(t, &ctx, root, printer.Config{}, 80)
	require.Equal(t, "protocol Empty {}", out)
}

// conformanceTree builds `protocol Name: A, B, C { }`.
func conformanceTree(ctx *ast.Context, name string, conformances ...string) ast.Node {
	colon := leaf(ctx, ":")
	var names []ast.Node
	for _, c := range conformances {
		names = append(names, leaf(ctx, c))
	}
	clause := ast.New(ast.KindConformanceClause, append([]ast.Node{colon}, names...)...)
	body := ast.New(ast.KindBody, leaf(ctx, "{"), leaf(ctx, "}"))
	return ast.New(ast.KindProtocolDecl, empty(), leaf(ctx, "protocol"), leaf(ctx, name), clause, body)
}

func TestConformanceClauseWrapsAllTogetherWhenTooLong(t *testing.T) {
	t.Parallel()

	var ctx ast.Context
	root := conformanceTree(&ctx, "Widget", "Equatable", "Hashable", "Codable")

	out := render(t, &ctx, root, printer.Config{}, 20)
	require.Contains(t, out, "protocol Widget:\n  Equatable,\n  Hashable,\n  Codable\n{}")
}

func TestConformanceClauseStaysInlineWhenItFits(t *testing.T) {
	t.Parallel()

	var ctx ast.Context
	root := conformanceTree(&ctx, "Widget", "Equatable")

	out := render(t, &ctx, root, printer.Config{}, 80)
	require.Equal(t, "protocol Widget: Equatable {}", out)
}

// paramTree builds a Param node: `name: Type`.
func paramTree(ctx *ast.Context, name, typ string) ast.Node {
	return ast.New(ast.KindParam, leaf(ctx, name), leaf(ctx, ":"), leaf(ctx, typ))
}

// initTree builds `init(params) { }`.
func initTree(ctx *ast.Context, params ...ast.Node) ast.Node {
	list := ast.New(ast.KindParamList, append(append([]ast.Node{leaf(ctx, "(")}, params...), leaf(ctx, ")"))...)
	body := ast.New(ast.KindBody, leaf(ctx, "{"), leaf(ctx, "}"))
	return ast.New(ast.KindInitDecl, empty(), leaf(ctx, "init"), empty(), list, empty(), body)
}

func TestInitParamListPacksWhenItFits(t *testing.T) {
	t.Parallel()

	var ctx ast.Context
	root := initTree(&ctx, paramTree(&ctx, "x", "Int"), paramTree(&ctx, "y", "Int"))

	out := render(t, &ctx, root, printer.Config{}, 80)
	require.Equal(t, "init(x: Int, y: Int) {}", out)
}

func TestInitParamListBreaksAfterEachCommaWhenTooLong(t *testing.T) {
	t.Parallel()

	var ctx ast.Context
	root := initTree(&ctx,
		paramTree(&ctx, "width", "Int"),
		paramTree(&ctx, "height", "Int"),
		paramTree(&ctx, "depth", "Int"),
	)

	out := render(t, &ctx, root, printer.Config{}, 20)
	require.Contains(t, out, "init(\n  width: Int,\n  height: Int,\n  depth: Int\n) {}")
}

func TestConditionalCompilationIndentsNestedRegionsByTwoPerLevel(t *testing.T) {
	t.Parallel()

	var ctx ast.Context
	inner := ast.New(ast.KindCondCompile,
		ast.New(ast.KindCondBranch, leaf(&ctx, "#if INNER"), leaf(&ctx, "innerDecl")),
		leaf(&ctx, "#endif"),
	)
	outer := ast.New(ast.KindCondCompile,
		ast.New(ast.KindCondBranch, leaf(&ctx, "#if OUTER"), inner),
		leaf(&ctx, "#endif"),
	)
	root := ast.New(ast.KindFile, outer)

	out := render(t, &ctx, root, printer.Config{}, 80)
	require.Equal(t, "#if OUTER\n  #if INNER\n    innerDecl\n  #endif\n#endif", out)
}

func TestFinalTrailingNewlineIsPreservedWhenSourceHadOne(t *testing.T) {
	t.Parallel()

	var ctx ast.Context
	endif := ast.NewLeaf(ctx.NewLeaf("#endif", nil, []ast.Trivia{{Kind: ast.Newlines, Count: 1}}))
	branch := ast.New(ast.KindCondBranch, leaf(&ctx, "#if X"), leaf(&ctx, "let a = 1"))
	root := ast.New(ast.KindFile, ast.New(ast.KindCondCompile, branch, endif))

	out := render(t, &ctx, root, printer.Config{}, 80)
	require.Equal(t, "#if X\n  let a = 1\n#endif\n", out)
}

func TestNoTrailingNewlineWhenSourceHadNone(t *testing.T) {
	t.Parallel()

	var ctx ast.Context
	branch := ast.New(ast.KindCondBranch, leaf(&ctx, "#if X"), leaf(&ctx, "let a = 1"))
	root := ast.New(ast.KindFile, ast.New(ast.KindCondCompile, branch, leaf(&ctx, "#endif")))

	out := render(t, &ctx, root, printer.Config{}, 80)
	require.Equal(t, "#if X\n  let a = 1\n#endif", out)
}

func TestVerbatimBodyMemberIsReindentedRelativeToTheBrace(t *testing.T) {
	t.Parallel()

	var ctx ast.Context
	member := ast.NewVerbatim(ctx.NewLeaf("  first\n    deeper\nshallow", nil, nil))
	body := ast.New(ast.KindBody, leaf(&ctx, "{"), member, leaf(&ctx, "}"))
	root := ast.New(ast.KindProtocolDecl, empty(), leaf(&ctx, "protocol"), leaf(&ctx, "Raw"), empty(), body)

	out := render(t, &ctx, root, printer.Config{}, 80)
	require.Equal(t, "protocol Raw {\n  first\n    deeper\n  shallow\n}", out)
}

func TestBlankLineBetweenDeclarationsIsPreservedAsExactlyOne(t *testing.T) {
	t.Parallel()

	var ctx ast.Context
	declWithLeadingBlank := func(name string, leading []ast.Trivia) ast.Node {
		body := ast.New(ast.KindBody, leaf(&ctx, "{"), leaf(&ctx, "}"))
		keyword := ast.NewLeaf(ctx.NewLeaf("protocol", leading, nil))
		return ast.New(ast.KindProtocolDecl, empty(), keyword, leaf(&ctx, name), empty(), body)
	}

	first := declWithLeadingBlank("A", nil)
	second := declWithLeadingBlank("B", []ast.Trivia{{Kind: ast.Newlines, Count: 2}})
	root := ast.New(ast.KindFile, first, second)

	cfg := printer.Config{RespectsExistingLineBreaks: true}

	wide := render(t, &ctx, root, cfg, 80)
	require.Equal(t, "protocol A {}\n\nprotocol B {}", wide)

	narrow := render(t, &ctx, root, cfg, 5)
	require.Equal(t, "protocol A {}\n\nprotocol B {}", narrow)
}

// attributedFuncTree builds `@discardableResult @available(*) func run() {}`.
func attributedFuncTree(ctx *ast.Context) ast.Node {
	attrs := ast.New(ast.KindAttributeList,
		ast.New(ast.KindAttribute, leaf(ctx, "@discardableResult"), empty()),
		ast.New(ast.KindAttribute, leaf(ctx, "@available"), ast.New(ast.KindArgList, leaf(ctx, "("), leaf(ctx, "*"), leaf(ctx, ")"))),
	)
	body := ast.New(ast.KindBody, leaf(ctx, "{"), leaf(ctx, "}"))
	return ast.New(ast.KindFuncDecl, attrs, leaf(ctx, "func"), leaf(ctx, "run"), empty(),
		ast.New(ast.KindParamList, leaf(ctx, "("), leaf(ctx, ")")), emptyLeaf(ctx), empty(), body)
}

func TestAttributeListPacksOnOneLineWhenItFits(t *testing.T) {
	t.Parallel()

	var ctx ast.Context
	root := attributedFuncTree(&ctx)

	out := render(t, &ctx, root, printer.Config{}, 80)
	require.Equal(t, "@discardableResult @available(*) func run() {}", out)
}

func TestAttributeListWrapsOneAttributePerLineAtNarrowWidth(t *testing.T) {
	t.Parallel()

	var ctx ast.Context
	root := attributedFuncTree(&ctx)

	out := render(t, &ctx, root, printer.Config{}, 20)
	require.Equal(t, "@discardableResult\n@available(*)\nfunc run() {}", out)
}

func TestVarDeclWithInitializerInsteadOfAccessors(t *testing.T) {
	t.Parallel()

	var ctx ast.Context
	root := ast.New(ast.KindVarDecl,
		empty(),
		leaf(&ctx, "var"),
		leaf(&ctx, "count"),
		leaf(&ctx, ":"),
		leaf(&ctx, "Int"),
		empty(),
		leaf(&ctx, "= 0"),
	)

	out := render(t, &ctx, root, printer.Config{}, 80)
	require.Equal(t, "var count: Int = 0", out)
}

func TestFileWithMultipleTopLevelDeclarationsBreaksBetweenThem(t *testing.T) {
	t.Parallel()

	var ctx ast.Context
	root := ast.New(ast.KindFile, conformanceTree(&ctx, "A"), conformanceTree(&ctx, "B"))

	out := render(t, &ctx, root, printer.Config{}, 80)
	require.Equal(t, "protocol A {}\nprotocol B {}", out)
}

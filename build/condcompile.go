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

// visitCondCompile handles a whole `#if ... #elseif ... #else ... #endif`
// region. Directives always sit at their enclosing depth's indent; the
// declarations or statements a branch guards sit one level (2 columns)
// further in, so a region nested inside another #if indents by 4, a
// triple-nested one by 6, and so on, tracked by condDepth rather than by
// the group-offset machinery the rest of the builder uses, since directive
// placement doesn't participate in line-fitting.
//
// Children: N CondBranch nodes followed by an "#endif" leaf.
func (b *Builder) visitCondCompile(n ast.Node) error {
	if len(n.Children) < 1 {
		return nil
	}
	endif := n.Children[len(n.Children)-1]
	branches := n.Children[:len(n.Children)-1]
	depth := b.condDepth

	for i, branch := range branches {
		if i > 0 {
			b.emit(token.NewNewline(1, depth*2))
		}
		if err := b.visitCondBranch(branch); err != nil {
			return err
		}
	}
	b.emit(token.NewNewline(1, depth*2))
	return b.visit(endif)
}

// visitCondBranch handles one `#if cond`, `#elseif cond`, or `#else`
// branch and the members or statements it guards.
//
// Children: [0] directive leaf (the full directive text, e.g.
// "#if DEBUG"), followed by N guarded item nodes.
func (b *Builder) visitCondBranch(n ast.Node) error {
	if len(n.Children) < 1 {
		return nil
	}
	directive := n.Children[0]
	items := n.Children[1:]

	if err := b.visit(directive); err != nil {
		return err
	}

	b.condDepth++
	defer func() { b.condDepth-- }()
	for _, item := range items {
		b.emit(token.NewNewline(1, b.condDepth*2))
		if err := b.visit(item); err != nil {
			return err
		}
	}
	return nil
}

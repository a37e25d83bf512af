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

// visitAttributeList handles the run of attributes decorating a
// declaration. A single attribute always sits on its own line. Two or more
// are wrapped in a [token.Consistent] group with a break after each one
// (including the last, which separates the list from whatever follows):
// when the whole run fits, every break renders as a single space and the
// attributes pack onto the declaration's own line; otherwise every break
// fires together and each attribute, and the declaration itself, gets its
// own line at the same indent. The fit decision belongs entirely to the
// Printer; this only places the group and its breaks.
//
// Children: N Attribute nodes. Zero children means no attributes at all.
func (b *Builder) visitAttributeList(n ast.Node) error {
	if len(n.Children) == 0 {
		return nil
	}
	if len(n.Children) == 1 {
		if err := b.visit(n.Children[0]); err != nil {
			return err
		}
		b.emit(token.NewNewline(1, 0))
		return nil
	}

	b.emit(token.NewOpen(token.Consistent, 0))
	for _, attr := range n.Children {
		if err := b.visit(attr); err != nil {
			return err
		}
		b.emit(token.NewBreak(1, 0))
	}
	b.emit(token.NewClose())
	return nil
}

// visitAttribute handles one `@Name` or `@Name(args)`.
//
// Children: [0] name leaf (including the leading "@"), [1] ArgList
// (possibly empty, for a bare attribute with no arguments).
func (b *Builder) visitAttribute(n ast.Node) error {
	if len(n.Children) != 2 {
		return b.visitChildren(n)
	}
	if err := b.visit(n.Children[0]); err != nil {
		return err
	}
	return b.visit(n.Children[1])
}

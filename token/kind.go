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

package token

import "fmt"

// Kind identifies which of the closed set of formatting primitives a [Token]
// is. The variant is closed by design: the Scanner and Printer switch
// exhaustively over Kind, and adding a case here means updating both.
type Kind byte

const (
	// Unknown is the zero Kind and never appears in a well-formed stream.
	Unknown Kind = iota
	// Syntax is literal text; its length is the column width of that text.
	Syntax
	// Break is an optional breakpoint.
	Break
	// Space is hard whitespace; never a breakpoint.
	Space
	// Open begins a group.
	Open
	// Close ends the nearest unclosed group.
	Close
	// Newline is a forced line break.
	Newline
	// Reset cancels a pending, un-fired break.
	Reset
	// Comment carries a line, doc-line, block, or doc-block comment.
	Comment
	// Verbatim is raw text whose internal relative indentation is preserved.
	Verbatim
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Syntax:
		return "Syntax"
	case Break:
		return "Break"
	case Space:
		return "Space"
	case Open:
		return "Open"
	case Close:
		return "Close"
	case Newline:
		return "Newline"
	case Reset:
		return "Reset"
	case Comment:
		return "Comment"
	case Verbatim:
		return "Verbatim"
	default:
		return fmt.Sprintf("token.Kind(%d)", byte(k))
	}
}

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

// CommentKind distinguishes the four comment shapes the core threads through
// a token stream. Line and DocLine comments are single physical lines each,
// though a run of consecutive DocLine comments is coalesced into one token
// with embedded newlines by the trivia adapter; Block and DocBlock comments
// may contain internal newlines from a single lexical comment.
type CommentKind byte

const (
	// Line is a "// ..." comment.
	Line CommentKind = iota + 1
	// DocLine is a "/// ..." documentation comment, or a coalesced run of
	// them.
	DocLine
	// Block is a "/* ... */" comment, possibly multi-line.
	Block
	// DocBlock is a "/** ... */" documentation comment, possibly multi-line.
	DocBlock
)

// String implements [fmt.Stringer].
func (k CommentKind) String() string {
	switch k {
	case Line:
		return "Line"
	case DocLine:
		return "DocLine"
	case Block:
		return "Block"
	case DocBlock:
		return "DocBlock"
	default:
		return fmt.Sprintf("token.CommentKind(%d)", byte(k))
	}
}

// IsBlock reports whether this comment kind uses block delimiters rather
// than being made of one-or-more line-oriented comments.
func (k CommentKind) IsBlock() bool {
	return k == Block || k == DocBlock
}

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

package ast

// TriviaKind distinguishes the two shapes of trivia a leaf can carry:
// runs of blank lines, and comments.
type TriviaKind int

const (
	// Newlines is a run of one or more line breaks between tokens; Count
	// records how many source newlines were present (the builder turns any
	// Count of 2 or more into a single preserved blank line).
	Newlines TriviaKind = iota
	// LineComment is a single "// ..." comment.
	LineComment
	// DocLineComment is a single "/// ..." comment; adjacent DocLineComment
	// trivia items are coalesced by the builder into one comment token.
	DocLineComment
	// BlockComment is a "/* ... */" comment, possibly spanning lines.
	BlockComment
	// DocBlockComment is a "/** ... */" comment, possibly spanning lines.
	DocBlockComment
)

// String returns the Go source representation of k.
func (k TriviaKind) String() string {
	switch k {
	case Newlines:
		return "Newlines"
	case LineComment:
		return "LineComment"
	case DocLineComment:
		return "DocLineComment"
	case BlockComment:
		return "BlockComment"
	case DocBlockComment:
		return "DocBlockComment"
	default:
		return "TriviaKind(?)"
	}
}

// Trivia is one item of leading or trailing trivia attached to a [Leaf]:
// either a run of blank lines or a comment.
type Trivia struct {
	Kind TriviaKind
	// Count is the number of consecutive source newlines, meaningful only
	// when Kind == Newlines.
	Count int
	// Text is the comment's source text, including its delimiters
	// ("//", "///", "/*"/"*/", "/**"/"*/"), meaningful only for comment
	// kinds.
	Text string
}

// IsComment reports whether t is one of the four comment kinds.
func (t Trivia) IsComment() bool {
	return t.Kind != Newlines
}

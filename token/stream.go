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

// Stream is a sequence of Tokens produced by a
// [github.com/bracepress/bracepress/build.Builder]. It is the sole input to
// the Scanner.
type Stream []Token

// Balanced reports whether every [Open] in the stream has exactly one
// matching [Close] and the stream is well nested. idx is the index of the
// first violation; it is -1 when balanced is true.
func (s Stream) Balanced() (balanced bool, idx int) {
	depth := 0
	for i, tok := range s {
		switch tok.Kind() {
		case Open:
			depth++
		case Close:
			depth--
			if depth < 0 {
				return false, i
			}
		}
	}
	if depth != 0 {
		return false, len(s)
	}
	return true, -1
}

// Append appends toks in order, mirroring the append-only construction
// discipline the Builder relies on.
func (s *Stream) Append(toks ...Token) {
	*s = append(*s, toks...)
}

// Depth returns the maximum group nesting depth reached by the stream. This
// bounds the size the Printer's groupStack and the Scanner's delimiter
// index stack ever need to grow to.
func (s Stream) Depth() int {
	depth, max := 0, 0
	for _, tok := range s {
		switch tok.Kind() {
		case Open:
			depth++
			if depth > max {
				max = depth
			}
		case Close:
			depth--
		}
	}
	return max
}

// String implements [fmt.Stringer].
func (s Stream) String() string {
	out := "["
	for i, tok := range s {
		if i > 0 {
			out += ", "
		}
		out += tok.String()
	}
	return out + "]"
}

var _ fmt.Stringer = Stream(nil)

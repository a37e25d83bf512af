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

// Package scanner implements the first pass of Oppen's two-phase
// pretty-printing algorithm: given a [token.Stream], it computes a
// parallel array of "effective lengths" that the printer package later
// uses to decide, in a single forward pass, whether a group or break fits
// on the current line.
package scanner

import (
	"github.com/bracepress/bracepress/internal/stackx"
	"github.com/bracepress/bracepress/internal/width"
	"github.com/bracepress/bracepress/token"
)

// Lengths is the parallel array produced by [Scan]: Lengths[i] is the
// effective length of Stream[i].
type Lengths []int

// Scan computes the effective length of every token in s. maxLineWidth is
// used both as the assigned length of [token.Newline] and [token.Verbatim]
// tokens (these are given the max line width so that any enclosing group
// is forced to break) and, together with tabWidth, to size tab-containing
// text.
//
// Scan returns a [MalformedTokenStreamError] if s's opens, closes, and
// breaks are not well nested; this can only happen if the
// [github.com/bracepress/bracepress/build.Builder] that produced s has a
// bug.
func Scan(s token.Stream, maxLineWidth, tabWidth int) (Lengths, error) {
	lengths := make(Lengths, len(s))
	var delimIndexStack stackx.Stack[int]
	var total int

	finalizeTopBreak := func() {
		if top, ok := delimIndexStack.Peek(); ok && s[top].Kind() == token.Break {
			lengths[top] += total
			delimIndexStack.Pop()
		}
	}

	for i, tok := range s {
		switch tok.Kind() {
		case token.Syntax:
			w := width.Width(tok.Text(), tabWidth)
			lengths[i] = w
			total += w

		case token.Space:
			lengths[i] = tok.Size()
			total += tok.Size()

		case token.Open:
			delimIndexStack.Push(i)
			lengths[i] = -total

		case token.Close:
			top, ok := delimIndexStack.Peek()
			if !ok {
				return nil, &MalformedTokenStreamError{Index: i, Reason: "close with no matching open"}
			}
			delimIndexStack.Pop()

			switch s[top].Kind() {
			case token.Break:
				lengths[top] += total
				openIdx, ok := delimIndexStack.Peek()
				if !ok || s[openIdx].Kind() != token.Open {
					return nil, &MalformedTokenStreamError{Index: i, Reason: "break not immediately nested in an open"}
				}
				delimIndexStack.Pop()
				lengths[openIdx] += total
			case token.Open:
				lengths[top] += total
			default:
				return nil, &MalformedTokenStreamError{Index: i, Reason: "close does not match an open or break"}
			}
			lengths[i] = 0

		case token.Break:
			finalizeTopBreak()
			delimIndexStack.Push(i)
			lengths[i] = -total
			total += tok.Size()

		case token.Newline:
			finalizeTopBreak()
			lengths[i] = maxLineWidth
			total += maxLineWidth

		case token.Reset:
			finalizeTopBreak()
			lengths[i] = 0

		case token.Comment:
			w := width.WidestLine(tok.Text(), tabWidth)
			lengths[i] = w
			total += w

		case token.Verbatim:
			lengths[i] = maxLineWidth
			total += maxLineWidth

		default:
			return nil, &MalformedTokenStreamError{Index: i, Reason: "unrecognized token kind"}
		}
	}

	// A break outside every group (such as the one a top-level brace block
	// places before its own group) is only finalized by a later break,
	// newline or reset; at end of stream its content runs to the end.
	finalizeTopBreak()

	if !delimIndexStack.Empty() {
		top, _ := delimIndexStack.Peek()
		return nil, &MalformedTokenStreamError{Index: top, Reason: "unclosed open or break at end of stream"}
	}

	return lengths, nil
}

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

// Package indent models physical indentation: the units the Printer pushes
// onto its indent stack as groups break, and how those units render to both
// text and column width.
package indent

import "strings"

// Kind is the character an [Unit] repeats.
type Kind byte

const (
	// Spaces indents with the space character.
	Spaces Kind = iota
	// Tabs indents with the tab character.
	Tabs
)

// Char returns the character this Kind repeats.
func (k Kind) Char() byte {
	if k == Tabs {
		return '\t'
	}
	return ' '
}

// Unit is one frame of indentation: count repetitions of Kind's character.
// A negative count is invalid and Text/Columns treat it as zero, since a
// break's offset may be negative but a Unit only ever accumulates the
// non-negative remainder (see Stack.Push).
type Unit struct {
	Kind  Kind
	Count int
}

// Text renders this unit as a literal string.
func (u Unit) Text() string {
	if u.Count <= 0 {
		return ""
	}
	return strings.Repeat(string(u.Kind.Char()), u.Count)
}

// Columns returns the column width of this unit given tabWidth (the column
// width of a single tab character; ignored for [Spaces]).
func (u Unit) Columns(tabWidth int) int {
	if u.Count <= 0 {
		return 0
	}
	if u.Kind == Tabs {
		return u.Count * tabWidth
	}
	return u.Count
}

// Stack is a stack of indent [Unit]s. The Printer, which owns it
// exclusively, keeps a single frame holding the current line's full
// indentation, replacing it each time a line break is written.
type Stack struct {
	units    []Unit
	tabWidth int
}

// NewStack returns an empty indentation stack that measures tabs as
// tabWidth columns wide.
func NewStack(tabWidth int) *Stack {
	if tabWidth < 1 {
		tabWidth = 1
	}
	return &Stack{tabWidth: tabWidth}
}

// Push adds a new frame of count columns worth of kind indentation. count
// may be negative (an offset can be); it is clamped to zero, since printed
// indentation is never negative width.
func (s *Stack) Push(kind Kind, count int) {
	if count < 0 {
		count = 0
	}
	s.units = append(s.units, Unit{Kind: kind, Count: count})
}

// Pop removes the most recently pushed frame, if any.
func (s *Stack) Pop() {
	if len(s.units) == 0 {
		return
	}
	s.units = s.units[:len(s.units)-1]
}

// Depth returns the number of frames on the stack.
func (s *Stack) Depth() int {
	return len(s.units)
}

// Truncate pops frames until the stack has exactly depth frames. It is used
// when a group closes and the Printer must discard the indent frame the
// group's own breaks pushed.
func (s *Stack) Truncate(depth int) {
	if depth < 0 {
		depth = 0
	}
	if depth < len(s.units) {
		s.units = s.units[:depth]
	}
}

// Render returns the literal text of the whole stack, outermost frame
// first.
func (s *Stack) Render() string {
	var b strings.Builder
	for _, u := range s.units {
		b.WriteString(u.Text())
	}
	return b.String()
}

// Columns returns the total column width of the whole stack.
func (s *Stack) Columns() int {
	total := 0
	for _, u := range s.units {
		total += u.Columns(s.tabWidth)
	}
	return total
}

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

// Package width measures the number of terminal columns a string will
// occupy, which is what the scanner package means by the length of a
// syntax, comment, or space token.
package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Width returns the column width of s, treating each tab as advancing to
// the next column that is a multiple of tabstop. Ambiguous-width runes are
// measured per [uniseg.StringWidth]'s East-Asian-Width-agnostic default,
// consistent with a non-CJK terminal.
func Width(s string, tabstop int) int {
	if tabstop < 1 {
		tabstop = 1
	}
	if !strings.ContainsRune(s, '\t') {
		return uniseg.StringWidth(s)
	}

	var r Ruler
	r.tabstop = tabstop
	for _, ch := range s {
		r.Measure(ch)
	}
	return r.width
}

// WidestLine returns the column width of the widest '\n'-separated line in
// s, which is how the scanner package measures a multi-line comment.
func WidestLine(s string, tabstop int) int {
	max := 0
	for _, line := range strings.Split(s, "\n") {
		if w := Width(line, tabstop); w > max {
			max = w
		}
	}
	return max
}

// Ruler tracks the state of an ongoing, rune-at-a-time measurement, so
// callers can interleave measurement with other per-rune processing.
//
// A zero Ruler is ready to use and defaults to a tabstop of 1.
type Ruler struct {
	width   int
	tabstop int
}

// Measure pushes a rune onto the running tally and returns the tally.
func (r *Ruler) Measure(ch rune) int {
	if r.tabstop < 1 {
		r.tabstop = 1
	}
	if ch == '\t' {
		r.width += r.tabstop - r.width%r.tabstop
		return r.width
	}
	r.width += uniseg.StringWidth(string(ch))
	return r.width
}

// Width returns the width measured so far.
func (r *Ruler) Width() int {
	return r.width
}

// Reset zeroes the running tally, keeping the configured tabstop.
func (r *Ruler) Reset() {
	r.width = 0
}

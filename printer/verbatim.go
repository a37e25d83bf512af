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

package printer

import "strings"

// leadingWhitespace returns the number of leading space/tab characters in
// line.
func leadingWhitespace(line string) int {
	n := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return n
}

// reindentVerbatim strips the first line of a verbatim block down to its
// content (the printer has already written the current indent to the line
// it sits on), and places every other line at the current indent plus
// however much deeper it was than the first line in the source. A line
// shallower than the first line is raised to match it, rather than going
// negative.
func reindentVerbatim(text, currentIndent string) []string {
	lines := strings.Split(text, "\n")
	base := leadingWhitespace(lines[0])

	out := make([]string, len(lines))
	for i, line := range lines {
		own := leadingWhitespace(line)
		content := line[own:]
		if i == 0 {
			out[i] = content
			continue
		}
		relative := own - base
		if relative < 0 {
			relative = 0
		}
		out[i] = currentIndent + strings.Repeat(" ", relative) + content
	}
	return out
}

// reindentDocLine places every continuation line of a coalesced ///
// comment run flush at the current indent, dropping whatever whitespace
// preceded its /// marker in the source: unlike verbatim regions, doc
// comments carry no meaningful indentation before that marker. The marker
// and everything after it are kept as they are.
func reindentDocLine(text, currentIndent string) []string {
	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		if i == 0 {
			out[i] = line
			continue
		}
		out[i] = currentIndent + strings.TrimLeft(line, " \t")
	}
	return out
}

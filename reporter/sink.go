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

package reporter

import (
	"iter"

	"github.com/bracepress/bracepress/ast"
	"github.com/bracepress/bracepress/internal/interval"
)

// Sink collects diagnostics reported against one tree and indexes them by
// the reporting node's ordinal position in a pre-order walk of that tree,
// so At can answer "what was reported at exactly this node" without
// rescanning every diagnostic ever collected.
type Sink struct {
	root   ast.Node
	byPath map[string]int
	ivl    interval.Intersect[int, Diagnostic]
	all    []Diagnostic
}

// NewSink returns a Sink that indexes diagnostics against root's shape.
// root should be the same tree (or one with equivalent structure) passed
// to the rules that will report into this Sink.
func NewSink(root ast.Node) *Sink {
	s := &Sink{root: root, byPath: make(map[string]int)}
	i := 0
	ast.Walk(root, func(p ast.Path, _ ast.Node) bool {
		s.byPath[p.String()] = i
		i++
		return true
	})
	return s
}

// Report implements Reporter.
func (s *Sink) Report(d Diagnostic) {
	s.all = append(s.all, d)
	pos, ok := s.byPath[d.Path.String()]
	if !ok {
		return
	}
	s.ivl.Insert(pos, pos, d)
}

// At returns every diagnostic reported at the node path names, in report
// order.
func (s *Sink) At(path ast.Path) []Diagnostic {
	pos, ok := s.byPath[path.String()]
	if !ok {
		return nil
	}
	return s.ivl.At(pos).Value
}

// All iterates every diagnostic this Sink has collected, in the order
// rules reported them.
func (s *Sink) All() iter.Seq[Diagnostic] {
	return func(yield func(Diagnostic) bool) {
		for _, d := range s.all {
			if !yield(d) {
				return
			}
		}
	}
}

// HasErrors reports whether any collected diagnostic is at [Error]
// severity; format.Format uses this to decide whether to suppress output
// for a file.
func (s *Sink) HasErrors() bool {
	for _, d := range s.all {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

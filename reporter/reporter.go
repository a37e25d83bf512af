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

// Package reporter defines the diagnostic surface a Rule reports through,
// and a Sink implementation that indexes diagnostics by the reporting
// node's position in a pre-order walk of the tree, so callers can ask
// "what was reported at this node" without a linear scan.
package reporter

import (
	"fmt"

	"github.com/bracepress/bracepress/ast"
)

// Severity classifies how serious a diagnostic is.
type Severity int8

const (
	// Remark is an informational observation; it never fails formatting.
	Remark Severity = iota + 1
	// Warning flags something a caller probably wants to look at, but
	// formatting proceeds regardless.
	Warning
	// Error indicates a rule refused to rewrite the tree; formatting of
	// the affected file is suppressed.
	Error
)

// String returns the lowercase name of s.
func (s Severity) String() string {
	switch s {
	case Remark:
		return "remark"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int8(s))
	}
}

// Diagnostic is one message a Rule attaches to a position in the tree.
type Diagnostic struct {
	Severity Severity
	Message  string
	// Tag is a short machine-readable identifier for the kind of finding,
	// e.g. "unreachable-branch" or "redundant-conformance".
	Tag string
	// Path locates the diagnostic within the tree a Rule was given.
	Path ast.Path
}

// Reporter accepts diagnostics as a Rule discovers them.
type Reporter interface {
	Report(Diagnostic)
}

// Rule is the formatting core's external collaborator boundary: an
// independent pre-pass over the tree that may rewrite it and reports
// whatever it finds through sink. The printer never sees anything a Rule
// produces except the final, possibly-rewritten AST.
type Rule func(ctx *ast.Context, root ast.Node, sink Reporter) (ast.Node, error)

// Run applies each rule to root in order, threading the possibly-rewritten
// tree from one rule into the next, and reporting every diagnostic to
// sink. It stops and returns the error from the first rule that fails.
func Run(ctx *ast.Context, root ast.Node, rules []Rule, sink Reporter) (ast.Node, error) {
	for _, rule := range rules {
		rewritten, err := rule(ctx, root, sink)
		if err != nil {
			return root, err
		}
		root = rewritten
	}
	return root, nil
}

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

// Package format wires parsing, the Rule collaborator pass, the
// TokenStreamBuilder, the Scanner, and the Printer into a single entry
// point, and provides Batch for formatting many files with bounded
// concurrency.
package format

import (
	"github.com/bracepress/bracepress/ast"
	"github.com/bracepress/bracepress/build"
	"github.com/bracepress/bracepress/printer"
	"github.com/bracepress/bracepress/reporter"
	"github.com/bracepress/bracepress/scanner"
)

// Parser turns source text into a tree. Parsing itself is out of this
// module's scope; callers supply the parser appropriate to the language
// they're formatting.
type Parser func(source string) (*ast.Context, ast.Node, error)

// Config bundles every knob Format threads through to its stages. Print is
// shared by both the Builder (for its tree-shape options) and the Printer
// (for its line-fitting options).
type Config struct {
	Print printer.Config
	Rules []reporter.Rule
}

// Result is what one call to Format produced.
type Result struct {
	// Output is the formatted text. It is empty when Sink.HasErrors is
	// true: formatting output is suppressed once a rule reports an error,
	// per policy, even though the pipeline ran to completion.
	Output string
	Sink   *reporter.Sink
}

// Format parses source, runs cfg.Rules over the resulting tree, builds and
// prints the outcome, and returns the formatted text alongside every
// diagnostic collected along the way.
//
// The core never recovers locally from a malformed token stream: that
// indicates a bug in this package's own builder, not in the input, so
// [scanner.MalformedTokenStreamError] is returned unwrapped rather than
// folded into [ParseFailure].
func Format(source string, parse Parser, cfg Config) (Result, error) {
	ctx, root, err := parse(source)
	if err != nil {
		return Result{}, &ParseFailure{Err: err}
	}

	sink := reporter.NewSink(root)
	root, err = reporter.Run(ctx, root, cfg.Rules, sink)
	if err != nil {
		return Result{Sink: sink}, err
	}
	if sink.HasErrors() {
		return Result{Sink: sink}, nil
	}

	stream, err := build.Build(ctx, root, cfg.Print)
	if err != nil {
		return Result{Sink: sink}, err
	}

	lengths, err := scanner.Scan(stream, cfg.Print.MaxLineLength, cfg.Print.TabWidth)
	if err != nil {
		return Result{Sink: sink}, err
	}

	out, err := printer.Print(stream, lengths, cfg.Print)
	if err != nil {
		return Result{Sink: sink}, err
	}

	return Result{Output: out, Sink: sink}, nil
}

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

package reporter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bracepress/bracepress/ast"
	"github.com/bracepress/bracepress/reporter"
)

func TestSinkAtReturnsOnlyDiagnosticsForThatPath(t *testing.T) {
	t.Parallel()

	var ctx ast.Context
	root := tree(&ctx)
	sink := reporter.NewSink(root)

	sink.Report(reporter.Diagnostic{Severity: reporter.Warning, Message: "first", Path: ast.Path{0}})
	sink.Report(reporter.Diagnostic{Severity: reporter.Warning, Message: "second", Path: ast.Path{1}})

	first := sink.At(ast.Path{0})
	require.Len(t, first, 1)
	assert.Equal(t, "first", first[0].Message)

	second := sink.At(ast.Path{1})
	require.Len(t, second, 1)
	assert.Equal(t, "second", second[0].Message)

	assert.Empty(t, sink.At(ast.Path{99}))
}

func TestSinkHasErrorsOnlyAfterAnErrorSeverityReport(t *testing.T) {
	t.Parallel()

	var ctx ast.Context
	root := tree(&ctx)
	sink := reporter.NewSink(root)

	sink.Report(reporter.Diagnostic{Severity: reporter.Warning, Message: "fine"})
	assert.False(t, sink.HasErrors())

	sink.Report(reporter.Diagnostic{Severity: reporter.Error, Message: "not fine"})
	assert.True(t, sink.HasErrors())
}

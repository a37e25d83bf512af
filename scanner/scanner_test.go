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

package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bracepress/bracepress/scanner"
	"github.com/bracepress/bracepress/token"
)

func TestScanSimpleList(t *testing.T) {
	t.Parallel()

	// open(inconsistent,+2) "a" break(1,0) "b" break(0,-2) close
	s := token.Stream{
		token.NewOpen(token.Inconsistent, 2),
		token.NewSyntax("a"),
		token.NewBreak(1, 0),
		token.NewSyntax("b"),
		token.NewBreak(0, -2),
		token.NewClose(),
	}
	lengths, err := scanner.Scan(s, 80, 4)
	require.NoError(t, err)
	require.Len(t, lengths, len(s))

	// The open's length is the total content width: "a" + 1 (break as
	// space) + "b" + 0 (trailing break as nothing) = 3.
	assert.Equal(t, 3, lengths[0])
	assert.Equal(t, 0, lengths[5])
}

func TestScanNewlineForcesMaxWidth(t *testing.T) {
	t.Parallel()

	s := token.Stream{
		token.NewOpen(token.Consistent, 0),
		token.NewSyntax("x"),
		token.NewNewline(1, 0),
		token.NewClose(),
	}
	lengths, err := scanner.Scan(s, 30, 4)
	require.NoError(t, err)
	assert.Equal(t, 30, lengths[2])
	// The open's total content includes the forced-max newline, so it
	// necessarily exceeds any real line width and the group will break.
	assert.GreaterOrEqual(t, lengths[0], 30)
}

func TestScanResetDropsPendingBreak(t *testing.T) {
	t.Parallel()

	s := token.Stream{
		token.NewSyntax("a"),
		token.NewBreak(1, 0),
		token.NewReset(),
		token.NewSyntax("b"),
	}
	lengths, err := scanner.Scan(s, 80, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, lengths[2])
}

func TestScanMalformedUnclosedOpen(t *testing.T) {
	t.Parallel()

	s := token.Stream{token.NewOpen(token.Consistent, 0)}
	_, err := scanner.Scan(s, 80, 4)
	require.Error(t, err)
	var malformed *scanner.MalformedTokenStreamError
	assert.ErrorAs(t, err, &malformed)
}

func TestScanMalformedExtraClose(t *testing.T) {
	t.Parallel()

	s := token.Stream{token.NewClose()}
	_, err := scanner.Scan(s, 80, 4)
	require.Error(t, err)
}

func TestScanCommentWidestLine(t *testing.T) {
	t.Parallel()

	s := token.Stream{
		token.NewComment(token.Block, "/* short\na much longer line here */"),
	}
	lengths, err := scanner.Scan(s, 80, 4)
	require.NoError(t, err)
	assert.Equal(t, len("a much longer line here */"), lengths[0])
}

func TestScanVerbatimIsMaxWidth(t *testing.T) {
	t.Parallel()

	s := token.Stream{token.NewVerbatim("anything\n  goes")}
	lengths, err := scanner.Scan(s, 42, 4)
	require.NoError(t, err)
	assert.Equal(t, 42, lengths[0])
}

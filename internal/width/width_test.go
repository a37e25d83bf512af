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

package width_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bracepress/bracepress/internal/width"
)

func TestWidthPlainASCII(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 5, width.Width("hello", 4))
}

func TestWidthTabstop(t *testing.T) {
	t.Parallel()
	// "ab" then a tab advances to column 4, then "c" -> total 5.
	assert.Equal(t, 5, width.Width("ab\tc", 4))
}

func TestWidestLine(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 5, width.WidestLine("ab\nabcde\na", 4))
}

func TestRulerIncremental(t *testing.T) {
	t.Parallel()

	var r width.Ruler
	for _, ch := range "abc" {
		r.Measure(ch)
	}
	assert.Equal(t, 3, r.Width())
	r.Reset()
	assert.Equal(t, 0, r.Width())
}

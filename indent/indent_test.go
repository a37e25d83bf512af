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

package indent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bracepress/bracepress/indent"
)

func TestUnitTextAndColumns(t *testing.T) {
	t.Parallel()

	spaces := indent.Unit{Kind: indent.Spaces, Count: 4}
	assert.Equal(t, "    ", spaces.Text())
	assert.Equal(t, 4, spaces.Columns(8))

	tabs := indent.Unit{Kind: indent.Tabs, Count: 2}
	assert.Equal(t, "\t\t", tabs.Text())
	assert.Equal(t, 8, tabs.Columns(4))

	negative := indent.Unit{Kind: indent.Spaces, Count: -3}
	assert.Equal(t, "", negative.Text())
	assert.Equal(t, 0, negative.Columns(8))
}

func TestStackPushPopTruncate(t *testing.T) {
	t.Parallel()

	s := indent.NewStack(4)
	s.Push(indent.Spaces, 2)
	s.Push(indent.Spaces, 2)
	assert.Equal(t, "    ", s.Render())
	assert.Equal(t, 4, s.Columns())
	assert.Equal(t, 2, s.Depth())

	s.Push(indent.Spaces, 2)
	s.Truncate(2)
	assert.Equal(t, 2, s.Depth())
	assert.Equal(t, "    ", s.Render())

	s.Pop()
	assert.Equal(t, 1, s.Depth())
}

func TestStackPushNegativeClampsToZero(t *testing.T) {
	t.Parallel()

	s := indent.NewStack(4)
	s.Push(indent.Spaces, -5)
	assert.Equal(t, "", s.Render())
	assert.Equal(t, 0, s.Columns())
}

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

package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bracepress/bracepress/internal/interval"
)

func TestInsertDisjointRanges(t *testing.T) {
	t.Parallel()

	var m interval.Intersect[int, string]
	assert.True(t, m.Insert(0, 9, "a"))
	assert.True(t, m.Insert(20, 29, "b"))

	at5 := m.At(5)
	require.Equal(t, []string{"a"}, at5.Value)

	at15 := m.At(15)
	assert.Nil(t, at15.Value)
}

func TestInsertOverlappingRangesMerges(t *testing.T) {
	t.Parallel()

	var m interval.Intersect[int, string]
	require.True(t, m.Insert(0, 9, "a"))
	require.False(t, m.Insert(5, 14, "b"))

	assert.Equal(t, []string{"a"}, m.At(2).Value)
	assert.Equal(t, []string{"a", "b"}, m.At(7).Value)
	assert.Equal(t, []string{"b"}, m.At(12).Value)
}

func TestInsertRejectsInvertedRange(t *testing.T) {
	t.Parallel()

	var m interval.Intersect[int, string]
	assert.Panics(t, func() { m.Insert(9, 0, "a") })
}

func TestAllYieldsDisjointEntriesInOrder(t *testing.T) {
	t.Parallel()

	var m interval.Intersect[int, string]
	m.Insert(10, 19, "b")
	m.Insert(0, 9, "a")

	var starts []int
	for e := range m.All() {
		starts = append(starts, e.Start)
	}
	assert.Equal(t, []int{0, 10}, starts)
}

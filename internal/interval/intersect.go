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

// Package interval provides an interval-intersection map keyed by an
// integer offset, used to answer "which diagnostics touch this position"
// without a linear scan of every diagnostic ever reported.
package interval

import (
	"fmt"
	"iter"
	"slices"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints"
)

// Endpoint is a type usable as an interval endpoint.
type Endpoint = constraints.Integer

// Intersect maps closed integer intervals [start, end] to sets of values,
// merging overlapping intervals so a lookup at any point returns every
// value whose interval contains it.
//
// A zero Intersect is empty and ready to use.
type Intersect[K Endpoint, V any] struct {
	tree    btree.Map[K, *Entry[K, []V]]
	pending []*Entry[K, []V]
}

// Entry is a span paired with a value. The maximal, pairwise-disjoint spans
// an Intersect produces carry every value inserted over them, so those are
// instantiated as Entry[K, []V].
type Entry[K Endpoint, V any] struct {
	Start, End K
	Value      V
}

// Contains reports whether point falls within [e.Start, e.End].
func (e Entry[K, V]) Contains(point K) bool {
	return e.Start <= point && point <= e.End
}

// At returns the entry containing point, if any. The zero Entry (nil
// Value) means no interval covers point.
func (m *Intersect[K, V]) At(point K) Entry[K, []V] {
	it := m.tree.Iter()
	found := it.Seek(point)
	if !found || point < it.Value().Start {
		return Entry[K, []V]{}
	}
	return *it.Value()
}

// All iterates every disjoint entry in the map, in ascending order of
// Start.
func (m *Intersect[K, V]) All() iter.Seq[Entry[K, []V]] {
	return func(yield func(Entry[K, []V]) bool) {
		it := m.tree.Iter()
		for more := it.First(); more; more = it.Next() {
			if !yield(*it.Value()) {
				return
			}
		}
	}
}

// Insert associates value with every point in [start, end], splitting and
// merging existing entries as needed. It reports whether [start, end] was
// disjoint from everything already in the map.
func (m *Intersect[K, V]) Insert(start, end K, value V) (disjoint bool) {
	if start > end {
		panic(fmt.Sprintf("interval: start (%v) > end (%v)", start, end))
	}

	var prev *Entry[K, []V]
	for entry := range m.overlapping(start, end) {
		if prev == nil && start < entry.Start {
			m.pending = append(m.pending, &Entry[K, []V]{
				Start: start,
				End:   entry.Start - 1,
				Value: []V{value},
			})
		}

		orig := entry.Value

		if entry.Contains(end) && end < entry.End {
			next := &Entry[K, []V]{
				Start: entry.Start,
				End:   end,
				Value: append(slices.Clip(orig), value),
			}
			entry.Start = end + 1
			m.pending = append(m.pending, next)
			entry = next
		}

		if entry.Contains(start) && entry.Start < start {
			next := &Entry[K, []V]{
				Start: entry.Start,
				End:   start - 1,
				Value: orig,
			}
			m.pending = append(m.pending, next)
			entry.Start = start
		}

		entry.Value = append(orig, value)

		if prev != nil && prev.End < entry.Start {
			m.pending = append(m.pending, &Entry[K, []V]{
				Start: prev.End + 1,
				End:   entry.Start - 1,
				Value: []V{value},
			})
		}

		prev = entry
	}

	if prev != nil && prev.End < end {
		m.pending = append(m.pending, &Entry[K, []V]{
			Start: prev.End + 1,
			End:   end,
			Value: []V{value},
		})
	}

	for _, entry := range m.pending {
		m.tree.Set(entry.End, entry)
	}
	m.pending = m.pending[:0]

	if prev == nil {
		m.tree.Set(end, &Entry[K, []V]{Start: start, End: end, Value: []V{value}})
	}

	return prev == nil
}

// overlapping yields every entry that intersects [start, end], in order.
func (m *Intersect[K, V]) overlapping(start, end K) iter.Seq[*Entry[K, []V]] {
	return func(yield func(*Entry[K, []V]) bool) {
		it := m.tree.Iter()
		for more := it.Seek(start); more; more = it.Next() {
			c := it.Value().Start
			if end < c || !yield(it.Value()) {
				return
			}
		}
	}
}

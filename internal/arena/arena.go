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

// Package arena provides a growable arena with compressed, stable
// pointers, used to store AST leaves so that decoration registries can key
// on a small integer rather than pointer identity.
package arena

import (
	"fmt"
	"math/bits"
)

// minSliceLenShift is the log2 of the size of the smallest backing slice.
const (
	minSliceLenShift = 4
	minSliceLen      = 1 << minSliceLenShift
)

// Untyped is an arena pointer with its element type erased.
//
// The value of a pointer is one plus the number of elements allocated
// before it, so the zero value is always nil.
type Untyped uint32

// Nil reports whether p is the nil pointer.
func (p Untyped) Nil() bool {
	return p == 0
}

// Pointer is a compressed, typed pointer into an [Arena][T].
//
// It cannot be dereferenced directly; see [Pointer.In]. The zero value is
// nil.
type Pointer[T any] Untyped

// Nil reports whether p is the nil pointer.
func (p Pointer[T]) Nil() bool {
	return Untyped(p).Nil()
}

// In dereferences p against the arena that allocated it. Using it against
// any other arena panics or returns an arbitrary element; using it while
// p.Nil() panics.
func (p Pointer[T]) In(a *Arena[T]) *T {
	return a.At(Untyped(p))
}

// Arena is a growable store of T whose elements never move once
// allocated, so pointers into it stay valid across further allocations.
//
// Internally it is a table of logarithmically-growing slices, mimicking
// the resizing behavior of an ordinary slice: this trades the 8-byte
// per-element overhead of []*T for a per-table 24-byte overhead, keeping
// lookups O(1) at the cost of one extra indirection.
//
// A zero Arena[T] is empty and ready to use.
type Arena[T any] struct {
	// Invariants:
	// 1. cap(table[0]) == minSliceLen.
	// 2. cap(table[n]) == 2*cap(table[n-1]).
	// 3. cap(table[n]) == len(table[n]) for n < len(table)-1.
	table [][]T
}

// New allocates value on the arena and returns a pointer to it.
func (a *Arena[T]) New(value T) Pointer[T] {
	if a.table == nil {
		a.table = [][]T{make([]T, 0, minSliceLen)}
	}

	last := &a.table[len(a.table)-1]
	if len(*last) == cap(*last) {
		a.table = append(a.table, make([]T, 0, 2*cap(*last)))
		last = &a.table[len(a.table)-1]
	}

	*last = append(*last, value)
	return Pointer[T](Untyped(a.Len()))
}

// At dereferences an untyped pointer. It panics if ptr is nil or out of
// range for a.
func (a *Arena[T]) At(ptr Untyped) *T {
	if ptr.Nil() {
		a = nil // Force an ordinary nil dereference.
	}
	slice, idx := a.coordinates(int(ptr) - 1)
	return &a.table[slice][idx]
}

// Len returns the number of elements allocated in a.
func (a *Arena[T]) Len() int {
	if len(a.table) == 0 {
		return 0
	}
	return a.lenOfFirstNSlices(len(a.table)-1) + len(a.table[len(a.table)-1])
}

func (*Arena[T]) lenOfNthSlice(n int) int {
	return minSliceLen << n
}

func (a *Arena[T]) lenOfFirstNSlices(n int) int {
	return max(0, a.lenOfNthSlice(n)-a.lenOfNthSlice(0))
}

func (a *Arena[T]) coordinates(idx int) (slice, offset int) {
	if idx >= a.Len() || idx < 0 {
		panic(fmt.Sprintf("arena: pointer out of range: %#x", idx))
	}

	slice = bits.UintSize - bits.LeadingZeros(uint(idx)+minSliceLen)
	slice -= minSliceLenShift + 1

	offset = idx - a.lenOfFirstNSlices(slice)
	return slice, offset
}

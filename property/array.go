// SPDX-License-Identifier: MIT
//
// File: array.go
// Role: Dense per-entity storage addressed by typed handles.
// Contract:
//   - Handles passed to At/Set/Ref must address [0, Len()); anything else is a
//     programming error and panics, mirroring slice bounds checks.
//   - Append returns the handle of the new slot, which is always Len()-1.

package property

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/fmesh/index"
)

// Array stores one value of type T per entity of kind K.
// The zero value is an empty, ready-to-use array.
type Array[K index.Kind, T any] struct {
	values []T
}

// NewArray returns an array holding n zero values.
func NewArray[K index.Kind, T any](n int) *Array[K, T] {
	return &Array[K, T]{values: make([]T, n)}
}

// Len returns the number of slots.
func (a *Array[K, T]) Len() int { return len(a.values) }

// Empty reports whether the array holds no slots.
func (a *Array[K, T]) Empty() bool { return len(a.values) == 0 }

// Append stores v in a new slot and returns its handle.
// Complexity: O(1) amortized.
func (a *Array[K, T]) Append(v T) index.Index[K] {
	a.values = append(a.values, v)
	return index.New[K](len(a.values) - 1)
}

// At returns the value stored for i.
func (a *Array[K, T]) At(i index.Index[K]) T {
	return a.values[a.pos(i)]
}

// Set overwrites the value stored for i.
func (a *Array[K, T]) Set(i index.Index[K], v T) {
	a.values[a.pos(i)] = v
}

// Ref returns a pointer to the slot for i. The pointer is invalidated by the
// next call that grows the array.
func (a *Array[K, T]) Ref(i index.Index[K]) *T {
	return &a.values[a.pos(i)]
}

// Resize grows the array with zero values or truncates it to n slots.
func (a *Array[K, T]) Resize(n int) {
	if n < 0 {
		panic(fmt.Sprintf("property: negative size %d", n))
	}
	if n <= len(a.values) {
		clear(a.values[n:])
		a.values = a.values[:n]
		return
	}
	if n <= cap(a.values) {
		a.values = a.values[:n]
		return
	}
	grown := make([]T, n, max(n, 2*cap(a.values)))
	copy(grown, a.values)
	a.values = grown
}

// Reserve ensures capacity for at least n slots without changing Len.
func (a *Array[K, T]) Reserve(n int) {
	if n <= cap(a.values) {
		return
	}
	grown := make([]T, len(a.values), n)
	copy(grown, a.values)
	a.values = grown
}

// Cap returns the reserved capacity.
func (a *Array[K, T]) Cap() int { return cap(a.values) }

// Clear removes every slot, keeping capacity.
func (a *Array[K, T]) Clear() { a.Resize(0) }

// Values exposes the backing slice. Callers must treat it as read-only.
func (a *Array[K, T]) Values() []T { return a.values }

// All yields (handle, value) pairs in handle order.
func (a *Array[K, T]) All() iter.Seq2[index.Index[K], T] {
	return func(yield func(index.Index[K], T) bool) {
		for i, v := range a.values {
			if !yield(index.New[K](i), v) {
				return
			}
		}
	}
}

// Filter keeps only the slots for which keep reports true, preserving their
// relative order. The survivor at old handle h moves to the position equal to
// the number of survivors before h.
// Complexity: O(Len()).
func (a *Array[K, T]) Filter(keep func(index.Index[K]) bool) {
	n := 0
	for i := range a.values {
		if keep(index.New[K](i)) {
			a.values[n] = a.values[i]
			n++
		}
	}
	clear(a.values[n:])
	a.values = a.values[:n]
}

func (a *Array[K, T]) pos(i index.Index[K]) int {
	p := i.Int()
	if p < 0 || p >= len(a.values) {
		panic(fmt.Sprintf("property: handle %s out of range [0,%d)", i, len(a.values)))
	}
	return p
}

// File: view.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// View, the shared (read-only) capability over the raw view core.

package strided

import (
	"github.com/momentics/strided/api"
	"github.com/momentics/strided/core/raw"
)

// View is a read-only strided view. It is a small value: copying it makes
// a new handle over the same memory, which is always safe because the
// shared capability grants no mutation. The zero View is empty.
type View[T any] struct {
	base raw.View[T]
}

// New returns a stride-1 view spanning the whole slice.
func New[T any](s []T) View[T] {
	return View[T]{base: raw.New(s)}
}

// Of returns a stride-1 view over a buffer owner's elements.
func Of[T any](b api.Buffer[T]) View[T] {
	return View[T]{base: raw.New(b.Elems())}
}

// FromRaw wraps a raw descriptor. Adapters that build exotic layouts
// (matrix columns, reinterpreted byte buffers) use this; ordinary callers
// want New.
func FromRaw[T any](b raw.View[T]) View[T] {
	return View[T]{base: b}
}

// Raw returns the underlying descriptor.
func (v View[T]) Raw() raw.View[T] { return v.base }

// Len returns the number of elements visible through the view.
func (v View[T]) Len() int { return v.base.Len() }

// Stride returns the spacing between successive visible elements, as a
// count of elements of the underlying buffer.
func (v View[T]) Stride() int { return v.base.Stride() }

// Get returns the element at index i, or (zero, false) when i is out of
// range. This is the only boundary query: all other out-of-range access
// is a fatal contract violation.
func (v View[T]) Get(i int) (T, bool) { return v.base.Get(i) }

// At returns the element at index i, panicking when i is out of range.
func (v View[T]) At(i int) T { return v.base.At(i) }

// Slice returns the view of elements [from, to). Panics if from > to or
// to > Len().
func (v View[T]) Slice(from, to int) View[T] {
	return View[T]{base: v.base.Slice(from, to)}
}

// SliceFrom returns the view of elements [from, Len()). Panics if
// from > Len().
func (v View[T]) SliceFrom(from int) View[T] {
	return View[T]{base: v.base.SliceFrom(from)}
}

// SliceTo returns the view of elements [0, to). Panics if to > Len().
func (v View[T]) SliceTo(to int) View[T] {
	return View[T]{base: v.base.SliceTo(to)}
}

// SplitAt returns (SliceTo(idx), SliceFrom(idx)). Panics if idx > Len().
func (v View[T]) SplitAt(idx int) (View[T], View[T]) {
	l, r := v.base.SplitAt(idx)
	return View[T]{base: l}, View[T]{base: r}
}

// Substrides2 splits the view into two views of alternating elements:
// [1, 2, 3, 4, 5] becomes [1, 3, 5] and [2, 4]. The stride doubles and
// the length (approximately) halves; this succeeds for any length.
func (v View[T]) Substrides2() (View[T], View[T]) {
	l, r := v.base.Substrides2()
	return View[T]{base: l}, View[T]{base: r}
}

// Substrides returns an iterator over the n interleaved sub-views of v,
// the i-th holding every n-th element starting at offset i. Substrides(3)
// over [1, 2, 3, 4, 5, 6, 7] yields [1, 4, 7], [2, 5], [3, 6]. Exactly n
// views are produced even when v has fewer than n elements. Panics if
// n < 1.
func (v View[T]) Substrides(n int) *SubViews[T] {
	return &SubViews[T]{base: v.base.Substrides(n)}
}

// Iter returns an iterator over the view's elements supporting traversal
// from both ends with an exact remaining count.
func (v View[T]) Iter() *raw.Iter[T] { return v.base.Iter() }

// Collect copies the visible elements into a fresh slice, in view order.
func (v View[T]) Collect() []T {
	out := make([]T, 0, v.Len())
	it := v.Iter()
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		out = append(out, e)
	}
	return out
}

// SubViews iterates the n partitions produced by View.Substrides.
type SubViews[T any] struct {
	base *raw.Substrides[T]
}

// Next returns the next partition, or (zero, false) after all have been
// produced.
func (s *SubViews[T]) Next() (View[T], bool) {
	b, ok := s.base.Next()
	if !ok {
		return View[T]{}, false
	}
	return View[T]{base: b}, true
}

// Remaining returns the number of partitions not yet produced.
func (s *SubViews[T]) Remaining() int { return s.base.Remaining() }

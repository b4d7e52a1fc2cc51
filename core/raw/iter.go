// File: core/raw/iter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Element iterators. A cursor pair (start, end) in backing-array units,
// with end sitting one stride past the last visible element; the exact
// remaining count is (end - start) / stride at every point, including
// after partial consumption from either direction.

package raw

// Iter walks a view's elements in index order. It also supports reverse
// traversal: Next consumes from the front, NextBack from the back, and the
// two ends meet in the middle.
type Iter[T any] struct {
	data   []T
	start  int
	end    int
	stride int
}

// Next returns the next element from the front, or (zero, false) once the
// iterator is exhausted.
func (it *Iter[T]) Next() (T, bool) {
	if it.start >= it.end {
		var zero T
		return zero, false
	}
	v := it.data[it.start]
	it.start += it.stride
	return v, true
}

// NextBack returns the next element from the back, or (zero, false) once
// the iterator is exhausted.
func (it *Iter[T]) NextBack() (T, bool) {
	if it.start >= it.end {
		var zero T
		return zero, false
	}
	it.end -= it.stride
	return it.data[it.end], true
}

// Remaining returns the exact number of elements not yet produced.
func (it *Iter[T]) Remaining() int {
	return (it.end - it.start) / it.stride
}

// MutIter is Iter yielding pointers, for in-place mutation.
type MutIter[T any] struct {
	data   []T
	start  int
	end    int
	stride int
}

// Next returns a pointer to the next element from the front, or
// (nil, false) once the iterator is exhausted.
func (it *MutIter[T]) Next() (*T, bool) {
	if it.start >= it.end {
		return nil, false
	}
	p := &it.data[it.start]
	it.start += it.stride
	return p, true
}

// NextBack returns a pointer to the next element from the back, or
// (nil, false) once the iterator is exhausted.
func (it *MutIter[T]) NextBack() (*T, bool) {
	if it.start >= it.end {
		return nil, false
	}
	it.end -= it.stride
	return &it.data[it.end], true
}

// Remaining returns the exact number of elements not yet produced.
func (it *MutIter[T]) Remaining() int {
	return (it.end - it.start) / it.stride
}

// File: core/raw/view.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The raw strided-view descriptor and its reshape operations.

package raw

import (
	"unsafe"

	"github.com/momentics/strided/api"
	"github.com/momentics/strided/internal/checked"
)

// View is the raw descriptor: every stride-th element of data, starting at
// index base, for length elements. The descriptor borrows data and never
// copies or reallocates it. A zero View is an empty view over nil.
//
// Strides are kept in element units: all stepping is index arithmetic
// against the backing slice, so every dereference stays bounds-checked by
// the runtime on top of the contract checks below.
type View[T any] struct {
	data   []T
	base   int
	length int
	stride int
	guard  api.Guard
}

// Make builds a view descriptor and validates the construction contract:
// the element type must have non-zero size, the stride must be positive,
// and the extent of the last visible element must lie inside data. All
// violations panic.
func Make[T any](data []T, base, length, elemStride int, g api.Guard) View[T] {
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		panic(api.Violationf(api.ErrCodeZeroSized, "view over zero-sized element type"))
	}
	if elemStride < 1 {
		panic(api.Violationf(api.ErrCodeInvalidArgument, "stride %d is not positive", elemStride))
	}
	if base < 0 || length < 0 {
		panic(api.Violationf(api.ErrCodeInvalidArgument, "negative base %d or length %d", base, length))
	}
	v := View[T]{data: data, base: base, length: length, stride: elemStride, guard: g}
	if length > 0 {
		last, ok := v.offset(length - 1)
		if !ok {
			panic(api.Violationf(api.ErrCodeOverflow, "view extent overflows"))
		}
		if last >= len(data) {
			panic(api.Violationf(api.ErrCodeOutOfRange,
				"view extent %d exceeds buffer length %d", last+1, len(data)))
		}
	}
	return v
}

// New builds a stride-1 view spanning the whole buffer.
func New[T any](data []T) View[T] {
	return Make(data, 0, len(data), 1, nil)
}

// derive produces a sub-descriptor sharing data and guard. Callers are the
// reshape operations below, which establish the extent invariant
// themselves; empty derived views may legally sit one step past the
// buffer, so Make's extent check does not apply.
func (v View[T]) derive(base, length, stride int) View[T] {
	return View[T]{data: v.data, base: base, length: length, stride: stride, guard: v.guard}
}

// check revalidates the backing region for guarded views.
func (v View[T]) check() {
	if v.guard != nil && !v.guard.Valid() {
		panic(api.Violationf(api.ErrCodeInvalidated, "view used after its region was invalidated"))
	}
}

// offset maps a view index to a backing-array index, reporting overflow.
func (v View[T]) offset(i int) (int, bool) {
	d, ok := checked.Mul(i, v.stride)
	if !ok {
		return 0, false
	}
	return checked.Add(v.base, d)
}

// mustOffset is offset for positions the caller has already range-checked.
func (v View[T]) mustOffset(i int) int {
	off, ok := v.offset(i)
	if !ok {
		panic(api.Violationf(api.ErrCodeOverflow, "view offset overflows"))
	}
	return off
}

// Len returns the number of visible elements.
func (v View[T]) Len() int { return v.length }

// Stride returns the spacing between visible elements, in element units.
func (v View[T]) Stride() int { return v.stride }

// Base returns the backing-array index of the first visible element.
func (v View[T]) Base() int { return v.base }

// Guard returns the invalidation guard, or nil for plain-slice views.
func (v View[T]) Guard() api.Guard { return v.guard }

// Get returns the element at index i, or (zero, false) when i is out of
// range. This is the one boundary query of the core: out-of-range access
// here is an expected, handleable outcome, not a contract violation.
func (v View[T]) Get(i int) (T, bool) {
	v.check()
	if i < 0 || i >= v.length {
		var zero T
		return zero, false
	}
	return v.data[v.mustOffset(i)], true
}

// Ptr returns a pointer to the element at index i, or (nil, false) when i
// is out of range.
func (v View[T]) Ptr(i int) (*T, bool) {
	v.check()
	if i < 0 || i >= v.length {
		return nil, false
	}
	return &v.data[v.mustOffset(i)], true
}

// At returns the element at index i; out-of-range access is fatal.
func (v View[T]) At(i int) T {
	p, ok := v.Ptr(i)
	if !ok {
		panic(api.Violationf(api.ErrCodeOutOfRange,
			"index %d out of range for view of length %d", i, v.length))
	}
	return *p
}

// MustPtr returns a pointer to the element at index i; out-of-range access
// is fatal.
func (v View[T]) MustPtr(i int) *T {
	p, ok := v.Ptr(i)
	if !ok {
		panic(api.Violationf(api.ErrCodeOutOfRange,
			"index %d out of range for view of length %d", i, v.length))
	}
	return p
}

// Set stores val at index i; out-of-range access is fatal.
func (v View[T]) Set(i int, val T) {
	*v.MustPtr(i) = val
}

// Slice returns the sub-view of indices [from, to). The bounds are a
// caller contract: from > to or to > Len() is fatal.
func (v View[T]) Slice(from, to int) View[T] {
	v.check()
	if from < 0 || from > to || to > v.length {
		panic(api.Violationf(api.ErrCodeOutOfRange,
			"slice bounds [%d, %d) invalid for view of length %d", from, to, v.length))
	}
	return v.derive(v.mustOffset(from), to-from, v.stride)
}

// SliceFrom returns the sub-view of indices [from, Len()).
func (v View[T]) SliceFrom(from int) View[T] {
	return v.Slice(from, v.length)
}

// SliceTo returns the sub-view of indices [0, to).
func (v View[T]) SliceTo(to int) View[T] {
	return v.Slice(0, to)
}

// SplitAt returns (Slice(0, idx), Slice(idx, Len())). idx > Len() is fatal.
func (v View[T]) SplitAt(idx int) (View[T], View[T]) {
	return v.SliceTo(idx), v.SliceFrom(idx)
}

// Substrides2 partitions the view into two interleaved views of
// alternating elements: the stride doubles and the length (approximately)
// halves. A view of [1, 2, 3, 4, 5] becomes [1, 3, 5] and [2, 4]. This
// succeeds for any length, including zero and one.
func (v View[T]) Substrides2() (View[T], View[T]) {
	v.check()
	leftLen := (v.length + 1) / 2
	rightLen := v.length - leftLen
	stride, ok := checked.Mul(v.stride, 2)
	if !ok {
		panic(api.Violationf(api.ErrCodeOverflow, "substrides2: combined stride overflows"))
	}

	rightBase := v.base
	if v.length > 0 {
		// The right view starts one original stride past the left one;
		// with nothing to step over it shares the left base.
		rightBase = v.mustOffset(1)
	}
	return v.derive(v.base, leftLen, stride), v.derive(rightBase, rightLen, stride)
}

// Substrides returns a partitioner yielding exactly n interleaved views,
// the i-th holding elements i, i+n, i+2n, ... of v. A zero or negative n
// is fatal. Like Substrides2 this succeeds even when v has fewer than n
// elements; trailing views are then empty.
func (v View[T]) Substrides(n int) *Substrides[T] {
	v.check()
	if n < 1 {
		panic(api.Violationf(api.ErrCodeInvalidArgument, "substrides: partition count %d is not positive", n))
	}
	sum, ok := checked.Add(v.length, n-1)
	if !ok {
		panic(api.Violationf(api.ErrCodeOverflow, "substrides: length overflows"))
	}
	longLen := sum / n
	stride, ok := checked.Mul(v.stride, n)
	if !ok {
		panic(api.Violationf(api.ErrCodeOverflow, "substrides: combined stride overflows"))
	}
	return &Substrides[T]{
		x:          v.derive(v.base, longLen, stride),
		baseStride: v.stride,
		nlong:      v.length % n,
		count:      n,
	}
}

// iterStride keeps the remaining-count division defined for zero-value
// (empty, stride-0) descriptors.
func (v View[T]) iterStride() int {
	if v.stride == 0 {
		return 1
	}
	return v.stride
}

// Iter returns a forward/backward element iterator over the view.
func (v View[T]) Iter() *Iter[T] {
	v.check()
	end, ok := v.offset(v.length)
	if !ok {
		panic(api.Violationf(api.ErrCodeOverflow, "iter: view extent overflows"))
	}
	return &Iter[T]{data: v.data, start: v.base, end: end, stride: v.iterStride()}
}

// IterMut returns an iterator yielding pointers to the view's elements.
func (v View[T]) IterMut() *MutIter[T] {
	v.check()
	end, ok := v.offset(v.length)
	if !ok {
		panic(api.Violationf(api.ErrCodeOverflow, "iter: view extent overflows"))
	}
	return &MutIter[T]{data: v.data, start: v.base, end: end, stride: v.iterStride()}
}

// File: mutview.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// MutView, the exclusive (read-write) capability over the raw view core.

package strided

import (
	"github.com/momentics/strided/api"
	"github.com/momentics/strided/core/raw"
)

// MutView is a read-write strided view with single-accessor discipline.
//
// A MutView is move-only: the reshape operations (Slice, SliceFrom,
// SliceTo, SplitAt, Substrides2, Substrides, IntoIter) consume the handle
// they are called on, returning new handles over disjoint or derived
// extents. Any use of a consumed handle is a fatal contract violation.
// This is the runtime rendering of an ownership rule: at any time there is
// at most one live unconsumed MutView over a given memory extent, so two
// writers can never alias.
//
// Reborrow escapes consumption: it yields a temporary alias that can be
// passed to a consuming operation in place of the original, after which
// the original is usable again. While an alias is live the original must
// be left alone; that part of the rule is the caller's responsibility.
//
// Element access (Get, At, Set, GetPtr, IterMut) does not consume the
// handle. A MutView must not be shared across goroutines unless the
// sending side stops using it entirely.
type MutView[T any] struct {
	base     raw.View[T]
	consumed bool
}

// NewMut returns an exclusive stride-1 view spanning the whole slice. The
// caller must not mutate s through other references while the view or its
// descendants are in use.
func NewMut[T any](s []T) *MutView[T] {
	return &MutView[T]{base: raw.New(s)}
}

// MutOf returns an exclusive stride-1 view over a buffer owner's elements.
func MutOf[T any](b api.MutBuffer[T]) *MutView[T] {
	return &MutView[T]{base: raw.New(b.MutElems())}
}

// MutFromRaw wraps a raw descriptor in a fresh exclusive handle.
func MutFromRaw[T any](b raw.View[T]) *MutView[T] {
	return &MutView[T]{base: b}
}

// use guards non-consuming operations.
func (m *MutView[T]) use() {
	if m.consumed {
		panic(api.Violationf(api.ErrCodeConsumed, "use of consumed view"))
	}
}

// consume guards consuming operations and retires the handle.
func (m *MutView[T]) consume() {
	m.use()
	m.consumed = true
}

// Len returns the number of elements visible through the view.
func (m *MutView[T]) Len() int { m.use(); return m.base.Len() }

// Stride returns the spacing between successive visible elements, in
// elements of the underlying buffer.
func (m *MutView[T]) Stride() int { m.use(); return m.base.Stride() }

// Get returns the element at index i, or (zero, false) when i is out of
// range.
func (m *MutView[T]) Get(i int) (T, bool) { m.use(); return m.base.Get(i) }

// GetPtr returns a pointer to the element at index i, or (nil, false)
// when i is out of range.
func (m *MutView[T]) GetPtr(i int) (*T, bool) { m.use(); return m.base.Ptr(i) }

// At returns the element at index i, panicking when i is out of range.
func (m *MutView[T]) At(i int) T { m.use(); return m.base.At(i) }

// Set stores val at index i, panicking when i is out of range.
func (m *MutView[T]) Set(i int, val T) { m.use(); m.base.Set(i, val) }

// Raw returns the underlying descriptor without consuming the handle.
func (m *MutView[T]) Raw() raw.View[T] { m.use(); return m.base }

// Shared returns a read-only view of the same extent. The shared copy
// observes later mutations made through m; readers relying on stability
// must not run concurrently with writes.
func (m *MutView[T]) Shared() View[T] { m.use(); return View[T]{base: m.base} }

// Reborrow returns a temporary exclusive alias of the handle. The alias
// can be consumed in place of the original, which keeps its own usability;
// the original must not be touched until the alias is dead.
func (m *MutView[T]) Reborrow() *MutView[T] {
	m.use()
	return &MutView[T]{base: m.base}
}

// IterMut returns a pointer-yielding iterator without consuming the
// handle. The iterator must not outlive the next consuming operation on m.
func (m *MutView[T]) IterMut() *raw.MutIter[T] { m.use(); return m.base.IterMut() }

// IntoIter consumes the handle and returns a pointer-yielding iterator
// with no residual handle to conflict with.
func (m *MutView[T]) IntoIter() *raw.MutIter[T] { m.consume(); return m.base.IterMut() }

// Slice consumes the handle and returns the exclusive view of elements
// [from, to). Panics if from > to or to > Len().
func (m *MutView[T]) Slice(from, to int) *MutView[T] {
	m.consume()
	return &MutView[T]{base: m.base.Slice(from, to)}
}

// SliceFrom consumes the handle and returns the exclusive view of
// elements [from, Len()).
func (m *MutView[T]) SliceFrom(from int) *MutView[T] {
	m.consume()
	return &MutView[T]{base: m.base.SliceFrom(from)}
}

// SliceTo consumes the handle and returns the exclusive view of elements
// [0, to).
func (m *MutView[T]) SliceTo(to int) *MutView[T] {
	m.consume()
	return &MutView[T]{base: m.base.SliceTo(to)}
}

// SplitAt consumes the handle and returns exclusive views of the elements
// before and from idx. The two results cover disjoint extents, so each
// can be consumed independently.
func (m *MutView[T]) SplitAt(idx int) (*MutView[T], *MutView[T]) {
	m.consume()
	l, r := m.base.SplitAt(idx)
	return &MutView[T]{base: l}, &MutView[T]{base: r}
}

// Substrides2 consumes the handle and splits it into two exclusive views
// of alternating elements, as View.Substrides2.
func (m *MutView[T]) Substrides2() (*MutView[T], *MutView[T]) {
	m.consume()
	l, r := m.base.Substrides2()
	return &MutView[T]{base: l}, &MutView[T]{base: r}
}

// Substrides consumes the handle and returns an iterator over n exclusive
// interleaved sub-views, as View.Substrides. Panics if n < 1.
func (m *MutView[T]) Substrides(n int) *MutSubViews[T] {
	m.consume()
	return &MutSubViews[T]{base: m.base.Substrides(n)}
}

// MutSubViews iterates the n partitions produced by MutView.Substrides.
// The produced views cover disjoint extents.
type MutSubViews[T any] struct {
	base *raw.Substrides[T]
}

// Next returns the next partition, or (nil, false) after all have been
// produced.
func (s *MutSubViews[T]) Next() (*MutView[T], bool) {
	b, ok := s.base.Next()
	if !ok {
		return nil, false
	}
	return &MutView[T]{base: b}, true
}

// Remaining returns the number of partitions not yet produced.
func (s *MutSubViews[T]) Remaining() int { return s.base.Remaining() }

// File: compare.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Element-wise equality, ordering and rendering of views. All of these
// are defined over the visible element sequence in traversal order; the
// shape of the view (stride, backing buffer) never participates.

package strided

import (
	"cmp"
	"fmt"
	"strings"
)

// Equal reports whether a and b expose identical element sequences: equal
// lengths and equal elements position by position.
func Equal[T comparable](a, b View[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal under a caller-supplied element predicate.
func EqualFunc[A, B any](a View[A], b View[B], eq func(A, B) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	ia, ib := a.Iter(), b.Iter()
	for {
		x, ok := ia.Next()
		if !ok {
			return true
		}
		y, _ := ib.Next()
		if !eq(x, y) {
			return false
		}
	}
}

// Compare orders a and b lexicographically by element, with a shorter
// view ordering before a longer one that it prefixes. The result follows
// the cmp convention: -1, 0, or +1. Incomparable floating-point elements
// take the cmp.Compare total order; use PartialCompare to detect them
// instead.
func Compare[T cmp.Ordered](a, b View[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare under a caller-supplied element comparator.
func CompareFunc[A, B any](a View[A], b View[B], compare func(A, B) int) int {
	ia, ib := a.Iter(), b.Iter()
	for {
		x, okA := ia.Next()
		y, okB := ib.Next()
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return -1
		case !okB:
			return +1
		}
		if c := compare(x, y); c != 0 {
			return c
		}
	}
}

// PartialCompare is Compare that refuses to order incomparable elements:
// when an element pair is unordered (a NaN on either side), it reports
// ok == false rather than inventing an order.
func PartialCompare[T cmp.Ordered](a, b View[T]) (order int, ok bool) {
	ia, ib := a.Iter(), b.Iter()
	for {
		x, okA := ia.Next()
		y, okB := ib.Next()
		switch {
		case !okA && !okB:
			return 0, true
		case !okA:
			return -1, true
		case !okB:
			return +1, true
		}
		switch {
		case x < y:
			return -1, true
		case y < x:
			return +1, true
		case x != y:
			// Neither orders ahead of the other and they are not equal:
			// at least one side is NaN.
			return 0, false
		}
	}
}

// String renders the visible elements as a bracketed, comma-separated
// list: "[1, 3, 5]".
func (v View[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	it := v.Iter()
	first := true
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v", e)
	}
	sb.WriteByte(']')
	return sb.String()
}

// String renders the visible elements as a bracketed, comma-separated
// list. Usable on unconsumed handles only.
func (m *MutView[T]) String() string {
	m.use()
	return View[T]{base: m.base}.String()
}

// File: core/raw/substrides.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The interleave partitioner behind View.Substrides.

package raw

// Substrides yields the n interleaved sub-views of one view, one per Next
// call. The i-th produced view holds elements i, i+n, i+2n, ... of the
// source, so round-robin recombination of the outputs recovers the source
// order.
type Substrides[T any] struct {
	// x is the template for the next produced view. Its stride is already
	// the combined n*S; its base advances between productions.
	x          View[T]
	baseStride int
	nlong      int
	count      int
}

// Next returns the next partition, or (zero, false) after all n have been
// produced.
func (s *Substrides[T]) Next() (View[T], bool) {
	if s.count == 0 {
		var zero View[T]
		return zero, false
	}
	s.count--

	ret := s.x

	if s.nlong > 0 {
		s.nlong--
		if s.nlong == 0 {
			// The long partitions are used up; the rest are one shorter.
			s.x.length--
		}
	}
	if s.x.length > 0 {
		// Advance by the ORIGINAL stride, not the combined one: each
		// partition starts one source element further along. Advancing by
		// the combined stride would tile the source instead of
		// interleaving it.
		s.x.base += s.baseStride
	}
	return ret, true
}

// Remaining returns the exact number of partitions not yet produced.
func (s *Substrides[T]) Remaining() int {
	return s.count
}

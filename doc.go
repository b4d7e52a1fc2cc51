// Package strided
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Zero-copy strided views over contiguous buffers.
//
// A strided view is a non-owning handle exposing every k-th element of a
// buffer: "every other element", "every third element". It generalizes a
// plain slice (stride 1) to arbitrary regular spacing, so algorithms such
// as a decimation-in-time FFT can work on interleaved subsets of an array
// without copying data. Views support indexed access, forward/backward
// iteration, slicing, splitting, and partitioning into n interleaved
// sub-views.
//
// Two capabilities exist over the same core:
//
//   - View is read-only and freely copyable. Any number of Views over the
//     same or overlapping memory may coexist; sharing them across
//     goroutines is safe whenever concurrent reads of the elements are.
//   - MutView is read-write and move-only. The reshape operations (Slice,
//     SplitAt, Substrides2, Substrides, IntoIter) consume the handle,
//     because each could otherwise leave two live writers over overlapping
//     memory. Reborrow yields a short-lived alias that can be consumed in
//     the original's place; using a consumed handle is a fatal contract
//     violation.
//
// Every operation is a bounded, synchronous, CPU-only computation. The
// library performs no I/O, takes no locks, and never allocates or frees
// element storage; buffers are supplied by the caller, either directly as
// slices or through the api.Buffer contracts (see also the arena package
// for revocable storage).
package strided

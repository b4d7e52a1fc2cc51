// Package raw
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Raw view core: the base/length/stride descriptor over a borrowed
// contiguous buffer, with bounds-checked access, slicing, splitting,
// interleave partitioning and element iteration.
//
// This package carries no capability discipline. Both the shared and the
// exclusive public wrappers are thin shells around the same descriptor;
// the read-only vs read-write distinction lives entirely in the root
// package. Descriptors index in element units against the backing slice,
// so every access is memory-safe by construction; contract violations
// (bad reshape bounds, overflowed stride combination, access through an
// invalidated guard) panic with a structured *api.Error.
package raw

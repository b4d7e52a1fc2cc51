// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Collaborator contracts for buffer owners.
//
// Views never own element storage. Any type holding a contiguous run of
// elements can present itself to the library through these interfaces;
// the library calls nothing else on the owner.

package api

// Buffer is a read-only buffer owner: it exposes its elements as one
// contiguous slice. The slice header is the whole contract — base address
// and length travel together, and the returned slice must stay valid for
// as long as any view derived from it is in use.
type Buffer[T any] interface {
	// Elems returns the owner's elements. Callers must not mutate them.
	Elems() []T
}

// MutBuffer is a buffer owner granting exclusive read-write access for the
// lifetime of the views derived from it. The owner must guarantee no other
// accessor mutates the region while an exclusive view over it is live.
type MutBuffer[T any] interface {
	Buffer[T]

	// MutElems returns the owner's elements for mutation.
	MutElems() []T
}

// Guard revalidates a borrowed region on access. A nil Guard means the
// region can never be invalidated (plain slices, kept alive by the view
// itself). Non-nil guards come from owners with revocable storage, such as
// arena regions: once the owner invalidates the region, every guarded view
// operation becomes a fatal contract violation instead of a silent read of
// recycled memory.
type Guard interface {
	// Valid reports whether the guarded region may still be accessed.
	Valid() bool
}

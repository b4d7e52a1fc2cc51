// File: arena/arena.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package arena

import (
	"sync/atomic"
	"unsafe"

	"github.com/eapache/queue"

	strided "github.com/momentics/strided"
	"github.com/momentics/strided/api"
	"github.com/momentics/strided/core/raw"
	"github.com/momentics/strided/internal/checked"
)

// DefaultChunkSize is the byte size of a freshly allocated chunk before
// rounding up to the platform page size.
const DefaultChunkSize = 64 * 1024

// Arena carves typed regions out of page-backed byte chunks. Reset makes
// every region allocated so far invalid and recycles the chunks; the next
// allocations reuse them. Not safe for concurrent use.
type Arena[T any] struct {
	chunkSize int
	cur       []byte
	off       int
	used      [][]byte
	free      *queue.Queue
	gen       atomic.Uint64
}

// Stats reports arena occupancy.
type Stats struct {
	ChunksInUse int
	ChunksFree  int
	Generation  uint64
}

// New returns an arena with the default chunk size.
func New[T any]() *Arena[T] {
	return NewSize[T](DefaultChunkSize)
}

// NewSize returns an arena whose chunks hold at least chunkSize bytes,
// rounded up to the page size. A non-positive size is fatal.
func NewSize[T any](chunkSize int) *Arena[T] {
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		panic(api.Violationf(api.ErrCodeZeroSized, "arena over zero-sized element type"))
	}
	if chunkSize < 1 {
		panic(api.Violationf(api.ErrCodeInvalidArgument, "chunk size %d is not positive", chunkSize))
	}
	page := pageSize()
	if rem := chunkSize % page; rem != 0 {
		chunkSize += page - rem
	}
	return &Arena[T]{chunkSize: chunkSize, free: queue.New()}
}

// Alloc carves a region of n elements. The region contents are zeroed.
// A negative n is fatal; n == 0 yields an empty (still guarded) region.
func (a *Arena[T]) Alloc(n int) *Region[T] {
	if n < 0 {
		panic(api.Violationf(api.ErrCodeInvalidArgument, "negative region length %d", n))
	}
	g := &guard{gen: &a.gen, born: a.gen.Load()}
	if n == 0 {
		return &Region[T]{guard: g}
	}

	var zero T
	size, ok := checked.Mul(n, int(unsafe.Sizeof(zero)))
	if !ok {
		panic(api.Violationf(api.ErrCodeOverflow, "region byte size overflows"))
	}
	align := int(unsafe.Alignof(zero))

	if a.cur == nil || a.off+size+align > len(a.cur) {
		a.grow(size + align)
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(a.cur)))
	if mis := int((base + uintptr(a.off)) % uintptr(align)); mis != 0 {
		a.off += align - mis
	}
	p := unsafe.Pointer(unsafe.SliceData(a.cur[a.off:]))
	a.off += size

	elems := unsafe.Slice((*T)(p), n)
	clear(elems)
	return &Region[T]{elems: elems, guard: g}
}

// grow installs a chunk large enough for a need-byte allocation, taking
// it from the free list when one fits.
func (a *Arena[T]) grow(need int) {
	if a.cur != nil {
		a.used = append(a.used, a.cur)
	}
	if a.free.Length() > 0 && len(a.free.Peek().([]byte)) >= need {
		a.cur = a.free.Remove().([]byte)
	} else {
		size := a.chunkSize
		if need > size {
			size = need
		}
		a.cur = allocChunk(size)
	}
	a.off = 0
}

// Reset invalidates every region allocated from the arena and recycles
// all chunks. Guarded views over those regions panic on their next
// access.
func (a *Arena[T]) Reset() {
	a.gen.Add(1)
	if a.cur != nil {
		a.free.Add(a.cur)
		a.cur = nil
	}
	for _, c := range a.used {
		a.free.Add(c)
	}
	a.used = a.used[:0]
	a.off = 0
}

// Release is Reset plus returning every chunk to the operating system.
// The arena remains usable; the next Alloc starts from fresh chunks.
func (a *Arena[T]) Release() {
	a.Reset()
	for a.free.Length() > 0 {
		freeChunk(a.free.Remove().([]byte))
	}
}

// Stats returns current occupancy counters.
func (a *Arena[T]) Stats() Stats {
	inUse := len(a.used)
	if a.cur != nil {
		inUse++
	}
	return Stats{ChunksInUse: inUse, ChunksFree: a.free.Length(), Generation: a.gen.Load()}
}

// guard ties a region to the arena generation it was allocated in.
type guard struct {
	gen  *atomic.Uint64
	born uint64
}

// Valid implements api.Guard.
func (g *guard) Valid() bool { return g.gen.Load() == g.born }

// Region is a typed run of arena memory. It satisfies the buffer-owner
// contract, but views built through View/MutView additionally carry the
// generation guard; prefer those over strided.Of/MutOf for arena memory.
type Region[T any] struct {
	elems []T
	guard *guard
}

var _ api.MutBuffer[int] = (*Region[int])(nil)
var _ api.Guard = (*guard)(nil)

// Len returns the region's element count.
func (r *Region[T]) Len() int { return len(r.elems) }

// Elems implements api.Buffer. The slice is only valid until the arena is
// reset; the guarded views know that, raw slice users must track it
// themselves.
func (r *Region[T]) Elems() []T { return r.elems }

// MutElems implements api.MutBuffer.
func (r *Region[T]) MutElems() []T { return r.elems }

// View returns a guarded read-only view spanning the region.
func (r *Region[T]) View() strided.View[T] {
	return strided.FromRaw(raw.Make(r.elems, 0, len(r.elems), 1, r.guard))
}

// MutView returns a guarded exclusive view spanning the region.
func (r *Region[T]) MutView() *strided.MutView[T] {
	return strided.MutFromRaw(raw.Make(r.elems, 0, len(r.elems), 1, r.guard))
}

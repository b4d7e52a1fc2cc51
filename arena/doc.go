// Package arena
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Page-backed typed arenas with generation-counter invalidation.
//
// Views never own their storage, and Go's garbage collector keeps a plain
// slice alive for as long as any view references it. Arenas cover the
// remaining hazard: callers who recycle buffers. A Region allocated from
// an Arena carries a generation guard; views built through Region.View or
// Region.MutView check the guard on access, so touching a view after the
// arena has been Reset is a fatal contract violation instead of a silent
// read of reused memory.
//
// Chunks are mmap-allocated on Linux and heap-allocated elsewhere.
// Recycled chunks pass through a FIFO free list. An Arena and its regions
// are meant for single-goroutine use; only the generation counter itself
// is atomic, so already-issued guards may be checked from other
// goroutines.
package arena

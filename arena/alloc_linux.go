// File: arena/alloc_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux chunk allocation: anonymous private mmap, so Release really does
// hand the pages back to the kernel.

//go:build linux

package arena

import (
	"golang.org/x/sys/unix"
)

func pageSize() int {
	return unix.Getpagesize()
}

func allocChunk(size int) []byte {
	b, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		// Fall back to the heap under mmap pressure.
		return make([]byte, size)
	}
	return b
}

func freeChunk(b []byte) {
	if err := unix.Munmap(b); err != nil {
		// Heap-fallback chunk; the GC reclaims it.
		_ = err
	}
}

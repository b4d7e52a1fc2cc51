// File: arena/alloc_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Portable chunk allocation fallback for non-Linux platforms.

//go:build !linux

package arena

import "os"

func pageSize() int {
	return os.Getpagesize()
}

func allocChunk(size int) []byte {
	return make([]byte, size)
}

func freeChunk(b []byte) {
	// Heap chunk; the GC reclaims it.
	_ = b
}

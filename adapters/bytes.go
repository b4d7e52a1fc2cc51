// File: adapters/bytes.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Zero-copy reinterpretation of byte buffers as typed views. Unlike the
// core's contract panics, shape problems here are ordinary errors: the
// byte buffer is usually external input (a file mapping, a network
// payload), not something the caller constructed.

package adapters

import (
	"fmt"
	"unsafe"

	strided "github.com/momentics/strided"
)

// Reinterpretation failure modes.
var (
	ErrOddLength  = fmt.Errorf("buffer length is not a multiple of the element size")
	ErrMisaligned = fmt.Errorf("buffer base is not aligned for the element type")
	ErrZeroSized  = fmt.Errorf("cannot reinterpret as a zero-sized element type")
)

// reinterpret views b as a []T without copying. NB: the returned slice
// aliases b; the caller keeps b alive and, for mutable use, exclusive.
func reinterpret[T any](b []byte) ([]T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return nil, ErrZeroSized
	}
	if len(b)%size != 0 {
		return nil, fmt.Errorf("%w: %d bytes, element size %d", ErrOddLength, len(b), size)
	}
	if len(b) == 0 {
		return nil, nil
	}
	p := unsafe.Pointer(unsafe.SliceData(b))
	if uintptr(p)%unsafe.Alignof(zero) != 0 {
		return nil, fmt.Errorf("%w: base %#x, alignment %d", ErrMisaligned, uintptr(p), unsafe.Alignof(zero))
	}
	return unsafe.Slice((*T)(p), len(b)/size), nil
}

// Bytes reinterprets a byte buffer as a read-only stride-1 view of T.
// The view aliases b zero-copy; element byte order is the host's.
func Bytes[T any](b []byte) (strided.View[T], error) {
	s, err := reinterpret[T](b)
	if err != nil {
		return strided.View[T]{}, err
	}
	return strided.New(s), nil
}

// MutBytes reinterprets a byte buffer as an exclusive stride-1 view of T.
// The caller must guarantee no other accessor touches b while the view or
// its descendants are live.
func MutBytes[T any](b []byte) (*strided.MutView[T], error) {
	s, err := reinterpret[T](b)
	if err != nil {
		return nil, err
	}
	return strided.NewMut(s), nil
}

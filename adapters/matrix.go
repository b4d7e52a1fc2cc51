// File: adapters/matrix.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Row-major matrix access through strided views: rows are stride-1 runs,
// columns are stride-width runs, the main diagonal is a stride-(width+1)
// run. The matrix never copies the flat buffer it wraps.

package adapters

import (
	strided "github.com/momentics/strided"
	"github.com/momentics/strided/api"
	"github.com/momentics/strided/core/raw"
)

// Matrix wraps a flat row-major buffer of rows x cols elements. Views
// handed out by the read-only accessors share memory; the caller decides
// which of them may be mutated through the Mut variants, under the usual
// exclusive-access rules.
type Matrix[T any] struct {
	data []T
	rows int
	cols int
}

// NewMatrix wraps data as a rows x cols row-major matrix. The shape is a
// caller contract: negative dimensions or a buffer of the wrong length
// are fatal.
func NewMatrix[T any](data []T, rows, cols int) *Matrix[T] {
	if rows < 0 || cols < 0 || rows*cols != len(data) {
		panic(api.Violationf(api.ErrCodeInvalidArgument,
			"matrix shape %dx%d does not fit buffer of %d elements", rows, cols, len(data)))
	}
	return &Matrix[T]{data: data, rows: rows, cols: cols}
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// Row returns the i-th row as a stride-1 view. i out of range is fatal.
func (m *Matrix[T]) Row(i int) strided.View[T] {
	m.checkRow(i)
	return strided.FromRaw(raw.Make(m.data, i*m.cols, m.cols, 1, nil))
}

// Col returns the j-th column as a view of length Rows() and stride
// Cols(). j out of range is fatal.
func (m *Matrix[T]) Col(j int) strided.View[T] {
	m.checkCol(j)
	return strided.FromRaw(raw.Make(m.data, j, m.rows, m.cols, nil))
}

// Diag returns the main diagonal as a view of length min(Rows(), Cols())
// and stride Cols()+1.
func (m *Matrix[T]) Diag() strided.View[T] {
	return strided.FromRaw(raw.Make(m.data, 0, min(m.rows, m.cols), m.cols+1, nil))
}

// MutRow is Row with an exclusive handle. The caller must not hold other
// live writers over the row.
func (m *Matrix[T]) MutRow(i int) *strided.MutView[T] {
	m.checkRow(i)
	return strided.MutFromRaw(raw.Make(m.data, i*m.cols, m.cols, 1, nil))
}

// MutCol is Col with an exclusive handle.
func (m *Matrix[T]) MutCol(j int) *strided.MutView[T] {
	m.checkCol(j)
	return strided.MutFromRaw(raw.Make(m.data, j, m.rows, m.cols, nil))
}

// MutDiag is Diag with an exclusive handle.
func (m *Matrix[T]) MutDiag() *strided.MutView[T] {
	return strided.MutFromRaw(raw.Make(m.data, 0, min(m.rows, m.cols), m.cols+1, nil))
}

func (m *Matrix[T]) checkRow(i int) {
	if i < 0 || i >= m.rows {
		panic(api.Violationf(api.ErrCodeOutOfRange, "row %d out of range for %dx%d matrix", i, m.rows, m.cols))
	}
}

func (m *Matrix[T]) checkCol(j int) {
	if j < 0 || j >= m.cols {
		panic(api.Violationf(api.ErrCodeOutOfRange, "column %d out of range for %dx%d matrix", j, m.rows, m.cols))
	}
}

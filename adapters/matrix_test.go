package adapters_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	strided "github.com/momentics/strided"
	"github.com/momentics/strided/adapters"
	"github.com/momentics/strided/api"
)

// 3x4 row-major test matrix:
//
//	1  2  3  4
//	5  6  7  8
//	9 10 11 12
func testMatrix() *adapters.Matrix[int] {
	return adapters.NewMatrix([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, 3, 4)
}

func TestMatrixRowCol(t *testing.T) {
	m := testMatrix()

	row := m.Row(1)
	if row.Len() != 4 || row.Stride() != 1 {
		t.Fatalf("Row(1) len/stride = %d/%d, want 4/1", row.Len(), row.Stride())
	}
	if diff := cmp.Diff([]int{5, 6, 7, 8}, row.Collect()); diff != "" {
		t.Fatalf("Row(1) mismatch (-want +got):\n%s", diff)
	}

	col := m.Col(2)
	if col.Len() != 3 || col.Stride() != 4 {
		t.Fatalf("Col(2) len/stride = %d/%d, want 3/4", col.Len(), col.Stride())
	}
	if diff := cmp.Diff([]int{3, 7, 11}, col.Collect()); diff != "" {
		t.Fatalf("Col(2) mismatch (-want +got):\n%s", diff)
	}

	diag := m.Diag()
	if diff := cmp.Diff([]int{1, 6, 11}, diag.Collect()); diff != "" {
		t.Fatalf("Diag mismatch (-want +got):\n%s", diff)
	}
}

// Interleaving all columns in order is exactly the row-major buffer: a
// column is the j-th partition of Substrides(cols).
func TestMatrixColumnsAreSubstrides(t *testing.T) {
	m := testMatrix()
	flat := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	parts := strided.New(flat).Substrides(4)
	for j := 0; j < 4; j++ {
		p, ok := parts.Next()
		if !ok {
			t.Fatalf("partition %d missing", j)
		}
		if !strided.Equal(p, m.Col(j)) {
			t.Fatalf("Col(%d) = %v, substride = %v", j, m.Col(j), p)
		}
	}
}

func TestMatrixMutColWritesThrough(t *testing.T) {
	buf := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	m := adapters.NewMatrix(buf, 3, 4)

	col := m.MutCol(0)
	it := col.IterMut()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		*p = 0
	}
	want := []int{0, 2, 3, 4, 0, 6, 7, 8, 0, 10, 11, 12}
	if diff := cmp.Diff(want, buf); diff != "" {
		t.Fatalf("buffer mismatch (-want +got):\n%s", diff)
	}
}

func TestMatrixContracts(t *testing.T) {
	wantViolation := func(code api.ErrorCode, fn func()) {
		t.Helper()
		defer func() {
			if api.CodeOf(recover()) != code {
				t.Fatalf("expected %s violation", code)
			}
		}()
		fn()
	}

	wantViolation(api.ErrCodeInvalidArgument, func() {
		adapters.NewMatrix([]int{1, 2, 3}, 2, 2)
	})
	m := testMatrix()
	wantViolation(api.ErrCodeOutOfRange, func() { m.Row(3) })
	wantViolation(api.ErrCodeOutOfRange, func() { m.Col(4) })
	wantViolation(api.ErrCodeOutOfRange, func() { m.MutRow(-1) })
}

func TestMatrixDiagNonSquare(t *testing.T) {
	wide := adapters.NewMatrix([]int{1, 2, 3, 4, 5, 6}, 2, 3)
	if diff := cmp.Diff([]int{1, 5}, wide.Diag().Collect()); diff != "" {
		t.Fatalf("wide diag mismatch (-want +got):\n%s", diff)
	}
	tall := adapters.NewMatrix([]int{1, 2, 3, 4, 5, 6}, 3, 2)
	if diff := cmp.Diff([]int{1, 4}, tall.Diag().Collect()); diff != "" {
		t.Fatalf("tall diag mismatch (-want +got):\n%s", diff)
	}
}

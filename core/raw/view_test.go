package raw_test

import (
	"testing"

	"github.com/momentics/strided/api"
	"github.com/momentics/strided/core/raw"
)

// collect drains a view through its iterator.
func collect[T any](v raw.View[T]) []T {
	out := make([]T, 0, v.Len())
	it := v.Iter()
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		out = append(out, e)
	}
	return out
}

func eq[T comparable](t *testing.T, v raw.View[T], want []T) {
	t.Helper()
	if v.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", v.Len(), len(want))
	}
	got := collect(v)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("elements = %v, want %v", got, want)
		}
	}
}

// wantViolation asserts that fn panics with the given contract-error code.
func wantViolation(t *testing.T, code api.ErrorCode, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected contract-violation panic (%s), got none", code)
		}
		if got := api.CodeOf(r); got != code {
			t.Fatalf("panic code = %s, want %s (%v)", got, code, r)
		}
	}()
	fn()
}

func TestNewSpansBuffer(t *testing.T) {
	v := raw.New([]uint16{1, 2, 3, 4, 5})
	if v.Len() != 5 || v.Stride() != 1 {
		t.Fatalf("Len, Stride = %d, %d, want 5, 1", v.Len(), v.Stride())
	}
	eq(t, v, []uint16{1, 2, 3, 4, 5})
}

func TestMakeRejectsZeroSizedElements(t *testing.T) {
	wantViolation(t, api.ErrCodeZeroSized, func() {
		raw.New([]struct{}{{}, {}})
	})
}

func TestMakeRejectsBadStride(t *testing.T) {
	wantViolation(t, api.ErrCodeInvalidArgument, func() {
		raw.Make([]int{1, 2, 3}, 0, 3, 0, nil)
	})
	wantViolation(t, api.ErrCodeInvalidArgument, func() {
		raw.Make([]int{1, 2, 3}, 0, 3, -2, nil)
	})
}

func TestMakeRejectsExcessExtent(t *testing.T) {
	// 0, 2, 4 is fine for length 3 stride 2; length 4 would need index 6.
	raw.Make(make([]int, 5), 0, 3, 2, nil)
	wantViolation(t, api.ErrCodeOutOfRange, func() {
		raw.Make(make([]int, 5), 0, 4, 2, nil)
	})
	wantViolation(t, api.ErrCodeInvalidArgument, func() {
		raw.Make(make([]int, 5), -1, 2, 1, nil)
	})
}

func TestGetBoundaryQuery(t *testing.T) {
	buf := []int{1, 2, 3, 4, 5, 6}
	left, _ := raw.New(buf).Substrides2()
	eq(t, left, []int{1, 3, 5})

	if e, ok := left.Get(2); !ok || e != 5 {
		t.Fatalf("Get(2) = (%d, %v), want (5, true)", e, ok)
	}
	if _, ok := left.Get(5); ok {
		t.Fatal("Get(5) ok on view of length 3")
	}
	if _, ok := left.Get(-1); ok {
		t.Fatal("Get(-1) ok")
	}
	if p, ok := left.Ptr(1); !ok || *p != 3 {
		t.Fatalf("Ptr(1) = (%v, %v), want (&3, true)", p, ok)
	}
}

func TestAtAndSetContract(t *testing.T) {
	buf := []int{1, 2, 3, 4}
	v := raw.New(buf)
	v.Set(2, 30)
	if got := v.At(2); got != 30 {
		t.Fatalf("At(2) = %d, want 30", got)
	}
	if buf[2] != 30 {
		t.Fatalf("backing buffer = %v, want element 2 mutated", buf)
	}
	wantViolation(t, api.ErrCodeOutOfRange, func() { v.At(4) })
	wantViolation(t, api.ErrCodeOutOfRange, func() { v.Set(-1, 0) })
}

func TestSliceAndSplit(t *testing.T) {
	buf := []uint16{1, 2, 3, 4, 5, 6, 7}
	l, r := raw.New(buf).Substrides2()
	eq(t, l, []uint16{1, 3, 5, 7})
	eq(t, r, []uint16{2, 4, 6})

	eq(t, l.Slice(1, 3), []uint16{3, 5})
	eq(t, l.Slice(0, 4), []uint16{1, 3, 5, 7})
	eq(t, l.SliceTo(3), []uint16{1, 3, 5})
	eq(t, l.SliceTo(0), []uint16{})
	eq(t, l.SliceFrom(2), []uint16{5, 7})
	eq(t, l.SliceFrom(4), []uint16{})

	ll, lr := l.SplitAt(2)
	eq(t, ll, []uint16{1, 3})
	eq(t, lr, []uint16{5, 7})

	rl, rr := r.SplitAt(0)
	eq(t, rl, []uint16{})
	eq(t, rr, []uint16{2, 4, 6})

	rl, rr = r.SplitAt(3)
	eq(t, rl, []uint16{2, 4, 6})
	eq(t, rr, []uint16{})
}

func TestSliceContract(t *testing.T) {
	v := raw.New([]int{1, 2, 3})
	eq(t, v.Slice(1, 3), []int{2, 3})
	wantViolation(t, api.ErrCodeOutOfRange, func() { v.Slice(0, 4) })
	wantViolation(t, api.ErrCodeOutOfRange, func() { v.Slice(2, 1) })
	wantViolation(t, api.ErrCodeOutOfRange, func() { v.SplitAt(4) })
	wantViolation(t, api.ErrCodeOutOfRange, func() { v.Slice(-1, 2) })
}

func TestSplitAtMatchesSlices(t *testing.T) {
	buf := []int{10, 20, 30, 40, 50, 60, 70, 80}
	v := raw.Make(buf, 1, 4, 2, nil) // 20, 40, 60, 80
	for idx := 0; idx <= v.Len(); idx++ {
		l, r := v.SplitAt(idx)
		wl, wr := v.SliceTo(idx), v.SliceFrom(idx)
		eq(t, l, collect(wl))
		eq(t, r, collect(wr))
	}
}

func TestSubstrides2Lengths(t *testing.T) {
	cases := []struct {
		in    []uint16
		left  []uint16
		right []uint16
	}{
		{[]uint16{1, 2, 3, 4, 5}, []uint16{1, 3, 5}, []uint16{2, 4}},
		{[]uint16{1, 2, 3, 4}, []uint16{1, 3}, []uint16{2, 4}},
		{[]uint16{1, 2, 3}, []uint16{1, 3}, []uint16{2}},
		{[]uint16{1, 2}, []uint16{1}, []uint16{2}},
		{[]uint16{1}, []uint16{1}, []uint16{}},
		{[]uint16{}, []uint16{}, []uint16{}},
	}
	for _, c := range cases {
		l, r := raw.New(c.in).Substrides2()
		eq(t, l, c.left)
		eq(t, r, c.right)
	}
}

func TestSubstrides2StrideDoubles(t *testing.T) {
	v := raw.New(make([]uint16, 5))
	l, r := v.Substrides2()
	if l.Stride() != 2 || r.Stride() != 2 {
		t.Fatalf("strides = %d, %d, want 2, 2", l.Stride(), r.Stride())
	}
	ll, lr := l.Substrides2()
	if ll.Len() != 2 || lr.Len() != 1 {
		t.Fatalf("nested lengths = %d, %d, want 2, 1", ll.Len(), lr.Len())
	}
	if ll.Stride() != 4 || lr.Stride() != 4 {
		t.Fatalf("nested strides = %d, %d, want 4, 4", ll.Stride(), lr.Stride())
	}
}

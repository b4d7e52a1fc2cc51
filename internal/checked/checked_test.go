package checked_test

import (
	"math"
	"testing"

	"github.com/momentics/strided/internal/checked"
)

func TestMul(t *testing.T) {
	cases := []struct {
		a, b int
		want int
		ok   bool
	}{
		{0, 0, 0, true},
		{0, math.MaxInt, 0, true},
		{1, math.MaxInt, math.MaxInt, true},
		{2, math.MaxInt/2 + 1, 0, false},
		{3, 7, 21, true},
		{math.MaxInt, math.MaxInt, 0, false},
	}
	for _, c := range cases {
		got, ok := checked.Mul(c.a, c.b)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("Mul(%d, %d) = (%d, %v), want (%d, %v)", c.a, c.b, got, ok, c.want, c.ok)
		}
	}
}

func TestAdd(t *testing.T) {
	cases := []struct {
		a, b int
		want int
		ok   bool
	}{
		{0, 0, 0, true},
		{math.MaxInt, 0, math.MaxInt, true},
		{math.MaxInt, 1, 0, false},
		{math.MaxInt - 1, 1, math.MaxInt, true},
	}
	for _, c := range cases {
		got, ok := checked.Add(c.a, c.b)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("Add(%d, %d) = (%d, %v), want (%d, %v)", c.a, c.b, got, ok, c.want, c.ok)
		}
	}
}

// File: internal/checked/checked.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Overflow-checked integer arithmetic for stride and extent computation.
// Every stride combination in the library routes through these helpers so
// the overflow contract is enforced at a single place.

package checked

import "math"

// Mul returns a*b and reports whether the product fits in an int.
// Both operands must be non-negative.
func Mul(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// Add returns a+b and reports whether the sum fits in an int.
// Both operands must be non-negative.
func Add(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

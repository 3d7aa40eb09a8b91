package numrt

import "math"

// overflowAdd reports whether x+y overflows int64, following the sign-of-
// addend predicate the base spec names directly: for a non-negative addend,
// overflow shows up as the sum being smaller than x; for a negative addend,
// as the sum being larger.
func overflowAdd(x, y, sum int64) bool {
	if y >= 0 {
		return sum < x
	}
	return sum > x
}

// overflowSub reports whether x-y overflows int64 by the same predicate
// applied to the negated subtrahend.
func overflowSub(x, y, diff int64) bool {
	if y <= 0 {
		return diff < x
	}
	return diff > x
}

// addI64Checked adds x and y, faulting FaultOverflow rather than wrapping.
func addI64Checked(faulter FaultReporter, x, y int64) int64 {
	sum := x + y
	if overflowAdd(x, y, sum) {
		reportAndPanic(faulter, FaultOverflow, 0)
	}
	return sum
}

// subI64Checked subtracts y from x, faulting FaultOverflow rather than
// wrapping.
func subI64Checked(faulter FaultReporter, x, y int64) int64 {
	diff := x - y
	if overflowSub(x, y, diff) {
		reportAndPanic(faulter, FaultOverflow, 0)
	}
	return diff
}

// safeMulI64 multiplies x and y, faulting FaultOverflow if the exact product
// does not fit in int64. It follows the base spec's detection rule (x ≠ 0 ∧
// product / x ≠ y) directly, which is simpler than — and as exact as — a
// 128-bit multiply-and-compare for this width.
func safeMulI64(faulter FaultReporter, x, y int64) int64 {
	product := x * y
	if x != 0 && product/x != y {
		reportAndPanic(faulter, FaultOverflow, 0)
	}
	// The one case the division check above cannot see: MinInt64 * -1
	// wraps back to MinInt64, so product/x == y even though it overflowed.
	if x == math.MinInt64 && y == -1 || y == math.MinInt64 && x == -1 {
		reportAndPanic(faulter, FaultOverflow, 0)
	}
	return product
}

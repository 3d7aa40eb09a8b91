package numrt

import "math/bits"

// reduceToInteger chooses the smallest integer representation for v,
// implementing canonical-form invariants 1-3: an immediate when v fits the
// 63-bit immediate range, else Int32 when it fits signed 32-bit range, else
// Int64.
func reduceToInteger(v int64) Number {
	if fitsImmediate(v) {
		return numImmediate(v)
	}
	if v >= int64(int32Min) && v <= int64(int32Max) {
		return numInt32(v)
	}
	return numInt64(v)
}

const (
	int32Min = -(1 << 31)
	int32Max = 1<<31 - 1
)

// reduceFraction normalises and reduces n/d, collapsing to an integer when
// the denominator divides evenly, faulting on division by zero or on
// overflow of the reduced numerator/denominator past signed 32-bit range.
func reduceFraction(faulter FaultReporter, n, d int64) Number {
	if d == 0 {
		return reportAndPanic(faulter, FaultDivisionByZero, 0)
	}
	if n == 0 {
		return numImmediate(0)
	}

	if n < 0 && d < 0 {
		n, d = -n, -d
	}
	if d < 0 {
		n, d = -n, -d
	}

	if n%d == 0 {
		return reduceToInteger(n / d)
	}

	nAbs := absToUint64(n)
	dAbs := uint64(d) //nolint:gosec // d made positive above
	g := binaryGCD(nAbs, dAbs)
	if g > 1 {
		nAbs /= g
		dAbs /= g
	}

	if dAbs > uint64(int32Max) {
		return reportAndPanic(faulter, FaultOverflow, 0)
	}
	numeratorLimit := uint64(int32Max)
	if n < 0 {
		numeratorLimit = uint64(int32Max) + 1 // magnitude of int32Min
	}
	if nAbs > numeratorLimit {
		return reportAndPanic(faulter, FaultOverflow, 0)
	}

	var num int32
	switch {
	case n < 0 && nAbs == uint64(int32Max)+1:
		num = int32Min // -2147483648 cannot be negated after an int32(nAbs) round trip
	case n < 0:
		num = -int32(nAbs) //nolint:gosec // bounded by the checks above
	default:
		num = int32(nAbs) //nolint:gosec // bounded by the checks above
	}
	return numRational(num, uint32(dAbs)) //nolint:gosec // bounded by the check above
}

// binaryGCD computes gcd(a, b) via Stein's algorithm on unsigned magnitudes,
// as the base spec's §4.3 names explicitly.
func binaryGCD(a, b uint64) uint64 {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}

	shift := bits.TrailingZeros64(a | b)
	a >>= bits.TrailingZeros64(a)

	for b != 0 {
		b >>= bits.TrailingZeros64(b)
		if a > b {
			a, b = b, a
		}
		b -= a
	}
	return a << shift
}

// absToUint64 converts a signed magnitude to its unsigned absolute value,
// handling math.MinInt64 (whose magnitude does not fit in int64).
func absToUint64(v int64) uint64 {
	if v >= 0 {
		return uint64(v)
	}
	return -uint64(v)
}

package numrt

import "math"

// maxSafeInt is the largest magnitude an IEEE-754 float64 can represent
// exactly as a contiguous range of integers (2^53).
const maxSafeInt = 1 << 53

// safeInteger reports whether f has no fractional part and falls inside the
// 53-bit contiguous-integer range, returning its exact int64 value when so.
func safeInteger(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f != math.Trunc(f) {
		return 0, false
	}
	if f < -maxSafeInt || f > maxSafeInt {
		return 0, false
	}
	return int64(f), true
}

// Eq implements cross-representation numeric equality (§4.5). Identical
// Words are equal; otherwise a Word that is not a number (IsNumber) is
// unequal to anything.
func Eq(heap CellReader, w1, w2 Word) bool {
	if w1 == w2 {
		return true
	}
	if !IsNumber(heap, w1) || !IsNumber(heap, w2) {
		return false
	}
	return numberEqual(decode(heap, w1), decode(heap, w2))
}

func numberEqual(a, b Number) bool {
	switch {
	case a.isIntegerKind() && b.isIntegerKind():
		return a.i == b.i
	case a.kind == KindRational && b.kind == KindRational:
		return a.num == b.num && a.den == b.den
	case a.kind == KindRational && b.isFloatKind():
		return rationalEqualsFloat(a, numberToF64(b))
	case a.isFloatKind() && b.kind == KindRational:
		return rationalEqualsFloat(b, numberToF64(a))
	case a.kind == KindRational || b.kind == KindRational:
		// one side rational, the other an integer kind: invariant 4 forbids
		// a RATIONAL cell from ever representing an integer value, so these
		// can never be equal.
		return false
	case a.isIntegerKind() && b.isFloatKind():
		return integerEqualsFloat(a.i, numberToF64(b))
	case a.isFloatKind() && b.isIntegerKind():
		return integerEqualsFloat(b.i, numberToF64(a))
	case a.isFloatKind() && b.isFloatKind():
		return numberToF64(a) == numberToF64(b)
	default:
		return false
	}
}

func integerEqualsFloat(i int64, f float64) bool {
	fi, ok := safeInteger(f)
	return ok && fi == i
}

func rationalEqualsFloat(r Number, f float64) bool {
	return float64(r.num)/float64(r.den) == f
}

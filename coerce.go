package numrt

// ToF64 widens any Number to a float64. Rationals divide their numerator and
// denominator as float64, never losing width partway through (the base spec
// documents a source bug where one side of this division used float32 while
// the other used float64; see SPEC_FULL.md §4.4 and DESIGN.md).
func ToF64(heap CellReader, w Word) float64 {
	return numberToF64(decode(heap, w))
}

func numberToF64(n Number) float64 {
	switch n.kind {
	case KindImmediate, KindInt32, KindInt64:
		return float64(n.i)
	case KindFloat32, KindFloat64:
		return n.f
	case KindRational:
		return float64(n.num) / float64(n.den)
	default:
		return 0
	}
}

// ToF32 narrows any Number to a float32. Rationals divide numerator and
// denominator both cast to float32, consistent with ToF64's matching-width
// rule; this loses precision for large rationals, which is why comparison
// (§4.7) always coerces through ToF64 instead.
func ToF32(heap CellReader, w Word) float32 {
	return numberToF32(decode(heap, w))
}

func numberToF32(n Number) float32 {
	switch n.kind {
	case KindImmediate, KindInt32, KindInt64:
		return float32(n.i)
	case KindFloat32, KindFloat64:
		return float32(n.f)
	case KindRational:
		return float32(n.num) / float32(n.den)
	default:
		return 0
	}
}

// ToI64 widens an integer-kind Number to int64, or faults FaultNotIntLike for
// floats and rationals. The offending Word is surfaced in the fault payload.
func ToI64(heap CellReader, faulter FaultReporter, w Word) int64 {
	n := decode(heap, w)
	if !n.isIntegerKind() {
		reportAndPanic(faulter, FaultNotIntLike, w)
	}
	return n.i
}

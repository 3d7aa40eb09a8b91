package numrt

// op names the four arithmetic operators so the rational- and float-combine
// helpers can share one dispatch body instead of four near-duplicates.
type op uint8

const (
	opAdd op = iota
	opSub
	opMul
	opDiv
)

// Plus, Minus, Times and Divide all share the same shape: decode both
// operands once, dispatch to a representation-specific combine, then encode
// the canonicalised result back into a Word. Callers must already know both
// words are numbers (IsNumber is the precondition throughout this package).
func Plus(heap Heap, faulter FaultReporter, a, b Word) Word {
	return applyArith(heap, faulter, opAdd, a, b)
}

func Minus(heap Heap, faulter FaultReporter, a, b Word) Word {
	return applyArith(heap, faulter, opSub, a, b)
}

func Times(heap Heap, faulter FaultReporter, a, b Word) Word {
	return applyArith(heap, faulter, opMul, a, b)
}

func Divide(heap Heap, faulter FaultReporter, a, b Word) Word {
	return applyArith(heap, faulter, opDiv, a, b)
}

func applyArith(heap Heap, faulter FaultReporter, o op, a, b Word) Word {
	result := combine(faulter, o, decode(heap, a), decode(heap, b))
	w, err := encode(heap, result)
	if err != nil {
		reportAndPanic(faulter, FaultOverflow, 0)
	}
	return w
}

// combine dispatches on the Kind pair per §4.6: float involvement wins
// first (it can never fault except through a prior integer/rational step
// that already would have), then rational involvement, then the plain
// integer path.
func combine(faulter FaultReporter, o op, a, b Number) Number {
	switch {
	case a.isFloatKind() || b.isFloatKind():
		return floatCombine(o, a, b)
	case a.kind == KindRational || b.kind == KindRational:
		return rationalCombine(faulter, o, a, b)
	default:
		return intCombine(faulter, o, a.i, b.i)
	}
}

// intCombine handles integer ⊕ integer for all four operators, following the
// teacher's overflow-checked-add/sub/mul pattern and the spec's even-division
// rule for ÷.
func intCombine(faulter FaultReporter, o op, x, y int64) Number {
	switch o {
	case opAdd:
		return reduceToInteger(addI64Checked(faulter, x, y))
	case opSub:
		return reduceToInteger(subI64Checked(faulter, x, y))
	case opMul:
		return reduceToInteger(safeMulI64(faulter, x, y))
	case opDiv:
		if y == 0 {
			return reportAndPanic(faulter, FaultDivisionByZero, 0)
		}
		if x%y == 0 {
			return reduceToInteger(x / y)
		}
		return reduceFraction(faulter, x, y)
	default:
		return numImmediate(0)
	}
}

// rationalCombine handles every pairing where at least one operand is
// KindRational and neither is a float.
func rationalCombine(faulter FaultReporter, o op, a, b Number) Number {
	switch {
	case a.kind == KindRational && b.kind == KindRational:
		return ratRatCombine(faulter, o, a, b)
	case a.kind == KindRational:
		return ratIntCombine(faulter, o, a, b.i, true)
	default:
		return ratIntCombine(faulter, o, b, a.i, false)
	}
}

// ratIntCombine combines a rational r with an integer x. ratLeft records
// whether r was the left operand (needed for subtraction/division, which are
// not commutative).
func ratIntCombine(faulter FaultReporter, o op, r Number, x int64, ratLeft bool) Number {
	switch o {
	case opAdd:
		return ratAddSubInt(faulter, r, x, ratLeft, true)
	case opSub:
		return ratAddSubInt(faulter, r, x, ratLeft, false)
	case opMul:
		return intTimesRational(faulter, x, r)
	case opDiv:
		if ratLeft {
			return rationalDivInt(faulter, r, x)
		}
		return intDivRational(faulter, x, r)
	default:
		return numImmediate(0)
	}
}

// ratAddSubInt computes r+x, r-x, x+r or x-r as (a ± x·b)/b, matching §4.6's
// "expand to a common denominator, check the unreduced numerator against
// signed-32 range before reducing" rule for the integer/rational case.
func ratAddSubInt(faulter FaultReporter, r Number, x int64, ratLeft, isAdd bool) Number {
	den := int64(r.den)
	num := int64(r.num)
	expanded := safeMulI64(faulter, x, den)

	var newNum int64
	switch {
	case ratLeft && isAdd:
		newNum = addI64Checked(faulter, num, expanded)
	case ratLeft && !isAdd:
		newNum = subI64Checked(faulter, num, expanded)
	case !ratLeft && isAdd:
		newNum = addI64Checked(faulter, expanded, num)
	default: // !ratLeft && !isAdd: x - r = (x·b - a)/b
		newNum = subI64Checked(faulter, expanded, num)
	}

	if newNum < int64(int32Min) || newNum > int64(int32Max) {
		return reportAndPanic(faulter, FaultOverflow, 0)
	}
	return reduceFraction(faulter, newNum, den)
}

// intTimesRational computes x·(a/b) = (x·a)/b; multiplication is commutative
// so the caller does not need to track operand order.
func intTimesRational(faulter FaultReporter, x int64, r Number) Number {
	newNum := safeMulI64(faulter, x, int64(r.num))
	return reduceFraction(faulter, newNum, int64(r.den))
}

// intDivRational computes x ÷ (a/b) = (x·b)/a.
func intDivRational(faulter FaultReporter, x int64, r Number) Number {
	newNum := safeMulI64(faulter, x, int64(r.den))
	return reduceFraction(faulter, newNum, int64(r.num))
}

// rationalDivInt computes (a/b) ÷ x = a/(b·x).
func rationalDivInt(faulter FaultReporter, r Number, x int64) Number {
	newDen := safeMulI64(faulter, int64(r.den), x)
	return reduceFraction(faulter, int64(r.num), newDen)
}

// ratRatCombine handles rational ⊕ rational for all four operators. Add and
// subtract take the shared-denominator shortcut when both sides already
// agree, otherwise cross-multiply; multiply and divide always cross-multiply.
// Unlike the integer/rational path, no pre-reduceFraction range check is
// applied here: reduceFraction's own post-gcd check is the only bound §4.6
// names for this pairing.
func ratRatCombine(faulter FaultReporter, o op, a, b Number) Number {
	n1, d1 := int64(a.num), int64(a.den)
	n2, d2 := int64(b.num), int64(b.den)

	switch o {
	case opAdd, opSub:
		isAdd := o == opAdd
		if d1 == d2 {
			if isAdd {
				return reduceFraction(faulter, addI64Checked(faulter, n1, n2), d1)
			}
			return reduceFraction(faulter, subI64Checked(faulter, n1, n2), d1)
		}
		t1 := safeMulI64(faulter, n1, d2)
		t2 := safeMulI64(faulter, n2, d1)
		newDen := safeMulI64(faulter, d1, d2)
		if isAdd {
			return reduceFraction(faulter, addI64Checked(faulter, t1, t2), newDen)
		}
		return reduceFraction(faulter, subI64Checked(faulter, t1, t2), newDen)
	case opMul:
		return reduceFraction(faulter, safeMulI64(faulter, n1, n2), safeMulI64(faulter, d1, d2))
	case opDiv:
		return reduceFraction(faulter, safeMulI64(faulter, n1, d2), safeMulI64(faulter, d1, n2))
	default:
		return numImmediate(0)
	}
}

// floatCombine handles every pairing where at least one operand is a float
// kind. The result width is Float64 unless both operands resolve to Float32
// or narrower (integer/rational operands take on the other side's width
// rather than carrying one of their own), per §4.4's matching-width rule.
func floatCombine(o op, a, b Number) Number {
	if a.kind == KindFloat64 || b.kind == KindFloat64 {
		return numFloat64(applyOpF64(o, operandAsF64(a), operandAsF64(b)))
	}
	return numFloat32(float64(applyOpF32(o, operandAsF32(a), operandAsF32(b))))
}

func operandAsF64(n Number) float64 {
	switch n.kind {
	case KindRational:
		return float64(n.num) / float64(n.den)
	case KindFloat32, KindFloat64:
		return n.f
	default:
		return float64(n.i)
	}
}

func operandAsF32(n Number) float32 {
	switch n.kind {
	case KindRational:
		return float32(n.num) / float32(n.den)
	case KindFloat32:
		return float32(n.f)
	default:
		return float32(n.i)
	}
}

func applyOpF64(o op, x, y float64) float64 {
	switch o {
	case opAdd:
		return x + y
	case opSub:
		return x - y
	case opMul:
		return x * y
	case opDiv:
		return x / y
	default:
		return 0
	}
}

func applyOpF32(o op, x, y float32) float32 {
	switch o {
	case opAdd:
		return x + y
	case opSub:
		return x - y
	case opMul:
		return x * y
	case opDiv:
		return x / y
	default:
		return 0
	}
}

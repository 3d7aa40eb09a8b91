package numrt

// Kind discriminates the six representations a Number may hold. This is the
// statically typed stand-in the base spec's DESIGN NOTES call for in place of
// hand-written tag-bit tests at every call site: the core decodes a Word once
// at each public entry point into a Number, then dispatches on Kind with an
// ordinary switch.
type Kind uint8

const (
	KindImmediate Kind = iota
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindRational
)

// Number is the decoded form of a tagged Word: a Kind discriminant plus
// whichever payload fields that Kind uses. It never itself holds a heap
// reference — constructing a Number is a pure computation, and only encode
// turns one into a Word (allocating a heap cell when the Kind demands one).
type Number struct {
	kind Kind
	i    int64   // KindImmediate, KindInt32, KindInt64
	f    float64 // KindFloat32 (narrowed on use), KindFloat64
	num  int32   // KindRational
	den  uint32  // KindRational
}

// KindOf reports which representation w holds, decoding a heap reference only
// far enough to read its boxed-number tag.
func KindOf(heap CellReader, w Word) Kind {
	if IsImmediate(w) {
		return KindImmediate
	}
	c, _ := heap.Cell(w)
	switch c.Tag {
	case TagInt32:
		return KindInt32
	case TagInt64:
		return KindInt64
	case TagFloat32:
		return KindFloat32
	case TagFloat64:
		return KindFloat64
	case TagRational:
		return KindRational
	default:
		return KindImmediate
	}
}

// decode converts a tagged Word into its decoded Number. This is the single
// decode step every public operation performs before dispatching.
func decode(heap CellReader, w Word) Number {
	if IsImmediate(w) {
		return Number{kind: KindImmediate, i: UnboxImmediate(w)}
	}
	c, _ := heap.Cell(w)
	switch c.Tag {
	case TagInt32:
		return Number{kind: KindInt32, i: int64(i32Of(heap, w))}
	case TagInt64:
		return Number{kind: KindInt64, i: i64Of(heap, w)}
	case TagFloat32:
		return Number{kind: KindFloat32, f: float64(f32Of(heap, w))}
	case TagFloat64:
		return Number{kind: KindFloat64, f: f64Of(heap, w)}
	case TagRational:
		return Number{kind: KindRational, num: rationalNum(heap, w), den: rationalDen(heap, w)}
	default:
		return Number{kind: KindImmediate}
	}
}

// encode boxes a decoded Number into a Word, allocating a fresh heap cell
// through alloc when the Kind is not KindImmediate. Every arithmetic result
// passes through reduceToInteger/reduceFraction/the float constructors before
// reaching here, so the canonical-form invariants already hold by this point;
// encode's job is purely representation, not classification.
func encode(alloc Allocator, n Number) (Word, error) {
	switch n.kind {
	case KindImmediate:
		return BoxImmediate(n.i), nil
	case KindInt32:
		return newI32(alloc, int32(n.i)) //nolint:gosec // n.i fits int32 range by construction (reduceToInteger)
	case KindInt64:
		return newI64(alloc, n.i)
	case KindFloat32:
		return newF32(alloc, float32(n.f))
	case KindFloat64:
		return newF64(alloc, n.f)
	case KindRational:
		return newRational(alloc, n.num, n.den)
	default:
		return 0, errUnknownKind
	}
}

// numImmediate/numInt32/numInt64/numFloat32/numFloat64/numRational are small
// constructors used internally once a value is already known to be in range
// for its Kind (the canonicalisation and arithmetic helpers are the only
// callers; they are responsible for ensuring that).
func numImmediate(v int64) Number { return Number{kind: KindImmediate, i: v} }
func numInt32(v int64) Number     { return Number{kind: KindInt32, i: v} }
func numInt64(v int64) Number     { return Number{kind: KindInt64, i: v} }
func numFloat32(v float64) Number { return Number{kind: KindFloat32, f: v} }
func numFloat64(v float64) Number { return Number{kind: KindFloat64, f: v} }
func numRational(num int32, den uint32) Number {
	return Number{kind: KindRational, num: num, den: den}
}

// isIntegerKind reports whether n holds one of the three integer
// representations (immediate, Int32, Int64).
func (n Number) isIntegerKind() bool {
	return n.kind == KindImmediate || n.kind == KindInt32 || n.kind == KindInt64
}

// isFloatKind reports whether n holds Float32 or Float64.
func (n Number) isFloatKind() bool {
	return n.kind == KindFloat32 || n.kind == KindFloat64
}

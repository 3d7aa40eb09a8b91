package numrt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLtGt(t *testing.T) {
	h := newTestHeap()
	a := boxInt(t, h, 2)
	b := boxInt(t, h, 3)
	assert.True(t, Lt(h, a, b), "2 < 3 should be true")
	assert.False(t, Gt(h, a, b), "2 > 3 should be false")
}

func TestLeGeFallsBackToExactEquality(t *testing.T) {
	h := newTestHeap()
	// Two separate cells holding the same canonical 1/2; Le/Ge should both
	// hold even though neither is strictly less/greater under float64
	// comparison.
	a := boxRational(t, h, 1, 2)
	b := boxRational(t, h, 1, 2)
	assert.True(t, Le(h, a, b), "1/2 <= 1/2 should be true")
	assert.True(t, Ge(h, a, b), "1/2 >= 1/2 should be true")
}

func TestModTruncatedSemantics(t *testing.T) {
	h := newTestHeap()
	f := &testFaulter{}
	w := Mod(h, f, boxInt(t, h, -7), boxInt(t, h, 3))
	got := decode(h, w)
	assert.Equal(t, KindImmediate, got.kind)
	assert.Equal(t, int64(-1), got.i, "-7 %% 3 should be -1 under Go truncated semantics")
}

func TestModDivisionByZeroFaults(t *testing.T) {
	h := newTestHeap()
	expectFault(t, FaultDivisionByZero, func() {
		Mod(h, &testFaulter{}, boxInt(t, h, 1), boxInt(t, h, 0))
	})
}

func TestModOnFloatFaultsNotIntLike(t *testing.T) {
	h := newTestHeap()
	expectFault(t, FaultNotIntLike, func() {
		Mod(h, &testFaulter{}, boxFloat64(t, h, 1.5), boxInt(t, h, 2))
	})
}

func TestBitwise(t *testing.T) {
	cases := []struct {
		name string
		op   func(Heap, FaultReporter, Word, Word) Word
		a, b int64
		want int64
	}{
		{"and uses coerced values", BitAnd, 0b1100, 0b1010, 0b1000},
		{"or uses coerced values", BitOr, 0b1100, 0b1010, 0b1110},
		{"xor uses coerced values", BitXor, 0b1100, 0b1010, 0b0110},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHeap()
			f := &testFaulter{}
			w := tt.op(h, f, boxInt(t, h, tt.a), boxInt(t, h, tt.b))
			got := decode(h, w)
			assert.Equal(t, KindImmediate, got.kind)
			assert.Equal(t, tt.want, got.i)
		})
	}
}

func TestShiftCountModulo64(t *testing.T) {
	h := newTestHeap()
	f := &testFaulter{}
	// Shifting by 65 should behave the same as shifting by 1.
	a := Shl(h, f, boxInt(t, h, 1), boxInt(t, h, 65))
	b := Shl(h, f, boxInt(t, h, 1), boxInt(t, h, 1))
	assert.Equal(t, decode(h, b).i, decode(h, a).i, "shift by 65 should equal shift by 1")
}

func TestShrLogicalVsArith(t *testing.T) {
	h := newTestHeap()
	f := &testFaulter{}
	neg := boxInt(t, h, -8)

	arith := decode(h, ShrArith(h, f, neg, boxInt(t, h, 1)))
	assert.Equal(t, int64(-4), arith.i)

	logical := decode(h, ShrLogical(h, f, neg, boxInt(t, h, 1)))
	assert.Equal(t, int64(1<<63-4), logical.i)
}

package numrt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToF64Rational(t *testing.T) {
	h := newTestHeap()
	w := boxRational(t, h, 1, 4)
	assert.Equal(t, 0.25, ToF64(h, w))
}

func TestToF32Rational(t *testing.T) {
	h := newTestHeap()
	w := boxRational(t, h, 1, 4)
	assert.Equal(t, float32(0.25), ToF32(h, w))
}

func TestToI64FaultsOnFloat(t *testing.T) {
	h := newTestHeap()
	expectFault(t, FaultNotIntLike, func() {
		ToI64(h, &testFaulter{}, boxFloat64(t, h, 1.5))
	})
}

func TestToI64FaultsOnRational(t *testing.T) {
	h := newTestHeap()
	expectFault(t, FaultNotIntLike, func() {
		ToI64(h, &testFaulter{}, boxRational(t, h, 1, 2))
	})
}

func TestToI64PassesThroughIntegerKinds(t *testing.T) {
	h := newTestHeap()
	f := &testFaulter{}
	assert.Equal(t, int64(7), ToI64(h, f, boxInt(t, h, 7)))
}

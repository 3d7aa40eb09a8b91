package numrt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// testHeap and testFaulter give every test in this package a throwaway heap
// and a FaultReporter that turns a fault into a panic carrying the FaultKind,
// so tests can assert.Panics and inspect what was reported — mirroring the
// teacher's own table-driven-helper style (see rat_arithmetic_test.go).
type testHeap struct {
	cells []Cell
}

func newTestHeap() *testHeap {
	return &testHeap{}
}

func (h *testHeap) Alloc(tag BoxedTag, word0, word1 uint64) (Word, error) {
	idx := Word(len(h.cells))
	h.cells = append(h.cells, Cell{Kind: HeapKindBoxedNum, Tag: tag, Word0: word0, Word1: word1})
	return idx<<1 | 1, nil
}

func (h *testHeap) Cell(w Word) (Cell, bool) {
	idx := int(HeapAddress(w) >> 1)
	if idx < 0 || idx >= len(h.cells) {
		return Cell{}, false
	}
	return h.cells[idx], true
}

type testFaulter struct {
	last    FaultKind
	operand Word
	called  bool
}

func (f *testFaulter) Fault(kind FaultKind, operand Word) {
	f.last = kind
	f.operand = operand
	f.called = true
	panic(f)
}

func mustEncode(t *testing.T, h *testHeap, n Number) Word {
	t.Helper()
	w, err := encode(h, n)
	require.NoError(t, err)
	return w
}

func boxInt(t *testing.T, h *testHeap, v int64) Word {
	t.Helper()
	return mustEncode(t, h, reduceToInteger(v))
}

func boxRational(t *testing.T, h *testHeap, num int32, den uint32) Word {
	t.Helper()
	return mustEncode(t, h, numRational(num, den))
}

func boxFloat64(t *testing.T, h *testHeap, v float64) Word {
	t.Helper()
	return mustEncode(t, h, numFloat64(v))
}

func boxFloat32(t *testing.T, h *testHeap, v float32) Word {
	t.Helper()
	return mustEncode(t, h, numFloat32(float64(v)))
}

// expectFault runs fn, expecting it to panic through a *testFaulter, and
// asserts the recorded FaultKind matches want.
func expectFault(t *testing.T, want FaultKind, fn func()) {
	t.Helper()
	defer func() {
		rec := recover()
		require.NotNil(t, rec, "expected a fault, got none")
		f, ok := rec.(*testFaulter)
		if !ok {
			panic(rec)
		}
		require.Equal(t, want, f.last, "fault kind mismatch")
	}()
	fn()
}

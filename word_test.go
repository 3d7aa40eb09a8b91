package numrt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxUnboxImmediate(t *testing.T) {
	cases := []struct {
		name string
		v    int64
	}{
		{"zero", 0},
		{"one", 1},
		{"negative one", -1},
		{"max immediate", MaxImmediate},
		{"min immediate", MinImmediate},
		{"positive", 12345},
		{"negative", -98765},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			w := BoxImmediate(tt.v)
			assert.True(t, IsImmediate(w), "BoxImmediate(%d) not tagged as immediate", tt.v)
			assert.Equal(t, tt.v, UnboxImmediate(w))
		})
	}
}

func TestFitsImmediate(t *testing.T) {
	cases := []struct {
		name string
		v    int64
		want bool
	}{
		{"max immediate fits", MaxImmediate, true},
		{"min immediate fits", MinImmediate, true},
		{"above max does not fit", MaxImmediate + 1, false},
		{"below min does not fit", MinImmediate - 1, false},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitsImmediate(tt.v))
		})
	}
}

func TestIsNumber(t *testing.T) {
	h := newTestHeap()

	imm := BoxImmediate(42)
	assert.True(t, IsNumber(h, imm), "immediate should be a number")

	boxedInt, err := newI64(h, 1<<40)
	require.NoError(t, err)
	assert.True(t, IsNumber(h, boxedInt), "boxed int64 should be a number")

	h.cells = append(h.cells, Cell{Kind: HeapKind(2)})
	notANumber := Word(len(h.cells)-1)<<1 | 1
	assert.False(t, IsNumber(h, notANumber), "a non-boxed-number heap kind should not be a number")
}

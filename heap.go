package numrt

import "math"

// HeapKind distinguishes a boxed-number cell from other kinds of heap object
// the surrounding VM might allocate (closures, strings, and so on). This
// runtime only ever inspects cells tagged HeapKindBoxedNum; anything else is
// simply not a number.
type HeapKind uint8

// HeapKindBoxedNum marks a heap cell as holding one of this package's boxed
// number representations.
const HeapKindBoxedNum HeapKind = 1

// BoxedTag selects which of the five heap-resident number representations a
// BoxedNum cell holds.
type BoxedTag uint8

const (
	TagInt32 BoxedTag = iota
	TagInt64
	TagFloat32
	TagFloat64
	TagRational
)

// Cell is the decoded content of a boxed-number heap cell. Word0/Word1 carry
// the raw payload the same way the base spec's two payload words do: for
// 32-bit payloads only Word0 is meaningful; for 64-bit integer/float payloads
// Word0 is the low half and Word1 the high half; for rationals Word0 is the
// signed 32-bit numerator (sign-extended) and Word1 the unsigned 32-bit
// denominator.
type Cell struct {
	Kind  HeapKind
	Tag   BoxedTag
	Word0 uint64
	Word1 uint64
}

// Allocator is the external collaborator that turns a boxed-number payload
// into a fresh heap cell and hands back the Word referencing it. It never
// returns a sentinel on failure — per the base spec, allocation failure is
// expected to fault through the FaultReporter rather than be reported here,
// but the signature still carries an error so a capacity-bounded host heap
// has somewhere to put that information without changing call sites.
type Allocator interface {
	Alloc(tag BoxedTag, word0, word1 uint64) (Word, error)
}

// CellReader is the read side of the heap: given a Word previously returned
// by an Allocator, recover its cell. Reading an address the allocator never
// produced is a programming error in the host, not a core-recoverable fault;
// implementations report it through the ok return instead of panicking so
// IsNumber can use it as a plain predicate.
type CellReader interface {
	Cell(w Word) (Cell, bool)
}

// Heap is the full collaborator surface C2/C9 need: allocate new cells and
// read existing ones.
type Heap interface {
	Allocator
	CellReader
}

func i32Of(heap CellReader, w Word) int32 {
	c, _ := heap.Cell(w)
	return int32(c.Word0) //nolint:gosec // value was written from an int32 at allocation time
}

func i64Of(heap CellReader, w Word) int64 {
	c, _ := heap.Cell(w)
	return int64(c.Word0 | c.Word1<<32)
}

func f32Of(heap CellReader, w Word) float32 {
	c, _ := heap.Cell(w)
	return math.Float32frombits(uint32(c.Word0))
}

func f64Of(heap CellReader, w Word) float64 {
	c, _ := heap.Cell(w)
	return math.Float64frombits(c.Word0 | c.Word1<<32)
}

func rationalNum(heap CellReader, w Word) int32 {
	c, _ := heap.Cell(w)
	return int32(c.Word0) //nolint:gosec // stored as a sign-extended 32-bit value
}

func rationalDen(heap CellReader, w Word) uint32 {
	c, _ := heap.Cell(w)
	return uint32(c.Word1)
}

func newI32(alloc Allocator, v int32) (Word, error) {
	return alloc.Alloc(TagInt32, uint64(uint32(v)), 0)
}

func newI64(alloc Allocator, v int64) (Word, error) {
	u := uint64(v)
	return alloc.Alloc(TagInt64, u&0xFFFFFFFF, u>>32)
}

func newF32(alloc Allocator, v float32) (Word, error) {
	return alloc.Alloc(TagFloat32, uint64(math.Float32bits(v)), 0)
}

func newF64(alloc Allocator, v float64) (Word, error) {
	u := math.Float64bits(v)
	return alloc.Alloc(TagFloat64, u&0xFFFFFFFF, u>>32)
}

// newRational allocates a RATIONAL cell. Callers must never invoke this with
// den == 0; reduceFraction always routes through a divide-by-zero fault
// before a rational cell would ever be constructed with one.
func newRational(alloc Allocator, num int32, den uint32) (Word, error) {
	return alloc.Alloc(TagRational, uint64(uint32(num)), uint64(den))
}

// Package vmheap is a concrete realization of the collaborators the numrt
// core only specifies as interfaces: a slice-backed heap that allocates and
// reads boxed-number cells, and a fault reporter that turns a core fault into
// a recoverable Go panic. It exists so the rest of this module — literal
// resolution, the CLI, and the test suite — has something real to run
// against, the same way the teacher's money package is a concrete consumer
// built on top of the bare rational type rather than a second copy of it.
package vmheap

import (
	"github.com/tetra-lang/numrt"
)

// Heap stores boxed-number cells in an append-only slice. It is not
// thread-safe on its own: the core performs no locking because it holds no
// mutable state, so all serialization responsibility for concurrent access
// falls on whatever wraps a Heap (e.g. with a sync.Mutex), which this
// package does not impose unconditionally.
type Heap struct {
	cells []numrt.Cell
}

// New returns an empty Heap ready to allocate and read boxed-number cells.
func New() *Heap {
	return &Heap{}
}

// Alloc appends a new cell and returns a tagged Word whose cleared-tag value
// is the cell's slice index shifted left by one bit. A slice append cannot itself run out of space
// short of process OOM, so this never returns a non-nil error; the Allocator
// interface still carries one so a capacity-bounded host heap can report
// exhaustion without changing any call site in the core.
func (h *Heap) Alloc(tag numrt.BoxedTag, word0, word1 uint64) (numrt.Word, error) {
	idx := numrt.Word(len(h.cells)) //nolint:gosec // cell count never approaches the tag-bit boundary in practice
	h.cells = append(h.cells, numrt.Cell{
		Kind:  numrt.HeapKindBoxedNum,
		Tag:   tag,
		Word0: word0,
		Word1: word1,
	})
	return idx<<1 | 1, nil
}

// Cell looks up a previously allocated cell by its tagged Word. Reading a
// Word this Heap never produced is a host programming error, not a
// core-recoverable fault, so it is reported through ok rather than a panic.
func (h *Heap) Cell(w numrt.Word) (numrt.Cell, bool) {
	idx := int(numrt.HeapAddress(w) >> 1)
	if idx < 0 || idx >= len(h.cells) {
		return numrt.Cell{}, false
	}
	return h.cells[idx], true
}

// Len reports how many cells have been allocated. Exposed for tests and
// diagnostics; the core never calls it.
func (h *Heap) Len() int {
	return len(h.cells)
}

package numrt

import "fmt"

// NewInt32, NewInt64, NewFloat32, NewFloat64 and ResolveFraction are the
// boxing entry points a literal resolver (outside this package) uses to turn
// an already-validated literal payload into a canonical Word. Unlike the
// core's arithmetic entry points, these never need a FaultReporter: an
// integer or float literal payload can never overflow its own width, and a
// malformed rational literal (zero denominator) is reported as a plain error
// instead, since literal resolution runs before any operation has a fault
// collaborator in scope.

// NewInt32 boxes v, canonicalising it down to an immediate if it fits.
func NewInt32(alloc Allocator, v int32) (Word, error) {
	return encode(alloc, reduceToInteger(int64(v)))
}

// NewInt64 boxes v, canonicalising it down to an immediate if it fits.
func NewInt64(alloc Allocator, v int64) (Word, error) {
	return encode(alloc, reduceToInteger(v))
}

// NewFloat32 boxes v as a FLOAT32 cell. Floats are never canonicalised to a
// smaller representation — the canonical-form invariants only ever collapse
// integers and rationals.
func NewFloat32(alloc Allocator, v float32) (Word, error) {
	return encode(alloc, numFloat32(float64(v)))
}

// NewFloat64 boxes v as a FLOAT64 cell.
func NewFloat64(alloc Allocator, v float64) (Word, error) {
	return encode(alloc, numFloat64(v))
}

// ResolveFraction reduces num/den to canonical form (collapsing to an
// integer when the denominator divides evenly) and boxes the result,
// reporting a zero denominator or a reduced numerator/denominator outside
// signed 32-bit range as a plain error rather than a fault.
func ResolveFraction(alloc Allocator, num, den int64) (Word, error) {
	n, err := reduceFractionNoFault(num, den)
	if err != nil {
		return 0, err
	}
	return encode(alloc, n)
}

// errCaptured is a FaultReporter that captures the fault kind instead of
// producing one for an in-progress arithmetic operation, then panics with
// itself so reduceFraction's non-returning contract still holds; the panic
// is always recovered by reduceFractionNoFault, never observed by a caller.
type errCaptured struct {
	kind FaultKind
}

func (e *errCaptured) Fault(kind FaultKind, _ Word) {
	e.kind = kind
	panic(e)
}

func reduceFractionNoFault(num, den int64) (n Number, err error) {
	reporter := &errCaptured{}
	defer func() {
		if rec := recover(); rec != nil {
			if rec == reporter { //nolint:govet // intentional pointer identity check against the one panic value this defer expects
				err = fmt.Errorf("numrt: rational literal resolution failed: %s", reporter.kind)
				return
			}
			panic(rec)
		}
	}()
	n = reduceFraction(reporter, num, den)
	return n, nil
}

package vmheap

import (
	"fmt"

	"github.com/tetra-lang/numrt"
)

// Fault is the typed panic value RecordingFaultReporter raises. Recover
// converts it back into an ordinary (error, bool) pair at whatever boundary
// wants to treat a fault as a recoverable Go error instead of a crash — the
// core itself never recovers its own faults.
type Fault struct {
	Kind    numrt.FaultKind
	Operand numrt.Word
}

func (f *Fault) Error() string {
	return fmt.Sprintf("numrt fault: %s", f.Kind)
}

// RecordingFaultReporter records the most recent fault and panics with a
// *Fault, matching the base spec's description of a testing implementation
// that "records the fault kind and operand and unwinds."
type RecordingFaultReporter struct {
	Last *Fault
}

// Fault implements numrt.FaultReporter. It never returns.
func (r *RecordingFaultReporter) Fault(kind numrt.FaultKind, operand numrt.Word) {
	f := &Fault{Kind: kind, Operand: operand}
	r.Last = f
	panic(f)
}

// Recover un-panics a *Fault raised by a RecordingFaultReporter, letting a
// caller run core operations under a deferred recover and receive a plain
// error instead of an unwinding panic. Any other panic value is re-raised
// unchanged — this is not a general-purpose recover.
func Recover(recovered any) (error, bool) { //nolint:revive // the two-value error-last convention fits the call site better here
	if recovered == nil {
		return nil, false
	}
	f, ok := recovered.(*Fault)
	if !ok {
		panic(recovered)
	}
	return f, true
}

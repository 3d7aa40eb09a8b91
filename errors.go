package numrt

import "errors"

// errUnknownKind guards encode's default case. It should be unreachable: every
// Number this package constructs is built by one of the numXxx constructors,
// all of which set a valid Kind.
var errUnknownKind = errors.New("numrt: encode: unknown Number kind")

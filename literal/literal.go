// Package literal resolves validated literal descriptions — the shape a
// front-end would hand a type-checker after lexing — into numrt Words. It is
// a consumer of the numrt.Allocator collaborator, never a lexer or parser
// itself: callers already know they have an int, float, or rational literal
// and its payload; this package validates that payload and boxes it.
package literal

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/tetra-lang/numrt"
)

var validate = validator.New()

// ErrMultiLimbUnsupported is returned when a RationalLiteral carries more
// than one limb in either NumeratorLimbs or DenominatorLimbs. Arbitrary-
// length limb support is future work; this resolver only ever reduces a
// single 32-bit numerator over a single 32-bit denominator.
var ErrMultiLimbUnsupported = errors.New("literal: multi-limb rationals are not supported")

// IntLiteral describes an integer literal at a specific width, plus its
// original source text for diagnostics.
type IntLiteral struct {
	Width int64  `validate:"oneof=32 64"`
	Value int64  // zero is a legitimate literal value; only Width is constrained
	Text  string `validate:"required"`
}

// FloatLiteral describes a floating-point literal at a specific width.
type FloatLiteral struct {
	Width int64   `validate:"oneof=32 64"`
	Value float64 // zero is a legitimate literal value
	Text  string  `validate:"required"`
}

// RationalLiteral describes a rational literal as an explicit sign plus
// numerator/denominator limbs, mirroring a multi-limb front-end
// representation even though this resolver only ever supports one limb each.
type RationalLiteral struct {
	Negative         bool
	NumeratorLimbs   []uint32 `validate:"required,min=1"`
	DenominatorLimbs []uint32 `validate:"required,min=1"`
	Text             string   `validate:"required"`
}

// Resolve boxes an IntLiteral through the given allocator. The width only
// selects numrt.NewInt32 or numrt.NewInt64; both canonicalise the value before
// boxing it, so the resulting Word holds the smallest representation for the
// value (an immediate whenever it fits), not necessarily the named width.
func Resolve(alloc numrt.Allocator, lit IntLiteral) (numrt.Word, error) {
	if err := validate.Struct(lit); err != nil {
		return 0, fmt.Errorf("literal: invalid int literal %q: %w", lit.Text, err)
	}
	switch lit.Width {
	case 32:
		return numrt.NewInt32(alloc, int32(lit.Value)) //nolint:gosec // width=32 is the caller's contract
	default:
		return numrt.NewInt64(alloc, lit.Value)
	}
}

// ResolveFloat boxes a FloatLiteral at its named width.
func ResolveFloat(alloc numrt.Allocator, lit FloatLiteral) (numrt.Word, error) {
	if err := validate.Struct(lit); err != nil {
		return 0, fmt.Errorf("literal: invalid float literal %q: %w", lit.Text, err)
	}
	switch lit.Width {
	case 32:
		return numrt.NewFloat32(alloc, float32(lit.Value))
	default:
		return numrt.NewFloat64(alloc, lit.Value)
	}
}

// ResolveRational boxes a RationalLiteral, reducing it to canonical form the
// same way the core's own arithmetic does. Denominator zero is reported as
// an error here rather than routed through a FaultReporter: literal
// resolution runs before any core operation has a collaborator in scope to
// fault through, so a malformed literal is a resolver-level error instead.
func ResolveRational(alloc numrt.Allocator, lit RationalLiteral) (numrt.Word, error) {
	if err := validate.Struct(lit); err != nil {
		return 0, fmt.Errorf("literal: invalid rational literal %q: %w", lit.Text, err)
	}
	if len(lit.NumeratorLimbs) > 1 || len(lit.DenominatorLimbs) > 1 {
		return 0, fmt.Errorf("%w: %q", ErrMultiLimbUnsupported, lit.Text)
	}

	num := int64(lit.NumeratorLimbs[0])
	if lit.Negative {
		num = -num
	}
	den := int64(lit.DenominatorLimbs[0])

	return numrt.ResolveFraction(alloc, num, den)
}

// Command numrepl evaluates a single binary numeric operation from the
// command line: two literal operands and an operator name, resolved and
// evaluated through the numrt core with an in-process heap.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tetra-lang/numrt"
	"github.com/tetra-lang/numrt/literal"
	"github.com/tetra-lang/numrt/vmheap"
)

func main() {
	var op, lhs, rhs string

	rootCmd := &cobra.Command{
		Use:   "numrepl",
		Short: "Evaluate one binary numeric operation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(op, lhs, rhs)
		},
	}
	rootCmd.Flags().StringVarP(&op, "op", "o", "", "operator: + - * / % == < > <= >= & | ^ << >> >>>")
	rootCmd.Flags().StringVar(&lhs, "lhs", "", "left operand, e.g. 3, 3.5, 3/4")
	rootCmd.Flags().StringVar(&rhs, "rhs", "", "right operand, e.g. 3, 3.5, 3/4")
	_ = rootCmd.MarkFlagRequired("op")
	_ = rootCmd.MarkFlagRequired("lhs")
	_ = rootCmd.MarkFlagRequired("rhs")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(op, lhsText, rhsText string) (err error) {
	logger := log.New(os.Stderr)
	heap := vmheap.New()
	reporter := &vmheap.RecordingFaultReporter{}

	defer func() {
		if rec := recover(); rec != nil {
			if fault, ok := vmheap.Recover(rec); ok {
				logger.Error("operation faulted", "kind", fault)
				err = fmt.Errorf("numrepl: %w", fault)
				return
			}
			panic(rec)
		}
	}()

	lhs, err := resolveOperand(heap, lhsText)
	if err != nil {
		return fmt.Errorf("numrepl: left operand: %w", err)
	}
	rhs, err := resolveOperand(heap, rhsText)
	if err != nil {
		return fmt.Errorf("numrepl: right operand: %w", err)
	}

	result, err := evaluate(heap, reporter, op, lhs, rhs)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}

// evaluate dispatches op to the matching core entry point and renders its
// result: a Word result is formatted through formatWord, a bool result
// through strconv.FormatBool.
func evaluate(heap *vmheap.Heap, reporter numrt.FaultReporter, op string, lhs, rhs numrt.Word) (string, error) {
	switch op {
	case "+":
		return formatWord(heap, numrt.Plus(heap, reporter, lhs, rhs)), nil
	case "-":
		return formatWord(heap, numrt.Minus(heap, reporter, lhs, rhs)), nil
	case "*":
		return formatWord(heap, numrt.Times(heap, reporter, lhs, rhs)), nil
	case "/":
		return formatWord(heap, numrt.Divide(heap, reporter, lhs, rhs)), nil
	case "%":
		return formatWord(heap, numrt.Mod(heap, reporter, lhs, rhs)), nil
	case "==":
		return strconv.FormatBool(numrt.Eq(heap, lhs, rhs)), nil
	case "<":
		return strconv.FormatBool(numrt.Lt(heap, lhs, rhs)), nil
	case ">":
		return strconv.FormatBool(numrt.Gt(heap, lhs, rhs)), nil
	case "<=":
		return strconv.FormatBool(numrt.Le(heap, lhs, rhs)), nil
	case ">=":
		return strconv.FormatBool(numrt.Ge(heap, lhs, rhs)), nil
	case "&":
		return formatWord(heap, numrt.BitAnd(heap, reporter, lhs, rhs)), nil
	case "|":
		return formatWord(heap, numrt.BitOr(heap, reporter, lhs, rhs)), nil
	case "^":
		return formatWord(heap, numrt.BitXor(heap, reporter, lhs, rhs)), nil
	case "<<":
		return formatWord(heap, numrt.Shl(heap, reporter, lhs, rhs)), nil
	case ">>":
		return formatWord(heap, numrt.ShrArith(heap, reporter, lhs, rhs)), nil
	case ">>>":
		return formatWord(heap, numrt.ShrLogical(heap, reporter, lhs, rhs)), nil
	default:
		return "", fmt.Errorf("numrepl: unknown operator %q", op)
	}
}

// formatWord renders a Word by decoding its Kind and reading back the
// underlying value through the public coercion/kind entry points — numrepl
// has no access to the core's unexported Number type, the same boundary any
// other host of this package would face.
func formatWord(heap *vmheap.Heap, w numrt.Word) string {
	switch numrt.KindOf(heap, w) {
	case numrt.KindFloat32:
		return strconv.FormatFloat(float64(numrt.ToF32(heap, w)), 'g', -1, 32)
	case numrt.KindFloat64:
		return strconv.FormatFloat(numrt.ToF64(heap, w), 'g', -1, 64)
	case numrt.KindRational:
		// numrt exposes no public numerator/denominator accessor — the core
		// never formats numbers itself (see spec Non-goals) — so a rational
		// Word is displayed through ToF64 like any other float-coercible value.
		return strconv.FormatFloat(numrt.ToF64(heap, w), 'g', -1, 64)
	default:
		return strconv.FormatInt(numrt.ToI64(heap, noopFaulter{}, w), 10)
	}
}

// noopFaulter is used only where a fault is provably unreachable (ToI64 on a
// Word already classified as an integer kind by KindOf).
type noopFaulter struct{}

func (noopFaulter) Fault(_ numrt.FaultKind, _ numrt.Word) {}

// resolveOperand parses a simple literal form: an integer, a float (contains
// '.' or 'e'), or a rational "n/d".
func resolveOperand(heap *vmheap.Heap, text string) (numrt.Word, error) {
	text = strings.TrimSpace(text)
	if idx := strings.IndexByte(text, '/'); idx >= 0 {
		numText, denText := text[:idx], text[idx+1:]
		num, err := strconv.ParseInt(numText, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid rational numerator %q: %w", numText, err)
		}
		den, err := strconv.ParseUint(denText, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid rational denominator %q: %w", denText, err)
		}
		return literal.ResolveRational(heap, literal.RationalLiteral{
			Negative:         num < 0,
			NumeratorLimbs:   []uint32{uint32(absInt64(num))},
			DenominatorLimbs: []uint32{uint32(den)},
			Text:             text,
		})
	}
	if strings.ContainsAny(text, ".eE") {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid float literal %q: %w", text, err)
		}
		return literal.ResolveFloat(heap, literal.FloatLiteral{Width: 64, Value: v, Text: text})
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid int literal %q: %w", text, err)
	}
	return literal.Resolve(heap, literal.IntLiteral{Width: 64, Value: v, Text: text})
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Package semiring implements the abstract weight algebra used by every
// graph algorithm in this library, plus three concrete instantiations:
// tropical, log, and min-max. It is the Go re-expression of
// original_source/src/semiring/{mod,float,floatweight}.rs.
package semiring

import (
	"math"

	"golang.org/x/exp/constraints"
)

// DefaultDelta is the tolerance used by ApproxEqual and Quantize when the
// caller does not supply one explicitly.
const DefaultDelta = 1.0 / 1024.0

// Float is the numeric carrier of a floating-point semiring: float32 or
// float64. It mirrors the Float<T> trait of the original Rust source,
// binding the handful of operations weight types need (zero/one/nan/infty,
// logexp, approx_eq, quantize) uniformly across precisions.
type Float interface {
	constraints.Float
}

// Infty and NegInfty return the carrier's +Inf and -Inf.
func Infty[T Float]() T    { return T(math.Inf(1)) }
func NegInfty[T Float]() T { return T(math.Inf(-1)) }

// NaN returns the carrier's NaN.
func NaN[T Float]() T { return T(math.NaN()) }

// LogExp computes log(1+exp(-x)), the numerically stable term used by the
// log semiring's plus operation.
func LogExp[T Float](x T) T {
	return T(math.Log(1 + math.Exp(float64(-x))))
}

// ApproxEqual reports whether a and b differ by no more than delta (or
// DefaultDelta if delta is omitted).
func ApproxEqual[T Float](a, b T, delta ...float64) bool {
	d := resolveDelta(delta)
	af, bf := float64(a), float64(b)
	return af <= bf+d && bf <= af+d
}

// Quantize rounds x to the nearest multiple of delta, leaving NaN and
// infinities untouched.
func Quantize[T Float](x T, delta ...float64) T {
	d := resolveDelta(delta)
	f := float64(x)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return x
	}
	return T(math.Floor(f/d+0.5) * d)
}

// FromU32 lifts a small natural number into the float carrier.
func FromU32[T Float](u uint32) T {
	return T(u)
}

func resolveDelta(delta []float64) float64 {
	if len(delta) > 0 {
		return delta[0]
	}
	return DefaultDelta
}

// precisionTag returns "32" or "64" for the float carrier of T, used to
// build a weight type's stable type tag (e.g. "tropical64").
func precisionTag[T Float]() string {
	var zero T
	switch any(zero).(type) {
	case float32:
		return "32"
	case float64:
		return "64"
	default:
		return "?"
	}
}

func isNaN[T Float](x T) bool {
	return math.IsNaN(float64(x))
}

func isPosInf[T Float](x T) bool {
	return math.IsInf(float64(x), 1)
}

func isNegInf[T Float](x T) bool {
	return math.IsInf(float64(x), -1)
}

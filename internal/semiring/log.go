package semiring

import "fmt"

// LogWeight is the (−log(e^−a+e^−b), +, +Inf, 0) semiring: ported from
// original_source/src/semiring/floatweight.rs's LogWeight<T>. It is
// LeftSemiring/RightSemiring/Commutative but, unlike tropical and min-max,
// not Idempotent: a⊕a = a − log(2) ≠ a in general.
type LogWeight[T Float] struct {
	val    T
	hasVal bool
}

func NewLogWeight[T Float](val T) LogWeight[T] {
	return LogWeight[T]{val: val, hasVal: true}
}

func noneLog[T Float]() LogWeight[T] {
	return LogWeight[T]{}
}

func (w LogWeight[T]) IsMember() bool {
	if !w.hasVal {
		return false
	}
	return !isNaN(w.val) && !isNegInf(w.val)
}

func (w LogWeight[T]) asLog(rhs Weight) LogWeight[T] {
	r, ok := rhs.(LogWeight[T])
	if !ok {
		panic(fmt.Sprintf("semiring: mismatched weight types in log op: %T", rhs))
	}
	return r
}

// Plus computes −log(e^−a+e^−b) via the numerically stable
// min(a,b) − logexp(|a−b|) form.
func (w LogWeight[T]) Plus(rhs Weight) Weight {
	r := w.asLog(rhs)
	if !w.IsMember() || !r.IsMember() {
		return noneLog[T]()
	}
	a, b := w.val, r.val
	if isPosInf(a) {
		return r
	}
	if isPosInf(b) {
		return w
	}
	if a > b {
		return NewLogWeight(b - LogExp(a-b))
	}
	return NewLogWeight(a - LogExp(b-a))
}

func (w LogWeight[T]) Times(rhs Weight) Weight {
	r := w.asLog(rhs)
	if !w.IsMember() || !r.IsMember() {
		return noneLog[T]()
	}
	if isPosInf(w.val) {
		return w
	}
	if isPosInf(r.val) {
		return r
	}
	return NewLogWeight(w.val + r.val)
}

func (w LogWeight[T]) Zero() Weight { return NewLogWeight[T](Infty[T]()) }
func (w LogWeight[T]) One() Weight  { return NewLogWeight[T](0) }
func (w LogWeight[T]) None() Weight { return noneLog[T]() }

func (w LogWeight[T]) ApproxEqual(rhs Weight, delta ...float64) bool {
	r := w.asLog(rhs)
	if !w.IsMember() || !r.IsMember() {
		return false
	}
	return ApproxEqual(w.val, r.val, delta...)
}

func (w LogWeight[T]) Quantize(delta ...float64) Weight {
	if !w.IsMember() {
		return noneLog[T]()
	}
	return NewLogWeight(Quantize(w.val, delta...))
}

func (w LogWeight[T]) Divide(rhs Weight, _ DivideSide) Weight {
	r := w.asLog(rhs)
	if !w.IsMember() || !r.IsMember() {
		return noneLog[T]()
	}
	if isPosInf(r.val) {
		return noneLog[T]()
	}
	if isPosInf(w.val) {
		return w
	}
	return NewLogWeight(w.val - r.val)
}

func (w LogWeight[T]) Reverse() Weight { return w }

func (w LogWeight[T]) Equal(rhs Weight) bool {
	r, ok := rhs.(LogWeight[T])
	if !ok || !w.IsMember() || !r.IsMember() {
		return false
	}
	return w.val == r.val
}

func (w LogWeight[T]) Type() string { return "log" + precisionTag[T]() }

// Value returns the underlying carrier value and whether w is a member.
func (w LogWeight[T]) Value() (T, bool) { return w.val, w.IsMember() }

func (w LogWeight[T]) String() string {
	if !w.IsMember() {
		return "None"
	}
	return fmt.Sprintf("%v", w.val)
}

func (w LogWeight[T]) isLeftSemiring()  {}
func (w LogWeight[T]) isRightSemiring() {}
func (w LogWeight[T]) isCommutative()   {}

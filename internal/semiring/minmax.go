package semiring

import "fmt"

// MinmaxWeight is the (min, max, +Inf, −Inf) semiring: ported from
// original_source/src/semiring/floatweight.rs's MinmaxWeight<T>. Unlike
// tropical and log, min-max rejects only NaN — a -Inf value is a valid
// member (it is, after all, the semiring's own One()).
type MinmaxWeight[T Float] struct {
	val    T
	hasVal bool
}

func NewMinmaxWeight[T Float](val T) MinmaxWeight[T] {
	return MinmaxWeight[T]{val: val, hasVal: true}
}

func noneMinmax[T Float]() MinmaxWeight[T] {
	return MinmaxWeight[T]{}
}

func (w MinmaxWeight[T]) IsMember() bool {
	if !w.hasVal {
		return false
	}
	return !isNaN(w.val)
}

func (w MinmaxWeight[T]) asMinmax(rhs Weight) MinmaxWeight[T] {
	r, ok := rhs.(MinmaxWeight[T])
	if !ok {
		panic(fmt.Sprintf("semiring: mismatched weight types in minmax op: %T", rhs))
	}
	return r
}

func (w MinmaxWeight[T]) Plus(rhs Weight) Weight {
	r := w.asMinmax(rhs)
	if !w.IsMember() || !r.IsMember() {
		return noneMinmax[T]()
	}
	if w.val < r.val {
		return w
	}
	return r
}

func (w MinmaxWeight[T]) Times(rhs Weight) Weight {
	r := w.asMinmax(rhs)
	if !w.IsMember() || !r.IsMember() {
		return noneMinmax[T]()
	}
	if w.val >= r.val {
		return w
	}
	return r
}

func (w MinmaxWeight[T]) Zero() Weight { return NewMinmaxWeight[T](Infty[T]()) }
func (w MinmaxWeight[T]) One() Weight  { return NewMinmaxWeight[T](NegInfty[T]()) }
func (w MinmaxWeight[T]) None() Weight { return noneMinmax[T]() }

func (w MinmaxWeight[T]) ApproxEqual(rhs Weight, delta ...float64) bool {
	r := w.asMinmax(rhs)
	if !w.IsMember() || !r.IsMember() {
		return false
	}
	return ApproxEqual(w.val, r.val, delta...)
}

func (w MinmaxWeight[T]) Quantize(delta ...float64) Weight {
	if !w.IsMember() {
		return noneMinmax[T]()
	}
	return NewMinmaxWeight(Quantize(w.val, delta...))
}

// Divide is defined only when the numerator is at least the denominator,
// in which case the result is the numerator; otherwise None.
func (w MinmaxWeight[T]) Divide(rhs Weight, _ DivideSide) Weight {
	r := w.asMinmax(rhs)
	if !w.IsMember() || !r.IsMember() {
		return noneMinmax[T]()
	}
	if w.val >= r.val {
		return w
	}
	return noneMinmax[T]()
}

func (w MinmaxWeight[T]) Reverse() Weight { return w }

func (w MinmaxWeight[T]) Equal(rhs Weight) bool {
	r, ok := rhs.(MinmaxWeight[T])
	if !ok || !w.IsMember() || !r.IsMember() {
		return false
	}
	return w.val == r.val
}

func (w MinmaxWeight[T]) Type() string { return "minmax" + precisionTag[T]() }

// Value returns the underlying carrier value and whether w is a member.
func (w MinmaxWeight[T]) Value() (T, bool) { return w.val, w.IsMember() }

func (w MinmaxWeight[T]) String() string {
	if !w.IsMember() {
		return "None"
	}
	return fmt.Sprintf("%v", w.val)
}

func (w MinmaxWeight[T]) isLeftSemiring()  {}
func (w MinmaxWeight[T]) isRightSemiring() {}
func (w MinmaxWeight[T]) isCommutative()   {}
func (w MinmaxWeight[T]) isIdempotent()    {}
func (w MinmaxWeight[T]) isPath()          {}

package semiring

import "testing"

func TestLogIdentities(t *testing.T) {
	w := NewLogWeight(3.5)
	if !w.Plus(w.Zero()).Equal(w) {
		t.Errorf("w + 0 != w")
	}
	if !w.Times(w.One()).Equal(w) {
		t.Errorf("w * 1 != w")
	}
}

func TestLogNotIdempotent(t *testing.T) {
	w := NewLogWeight(4.0)
	if w.Plus(w).Equal(w) {
		t.Errorf("log semiring should not be idempotent, but w+w == w for w=%v", w)
	}
}

func TestLogCommutative(t *testing.T) {
	a, b := NewLogWeight(2.0), NewLogWeight(5.0)
	if !a.Plus(b).Equal(b.Plus(a)) {
		t.Errorf("plus not commutative")
	}
	if !a.Times(b).Equal(b.Times(a)) {
		t.Errorf("times not commutative")
	}
}

func TestLogAssociative(t *testing.T) {
	a, b, c := NewLogWeight(1.0), NewLogWeight(2.0), NewLogWeight(3.0)
	lhs := a.Plus(b).(LogWeight[float64]).Plus(c)
	rhs := a.Plus(b.Plus(c))
	if !lhs.ApproxEqual(rhs) {
		t.Errorf("plus not associative: %v != %v", lhs, rhs)
	}
}

func TestLogNonePropagates(t *testing.T) {
	w := NewLogWeight(1.0)
	none := noneLog[float64]()
	if w.Plus(none).IsMember() {
		t.Errorf("w + None should be non-member")
	}
}

func TestLogCapabilities(t *testing.T) {
	var w Weight = NewLogWeight(1.0)
	if !HasLeftSemiring(w) || !HasRightSemiring(w) {
		t.Errorf("log should be both left and right semiring")
	}
	if !IsCommutative(w) {
		t.Errorf("log should be commutative")
	}
	if IsIdempotent(w) {
		t.Errorf("log should not report idempotent")
	}
	if HasPathProperty(w) {
		t.Errorf("log should not report the path property")
	}
}

func TestLogDivide(t *testing.T) {
	a, b := NewLogWeight(5.0), NewLogWeight(2.0)
	q := a.Divide(b, DivideAny)
	if !q.Times(b).ApproxEqual(a) {
		t.Errorf("(a/b)*b != a: got %v", q)
	}
}

func TestLogRandomProperties(t *testing.T) {
	gen := NewGenerator(7)
	for i := 0; i < 200; i++ {
		w := Log[float64](gen)
		if !w.IsMember() {
			continue
		}
		if !w.Plus(w.Zero()).ApproxEqual(w) {
			t.Fatalf("random w=%v: w+0 != w", w)
		}
		if !w.Times(w.One()).ApproxEqual(w) {
			t.Fatalf("random w=%v: w*1 != w", w)
		}
	}
}

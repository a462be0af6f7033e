package container

import "testing"

func TestOrderedSetFIFO(t *testing.T) {
	s := NewOrderedSet[int]()
	s.Insert(3)
	s.Insert(1)
	s.Insert(2)
	if s.Len() != 3 {
		t.Fatalf("expected 3 members, got %d", s.Len())
	}
	got := s.Keys()
	want := []int{3, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keys out of order: got %v, want %v", got, want)
		}
	}
}

func TestOrderedSetInsertDuplicate(t *testing.T) {
	s := NewOrderedSet[string]()
	if !s.Insert("a") {
		t.Fatalf("first insert should report true")
	}
	if s.Insert("a") {
		t.Fatalf("duplicate insert should report false")
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 member after duplicate insert")
	}
}

func TestOrderedSetPopFront(t *testing.T) {
	s := NewOrderedSet[int]()
	s.Insert(10)
	s.Insert(20)
	v, ok := s.PopFront()
	if !ok || v != 10 {
		t.Fatalf("expected (10,true), got (%d,%v)", v, ok)
	}
	v, ok = s.PopFront()
	if !ok || v != 20 {
		t.Fatalf("expected (20,true), got (%d,%v)", v, ok)
	}
	if _, ok := s.PopFront(); ok {
		t.Fatalf("expected empty set to report false")
	}
}

func TestOrderedSetRemoveThenPopSkips(t *testing.T) {
	s := NewOrderedSet[int]()
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)
	s.Remove(2)
	got := s.Keys()
	want := []int{1, 3}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestComparatorHeapOrdersAscending(t *testing.T) {
	h := NewComparatorHeap(func(a, b int) bool { return a < b })
	for _, v := range []int{5, 1, 4, 2, 3} {
		h.Push(v)
	}
	var out []int
	for h.Len() > 0 {
		out = append(out, h.Pop())
	}
	want := []int{1, 2, 3, 4, 5}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("got %v, want %v", out, want)
		}
	}
}

func TestComparatorHeapPeekDoesNotRemove(t *testing.T) {
	h := NewComparatorHeap(func(a, b int) bool { return a < b })
	h.Push(7)
	h.Push(3)
	v, ok := h.Peek()
	if !ok || v != 3 {
		t.Fatalf("expected peek to return 3, got %d", v)
	}
	if h.Len() != 2 {
		t.Fatalf("peek should not remove, len=%d", h.Len())
	}
}

func TestComparatorHeapReverseMakesMaxHeap(t *testing.T) {
	less := func(a, b int) bool { return a < b }
	h := NewComparatorHeap(Reverse(less))
	for _, v := range []int{5, 1, 4, 2, 3} {
		h.Push(v)
	}
	if top, _ := h.Peek(); top != 5 {
		t.Fatalf("reversed heap should pop largest first, got %d", top)
	}
}

func TestComparatorHeapEmptyPeek(t *testing.T) {
	h := NewComparatorHeap(func(a, b int) bool { return a < b })
	if _, ok := h.Peek(); ok {
		t.Fatalf("empty heap peek should report false")
	}
}

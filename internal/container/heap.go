// Package container supplies the small set of insertion-ordered and
// priority-queue containers the graph algorithms in this library lean on.
// It is the Go re-expression of original_source/src/utils.rs: a LinkedHashSet
// (FIFO-ordered membership set), a ComparatorHeap (binary heap keyed by an
// injected comparator instead of the element's own Ord impl), and a RevOrd
// wrapper for turning a min-heap into a max-heap or back.
package container

import "container/heap"

// Comparator reports whether a sorts before b. It is the Go analogue of the
// closure a Rust ComparatorHeap is built with.
type Comparator[T any] func(a, b T) bool

// ComparatorHeap is a binary min-heap over T ordered by an injected
// Comparator, so the same type works for "smallest weight first" and
// "smallest StateId first" without T needing an Ord-like method of its own.
type ComparatorHeap[T any] struct {
	items []T
	less  Comparator[T]
}

// NewComparatorHeap builds an empty heap ordered by less.
func NewComparatorHeap[T any](less Comparator[T]) *ComparatorHeap[T] {
	h := &ComparatorHeap[T]{less: less}
	heap.Init((*heapAdapter[T])(h))
	return h
}

// NewComparatorHeapWithCapacity preallocates room for capacity elements.
func NewComparatorHeapWithCapacity[T any](less Comparator[T], capacity int) *ComparatorHeap[T] {
	h := &ComparatorHeap[T]{less: less, items: make([]T, 0, capacity)}
	return h
}

// heapAdapter lets *ComparatorHeap[T] drive container/heap without exposing
// the raw slice methods (Len/Less/Swap/Push/Pop) on the public type.
type heapAdapter[T any] ComparatorHeap[T]

func (h *heapAdapter[T]) Len() int           { return len(h.items) }
func (h *heapAdapter[T]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h *heapAdapter[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *heapAdapter[T]) Push(x any) {
	h.items = append(h.items, x.(T))
}

func (h *heapAdapter[T]) Pop() any {
	n := len(h.items)
	item := h.items[n-1]
	h.items = h.items[:n-1]
	return item
}

// Push adds item to the heap.
func (h *ComparatorHeap[T]) Push(item T) {
	heap.Push((*heapAdapter[T])(h), item)
}

// Pop removes and returns the least element under the comparator. It panics
// if the heap is empty; callers should check Len first.
func (h *ComparatorHeap[T]) Pop() T {
	return heap.Pop((*heapAdapter[T])(h)).(T)
}

// Peek returns the least element without removing it, and false if empty.
func (h *ComparatorHeap[T]) Peek() (T, bool) {
	var zero T
	if len(h.items) == 0 {
		return zero, false
	}
	return h.items[0], true
}

// Len reports the number of elements currently queued.
func (h *ComparatorHeap[T]) Len() int { return len(h.items) }

// IsEmpty reports whether the heap holds no elements.
func (h *ComparatorHeap[T]) IsEmpty() bool { return len(h.items) == 0 }

// Clear empties the heap, retaining its backing array.
func (h *ComparatorHeap[T]) Clear() { h.items = h.items[:0] }

// IntoSlice drains the heap and returns its elements in ascending
// (comparator) order, consuming the heap.
func (h *ComparatorHeap[T]) IntoSlice() []T {
	out := make([]T, 0, len(h.items))
	for h.Len() > 0 {
		out = append(out, h.Pop())
	}
	return out
}

// Reverse flips a Comparator so a min-heap becomes a max-heap, mirroring
// RevOrd's effect of swapping cmp's argument order.
func Reverse[T any](less Comparator[T]) Comparator[T] {
	return func(a, b T) bool { return less(b, a) }
}

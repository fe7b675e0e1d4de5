package util

// Heap is a slice-backed binary heap ordered by the less function
// provided at construction: the top of the heap is the least item under
// less, so a reversed less yields a max-heap. Push and Pop cost
// O(log n), Peek costs O(1).
//
// This type is not concurrency safe.
type Heap[T any] struct {
	less  func(a, b T) bool
	items []T
}

// NewHeap creates a Heap ordered by less, with space for capacity items
// preallocated.
func NewHeap[T any](less func(a, b T) bool, capacity uint) *Heap[T] {
	return &Heap[T]{
		less:  less,
		items: make([]T, 0, capacity),
	}
}

// Len returns the number of stored items.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// Peek returns the top item without removing it, else false if the heap
// is empty.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

// Push inserts an item.
func (h *Heap[T]) Push(item T) {
	h.items = append(h.items, item)
	h.up(len(h.items) - 1)
}

// Pop removes and returns the top item, else false if the heap is
// empty.
func (h *Heap[T]) Pop() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}

	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	var zero T
	h.items[last] = zero
	h.items = h.items[:last]
	h.down(0)
	return top, true
}

// Reset removes all items while keeping the allocated space.
func (h *Heap[T]) Reset() {
	clear(h.items)
	h.items = h.items[:0]
}

func (h *Heap[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.items[i], h.items[parent]) {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *Heap[T]) down(i int) {
	n := len(h.items)
	for {
		child := 2*i + 1
		if child >= n {
			break
		}
		if right := child + 1; right < n && h.less(h.items[right], h.items[child]) {
			child = right
		}
		if !h.less(h.items[child], h.items[i]) {
			break
		}
		h.items[i], h.items[child] = h.items[child], h.items[i]
		i = child
	}
}

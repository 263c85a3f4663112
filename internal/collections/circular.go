package collections

// CircularBufferList is a fixed-capacity ordered list. When full, appending
// evicts the oldest element. Total counts every insertion ever made, which
// is how callers tell "buffer holds 100" apart from "100 seen so far".
type CircularBufferList[T any] struct {
	items []T
	size  int
	total int
}

// NewCircularBufferList creates an empty buffer with the given capacity.
// size must be positive.
func NewCircularBufferList[T any](size int) *CircularBufferList[T] {
	if size <= 0 {
		panic("collections: CircularBufferList size must be positive")
	}
	return &CircularBufferList[T]{size: size}
}

// Append adds v to the tail, evicting the oldest element if the buffer is
// at capacity. Always increments Total.
func (l *CircularBufferList[T]) Append(v T) {
	if len(l.items) == l.size {
		l.items = append(l.items[:0], l.items[1:]...)
	}
	l.items = append(l.items, v)
	l.total++
}

// Extend appends all elements, then keeps only the trailing size elements.
// Total grows by the full input length even when some of the input is
// evicted within the same call.
func (l *CircularBufferList[T]) Extend(vs []T) {
	l.total += len(vs)
	l.items = append(l.items, vs...)
	if len(l.items) > l.size {
		l.items = append(l.items[:0], l.items[len(l.items)-l.size:]...)
	}
}

// Len returns the number of elements currently held, at most Size.
func (l *CircularBufferList[T]) Len() int {
	return len(l.items)
}

// Size returns the fixed capacity.
func (l *CircularBufferList[T]) Size() int {
	return l.size
}

// Total returns the number of insertions ever made, including evicted ones.
func (l *CircularBufferList[T]) Total() int {
	return l.total
}

// At returns the element at position i, oldest first. Panics if i is out of
// range.
func (l *CircularBufferList[T]) At(i int) T {
	return l.items[i]
}

// Items returns the current elements, oldest first. The returned slice is
// the buffer's backing storage; callers must not modify it.
func (l *CircularBufferList[T]) Items() []T {
	return l.items
}

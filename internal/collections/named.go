package collections

import (
	"golang.org/x/text/cases"
)

// foldName normalizes a name for case-insensitive comparison using Unicode
// case folding, which handles cases simple lowercasing does not.
func foldName(s string) string {
	return cases.Fold().String(s)
}

// NamedList is an ordered list indexed both by position and by the name of
// its elements. Names are not deduplicated; when two elements share a name,
// lookup by name returns the first match.
//
// The name of an element is produced by the accessor supplied at
// construction, keeping the container free of any reflection or structural
// requirements on T.
type NamedList[T any] struct {
	items      []T
	nameOf     func(T) string
	ignoreCase bool
}

// NewNamedList creates an empty NamedList. nameOf extracts the name of an
// element. If ignoreCase is true, name lookup and membership tests fold case
// before comparison; Keys still reports names as stored.
func NewNamedList[T any](nameOf func(T) string, ignoreCase bool) *NamedList[T] {
	return &NamedList[T]{nameOf: nameOf, ignoreCase: ignoreCase}
}

// normalize applies the configured case policy to a name.
func (l *NamedList[T]) normalize(name string) string {
	if l.ignoreCase {
		return foldName(name)
	}
	return name
}

// Append adds an element to the end of the list.
func (l *NamedList[T]) Append(v T) {
	l.items = append(l.items, v)
}

// Len returns the number of elements.
func (l *NamedList[T]) Len() int {
	return len(l.items)
}

// At returns the element at position i. Panics if i is out of range, like a
// slice.
func (l *NamedList[T]) At(i int) T {
	return l.items[i]
}

// ByName returns the first element whose name matches. Returns a
// *NotFoundError when no element matches.
func (l *NamedList[T]) ByName(name string) (T, error) {
	want := l.normalize(name)
	for _, v := range l.items {
		if l.normalize(l.nameOf(v)) == want {
			return v, nil
		}
	}
	var zero T
	return zero, &NotFoundError{Key: []string{name}}
}

// Contains reports whether any element has the given name.
func (l *NamedList[T]) Contains(name string) bool {
	_, err := l.ByName(name)
	return err == nil
}

// Keys returns the element names in list order.
func (l *NamedList[T]) Keys() []string {
	keys := make([]string, len(l.items))
	for i, v := range l.items {
		keys[i] = l.nameOf(v)
	}
	return keys
}

// Items returns the underlying elements in order. The returned slice is the
// list's backing storage; callers must not modify it.
func (l *NamedList[T]) Items() []T {
	return l.items
}

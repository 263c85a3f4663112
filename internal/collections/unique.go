package collections

// Field names one component of a composite key and knows how to read it
// from an element.
type Field[T any] struct {
	Name string
	Get  func(T) string
}

// NameField is the default composite key: a single "name" component.
func NameField[T any](get func(T) string) []Field[T] {
	return []Field[T]{{Name: "name", Get: get}}
}

// UniqueList is an ordered list that never holds two elements with an equal
// composite key. The key is an ordered tuple of field values configured at
// construction (default: just "name").
//
// Appending an element whose key is already present removes every existing
// match first, so the newest insertion always wins and sits at the tail.
// Reordering on collision is expected behavior, not a bug.
type UniqueList[T any] struct {
	items      []T
	fields     []Field[T]
	ignoreCase bool
}

// NewUniqueList creates an empty UniqueList with the given comparison
// fields. fields must be non-empty.
func NewUniqueList[T any](fields []Field[T], ignoreCase bool) *UniqueList[T] {
	if len(fields) == 0 {
		panic("collections: UniqueList requires at least one comparison field")
	}
	return &UniqueList[T]{fields: fields, ignoreCase: ignoreCase}
}

// compare tests two key components under the configured case policy.
func (l *UniqueList[T]) compare(a, b string) bool {
	if l.ignoreCase {
		return foldName(a) == foldName(b)
	}
	return a == b
}

// sameKey reports whether two elements have equal composite keys.
func (l *UniqueList[T]) sameKey(a, b T) bool {
	for _, f := range l.fields {
		if !l.compare(f.Get(a), f.Get(b)) {
			return false
		}
	}
	return true
}

// Key returns the composite key of an element, in field order.
func (l *UniqueList[T]) Key(v T) []string {
	key := make([]string, len(l.fields))
	for i, f := range l.fields {
		key[i] = f.Get(v)
	}
	return key
}

// Append adds v to the tail, first removing every element whose composite
// key equals v's key.
func (l *UniqueList[T]) Append(v T) {
	l.removeMatching(v)
	l.items = append(l.items, v)
}

// Extend appends each element in order, applying Append's collision policy
// element by element.
func (l *UniqueList[T]) Extend(vs []T) {
	for _, v := range vs {
		l.Append(v)
	}
}

// removeMatching deletes all elements with v's composite key, scanning in
// reverse to keep indices valid while removing.
func (l *UniqueList[T]) removeMatching(v T) {
	for i := len(l.items) - 1; i >= 0; i-- {
		if l.sameKey(v, l.items[i]) {
			l.items = append(l.items[:i], l.items[i+1:]...)
		}
	}
}

// Set replaces the element at position i. Unlike Append it does not evict:
// if another position already holds v's key, Set fails with a
// *DuplicateError and the list is unchanged.
func (l *UniqueList[T]) Set(i int, v T) error {
	for j := range l.items {
		if j != i && l.sameKey(v, l.items[j]) {
			return &DuplicateError{Index: j, Key: l.Key(v)}
		}
	}
	l.items[i] = v
	return nil
}

// ByKey returns the element whose full composite key equals key. The key
// must have exactly one part per comparison field (*KeyArityError
// otherwise); an unmatched key is a *NotFoundError.
func (l *UniqueList[T]) ByKey(key ...string) (T, error) {
	var zero T
	if len(key) != len(l.fields) {
		return zero, &KeyArityError{Got: len(key), Want: len(l.fields)}
	}
	for _, v := range l.items {
		if l.matchPrefix(v, key) {
			return v, nil
		}
	}
	return zero, &NotFoundError{Key: key}
}

// ByPartialKey narrows the list to the elements matching a strict prefix of
// the comparison fields. The result is a new UniqueList keyed by the
// remaining fields; the receiver is unchanged. An empty match is a
// *NotFoundError, and a key as long as the full field set is a
// *KeyArityError (use ByKey for exact lookup).
func (l *UniqueList[T]) ByPartialKey(key ...string) (*UniqueList[T], error) {
	if len(key) == 0 || len(key) >= len(l.fields) {
		return nil, &KeyArityError{Got: len(key), Want: len(l.fields) - 1}
	}
	narrowed := NewUniqueList(l.fields[len(key):], l.ignoreCase)
	for _, v := range l.items {
		if l.matchPrefix(v, key) {
			narrowed.items = append(narrowed.items, v)
		}
	}
	if len(narrowed.items) == 0 {
		return nil, &NotFoundError{Key: key}
	}
	return narrowed, nil
}

// matchPrefix tests the leading key parts against the element, field by
// field in configured order.
func (l *UniqueList[T]) matchPrefix(v T, key []string) bool {
	for i, part := range key {
		if !l.compare(part, l.fields[i].Get(v)) {
			return false
		}
	}
	return true
}

// Len returns the number of surviving elements.
func (l *UniqueList[T]) Len() int {
	return len(l.items)
}

// At returns the element at position i. Panics if i is out of range.
func (l *UniqueList[T]) At(i int) T {
	return l.items[i]
}

// Items returns the surviving elements in insertion order. The returned
// slice is the list's backing storage; callers must not modify it.
func (l *UniqueList[T]) Items() []T {
	return l.items
}

package collections

import (
	"fmt"
	"strings"
)

// NotFoundError reports a name or composite key with no matching element.
type NotFoundError struct {
	// Key is the name or composite key that failed to match.
	Key []string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("key %q not found", strings.Join(e.Key, "/"))
}

// KeyArityError reports a lookup whose key length does not match the
// configured comparison fields. This is a caller bug, distinct from a key
// that is simply absent.
type KeyArityError struct {
	Got  int
	Want int
}

// Error implements the error interface.
func (e *KeyArityError) Error() string {
	return fmt.Sprintf("composite key has %d parts, want %d", e.Got, e.Want)
}

// DuplicateError reports an assignment that would introduce a second element
// with an equal composite key.
type DuplicateError struct {
	Index int // index of the existing element with the same key
	Key   []string
}

// Error implements the error interface.
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate of key %q at index %d", strings.Join(e.Key, "/"), e.Index)
}

// Package collections provides the ordered container types used by the
// catalog layers: name-indexed lists, composite-key deduplicated lists, and
// fixed-capacity ring buffers.
//
// All three containers preserve insertion order and none of them is
// internally synchronized. Callers sharing a container across goroutines
// must serialize mutation externally.
//
// Lookup failures are reported as *NotFoundError so callers can distinguish
// "absent key" from a malformed lookup (wrong key arity), which is a
// *KeyArityError. Positional access uses plain slice semantics.
package collections

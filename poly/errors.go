package poly

import "errors"

// ErrUnknownSpec is returned by ParseSpec for a name outside the
// recognised catalogue.
var ErrUnknownSpec = errors.New("poly: unknown polymorphism specification")

// ErrInvalidArity is returned by ParseSpec when a catalogue entry's
// arity or height cannot be satisfied (e.g. arity <= 0, or a height
// that does not parse as a positive integer).
var ErrInvalidArity = errors.New("poly: invalid arity or height")

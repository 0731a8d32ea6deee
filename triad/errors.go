package triad

import "errors"

// ErrMalformedArm indicates an arm string contains a character other than
// '0' or '1'. There is no recovery; the caller must reject the input.
var ErrMalformedArm = errors.New("triad: arm contains a non-binary character")

package persist

import "errors"

// ErrMalformedLine is returned when a persisted file contains a line that
// does not parse as the format it claims to be.
var ErrMalformedLine = errors.New("persist: malformed line")

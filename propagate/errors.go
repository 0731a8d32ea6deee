package propagate

import "errors"

// ErrNoSolution reports that some variable's domain emptied during
// propagation: a definitive, non-erroneous negative answer, not a
// malformed-input error.
var ErrNoSolution = errors.New("propagate: no solution (empty domain)")

// ErrUnknownConsistency is returned by Propagate when asked to run a
// Consistency value it does not recognize.
var ErrUnknownConsistency = errors.New("propagate: unknown consistency level")

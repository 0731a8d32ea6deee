package domainset

import "errors"

// ErrVariableNotFound is raised (as a panic by checkVar, never returned)
// when a caller addresses a variable ID outside [0, n). It exists as a
// sentinel so the panic value itself is recognizable in tests via
// errors.Is against recover()'d values.
var ErrVariableNotFound = errors.New("domainset: variable not found")

package propagate

import (
	"github.com/tripolys/tripolys/digraph"
	"github.com/tripolys/tripolys/domainset"
)

// Consistency selects which propagator Propagate (and the --consistency CLI
// flag) should run.
type Consistency int

const (
	// AC3Consistency runs plain arc consistency.
	AC3Consistency Consistency = iota
	// SAC1Consistency runs singleton arc consistency.
	SAC1Consistency
)

// String implements fmt.Stringer for flag help text and logging.
func (c Consistency) String() string {
	switch c {
	case AC3Consistency:
		return "ac3"
	case SAC1Consistency:
		return "sac1"
	default:
		return "unknown"
	}
}

// ParseConsistency parses the --consistency flag's literal values.
func ParseConsistency(s string) (Consistency, error) {
	switch s {
	case "", "ac3":
		return AC3Consistency, nil
	case "sac1":
		return SAC1Consistency, nil
	default:
		return 0, ErrUnknownConsistency
	}
}

// Propagate dispatches to AC3 or SAC1 according to kind.
func Propagate(kind Consistency, vars, vals *digraph.Digraph, L *domainset.DomainMap) error {
	switch kind {
	case AC3Consistency:
		return AC3(vars, vals, L)
	case SAC1Consistency:
		return SAC1(vars, vals, L)
	default:
		return ErrUnknownConsistency
	}
}

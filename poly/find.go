package poly

import (
	"github.com/tripolys/tripolys/propagate"
	"github.com/tripolys/tripolys/solve"
	"github.com/tripolys/tripolys/triad"
)

// FindPolymorphism compiles the given spec's indicator for t and solves it at the
// given consistency level: the one-call convenience over Compile+
// solve.Solve that enumerate and cmd/tripolys both use.
func FindPolymorphism(t *triad.Triad, spec *Spec, consistency propagate.Consistency) (*solve.Result, error) {
	vars, vals, L0, err := Compile(t, spec)
	if err != nil {
		return nil, err
	}

	return solve.Solve(vars, vals, L0, consistency)
}

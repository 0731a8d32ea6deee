package enumerate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tripolys/tripolys/poly"
	"github.com/tripolys/tripolys/propagate"
	"github.com/tripolys/tripolys/triad"
)

// CoreTriads generates every triad with exactly n non-root vertices
// across its three arms, keeping only canonical-form and core survivors.
func CoreTriads(n int) []*triad.Triad {
	var out []*triad.Triad
	for l1 := 0; l1 <= n; l1++ {
		for l2 := 0; l2 <= n-l1; l2++ {
			l3 := n - l1 - l2
			for _, a1 := range binaryStrings(l1) {
				for _, a2 := range binaryStrings(l2) {
					for _, a3 := range binaryStrings(l3) {
						t, err := triad.Parse(a1, a2, a3)
						if err != nil {
							continue
						}
						if !triad.CanonicalForm(t) || !triad.IsCore(t) {
							continue
						}
						out = append(out, t)
					}
				}
			}
		}
	}

	return out
}

// Range enumerates CoreTriads for every n in [a,b], the shape the CLI's
// --nodes <a-b> form needs.
func Range(a, b int) map[int][]*triad.Triad {
	out := make(map[int][]*triad.Triad, b-a+1)
	for n := a; n <= b; n++ {
		out[n] = CoreTriads(n)
	}

	return out
}

func binaryStrings(length int) []string {
	if length == 0 {
		return []string{""}
	}
	var out []string
	var rec func(prefix string, remaining int)
	rec = func(prefix string, remaining int) {
		if remaining == 0 {
			out = append(out, prefix)
			return
		}
		rec(prefix+"0", remaining-1)
		rec(prefix+"1", remaining-1)
	}
	rec("", length)

	return out
}

// Outcome is one triad's polymorphism-test result. Err is set instead of
// the test being retried or the whole batch aborted: the core has no
// partial or retryable failures, so a single triad's malformed-spec error
// (which cannot actually occur once spec has already been parsed once by
// the caller) simply surfaces per-triad.
type Outcome struct {
	Triad  *triad.Triad
	Exists bool
	Err    error
}

// TestAll runs poly.FindPolymorphism for every triad concurrently,
// bounded by workers goroutines at a time (workers <= 0 means
// unbounded). Each goroutine compiles its own indicator, so no mutable
// state is shared across triads.
func TestAll(ctx context.Context, triads []*triad.Triad, spec *poly.Spec, consistency propagate.Consistency, workers int) []Outcome {
	outcomes := make([]Outcome, len(triads))
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, t := range triads {
		i, t := i, t
		g.Go(func() error {
			if gctx.Err() != nil {
				outcomes[i] = Outcome{Triad: t, Err: gctx.Err()}
				return nil
			}
			result, err := poly.FindPolymorphism(t, spec, consistency)
			if err != nil {
				outcomes[i] = Outcome{Triad: t, Err: err}
				return nil
			}
			outcomes[i] = Outcome{Triad: t, Exists: result.Exists}

			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

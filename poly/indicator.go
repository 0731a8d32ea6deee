package poly

import (
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/tripolys/tripolys/digraph"
	"github.com/tripolys/tripolys/domainset"
	"github.com/tripolys/tripolys/triad"
)

// Compile builds the indicator digraph I(T, spec) and its initial domain
// map L0. vars is the indicator (the CSP's variables), vals
// is t's own digraph (the CSP's target); a polymorphism exists iff
// solve.Solve(vars, vals, L0, ...) finds one.
func Compile(t *triad.Triad, spec *Spec) (vars *digraph.Digraph, vals *digraph.Digraph, L0 *domainset.DomainMap, err error) {
	if spec.Arity < 1 {
		return nil, nil, nil, ErrInvalidArity
	}

	vals, _ = t.Build()
	nT := vals.N()
	k := spec.Arity
	levels := t.Level()

	uf, hints, blocks := buildIdentities(nT, levels, spec)
	canon := uf.canonicalRepresentatives()

	reps := make([]tupleKey, 0, len(canon))
	seen := make(map[tupleKey]bool, len(canon))
	for _, r := range canon {
		if !seen[r] {
			seen[r] = true
			reps = append(reps, r)
		}
	}
	sort.Slice(reps, func(i, j int) bool { return reps[i].less(reps[j]) })

	vertexOf := make(map[tupleKey]int, len(reps))
	for id, r := range reps {
		vertexOf[r] = id
	}
	members := make(map[int][]tupleKey, len(reps))
	for key, rep := range canon {
		vid := vertexOf[rep]
		members[vid] = append(members[vid], key)
	}

	vars = digraph.NewWithVertices(len(reps))
	powerGraph := buildPowerGraph(vals, k)
	for b := 0; b < blocks; b++ {
		for _, e := range powerGraph.Edges() {
			from := tupleKey{Block: b, ID: e[0]}
			to := tupleKey{Block: b, ID: e[1]}
			repFrom, ok := canon[from]
			if !ok {
				continue
			}
			repTo, ok := canon[to]
			if !ok {
				continue
			}
			// AddEdge is idempotent; distinct tuple pairs routinely collapse
			// onto the same representative pair, absorbing self-loops and
			// parallel edges.
			_ = vars.AddEdge(vertexOf[repFrom], vertexOf[repTo])
		}
	}

	L0 = domainset.New(len(reps), uint(nT), func(v int) *bitset.BitSet {
		return domainFor(members[v], nT, k, spec)
	})
	for _, hint := range hints {
		rep, ok := canon[hint.key]
		if !ok {
			continue
		}
		L0.Shrink(vertexOf[rep], bitset.New(uint(nT)).Set(uint(hint.value)))
	}

	return vars, vals, L0, nil
}

// buildPowerGraph returns vals^k with dense vertex IDs matching
// encodeTuple: repeated Product folds left to right, exactly the fold
// order encodeTuple uses, so powerGraph.Edges() can be read directly as
// tuple-pair edges without a separate encoding pass.
func buildPowerGraph(vals *digraph.Digraph, k int) *digraph.Digraph {
	if k <= 1 {
		return vals
	}
	p := vals
	for i := 1; i < k; i++ {
		p = p.Product(vals)
	}

	return p
}

// domainFor computes the initial candidate set for an indicator vertex
// from its member tuples, applying the conservative and idempotent
// modifiers. A vertex whose members disagree under a modifier gets the
// intersection of what each member allows, since they are forced to
// share one value.
func domainFor(memberKeys []tupleKey, nT, k int, spec *Spec) *bitset.BitSet {
	dom := fullRange(uint(nT))

	if spec.Conservative {
		inter := fullRange(uint(nT))
		for _, mk := range memberKeys {
			tuple := decodeTuple(mk.ID, nT, k)
			allowed := bitset.New(uint(nT))
			for _, val := range tuple {
				allowed.Set(uint(val))
			}
			inter = inter.Intersection(allowed)
		}
		dom = dom.Intersection(inter)
	}

	if spec.Idempotent {
		for _, mk := range memberKeys {
			tuple := decodeTuple(mk.ID, nT, k)
			if x, ok := allConstant(tuple); ok {
				dom = dom.Intersection(bitset.New(uint(nT)).Set(uint(x)))
				break
			}
		}
	}

	return dom
}

func fullRange(m uint) *bitset.BitSet {
	s := bitset.New(m)
	for a := uint(0); a < m; a++ {
		s.Set(a)
	}

	return s
}

package poly

// precolourHint records that the tuple identified by key must take the
// given target value, per the catalogue's per-entry precolour rules
// (currently only "majority" specifies one directly; "conservative" and
// "idempotent" are modifiers applied later, in domainFor).
type precolourHint struct {
	key   tupleKey
	value int
}

// buildIdentities applies the catalogue identities named by spec to a
// fresh union-find over the tuple universe V(T)^k (or, for h/k-wnu, the
// h-block disjoint union of copies of it), and returns the populated
// union-find, any precolour hints, and the number of chain blocks.
func buildIdentities(n int, levels []int, spec *Spec) (*tupleUnionFind, []precolourHint, int) {
	k := spec.Arity
	blocks := 1
	if spec.Name == "h/k-wnu" {
		blocks = spec.Height
	}

	uf := newTupleUnionFind()
	var hints []precolourHint

	inUniverse := func(tuple []int) bool {
		if spec.Name == "commutative" {
			return levels[tuple[0]] == levels[tuple[1]]
		}
		return true
	}

	key := func(b int, tuple []int) tupleKey {
		return tupleKey{Block: b, ID: encodeTuple(tuple, n)}
	}

	// Seed every tuple of the universe as its own class first, so tuples no
	// identity touches still surface as indicator vertices.
	iterateTuples(n, k, func(tuple []int) {
		if !inUniverse(tuple) {
			return
		}
		for b := 0; b < blocks; b++ {
			uf.touch(key(b, tuple))
		}
	})

	switch spec.Name {
	case "commutative":
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if levels[u] != levels[v] {
					continue
				}
				uf.union(key(0, []int{u, v}), key(0, []int{v, u}))
			}
		}
	case "majority":
		for x := 0; x < n; x++ {
			for y := 0; y < n; y++ {
				a := key(0, []int{x, x, y})
				b := key(0, []int{x, y, x})
				c := key(0, []int{y, x, x})
				uf.union(a, b)
				uf.union(b, c)
				hints = append(hints, precolourHint{key: a, value: x})
			}
		}
	case "siggers":
		for a := 0; a < n; a++ {
			for r := 0; r < n; r++ {
				for e := 0; e < n; e++ {
					uf.union(key(0, []int{a, r, e, a}), key(0, []int{r, a, r, e}))
				}
			}
		}
	case "k-wnu":
		unionWNURotations(uf, key, 0, n, k)
	case "h/k-wnu":
		for b := 0; b < blocks; b++ {
			unionWNURotations(uf, key, b, n, k)
		}
		// Hagemann-Mitschke chain link: w_b(y,x,...,x) = w_(b+1)(x,...,x,y).
		for b := 0; b < blocks-1; b++ {
			for x := 0; x < n; x++ {
				for y := 0; y < n; y++ {
					left := key(b, rotation(k, 0, x, y))
					right := key(b+1, rotation(k, k-1, x, y))
					uf.union(left, right)
				}
			}
		}
	}

	return uf, hints, blocks
}

// unionWNURotations identifies the k rotations of (y,x,...,x) within a
// single block: every position of the "odd one out" y is forced equal.
func unionWNURotations(uf *tupleUnionFind, key func(b int, tuple []int) tupleKey, b, n, k int) {
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			base := key(b, rotation(k, 0, x, y))
			for p := 1; p < k; p++ {
				uf.union(base, key(b, rotation(k, p, x, y)))
			}
		}
	}
}

// iterateTuples calls visit once for every length-k tuple over [0,n), most
// significant coordinate varying slowest (matching encodeTuple's fold
// order). The slice passed to visit is reused between calls; visit must
// not retain it.
func iterateTuples(n, k int, visit func(tuple []int)) {
	tuple := make([]int, k)
	var rec func(pos int)
	rec = func(pos int) {
		if pos == k {
			visit(tuple)
			return
		}
		for v := 0; v < n; v++ {
			tuple[pos] = v
			rec(pos + 1)
		}
	}
	rec(0)
}

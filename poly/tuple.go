package poly

// encodeTuple folds a length-k tuple over [0,n) into a single dense int,
// most-significant coordinate first: encode([t0,...,t(k-1)], n) ==
// (((t0*n+t1)*n+t2)*n+...)+t(k-1). This is exactly the vertex ID scheme
// digraph.Product assigns when G^k is built by folding Product left to
// right, so powerGraph's edges can be read directly as tuple-pair edges
// without a separate encoding pass.
func encodeTuple(tuple []int, n int) int {
	id := 0
	for _, t := range tuple {
		id = id*n + t
	}

	return id
}

// decodeTuple is encodeTuple's inverse for a known arity k.
func decodeTuple(id, n, k int) []int {
	tuple := make([]int, k)
	for i := k - 1; i >= 0; i-- {
		tuple[i] = id % n
		id /= n
	}

	return tuple
}

// rotation builds the length-k tuple with y at position pos and x in every
// other position — the shape every catalogue entry's weak-near-unanimity
// identities are stated over.
func rotation(k, pos, x, y int) []int {
	t := make([]int, k)
	for i := range t {
		t[i] = x
	}
	t[pos] = y

	return t
}

// allConstant reports whether every coordinate of tuple is equal, i.e.
// tuple == (x,...,x) for some x.
func allConstant(tuple []int) (x int, ok bool) {
	for i, v := range tuple {
		if i == 0 {
			x = v
			continue
		}
		if v != x {
			return 0, false
		}
	}

	return x, true
}

package domainset

import "github.com/bits-and-blooms/bitset"

// New builds a DomainMap of n variables over a universe of size m. init is
// called once per variable to seed its initial candidate set; a nil init
// seeds every variable with the full universe {0,...,m-1}.
//
// Complexity: O(n*m/64) for the default full-universe seeding.
func New(n int, m uint, init func(v int) *bitset.BitSet) *DomainMap {
	d := &DomainMap{m: m, sets: make([]*bitset.BitSet, n)}
	for v := 0; v < n; v++ {
		if init != nil {
			d.sets[v] = init(v).Clone()
		} else {
			full := bitset.New(m)
			for a := uint(0); a < m; a++ {
				full.Set(a)
			}
			d.sets[v] = full
		}
	}

	return d
}

// Get returns the current candidate set of v. The caller must not mutate the
// returned bitset directly; use Shrink or Set.
func (d *DomainMap) Get(v int) *bitset.BitSet {
	d.checkVar(v)

	return d.sets[v]
}

// Set replaces v's candidate set outright. Used by the solver to commit a
// branch (L(v) := {a}) and by precolouring during CSP construction.
//
// s must be a subset of v's current candidate set: Set only ever narrows a
// domain, and the trail records the bits it drops so Restore can put them
// back. Passing a value outside the current domain panics rather than
// silently recording a trail entry Restore cannot undo.
func (d *DomainMap) Set(v int, s *bitset.BitSet) {
	d.checkVar(v)
	before := d.sets[v]
	if s.Difference(before).Any() {
		panic("domainset: Set called with a value outside the current domain")
	}
	removed := before.Difference(s)
	if removed.Any() {
		d.trail = append(d.trail, change{v: v, removed: removed})
	}
	d.sets[v] = s.Clone()
}

// Shrink intersects v's candidate set with s in place and records exactly
// the bits removed (if any) on the undo trail. Returns true iff the domain
// actually changed.
func (d *DomainMap) Shrink(v int, s *bitset.BitSet) bool {
	d.checkVar(v)
	before := d.sets[v]
	removed := before.Difference(s)
	if removed.None() {
		return false
	}
	d.trail = append(d.trail, change{v: v, removed: removed})
	d.sets[v] = before.Intersection(s)

	return true
}

// RemoveValue removes a single value a from v's domain. It is sugar over
// Shrink used by the propagator's revise step.
func (d *DomainMap) RemoveValue(v int, a uint) bool {
	d.checkVar(v)
	if !d.sets[v].Test(a) {
		return false
	}
	removed := bitset.New(d.m).Set(a)
	d.trail = append(d.trail, change{v: v, removed: removed})
	d.sets[v].Clear(a)

	return true
}

// IsEmpty reports whether v's domain has no candidates left.
func (d *DomainMap) IsEmpty(v int) bool {
	d.checkVar(v)

	return d.sets[v].None()
}

// Singleton returns v's sole candidate value and true iff |L(v)| == 1.
func (d *DomainMap) Singleton(v int) (uint, bool) {
	d.checkVar(v)
	if d.sets[v].Count() != 1 {
		return 0, false
	}
	a, _ := d.sets[v].NextSet(0)

	return a, true
}

// Iter calls yield for every variable in ascending order, stopping early if
// yield returns false.
func (d *DomainMap) Iter(yield func(v int, s *bitset.BitSet) bool) {
	for v, s := range d.sets {
		if !yield(v, s) {
			return
		}
	}
}

// Snapshot returns a trail mark that Restore can later rewind to.
func (d *DomainMap) Snapshot() int {
	return len(d.trail)
}

// Restore undoes every Shrink/Set/RemoveValue performed since mark, in
// reverse order. mark must have been produced by an earlier Snapshot call on
// this DomainMap.
func (d *DomainMap) Restore(mark int) {
	for i := len(d.trail) - 1; i >= mark; i-- {
		c := d.trail[i]
		d.sets[c.v] = d.sets[c.v].Union(c.removed)
	}
	d.trail = d.trail[:mark]
}

// Clone produces an independent DomainMap with the same domains and an
// empty trail. It is used sparingly — by SAC-1's singleton probing, which
// needs a throwaway copy rather than a trail it must remember to unwind —
// and never on the solver's branch-per-recursion hot path (that path uses
// Snapshot/Restore instead).
func (d *DomainMap) Clone() *DomainMap {
	c := &DomainMap{m: d.m, sets: make([]*bitset.BitSet, len(d.sets))}
	for v, s := range d.sets {
		c.sets[v] = s.Clone()
	}

	return c
}

package solve

// Result is the outcome of a Solve call.
type Result struct {
	// Exists reports whether vars admits a homomorphism into vals
	// satisfying the domain map's constraints.
	Exists bool

	// Witness maps every vars vertex to its vals image. Nil when Exists is
	// false.
	Witness map[int]int
}

package poly

import (
	"regexp"
	"strconv"
)

// Spec names one entry of the polymorphism catalogue: Name is the catalogue
// family ("commutative", "majority", "siggers", "k-wnu", "h/k-wnu"), Arity
// is the operation's arity k, Height is the chain length h for "h/k-wnu"
// and zero otherwise. Conservative and Idempotent are the two modifiers
// that apply on top of any family.
type Spec struct {
	Name         string
	Arity        int
	Height       int
	Conservative bool
	Idempotent   bool
}

var (
	wnuPattern  = regexp.MustCompile(`^(\d+)-wnu$`)
	hwnuPattern = regexp.MustCompile(`^(\d+)/(\d+)-wnu$`)
)

// ParseSpec parses a catalogue name (the literal CLI contract) into a Spec.
// conservative and idempotent are applied as modifiers regardless of which
// family name is given.
func ParseSpec(name string, conservative, idempotent bool) (*Spec, error) {
	base := func(n string, arity int) *Spec {
		return &Spec{Name: n, Arity: arity, Conservative: conservative, Idempotent: idempotent}
	}

	switch name {
	case "commutative":
		return base(name, 2), nil
	case "majority":
		return base(name, 3), nil
	case "siggers":
		return base(name, 4), nil
	}

	if m := hwnuPattern.FindStringSubmatch(name); m != nil {
		h, _ := strconv.Atoi(m[1])
		k, _ := strconv.Atoi(m[2])
		if h < 1 || k < 2 {
			return nil, ErrInvalidArity
		}
		return &Spec{Name: "h/k-wnu", Arity: k, Height: h, Conservative: conservative, Idempotent: idempotent}, nil
	}

	if m := wnuPattern.FindStringSubmatch(name); m != nil {
		k, _ := strconv.Atoi(m[1])
		if k < 2 {
			return nil, ErrInvalidArity
		}
		return base("k-wnu", k), nil
	}

	return nil, ErrUnknownSpec
}

package perm

import "github.com/katalvlaran/permgroup/cycle"

// String renders p in disjoint cycle notation, prefixed with "-" when the
// sign is negative: "(0 1 2)(3 4)", "-(0 1)", "()".
func (p Permutation) String() string {
	s := p.ToCycle().String()
	if p.negative {
		return "-" + s
	}

	return s
}

// Parse reads the notation produced by String. Overlapping cycles are
// accepted and composed left to right.
//
// Errors: cycle.ErrSyntax, cycle.ErrRepeatedIndex.
func Parse(s string) (Permutation, error) {
	c, sign, err := cycle.ParseSigned(s)
	if err != nil {
		return Permutation{}, err
	}

	return FromCycleSigned(c, sign)
}

// MustParse is Parse that panics on error. Intended for literals.
func MustParse(s string) Permutation {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return p
}

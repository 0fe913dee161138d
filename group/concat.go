package group

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/permgroup/perm"
)

// Concatenate returns the symmetry group of the sequence obtained by
// removing lhsExcludes from a sequence of length lhsSize+len(lhsExcludes)
// acted on by lhs, removing rhsExcludes from a second sequence acted on by
// rhs, and placing the two remainders side by side.
//
// lhsSize is the length of the left remainder, i.e. the offset of the right
// one. For each side:
//  1. identity generators are skipped;
//  2. generators that move an excluded index are dropped, since they would
//     mix kept and removed positions;
//  3. the rest are relabelled down by one for every excluded index below
//     each point, largest exclude first.
//
// The right-hand generators are finally shifted up by lhsSize. Only
// generators are carried over, so the result is the group they generate.
//
// Errors: ErrNegativeSize, ErrNegativeIndex.
func Concatenate(lhs *Group, lhsSize int, rhs *Group, lhsExcludes, rhsExcludes []int, opts ...Option) (*Group, error) {
	if lhsSize < 0 {
		return nil, ErrNegativeSize
	}
	left, err := compact(lhs.generators, lhsExcludes)
	if err != nil {
		return nil, fmt.Errorf("lhs: %w", err)
	}
	right, err := compact(rhs.generators, rhsExcludes)
	if err != nil {
		return nil, fmt.Errorf("rhs: %w", err)
	}
	for i := range right {
		if err = right[i].Shift(lhsSize, 0); err != nil {
			return nil, fmt.Errorf("rhs: %w", err)
		}
	}

	return New(append(left, right...), opts...), nil
}

// compact keeps the non-trivial generators that fix every excluded index and
// closes the gaps the excluded indices leave behind.
func compact(generators []perm.Permutation, excludes []int) ([]perm.Permutation, error) {
	desc := slices.Clone(excludes)
	for _, e := range desc {
		if e < 0 {
			return nil, ErrNegativeIndex
		}
	}
	// Closing the gap of a larger index first keeps the smaller ones valid.
	slices.Sort(desc)
	desc = slices.Compact(desc)
	slices.Reverse(desc)

	var out []perm.Permutation
	for _, p := range generators {
		if p.IsIdentity() || movesAny(p, desc) {
			continue
		}
		q := p.Clone()
		for _, e := range desc {
			if err := q.Shift(-1, e+1); err != nil {
				return nil, err
			}
		}
		out = append(out, q)
	}

	return out, nil
}

func movesAny(p perm.Permutation, points []int) bool {
	for _, x := range points {
		if p.Image(x) != x {
			return true
		}
	}

	return false
}

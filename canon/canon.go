package canon

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/katalvlaran/permgroup/perm"
)

// ErrSequenceTooShort indicates a permutation that moves a position the
// sequence does not have.
var ErrSequenceTooShort = errors.New("canon: permutation moves a point beyond the sequence")

// Representer picks the canonical member of a right coset. *group.Group
// satisfies it.
type Representer interface {
	RightCosetRepresentative(p perm.Permutation) perm.Permutation
}

// Apply permutes seq in place so that result[i] = original[p.Image(i)].
// The sign of p is ignored. seq is untouched on error.
//
// Each cycle (c₀ c₁ … cₖ) is applied by swapping along the chain, so no
// scratch copy of seq is needed.
//
// Errors: ErrSequenceTooShort if p moves a point ≥ len(seq).
// Complexity: O(n) time, O(1) extra space besides the cycle decomposition.
func Apply[T any](seq []T, p perm.Permutation) error {
	if p.IsIdentity() {
		return nil
	}
	if p.MaxElement() >= len(seq) {
		return fmt.Errorf("%w: max point %d, length %d", ErrSequenceTooShort, p.MaxElement(), len(seq))
	}
	for _, c := range p.ToCycle() {
		base := c[0]
		for _, idx := range c[1:] {
			seq[base], seq[idx] = seq[idx], seq[base]
			base = idx
		}
	}

	return nil
}

// CanonicalizationPermutation returns the permutation that Canonicalize
// applies to seq. Its sign is the sign Canonicalize reports. Repeated
// elements are subject to the same caveat as in Canonicalize.
func CanonicalizationPermutation[T cmp.Ordered](seq []T, g Representer) perm.Permutation {
	return CanonicalizationPermutationFunc(seq, g, cmp.Compare[T])
}

// CanonicalizationPermutationFunc is CanonicalizationPermutation with a
// custom comparison.
func CanonicalizationPermutationFunc[T any](seq []T, g Representer, cmpFn func(a, b T) int) perm.Permutation {
	sigma := StableSortPermutationFunc(seq, cmpFn)
	rep := g.RightCosetRepresentative(perm.Inverse(sigma))
	rep.PostMultiply(sigma)

	return rep
}

// Canonicalize rewrites seq in place into the canonical member of its
// equivalence class under g and returns the sign (+1 or -1) picked up.
//
// The result is the same for every rearrangement of seq by g only when the
// elements of seq are distinct. With repeated elements the result is still
// deterministic for a given input, but two arrangements in one class may
// canonicalize differently.
//
// Errors: ErrSequenceTooShort when g acts on more positions than seq has.
func Canonicalize[T cmp.Ordered](seq []T, g Representer) (int, error) {
	return CanonicalizeFunc(seq, g, cmp.Compare[T])
}

// CanonicalizeFunc is Canonicalize with a custom comparison.
func CanonicalizeFunc[T any](seq []T, g Representer, cmpFn func(a, b T) int) (int, error) {
	p := CanonicalizationPermutationFunc(seq, g, cmpFn)
	if err := Apply(seq, p); err != nil {
		return 0, err
	}

	return p.Sign(), nil
}

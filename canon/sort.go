package canon

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/permgroup/perm"
)

// SortPermutation returns the permutation σ with Image(k) = position in seq
// of the k-th smallest element, so that Apply(seq, σ) sorts seq.
// Ties are ordered arbitrarily; use StableSortPermutation to keep them in
// input order.
// Complexity: O(n log n).
func SortPermutation[T cmp.Ordered](seq []T) perm.Permutation {
	return SortPermutationFunc(seq, cmp.Compare[T])
}

// SortPermutationFunc is SortPermutation with a custom comparison that
// returns a negative number when a < b, zero when equal, positive otherwise.
func SortPermutationFunc[T any](seq []T, cmpFn func(a, b T) int) perm.Permutation {
	idx := positions(len(seq))
	slices.SortFunc(idx, func(i, j int) int { return cmpFn(seq[i], seq[j]) })

	return perm.MustNew(idx)
}

// StableSortPermutation is SortPermutation that keeps equal elements in
// their input order.
func StableSortPermutation[T cmp.Ordered](seq []T) perm.Permutation {
	return StableSortPermutationFunc(seq, cmp.Compare[T])
}

// StableSortPermutationFunc is SortPermutationFunc with a stable sort.
func StableSortPermutationFunc[T any](seq []T, cmpFn func(a, b T) int) perm.Permutation {
	idx := positions(len(seq))
	slices.SortStableFunc(idx, func(i, j int) int { return cmpFn(seq[i], seq[j]) })

	return perm.MustNew(idx)
}

func positions(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}

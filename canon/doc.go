// Package canon brings sequences into a canonical order with respect to the
// symmetries of a permutation group acting on their positions.
//
// 🚀 What is canonicalization?
//
//	Two sequences are equivalent under a group G when one is obtained from
//	the other by permuting positions with an element of G. Canonicalize
//	rewrites a sequence into a fixed representative of its equivalence class,
//	so equivalent inputs end up identical. With signed groups the returned
//	sign records the parity picked up along the way, e.g. for tensor indices
//	that are antisymmetric under a swap.
//
// Algorithm Outline:
//  1. σ = StableSortPermutation(seq), so Apply(seq, σ) is sorted.
//  2. R = G.RightCosetRepresentative(σ⁻¹), the minimum of G·σ⁻¹.
//  3. The canonicalization permutation is R·σ (first R, then σ). Applying it
//     yields Apply(sorted, R) and its sign is the sign of R.
//
// For sequences of distinct elements, every member of the equivalence class
// maps to the same result, and the signs satisfy
// sign(s) = sign(h) · sign(Apply(s, h)) for h ∈ G. With repeated elements
// the stable sort keeps the result reproducible, but equivalent inputs may
// canonicalize differently.
//
// Apply convention: result[i] = original[p.Image(i)]. Applying p and then q
// equals applying p.PreMultiply(q).
//
// ⚙️ Usage:
//
//	g := group.New([]perm.Permutation{perm.MustParse("-(0 1)")})
//	seq := []string{"b", "a"}
//	sign, err := canon.Canonicalize(seq, g) // seq = [a b], sign = -1
package canon

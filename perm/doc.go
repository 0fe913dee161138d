// Package perm provides the permutation value type and its algebra.
//
// 🚀 What is a Permutation?
//
//	A bijection on {0,…,n-1} together with an orthogonal sign in {+1,-1}.
//	Signed permutations describe symmetries such as antisymmetry, where
//	swapping two positions negates a value:
//	  • (0 1)      : swap positions 0 and 1
//	  • -(0 1)     : swap them and flip the sign
//
// ✨ Key features:
//   - reduced explicit image: trailing fixed points are never stored,
//     points past the stored support are implicit fixed points
//   - in-place composition in both orders (PreMultiply / PostMultiply),
//     safe for self-multiplication and for operands of different support
//   - inversion with optional sign flip
//   - Shift: relabel indices to splice or delete positions
//   - conversion to and from cycle notation
//
// ⚙️ Usage:
//
//	p := perm.MustParse("(0 1 2)")
//	q := perm.MustParse("-(3 4)")
//	p.PostMultiply(q) // first p, then q
//	fmt.Println(p, p.Sign()) // -(0 1 2)(3 4) -1
//
// Composition convention: "a·b" always means FIRST a, THEN b, and matches
// a.PostMultiply(b). Acting on a sequence reverses this reading; see
// package canon.
//
// Values are copied by assignment. Every mutating method installs a freshly
// allocated image, so a copy never observes later changes to the original.
package perm

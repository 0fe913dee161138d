// SPDX-License-Identifier: MIT
// Package: permgroup/builder
//
// impl_symmetric.go: Symmetric(n), Alternating(n) and Antisymmetric(n).
//
// Contract:
//   • Symmetric:     (0 1) and (0 1 … n-1); n = 2 emits (0 1) once and
//     n = 1 emits the identity.
//   • Alternating:   (0 1 k) for k = 2..n-1, all even.
//   • Antisymmetric: (i i+1) for i = 0..n-2, each with sign -1 regardless
//     of WithSign; n = 1 emits the identity.
//
// Complexity: O(n) generators of O(n) each for Alternating/Antisymmetric.

package builder

import "github.com/katalvlaran/permgroup/perm"

// Symmetric returns a Constructor for all n! permutations of n points.
func Symmetric(n int) Constructor {
	return func(gens []perm.Permutation, cfg builderConfig) ([]perm.Permutation, error) {
		if err := validateMin(MethodSymmetric, n, MinSymmetricPoints); err != nil {
			return gens, err
		}
		if n == 1 {
			return cfg.emit(gens, nil)
		}
		gens, err := cfg.emit(gens, transposition(n, 0, 1))
		if err != nil || n == 2 {
			return gens, err
		}

		return cfg.emit(gens, rotation(n))
	}
}

// Alternating returns a Constructor for the n!/2 even permutations of n
// points.
func Alternating(n int) Constructor {
	return func(gens []perm.Permutation, cfg builderConfig) ([]perm.Permutation, error) {
		if err := validateMin(MethodAlternating, n, MinAlternatingPoints); err != nil {
			return gens, err
		}
		for k := 2; k < n; k++ {
			img := identity(n)
			img[0], img[1], img[k] = 1, k, 0
			var err error
			if gens, err = cfg.emit(gens, img); err != nil {
				return gens, err
			}
		}

		return gens, nil
	}
}

// Antisymmetric returns a Constructor for Sym(n) where every element carries
// its parity as sign, the symmetry of a totally antisymmetric tensor.
func Antisymmetric(n int) Constructor {
	return func(gens []perm.Permutation, cfg builderConfig) ([]perm.Permutation, error) {
		if err := validateMin(MethodAntisymmetric, n, MinAntisymmetricPoints); err != nil {
			return gens, err
		}
		cfg.oddSign = -1
		if n == 1 {
			return cfg.emit(gens, nil)
		}
		for i := 0; i+1 < n; i++ {
			var err error
			if gens, err = cfg.emit(gens, transposition(n, i, i+1)); err != nil {
				return gens, err
			}
		}

		return gens, nil
	}
}

func identity(n int) []int {
	img := make([]int, n)
	for i := range img {
		img[i] = i
	}

	return img
}

func transposition(n, a, b int) []int {
	img := identity(n)
	img[a], img[b] = b, a

	return img
}

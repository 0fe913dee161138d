// SPDX-License-Identifier: MIT
// Package: permgroup/builder
//
// impl_cyclic.go: Cyclic(n) and Dihedral(n) constructors.
//
// Contract:
//   • Cyclic:   n ≥ MinCyclicPoints, emits the rotation (0 1 … n-1).
//   • Dihedral: n ≥ MinDihedralPoints, emits the rotation, then the
//     reflection i ↦ n-1-i.
//   • Points are shifted by cfg.offset; odd generators carry cfg.oddSign.
//
// Complexity: O(n) per generator.

package builder

import "github.com/katalvlaran/permgroup/perm"

// Cyclic returns a Constructor for the rotations of n points, order n.
// Cyclic(1) emits the identity.
func Cyclic(n int) Constructor {
	return func(gens []perm.Permutation, cfg builderConfig) ([]perm.Permutation, error) {
		if err := validateMin(MethodCyclic, n, MinCyclicPoints); err != nil {
			return gens, err
		}

		return cfg.emit(gens, rotation(n))
	}
}

// Dihedral returns a Constructor for the symmetries of a regular n-gon,
// order 2n.
func Dihedral(n int) Constructor {
	return func(gens []perm.Permutation, cfg builderConfig) ([]perm.Permutation, error) {
		if err := validateMin(MethodDihedral, n, MinDihedralPoints); err != nil {
			return gens, err
		}
		gens, err := cfg.emit(gens, rotation(n))
		if err != nil {
			return gens, err
		}

		return cfg.emit(gens, reflection(n))
	}
}

// rotation returns the image of i ↦ i+1 mod n.
func rotation(n int) []int {
	img := make([]int, n)
	for i := range img {
		img[i] = (i + 1) % n
	}

	return img
}

// reflection returns the image of i ↦ n-1-i.
func reflection(n int) []int {
	img := make([]int, n)
	for i := range img {
		img[i] = n - 1 - i
	}

	return img
}
